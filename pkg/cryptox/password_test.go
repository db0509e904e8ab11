package cryptox_test

import (
	"strings"
	"testing"

	"github.com/boardsync/taskboard/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := cryptox.HashPassword("Sup3rSecret!")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	require.NoError(t, cryptox.VerifyPassword("Sup3rSecret!", hash))
	require.Error(t, cryptox.VerifyPassword("wrong-password", hash))
}

func TestHashPasswordIsSalted(t *testing.T) {
	t.Parallel()

	first, err := cryptox.HashPassword("same-password")
	require.NoError(t, err)
	second, err := cryptox.HashPassword("same-password")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.NoError(t, cryptox.VerifyPassword("same-password", first))
	require.NoError(t, cryptox.VerifyPassword("same-password", second))
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	t.Parallel()

	for _, digest := range []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=19456,t=2,p=1$only-four-parts",
		"$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA",
	} {
		require.Error(t, cryptox.VerifyPassword("anything", digest), "digest %q", digest)
	}
}
