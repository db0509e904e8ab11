package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/boardsync/taskboard/pkg/cryptox"
	"github.com/boardsync/taskboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "taskboard-test"

func newTestSigner(t *testing.T, kid string) jwtx.Signer {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	require.NoError(t, err)
	require.NoError(t, signer.Validate())
	return signer
}

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "key-001")

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	verifier := jwtx.NewCommonEdDSA(keys, testIssuer)

	claims := jwtx.NewSessionClaims(
		"01JD0000000000000000000000", "alice@example.com", "Alice",
		jwtx.DefaultSessionTTL, testIssuer, time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims.Subject, got.Subject)
	require.Equal(t, "alice@example.com", got.Email)
	require.Equal(t, "Alice", got.Name)
	require.WithinDuration(t, time.Now().Add(jwtx.DefaultSessionTTL), got.ExpiresAt.Time, time.Minute)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "key-001")
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	verifier := jwtx.NewCommonEdDSA(keys, testIssuer)

	issued := time.Now().UTC().Add(-48 * time.Hour)
	claims := jwtx.NewSessionClaims("user-1", "a@b.c", "A", time.Hour, testIssuer, issued)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "key-001")
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	verifier := jwtx.NewCommonEdDSA(keys, testIssuer)

	claims := jwtx.NewSessionClaims("user-1", "a@b.c", "A", time.Hour, "someone-else", time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "key-001")
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	verifier := jwtx.NewCommonEdDSA(keys, testIssuer)

	claims := jwtx.NewSessionClaims("user-1", "a@b.c", "A", time.Hour, testIssuer, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	parts[1] = strings.Repeat("A", len(parts[1]))

	_, err = verifier.Verify(strings.Join(parts, "."))
	require.Error(t, err)
}

func TestVerifyRejectsUnknownKID(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "key-001")
	other := newTestSigner(t, "key-002")

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(other)) // verifier never saw key-001
	verifier := jwtx.NewCommonEdDSA(keys, testIssuer)

	claims := jwtx.NewSessionClaims("user-1", "a@b.c", "A", time.Hour, testIssuer, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}
