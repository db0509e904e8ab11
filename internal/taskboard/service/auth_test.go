package service

import (
	"context"
	"testing"
	"time"

	"github.com/boardsync/taskboard/internal/taskboard/store/drivers/sqlite"
	"github.com/boardsync/taskboard/pkg/cryptox"
	"github.com/boardsync/taskboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "taskboard-test"

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestSigner(t *testing.T) jwtx.Signer {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA("test-key", pemKey)
	require.NoError(t, err)
	return signer
}

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	return &AuthService{
		Store:      newTestStore(t),
		Signer:     newTestSigner(t),
		Issuer:     testIssuer,
		SessionTTL: time.Hour,
	}
}

func TestSignUpIssuesSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newAuthService(t)

	session, err := svc.SignUp(ctx, "Alice", "alice@example.com", "Sup3rSecret")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	require.Equal(t, "alice@example.com", session.Email)
	require.Equal(t, "Alice", session.Name)
	require.NotEmpty(t, session.UserID)
	require.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)

	// The same credentials sign in afterwards without re-registering.
	again, err := svc.SignIn(ctx, "alice@example.com", "Sup3rSecret")
	require.NoError(t, err)
	require.Equal(t, session.UserID, again.UserID)
}

func TestSignUpTokenCarriesIdentityClaims(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newAuthService(t)

	session, err := svc.SignUp(ctx, "Bob", "bob@example.com", "Sup3rSecret")
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(svc.Signer))
	verifier := jwtx.NewCommonEdDSA(keys, testIssuer)

	claims, err := verifier.Verify(session.Token)
	require.NoError(t, err)
	require.Equal(t, session.UserID, claims.Subject)
	require.Equal(t, "bob@example.com", claims.Email)
	require.Equal(t, "Bob", claims.Name)
}

func TestSignUpTrimsEmailAndName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newAuthService(t)

	session, err := svc.SignUp(ctx, "  Carol  ", "  carol@example.com  ", "Sup3rSecret")
	require.NoError(t, err)
	require.Equal(t, "carol@example.com", session.Email)
	require.Equal(t, "Carol", session.Name)

	// The trimmed form is what's stored; the padded form still signs in.
	_, err = svc.SignIn(ctx, "  carol@example.com ", "Sup3rSecret")
	require.NoError(t, err)
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newAuthService(t)

	_, err := svc.SignUp(ctx, "Dave", "dave@example.com", "Sup3rSecret")
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, "Imposter", "dave@example.com", "An0therPass")
	require.ErrorIs(t, err, ErrAccountExists)

	// Whitespace padding does not dodge the uniqueness check.
	_, err = svc.SignUp(ctx, "Imposter", "  dave@example.com ", "An0therPass")
	require.ErrorIs(t, err, ErrAccountExists)
}

func TestSignUpValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newAuthService(t)

	cases := []struct {
		name     string
		userName string
		email    string
		password string
		field    string
	}{
		{"short name", "Al", "al@example.com", "Sup3rSecret", "name"},
		{"bad email", "Alice", "not-an-email", "Sup3rSecret", "email"},
		{"short password", "Alice", "alice@example.com", "Ab1", "password"},
		{"no uppercase", "Alice", "alice@example.com", "sup3rsecret", "password"},
		{"no lowercase", "Alice", "alice@example.com", "SUP3RSECRET", "password"},
		{"no digit", "Alice", "alice@example.com", "SuperSecret", "password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SignUp(ctx, tc.userName, tc.email, tc.password)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestSignInUniformFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newAuthService(t)

	_, err := svc.SignUp(ctx, "Erin", "erin@example.com", "Sup3rSecret")
	require.NoError(t, err)

	// Wrong password and unknown email are the same error.
	_, wrongPass := svc.SignIn(ctx, "erin@example.com", "WrongPass1")
	require.ErrorIs(t, wrongPass, ErrInvalidCredentials)

	_, unknown := svc.SignIn(ctx, "nobody@example.com", "Sup3rSecret")
	require.ErrorIs(t, unknown, ErrInvalidCredentials)

	require.Equal(t, wrongPass, unknown)
}

func TestSignInRejectsEmptyCredentials(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newAuthService(t)

	_, err := svc.SignIn(ctx, "", "Sup3rSecret")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(ctx, "erin@example.com", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInBumpsLastActivity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newAuthService(t)

	session, err := svc.SignUp(ctx, "Frank", "frank@example.com", "Sup3rSecret")
	require.NoError(t, err)

	before, err := svc.Store.Users().GetUserByID(ctx, session.UserID)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.SignIn(ctx, "frank@example.com", "Sup3rSecret")
	require.NoError(t, err)

	after, err := svc.Store.Users().GetUserByID(ctx, session.UserID)
	require.NoError(t, err)
	require.True(t, after.LastActivityDate.After(before.LastActivityDate) ||
		after.LastActivityDate.Equal(before.LastActivityDate))
	require.False(t, after.LastActivityDate.Before(before.LastActivityDate))
}

func TestPasswordsStoredHashed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newAuthService(t)

	session, err := svc.SignUp(ctx, "Grace", "grace@example.com", "Sup3rSecret")
	require.NoError(t, err)

	user, err := svc.Store.Users().GetUserByID(ctx, session.UserID)
	require.NoError(t, err)
	require.NotEqual(t, "Sup3rSecret", user.PasswordHash)
	require.NotContains(t, user.PasswordHash, "Sup3rSecret")
}
