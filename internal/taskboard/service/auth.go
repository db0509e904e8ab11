package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/boardsync/taskboard/internal/taskboard/domain"
	"github.com/boardsync/taskboard/internal/taskboard/store"
	"github.com/boardsync/taskboard/pkg/cryptox"
	"github.com/boardsync/taskboard/pkg/idx"
	"github.com/boardsync/taskboard/pkg/jwtx"
	"github.com/boardsync/taskboard/pkg/slogx"
)

const (
	minNameLength     = 3
	minPasswordLength = 8
)

// AuthService implements sign-up and sign-in. Sessions are stateless signed
// tokens; there is nothing server-side to invalidate on sign-out.
type AuthService struct {
	Store      store.Store
	Signer     jwtx.Signer
	Issuer     string
	SessionTTL time.Duration
}

// SignUp registers a new account and signs it straight in, returning the new
// session. The overall operation only succeeds when the follow-on sign-in
// succeeds too; a sign-up that can't produce a session is reported as failed.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (domain.Session, error) {
	log := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if err := validateSignUp(name, email, password); err != nil {
		return domain.Session{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("password hashing failed", "err", err)
		return domain.Session{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:               idx.New().String(),
		Name:             name,
		Email:            email,
		PasswordHash:     hash,
		LastActivityDate: now,
		CreatedAt:        now,
	}

	// The duplicate pre-check, insert, and initial activity stamp commit or
	// roll back together. The pre-check is still only a fast path; a race
	// between two concurrent sign-ups is closed by the email uniqueness
	// constraint on the insert.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		users := tx.Users()

		_, err := users.GetUserByEmail(ctx, email)
		switch {
		case err == nil:
			return ErrAccountExists
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		if err := users.CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAccountExists
			}
			return err
		}

		return users.TouchLastActivity(ctx, user.ID, now)
	})
	if err != nil {
		if errors.Is(err, ErrAccountExists) {
			return domain.Session{}, ErrAccountExists
		}
		log.Error("sign-up transaction failed", "err", err)
		return domain.Session{}, err
	}

	log.Info("account created", "user_id", user.ID)

	return s.SignIn(ctx, email, password)
}

// SignIn verifies the credentials and issues a session token. Unknown email
// and wrong password produce the identical error.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	log := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.Session{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, ErrInvalidCredentials
		}
		log.Error("user lookup failed", "err", err)
		return domain.Session{}, err
	}

	if cryptox.VerifyPassword(password, user.PasswordHash) != nil {
		return domain.Session{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(user.ID, user.Email, user.Name, ttl, s.Issuer, now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("session signing failed", "err", err)
		return domain.Session{}, err
	}

	// Best effort; a stale activity date is not worth failing the sign-in.
	if err := s.Store.Users().TouchLastActivity(ctx, user.ID, now); err != nil {
		log.Warn("failed to bump last activity", "user_id", user.ID, "err", err)
	}

	return domain.Session{
		Token:     token,
		ExpiresAt: now.Add(ttl),
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
	}, nil
}

func validateSignUp(name, email, password string) error {
	if len(name) < minNameLength {
		return validationErr("name", "name must be at least 3 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return validationErr("email", "invalid email address")
	}
	if len(password) < minPasswordLength {
		return validationErr("password", "password must be at least 8 characters")
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return validationErr("password",
			"password must contain at least one uppercase letter, one lowercase letter, and one number")
	}
	return nil
}
