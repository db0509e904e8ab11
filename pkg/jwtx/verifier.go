package jwtx

import (
	"errors"
)

// Verifier validates a session token and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrUnknownKID  = errors.New("jwtx: unknown kid")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// EdDSAAdapter a Verifier wrapper for EdDSA.
type EdDSAAdapter struct{ *EdDSAVerifier }

func (a EdDSAAdapter) Verify(token string) (Claims, error) {
	c, err := a.EdDSAVerifier.Verify(token)
	if err != nil {
		return Claims{}, err
	}
	return *c, nil
}

// NewCommonEdDSA returns a Verifier using the EdDSA implementation wrapped
// in the common interface.
func NewCommonEdDSA(keys *KeySet, issuer string) Verifier {
	return EdDSAAdapter{NewVerifierEdDSA(keys, issuer)}
}
