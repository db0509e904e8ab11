package app

import (
	"fmt"
	"log/slog"

	"github.com/boardsync/taskboard/pkg/cryptox"
	"github.com/boardsync/taskboard/pkg/idx"
	"github.com/boardsync/taskboard/pkg/jwtx"
)

// SessionKeys bundles the signing side and the verification side of the
// session token keys.
type SessionKeys struct {
	KeySet   *jwtx.KeySet
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
}

// InitSessionKeys generates an ephemeral Ed25519 signing key. Keys live only
// as long as the process; a restart invalidates all outstanding sessions.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*SessionKeys, error) {
	pemKey, err := cryptox.GenerateEd25519Key()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session key: %w", err)
	}

	kid := idx.New().String()
	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	if err != nil {
		return nil, fmt.Errorf("failed to build session signer: %w", err)
	}

	keys := jwtx.NewKeySet()
	if err := keys.AddSigner(signer); err != nil {
		return nil, fmt.Errorf("failed to register session key: %w", err)
	}

	logger.Info("session keys initialized", "kid", kid, "alg", signer.Alg())

	return &SessionKeys{
		KeySet:   keys,
		Signer:   signer,
		Verifier: jwtx.NewCommonEdDSA(keys, cfg.Issuer),
	}, nil
}
