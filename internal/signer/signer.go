// Package signer provides the key-holder capability used to prove wallet
// ownership to the sign-in service and the storage API.
package signer

import (
	"fmt"

	"github.com/shdw-drive/shdw-cli/internal/crypto"
)

// Signer is a key holder able to prove identity. Implementations may touch
// hardware or prompt a human while signing, so callers must not assume
// signing is instantaneous.
type Signer interface {
	// PublicKey returns the signer's address. It never fails.
	PublicKey() crypto.PublicKey
	// TrySign signs msg, reporting failures of the key source.
	TrySign(msg []byte) (crypto.Signature, error)
	// Sign signs msg and panics if the key source fails.
	Sign(msg []byte) crypto.Signature
	// IsInteractive reports whether the key source may prompt a human.
	IsInteractive() bool
}

// ResolutionError reports that no usable signer could be built from local
// configuration.
type ResolutionError struct {
	Path string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("could not resolve signer from %q: %v", e.Path, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// KeypairSigner signs with an in-memory ed25519 keypair.
type KeypairSigner struct {
	keypair     *crypto.Keypair
	interactive bool
}

var _ Signer = (*KeypairSigner)(nil)

// NewKeypairSigner wraps kp. interactive marks keys that were obtained by
// prompting the user.
func NewKeypairSigner(kp *crypto.Keypair, interactive bool) *KeypairSigner {
	return &KeypairSigner{keypair: kp, interactive: interactive}
}

func (s *KeypairSigner) PublicKey() crypto.PublicKey {
	return s.keypair.Address()
}

func (s *KeypairSigner) TrySign(msg []byte) (crypto.Signature, error) {
	return s.keypair.Sign(msg), nil
}

func (s *KeypairSigner) Sign(msg []byte) crypto.Signature {
	sig, err := s.TrySign(msg)
	if err != nil {
		panic(fmt.Sprintf("signer %s failed to sign: %v", s.PublicKey(), err))
	}
	return sig
}

func (s *KeypairSigner) IsInteractive() bool {
	return s.interactive
}
