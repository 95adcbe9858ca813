package crypto

import (
	"bytes"
	"crypto/cipher"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileKeyMessage is signed by the wallet to derive its file encryption key.
// ed25519 signatures are deterministic, so the same wallet always derives the
// same key.
const FileKeyMessage = "Shadow Drive file encryption key"

const sealVersion = 1

var sealMagic = []byte("SHDWENC1")

var ErrNotSealed = errors.New("not a sealed file")

// MessageSigner is the part of a signer needed to derive a file key.
type MessageSigner interface {
	Sign(msg []byte) Signature
}

// DeriveFileAEAD derives the wallet's file encryption cipher.
func DeriveFileAEAD(s MessageSigner) (cipher.AEAD, error) {
	sig := s.Sign([]byte(FileKeyMessage))
	return DeriveAEAD(sig[:], nil, deriveInfoHash(sealVersion, "file"))
}

// Seal encrypts plaintext into the sealed file layout: magic, nonce, ciphertext.
func Seal(aead cipher.AEAD, plaintext []byte) ([]byte, error) {
	payload, err := Encrypt(aead, plaintext, sealMagic)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(sealMagic)+len(payload))
	out = append(out, sealMagic...)
	return append(out, payload...), nil
}

// Open reverses Seal.
func Open(aead cipher.AEAD, sealed []byte) ([]byte, error) {
	if !bytes.HasPrefix(sealed, sealMagic) {
		return nil, ErrNotSealed
	}
	return Decrypt(aead, sealed[len(sealMagic):], sealMagic)
}

// SealFile writes a sealed copy of src into dir under the same base name and
// returns its path.
func SealFile(aead cipher.AEAD, src, dir string) (string, error) {
	plaintext, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", src, err)
	}
	sealed, err := Seal(aead, plaintext)
	if err != nil {
		return "", fmt.Errorf("failed to seal %s: %w", src, err)
	}
	dst := filepath.Join(dir, filepath.Base(src))
	if err := os.WriteFile(dst, sealed, 0600); err != nil {
		return "", fmt.Errorf("failed to write sealed copy of %s: %w", src, err)
	}
	return dst, nil
}

// OpenFile decrypts the sealed file at src into dst.
func OpenFile(aead cipher.AEAD, src, dst string) error {
	sealed, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	plaintext, err := Open(aead, sealed)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	if err := os.WriteFile(dst, plaintext, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}
