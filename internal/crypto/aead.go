package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// Encrypt encrypts plaintext using the provided AEAD cipher and associated data.
func Encrypt(aead cipher.AEAD, plaintext, aad []byte) ([]byte, error) {
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, plaintext, aad), nil
}

// Decrypt expects nonce‐prefixed ciphertext and returns plaintext or an error.
func Decrypt(aead cipher.AEAD, in, aad []byte) ([]byte, error) {
	ns := aead.NonceSize()
	minLen := ns + aead.Overhead()
	if len(in) < minLen {
		return nil, fmt.Errorf("ciphertext too short: got %d bytes, need at least %d", len(in), minLen)
	}

	nonce, ciphertext := in[:ns], in[ns:]

	plaintext, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("aead.Open failed: %w", err)
	}

	return plaintext, nil
}

// DeriveAEAD derives an XChaCha20-Poly1305 cipher from key material using HKDF-SHA256.
func DeriveAEAD(key, salt, info []byte) (cipher.AEAD, error) {
	hk := hkdf.New(sha256.New, key, salt, info)
	aeadKey := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hk, aeadKey); err != nil {
		return nil, err
	}

	// XChaCha20 so random nonces are safe
	return chacha20poly1305.NewX(aeadKey)
}

// deriveInfoHash binds a derived key to a version and a purpose label.
func deriveInfoHash(version int, purpose string) []byte {
	h := sha256.New()
	h.Write([]byte{byte(version)})
	h.Write([]byte{0})
	h.Write([]byte(purpose))
	return h.Sum(nil)
}
