package crypto

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mr-tron/base58"
)

const (
	PublicKeySize = ed25519.PublicKeySize
	SignatureSize = ed25519.SignatureSize
)

var (
	ErrInvalidPublicKeyLength = errors.New("invalid public key length")
	ErrInvalidKeypairLength   = errors.New("invalid keypair length")
	ErrKeypairMismatch        = errors.New("public key doesn't match private key")
)

// PublicKey is a 32 byte ed25519 public key, rendered in base58 like every
// other address on the network.
type PublicKey [PublicKeySize]byte

// ParsePublicKey decodes a base58 address.
func ParsePublicKey(s string) (PublicKey, error) {
	var pk PublicKey
	raw, err := base58.Decode(s)
	if err != nil {
		return pk, fmt.Errorf("invalid base58 address %q: %w", s, err)
	}
	if len(raw) != PublicKeySize {
		return pk, fmt.Errorf("%w: %q decodes to %d bytes, expected %d", ErrInvalidPublicKeyLength, s, len(raw), PublicKeySize)
	}
	copy(pk[:], raw)
	return pk, nil
}

func (pk PublicKey) String() string {
	return base58.Encode(pk[:])
}

func (pk PublicKey) IsZero() bool {
	return pk == PublicKey{}
}

func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

func (pk *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}
	*pk = parsed
	return nil
}

// Signature is a raw 64 byte ed25519 signature.
type Signature [SignatureSize]byte

func (s Signature) String() string {
	return base58.Encode(s[:])
}

// Verify checks the signature against msg for the given key.
func (s Signature) Verify(pk PublicKey, msg []byte) bool {
	return ed25519.Verify(pk[:], msg, s[:])
}

// Keypair is an ed25519 keypair in the layout the Solana tooling writes to
// disk: a JSON array of 64 bytes, secret seed followed by the public key.
type Keypair struct {
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// GenerateKeypair creates a fresh random keypair.
func GenerateKeypair() (*Keypair, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}

	return &Keypair{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
	}, nil
}

// KeypairFromSeed derives the keypair for a 32 byte ed25519 seed.
func KeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("invalid seed length: got %d bytes, expected %d", len(seed), ed25519.SeedSize)
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	return &Keypair{
		PublicKey:  privateKey.Public().(ed25519.PublicKey),
		PrivateKey: privateKey,
	}, nil
}

// Address returns the keypair's public key as a network address.
func (kp *Keypair) Address() PublicKey {
	var pk PublicKey
	copy(pk[:], kp.PublicKey)
	return pk
}

// Sign signs msg with the private key.
func (kp *Keypair) Sign(msg []byte) Signature {
	var sig Signature
	copy(sig[:], ed25519.Sign(kp.PrivateKey, msg))
	return sig
}

// ReadKeypair decodes a Solana JSON keypair from r.
func ReadKeypair(r io.Reader) (*Keypair, error) {
	var raw []byte
	// encoding/json would treat []byte as base64, so decode as ints first
	var ints []int
	if err := json.NewDecoder(r).Decode(&ints); err != nil {
		return nil, fmt.Errorf("failed to decode keypair: %w", err)
	}
	raw = make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("failed to decode keypair: byte %d out of range: %d", i, v)
		}
		raw[i] = byte(v)
	}
	if len(raw) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, expected %d", ErrInvalidKeypairLength, len(raw), ed25519.PrivateKeySize)
	}

	kp, err := KeypairFromSeed(raw[:ed25519.SeedSize])
	if err != nil {
		return nil, err
	}

	// Validate that the keys are a matching pair
	if !bytes.Equal(kp.PublicKey, raw[ed25519.SeedSize:]) {
		return nil, ErrKeypairMismatch
	}

	return kp, nil
}

// LoadKeypair loads a Solana JSON keypair file.
func LoadKeypair(path string) (*Keypair, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open keypair file: %w", err)
	}
	defer file.Close()

	kp, err := ReadKeypair(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return kp, nil
}

// SaveKeypair atomically writes kp to path in the Solana JSON layout.
func SaveKeypair(kp *Keypair, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create keypair directory: %w", err)
	}

	ints := make([]int, len(kp.PrivateKey))
	for i, b := range kp.PrivateKey {
		ints[i] = int(b)
	}

	tempFile := path + ".tmp"
	file, err := os.Create(tempFile)
	if err != nil {
		return fmt.Errorf("failed to create temp keypair file: %w", err)
	}
	defer func() {
		file.Close()
		os.Remove(tempFile)
	}()

	if err := file.Chmod(0600); err != nil && runtime.GOOS != "windows" {
		return fmt.Errorf("failed to set keypair file permissions: %w", err)
	}

	if err := json.NewEncoder(file).Encode(ints); err != nil {
		return fmt.Errorf("failed to encode keypair: %w", err)
	}

	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync keypair file: %w", err)
	}

	file.Close()

	if err := os.Rename(tempFile, path); err != nil {
		return fmt.Errorf("failed to save keypair file: %w", err)
	}

	return nil
}
