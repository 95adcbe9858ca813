package signer

import (
	"crypto/sha512"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"

	"github.com/shdw-drive/shdw-cli/internal/config"
	"github.com/shdw-drive/shdw-cli/internal/crypto"
)

const (
	askKeyword      = "ASK"
	promptScheme    = "prompt"
	stdinScheme     = "stdin"
	usbScheme       = "usb"
	fileScheme      = "file"
	seedIterations  = 2048
	seedLength      = 64
	seedSaltPrefix  = "mnemonic"
	seedPhraseLabel = "seed phrase"
	passphraseLabel = "passphrase (empty for none)"
)

var (
	ErrEmptyPath           = errors.New("no keypair path configured")
	ErrHardwareUnsupported = errors.New("hardware wallets are not supported")
	ErrNoPrompter          = errors.New("keypair source requires a terminal prompt")
	ErrInvalidSeedPhrase   = errors.New("seed phrase must have 12, 15, 18, 21 or 24 words")
)

// Prompter reads secrets from the user without echoing them.
type Prompter interface {
	PromptSecret(label string) (string, error)
}

// Options supplies the inputs a key source may need.
type Options struct {
	Stdin    io.Reader
	Prompter Prompter
}

// FromPath resolves a signer from a keypair location, using the same forms
// the Solana CLI accepts: a file path (optionally file:// or ~ prefixed),
// stdin:// for a keypair piped on stdin, and prompt:// or ASK for a seed
// phrase typed at the terminal.
func FromPath(path string, opts Options) (Signer, error) {
	s, err := fromPath(path, opts)
	if err != nil {
		return nil, &ResolutionError{Path: path, Err: err}
	}
	log.Debug().Str("path", path).Stringer("pubkey", s.PublicKey()).Bool("interactive", s.IsInteractive()).Msg("resolved signer")
	return s, nil
}

func fromPath(path string, opts Options) (Signer, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrEmptyPath
	}
	if path == askKeyword {
		return fromSeedPhrase(opts.Prompter)
	}

	scheme, rest := splitScheme(path)
	switch scheme {
	case promptScheme:
		return fromSeedPhrase(opts.Prompter)
	case stdinScheme:
		if opts.Stdin == nil {
			return nil, errors.New("stdin is not available")
		}
		kp, err := crypto.ReadKeypair(opts.Stdin)
		if err != nil {
			return nil, err
		}
		return NewKeypairSigner(kp, false), nil
	case usbScheme:
		return nil, ErrHardwareUnsupported
	case fileScheme:
		path = rest
	case "":
	default:
		return nil, fmt.Errorf("unsupported keypair scheme %q", scheme)
	}

	expanded, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	kp, err := crypto.LoadKeypair(expanded)
	if err != nil {
		return nil, err
	}
	return NewKeypairSigner(kp, false), nil
}

// splitScheme separates "scheme://rest" or "scheme:rest". Windows drive
// letters and plain paths have no scheme.
func splitScheme(path string) (string, string) {
	idx := strings.Index(path, ":")
	if idx <= 1 {
		return "", path
	}
	scheme := strings.ToLower(path[:idx])
	for _, r := range scheme {
		if r < 'a' || r > 'z' {
			return "", path
		}
	}
	return scheme, strings.TrimPrefix(path[idx+1:], "//")
}

func fromSeedPhrase(p Prompter) (Signer, error) {
	if p == nil {
		return nil, ErrNoPrompter
	}
	phrase, err := p.PromptSecret(seedPhraseLabel)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed phrase: %w", err)
	}
	passphrase, err := p.PromptSecret(passphraseLabel)
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	kp, err := KeypairFromSeedPhrase(phrase, passphrase)
	if err != nil {
		return nil, err
	}
	return NewKeypairSigner(kp, true), nil
}

// KeypairFromSeedPhrase derives the keypair for a BIP39 mnemonic the way
// solana-keygen does: the first 32 bytes of the BIP39 seed become the ed25519
// seed. The word list itself is not checked.
func KeypairFromSeedPhrase(phrase, passphrase string) (*crypto.Keypair, error) {
	words := strings.Fields(phrase)
	switch len(words) {
	case 12, 15, 18, 21, 24:
	default:
		return nil, ErrInvalidSeedPhrase
	}
	mnemonic := norm.NFKD.String(strings.Join(words, " "))
	salt := norm.NFKD.String(seedSaltPrefix + passphrase)
	seed := pbkdf2.Key([]byte(mnemonic), []byte(salt), seedIterations, seedLength, sha512.New)
	return crypto.KeypairFromSeed(seed[:32])
}
