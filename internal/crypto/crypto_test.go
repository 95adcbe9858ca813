//go:build unit || !integration

package crypto

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublicKeyText(t *testing.T) {
	kp, err := GenerateKeypair()
	require.NoError(t, err)
	pk := kp.Address()

	parsed, err := ParsePublicKey(pk.String())
	require.NoError(t, err)
	require.Equal(t, pk, parsed)
	require.False(t, parsed.IsZero())

	_, err = ParsePublicKey("abc")
	require.ErrorIs(t, err, ErrInvalidPublicKeyLength)

	_, err = ParsePublicKey("0OIl")
	require.Error(t, err)
}

func TestReadKeypair(t *testing.T) {
	kp, err := KeypairFromSeed(bytes.Repeat([]byte{1}, 32))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "id.json")
	require.NoError(t, SaveKeypair(kp, path))

	loaded, err := LoadKeypair(path)
	require.NoError(t, err)
	require.Equal(t, kp.Address(), loaded.Address())

	t.Run("mismatched public half", func(t *testing.T) {
		ints := make([]string, 64)
		for i := range ints {
			ints[i] = "1"
		}
		_, err := ReadKeypair(strings.NewReader("[" + strings.Join(ints, ",") + "]"))
		require.ErrorIs(t, err, ErrKeypairMismatch)
	})

	t.Run("out of range byte", func(t *testing.T) {
		_, err := ReadKeypair(strings.NewReader("[256]"))
		require.Error(t, err)
	})
}

func TestSealOpen(t *testing.T) {
	kp, err := GenerateKeypair()
	require.NoError(t, err)
	aead, err := DeriveFileAEAD(kp)
	require.NoError(t, err)

	plaintext := []byte("the quick brown fox")
	sealed, err := Seal(aead, plaintext)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(sealed, sealMagic))
	require.NotContains(t, string(sealed), string(plaintext))

	opened, err := Open(aead, sealed)
	require.NoError(t, err)
	require.Equal(t, plaintext, opened)

	t.Run("same wallet derives the same key", func(t *testing.T) {
		again, err := DeriveFileAEAD(kp)
		require.NoError(t, err)
		opened, err := Open(again, sealed)
		require.NoError(t, err)
		require.Equal(t, plaintext, opened)
	})

	t.Run("other wallet cannot open", func(t *testing.T) {
		other, err := GenerateKeypair()
		require.NoError(t, err)
		otherAEAD, err := DeriveFileAEAD(other)
		require.NoError(t, err)
		_, err = Open(otherAEAD, sealed)
		require.Error(t, err)
	})

	t.Run("tampered", func(t *testing.T) {
		tampered := append([]byte(nil), sealed...)
		tampered[len(tampered)-1] ^= 0xff
		_, err := Open(aead, tampered)
		require.Error(t, err)
	})

	t.Run("not sealed", func(t *testing.T) {
		_, err := Open(aead, plaintext)
		require.ErrorIs(t, err, ErrNotSealed)
	})
}

func TestSealFile(t *testing.T) {
	kp, err := GenerateKeypair()
	require.NoError(t, err)
	aead, err := DeriveFileAEAD(kp)
	require.NoError(t, err)

	dir := t.TempDir()
	src := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(src, []byte("secret notes"), 0600))

	sealedDir := t.TempDir()
	sealedPath, err := SealFile(aead, src, sealedDir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(sealedDir, "notes.txt"), sealedPath)

	out := filepath.Join(dir, "notes.out")
	require.NoError(t, OpenFile(aead, sealedPath, out))
	contents, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "secret notes", string(contents))
}
