//go:build unit || !integration

package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	for _, tc := range []struct {
		name    string
		input   string
		aborted bool
	}{
		{name: "yes", input: "y\n"},
		{name: "full yes", input: "YES\n"},
		{name: "empty line", input: "\n"},
		{name: "anything else", input: "sure\n"},
		{name: "no newline", input: "y"},
		{name: "n", input: "n\n", aborted: true},
		{name: "no", input: "No\n", aborted: true},
		{name: "padded no", input: "  NO  \r\n", aborted: true},
		{name: "eof", input: "", aborted: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := NewConsole(strings.NewReader(tc.input), &out).Confirm("Continue?")
			if tc.aborted {
				require.ErrorIs(t, err, ErrAborted)
			} else {
				require.NoError(t, err)
			}
			require.True(t, strings.HasPrefix(out.String(), "Continue? (Y/n): "))
		})
	}
}

func TestConfirmReadsOneLine(t *testing.T) {
	console := NewConsole(strings.NewReader("y\nn\n"), &bytes.Buffer{})
	require.NoError(t, console.Confirm("first"))
	require.ErrorIs(t, console.Confirm("second"), ErrAborted)
}

func TestPromptSecret(t *testing.T) {
	var out bytes.Buffer
	console := NewConsole(strings.NewReader("word1 word2\n"), &out)

	secret, err := console.PromptSecret("seed phrase")
	require.NoError(t, err)
	require.Equal(t, "word1 word2", secret)
	require.Equal(t, "[seed phrase]: ", out.String())

	secret, err = console.PromptSecret("passphrase")
	require.NoError(t, err)
	require.Empty(t, secret)
}
