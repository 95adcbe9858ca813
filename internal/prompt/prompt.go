// Package prompt reads answers from the user's console: the yes/continue
// gate in front of irreversible commands and secrets such as seed phrases.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrAborted is returned when the user declines to continue.
var ErrAborted = errors.New("aborted by user")

// Console prompts on out and reads answers from in.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	// fd is the terminal file descriptor of in, or -1
	fd int
}

// NewConsole creates a console. If in is a terminal, secrets are read
// without echo.
func NewConsole(in io.Reader, out io.Writer) *Console {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	return &Console{in: bufio.NewReader(in), out: out, fd: fd}
}

// Confirm blocks for a single line of input. "n" or "no" in any case, or
// end of input with nothing typed, aborts; anything else continues,
// including an empty line.
func (c *Console) Confirm(question string) error {
	fmt.Fprintf(c.out, "%s (Y/n): ", question)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if line == "" {
			fmt.Fprintln(c.out)
			return ErrAborted
		}
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "n", "no":
		return ErrAborted
	}
	return nil
}

// PromptSecret reads one line without echoing it when attached to a terminal.
func (c *Console) PromptSecret(label string) (string, error) {
	fmt.Fprintf(c.out, "[%s]: ", label)

	if c.fd >= 0 {
		secret, err := term.ReadPassword(c.fd)
		fmt.Fprintln(c.out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(secret)), nil
	}

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
