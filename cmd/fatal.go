package cmd

import (
	"errors"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shdw-drive/shdw-cli/internal/prompt"
)

const (
	ExitError   = 1
	ExitAborted = 2
)

const errorPrefix = "Error: "

var red = color.New(color.FgRed)

// Fatal prints err and exits. Declining the confirmation gate exits quietly
// with ExitAborted.
var Fatal = fatalError

func fatalError(cmd *cobra.Command, err error, code int) {
	if errors.Is(err, prompt.ErrAborted) {
		cmd.PrintErrln(err)
		os.Exit(ExitAborted)
	}
	PrintErr(cmd, err)
	os.Exit(code)
}

// PrintErr prints every leaf of err in red, each on its own line, cut to the
// terminal width.
func PrintErr(cmd *cobra.Command, err error) {
	width, _, termErr := term.GetSize(int(os.Stderr.Fd()))
	if termErr != nil || width <= 0 {
		log.Ctx(cmd.Context()).Debug().Err(termErr).Msg("Failed to get terminal size")
		width = math.MaxInt32
	}
	printErr(cmd, err, width)
}

func printErr(cmd *cobra.Command, err error, width int) {
	for _, leaf := range leaves(err) {
		red.Fprint(cmd.ErrOrStderr(), errorPrefix)
		for i, line := range strings.Split(strings.TrimRight(leaf.Error(), "\n"), "\n") {
			if i > 0 {
				cmd.PrintErr(strings.Repeat(" ", len(errorPrefix)))
			}
			if width > len(errorPrefix) {
				line = text.Trim(line, width-len(errorPrefix))
			}
			cmd.PrintErrln(line)
		}
	}
}

func leaves(err error) []error {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return merr.WrappedErrors()
	}
	return []error{err}
}
