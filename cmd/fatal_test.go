//go:build unit || !integration

package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestPrintErr(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	capture := func(err error, width int) string {
		var buf bytes.Buffer
		c := &cobra.Command{}
		c.SetErr(&buf)
		printErr(c, err, width)
		return buf.String()
	}

	t.Run("one line per aggregated error", func(t *testing.T) {
		err := multierror.Append(nil, errors.New("batch 1: boom"), errors.New("batch 3: bang"))
		out := capture(err, 200)
		require.Contains(t, out, errorPrefix+"batch 1: boom\n")
		require.Contains(t, out, errorPrefix+"batch 3: bang\n")
	})

	t.Run("cut to width on rune boundaries", func(t *testing.T) {
		out := capture(errors.New("héllo wörld"), len(errorPrefix)+7)
		require.Contains(t, out, "héllo w\n")
		require.NotContains(t, out, "ö")
	})

	t.Run("continuation lines are indented", func(t *testing.T) {
		out := capture(errors.New("first\nsecond"), 200)
		require.Contains(t, out, "first\n"+strings.Repeat(" ", len(errorPrefix))+"second\n")
	})
}
