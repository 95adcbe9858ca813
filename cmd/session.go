package cmd

import (
	"fmt"

	"github.com/c2h5oh/datasize"
	"github.com/spf13/cobra"

	"github.com/shdw-drive/shdw-cli/internal/auth"
	"github.com/shdw-drive/shdw-cli/internal/config"
	"github.com/shdw-drive/shdw-cli/internal/crypto"
	"github.com/shdw-drive/shdw-cli/internal/dispatch"
	"github.com/shdw-drive/shdw-cli/internal/drive"
	"github.com/shdw-drive/shdw-cli/internal/output"
	"github.com/shdw-drive/shdw-cli/internal/prompt"
	"github.com/shdw-drive/shdw-cli/internal/signer"
)

// session is the resolved configuration and signer of one invocation.
type session struct {
	settings *config.Settings
	signer   signer.Signer
	console  *prompt.Console
}

func newSession(cmd *cobra.Command) (*session, error) {
	settings, err := config.Resolve(overrides())
	if err != nil {
		return nil, err
	}

	console := prompt.NewConsole(cmd.InOrStdin(), cmd.ErrOrStderr())
	s, err := signer.FromPath(settings.KeypairPath, signer.Options{
		Stdin:    cmd.InOrStdin(),
		Prompter: console,
	})
	if err != nil {
		return nil, err
	}

	return &session{settings: settings, signer: s, console: console}, nil
}

// runOptions tune how a command is dispatched.
type runOptions struct {
	strategy dispatch.BatchStrategy
}

// run resolves the signer and bearer token, then dispatches c against the
// drive API.
func run(cmd *cobra.Command, c dispatch.Command, opts runOptions) error {
	ctx := cmd.Context()

	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	settings := sess.settings

	token, err := auth.NewClient(settings.Endpoints).Resolve(ctx, settings.Auth, settings.RPCURL, sess.signer)
	if err != nil {
		return err
	}

	d := dispatch.NewDispatcher(dispatch.Config{
		Client:      drive.NewHTTPClient(settings.Endpoints.DriveURL, sess.signer, drive.WithToken(token)),
		Signer:      sess.signer,
		DriveURL:    settings.Endpoints.DriveURL,
		RPCURL:      settings.RPCURL,
		Confirmer:   sess.console,
		Reporter:    output.NewPrinter(cmd.OutOrStdout(), outputOptions(cmd, format)),
		Out:         cmd.OutOrStdout(),
		ErrOut:      cmd.ErrOrStderr(),
		SkipConfirm: settings.SkipConfirm,
		Strategy:    opts.strategy,
	})
	return d.Run(ctx, c)
}

func outputOptions(cmd *cobra.Command, format output.Format) output.Options {
	return output.Options{
		Format:     format,
		HideHeader: hideHeader,
		NoStyle:    noStyle || !output.IsTerminal(cmd.OutOrStdout()),
	}
}

func parsePublicKey(name, arg string) (crypto.PublicKey, error) {
	pk, err := crypto.ParsePublicKey(arg)
	if err != nil {
		return crypto.PublicKey{}, fmt.Errorf("invalid %s %q: %w", name, arg, err)
	}
	return pk, nil
}

// parseSize accepts sizes such as 1MB, 500KB or 2GB.
func parseSize(arg string) (datasize.ByteSize, error) {
	var size datasize.ByteSize
	if err := size.UnmarshalText([]byte(arg)); err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", arg, err)
	}
	return size, nil
}
