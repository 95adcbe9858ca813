// Package dispatch runs user commands against the storage API: it prints
// what is about to happen, holds irreversible commands behind a confirmation
// gate, splits uploads into batches and reports every result.
package dispatch

import (
	"context"
	"crypto/cipher"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"

	"github.com/shdw-drive/shdw-cli/internal/crypto"
	"github.com/shdw-drive/shdw-cli/internal/drive"
	"github.com/shdw-drive/shdw-cli/internal/models"
	"github.com/shdw-drive/shdw-cli/internal/signer"
)

// PublicUploadWarning is printed before any upload.
const PublicUploadWarning = "WARNING: This CLI does not add any encryption on its own. " +
	"The files in their current state become public as soon as they're uploaded."

const confirmQuestion = "Continue?"

// State is the lifecycle position of the command being dispatched.
type State int

const (
	Idle State = iota
	ConfirmGate
	Executing
	Reporting
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case ConfirmGate:
		return "confirm-gate"
	case Executing:
		return "executing"
	case Reporting:
		return "reporting"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Confirmer asks the user whether to go ahead. A non-nil error means no.
type Confirmer interface {
	Confirm(question string) error
}

// Reporter presents one successful result to the user.
type Reporter interface {
	Report(v any) error
}

// Config holds the collaborators of a Dispatcher.
type Config struct {
	Client   drive.Client
	Signer   signer.Signer
	DriveURL string
	// RPCURL is only shown to the user, next to the signing key.
	RPCURL    string
	Confirmer Confirmer
	Reporter  Reporter
	// Out receives summaries, warnings and text file bodies.
	Out io.Writer
	// ErrOut receives storage client failures as they are normalized.
	ErrOut      io.Writer
	SkipConfirm bool
	Strategy    BatchStrategy
}

// Dispatcher executes one command at a time. It is not safe for concurrent
// use.
type Dispatcher struct {
	client      drive.Client
	signer      signer.Signer
	driveURL    string
	rpcURL      string
	confirmer   Confirmer
	reporter    Reporter
	out         io.Writer
	errOut      io.Writer
	skipConfirm bool
	strategy    BatchStrategy
	state       State
}

func NewDispatcher(cfg Config) *Dispatcher {
	d := &Dispatcher{
		client:      cfg.Client,
		signer:      cfg.Signer,
		driveURL:    cfg.DriveURL,
		rpcURL:      cfg.RPCURL,
		confirmer:   cfg.Confirmer,
		reporter:    cfg.Reporter,
		out:         cfg.Out,
		errOut:      cfg.ErrOut,
		skipConfirm: cfg.SkipConfirm,
		strategy:    cfg.Strategy,
	}
	if d.out == nil {
		d.out = io.Discard
	}
	if d.errOut == nil {
		d.errOut = d.out
	}
	return d
}

// State returns where the last dispatched command got to.
func (d *Dispatcher) State() State {
	return d.state
}

// Run prints the signing key, the command summary, passes the confirmation gate when the
// command is irreversible and executes it. No storage call is made before
// the gate has been passed.
func (d *Dispatcher) Run(ctx context.Context, cmd Command) error {
	d.setState(ctx, Idle)

	if c, ok := cmd.(GetStorageAccounts); ok && c.Owner == nil {
		owner := d.signer.PublicKey()
		c.Owner = &owner
		cmd = c
	}

	fmt.Fprintf(d.out, "Signing with %s\n", d.signer.PublicKey())
	if d.rpcURL != "" {
		fmt.Fprintf(d.out, "Sending RPC requests to %s\n", d.rpcURL)
	}
	fmt.Fprintln(d.out, cmd.Describe())
	if _, ok := cmd.(StoreFiles); ok {
		fmt.Fprintln(d.out, PublicUploadWarning)
	}

	if cmd.Irreversible() {
		d.setState(ctx, ConfirmGate)
		if !d.skipConfirm {
			if err := d.confirmer.Confirm(confirmQuestion); err != nil {
				return d.fail(ctx, cmd, err)
			}
		}
	}

	d.setState(ctx, Executing)
	if err := d.execute(ctx, cmd); err != nil {
		return d.fail(ctx, cmd, err)
	}
	d.setState(ctx, Done)
	return nil
}

//nolint:gocyclo // one case per command
func (d *Dispatcher) execute(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case CreateStorageAccount:
		resp, err := d.client.CreateStorageAccount(ctx, c.Identifier, c.Size.Bytes(), c.Version)
		return d.report(ctx, resp, err)
	case DeleteStorageAccount:
		resp, err := d.client.DeleteStorageAccount(ctx, c.Account)
		return d.report(ctx, resp, err)
	case CancelDeleteStorageAccount:
		resp, err := d.client.CancelDeleteStorageAccount(ctx, c.Account)
		return d.report(ctx, resp, err)
	case ClaimStake:
		resp, err := d.client.ClaimStake(ctx, c.Account)
		return d.report(ctx, resp, err)
	case ReduceStorage:
		resp, err := d.client.ReduceStorage(ctx, c.Account, c.Size.Bytes())
		return d.report(ctx, resp, err)
	case AddStorage:
		resp, err := d.client.AddStorage(ctx, c.Account, c.Size.Bytes())
		return d.report(ctx, resp, err)
	case AddImmutableStorage:
		resp, err := d.client.AddImmutableStorage(ctx, c.Account, c.Size.Bytes())
		return d.report(ctx, resp, err)
	case MakeStorageImmutable:
		resp, err := d.client.MakeStorageImmutable(ctx, c.Account)
		return d.report(ctx, resp, err)
	case GetStorageAccount:
		resp, err := d.client.GetStorageAccount(ctx, c.Account)
		return d.report(ctx, resp, err)
	case GetStorageAccounts:
		resp, err := d.client.GetStorageAccounts(ctx, *c.Owner)
		return d.report(ctx, resp, err)
	case ListFiles:
		resp, err := d.client.ListObjects(ctx, c.Account)
		return d.report(ctx, resp, err)
	case GetText:
		return d.getText(ctx, c)
	case DeleteFile:
		resp, err := d.client.DeleteFile(ctx, c.Account, drive.URL(d.driveURL, c.Account, c.File))
		return d.report(ctx, resp, err)
	case EditFile:
		name, err := Basename(c.File)
		if err != nil {
			return err
		}
		resp, err := d.client.EditFile(ctx, c.Account, models.ShadowFile{Name: name, Path: c.File})
		return d.report(ctx, resp, err)
	case GetObjectData:
		resp, err := d.client.GetObjectData(ctx, drive.URL(d.driveURL, c.Account, c.File))
		return d.report(ctx, resp, err)
	case StoreFiles:
		return d.storeFiles(ctx, c)
	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
}

func (d *Dispatcher) getText(ctx context.Context, c GetText) error {
	location := drive.URL(d.driveURL, c.Account, c.File)
	text, err := d.client.GetText(ctx, location)
	if text, err = Normalize(d.errOut, text, err); err != nil {
		return err
	}

	d.setState(ctx, Reporting)
	fmt.Fprintf(d.out, "Get Text at %s\n", text.Location)
	fmt.Fprintf(d.out, "Last Modified: %s\n\n", text.LastModified)
	fmt.Fprintln(d.out, text.Body)
	return nil
}

func (d *Dispatcher) storeFiles(ctx context.Context, c StoreFiles) error {
	size := c.BatchSize
	if size == 0 {
		size = DefaultBatchSize
	}
	batches, err := Chunk(c.Files, size)
	if err != nil {
		return err
	}
	// A path without a base name fails the whole upload, whatever the strategy.
	for _, path := range c.Files {
		if _, err := Basename(path); err != nil {
			return err
		}
	}

	var s *sealer
	if c.Encrypt {
		aead, err := crypto.DeriveFileAEAD(d.signer)
		if err != nil {
			return fmt.Errorf("failed to derive file key: %w", err)
		}
		dir, err := os.MkdirTemp("", "shdw-drive-sealed-")
		if err != nil {
			return fmt.Errorf("failed to create directory for sealed files: %w", err)
		}
		defer os.RemoveAll(dir)
		s = &sealer{aead: aead, dir: dir}
	}

	var errs *multierror.Error
	for i, batch := range batches {
		log.Ctx(ctx).Debug().Int("batch", i+1).Int("of", len(batches)).Int("files", len(batch)).Msg("uploading batch")

		err := d.storeBatch(ctx, c.Account, batch, s)
		if err == nil {
			continue
		}
		if d.strategy == AbortRemaining {
			return err
		}
		log.Ctx(ctx).Debug().Err(err).Int("batch", i+1).Msg("batch failed, continuing")
		errs = multierror.Append(errs, fmt.Errorf("batch %d: %w", i+1, err))
	}
	return errs.ErrorOrNil()
}

func (d *Dispatcher) storeBatch(ctx context.Context, account crypto.PublicKey, paths []string, s *sealer) error {
	files := make([]models.ShadowFile, 0, len(paths))
	for _, path := range paths {
		name, err := Basename(path)
		if err != nil {
			return err
		}
		if s != nil {
			if path, err = s.seal(path); err != nil {
				return err
			}
		}
		files = append(files, models.ShadowFile{Name: name, Path: path})
	}

	resp, err := d.client.StoreFiles(ctx, account, files)
	return d.report(ctx, resp, err)
}

// report normalizes a client result and hands successful ones to the reporter.
func (d *Dispatcher) report(ctx context.Context, resp any, err error) error {
	v, err := Normalize(d.errOut, resp, err)
	if err != nil {
		return err
	}
	d.setState(ctx, Reporting)
	return d.reporter.Report(v)
}

func (d *Dispatcher) fail(ctx context.Context, cmd Command, err error) error {
	d.setState(ctx, Failed)
	log.Ctx(ctx).Debug().Err(err).Str("command", cmd.Name()).Msg("command failed")
	return err
}

func (d *Dispatcher) setState(ctx context.Context, s State) {
	log.Ctx(ctx).Trace().Stringer("from", d.state).Stringer("to", s).Msg("dispatch state")
	d.state = s
}

// sealer writes sealed copies of upload files, each into its own directory
// under dir so files sharing a base name do not collide.
type sealer struct {
	aead cipher.AEAD
	dir  string
}

func (s *sealer) seal(path string) (string, error) {
	dir, err := os.MkdirTemp(s.dir, "")
	if err != nil {
		return "", fmt.Errorf("failed to create directory for sealed copy of %s: %w", path, err)
	}
	return crypto.SealFile(s.aead, path, dir)
}
