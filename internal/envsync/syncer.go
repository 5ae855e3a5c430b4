package envsync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/nicjohnson145/envop/internal/storage"
	"github.com/rs/zerolog"
)

var (
	ErrNotSignedIn        = errors.New("not signed in to the 1Password CLI, run `op signin` first")
	ErrNoVaults           = errors.New("no vaults available")
	ErrVaultNotFound      = errors.New("vault not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrSectionNotFound    = errors.New("section not found")
	ErrNoProvisionFiles   = errors.New("no provision files found")
	ErrDiffTargetRequired = errors.New("vault and item are required")
)

type SyncerConfig struct {
	Logger        zerolog.Logger
	Vault         VaultClient
	Prompter      Prompter
	History       HistoryStore
	IgnoreChecker IgnoreChecker
	Out           io.Writer
	ProvisionDir  string
	ProvisionFS   fs.FS
}

func NewSyncer(conf SyncerConfig) *Syncer {
	dir := conf.ProvisionDir
	if dir == "" {
		dir = "."
	}

	provisionFS := conf.ProvisionFS
	if provisionFS == nil {
		provisionFS = os.DirFS(dir)
	}

	out := conf.Out
	if out == nil {
		out = io.Discard
	}

	history := conf.History
	if history == nil {
		history = storage.NewNoop(storage.NoopConfig{Logger: conf.Logger})
	}

	return &Syncer{
		log:          conf.Logger,
		vault:        conf.Vault,
		prompter:     conf.Prompter,
		history:      history,
		ignore:       conf.IgnoreChecker,
		out:          out,
		provisionDir: dir,
		provisionFS:  provisionFS,
	}
}

// Syncer runs the flows that move variables between env files and 1Password
type Syncer struct {
	log          zerolog.Logger
	vault        VaultClient
	prompter     Prompter
	history      HistoryStore
	ignore       IgnoreChecker
	out          io.Writer
	provisionDir string
	provisionFS  fs.FS
}

func (s *Syncer) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Syncer) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

// ensureSignedIn logs in through the CLI when there is no active session
func (s *Syncer) ensureSignedIn(ctx context.Context) error {
	signedIn, err := s.vault.WhoAmI(ctx)
	if err != nil {
		return err
	}
	if signedIn {
		return nil
	}

	s.println("You are not logged in to 1Password CLI. Proceeding to log in...")
	return s.vault.SignIn(ctx)
}

func (s *Syncer) requireSignedIn(ctx context.Context) error {
	signedIn, err := s.vault.WhoAmI(ctx)
	if err != nil {
		return err
	}
	if !signedIn {
		return ErrNotSignedIn
	}
	return nil
}

func (s *Syncer) recordRun(ctx context.Context, run storage.Run) {
	if err := s.history.WriteRun(ctx, run); err != nil {
		s.log.Warn().Err(err).Str("kind", string(run.Kind)).Msg("error recording history")
	}
}

// warnIfTracked flags env files that git would happily commit
func (s *Syncer) warnIfTracked(path string) {
	if s.ignore == nil {
		return
	}

	ignored, inRepo, err := s.ignore.IsIgnored(path)
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("error checking gitignore status")
		return
	}
	if inRepo && !ignored {
		s.printf("Warning: %v is not ignored by git, its raw values could be committed.\n", path)
	}
}
