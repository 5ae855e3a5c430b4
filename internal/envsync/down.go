package envsync

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/nicjohnson145/envop/internal/storage"
	"github.com/nicjohnson145/hlp"
)

const (
	promptSelectProvision = "Which provision file do you want to use?"
)

type DownOptions struct {
	EnvPath       string
	ProvisionPath string
}

type DownResult struct {
	ProvisionPath string
	EnvPath       string
}

// Down materializes an env file from a provision file through `op inject`
func (s *Syncer) Down(ctx context.Context, opts DownOptions) (*DownResult, error) {
	if err := s.ensureSignedIn(ctx); err != nil {
		return nil, err
	}

	provision := opts.ProvisionPath
	if provision == "" {
		files, err := DiscoverProvisionFiles(s.provisionFS)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("%w in %v", ErrNoProvisionFiles, s.provisionDir)
		}

		idx, err := s.prompter.Select(promptSelectProvision, files)
		if err != nil {
			return nil, err
		}
		provision = filepath.Join(s.provisionDir, files[idx])
	}

	if err := s.vault.Inject(ctx, provision, opts.EnvPath); err != nil {
		return nil, fmt.Errorf("error syncing variables: %w", err)
	}

	s.printf("Successfully synced to %v !\n", opts.EnvPath)

	s.recordRun(ctx, storage.Run{
		Kind:   storage.RunKindInject,
		Keys:   []string{},
		Target: hlp.Ptr(opts.EnvPath),
	})

	return &DownResult{
		ProvisionPath: provision,
		EnvPath:       opts.EnvPath,
	}, nil
}
