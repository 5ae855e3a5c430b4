package envsync

import (
	"context"
	"fmt"

	"github.com/nicjohnson145/envop/internal/envfile"
	"github.com/nicjohnson145/envop/internal/onepassword"
)

type DiffStatus string

const (
	DiffStatusMissing   DiffStatus = "missing"
	DiffStatusChanged   DiffStatus = "changed"
	DiffStatusVaultOnly DiffStatus = "vault-only"
)

type DiffOptions struct {
	EnvPath string
	Vault   string
	Item    string
	Section string
}

type DiffEntry struct {
	Key    string     `yaml:"key"`
	Status DiffStatus `yaml:"status"`
}

type DiffReport struct {
	Vault   string      `yaml:"vault"`
	Item    string      `yaml:"item"`
	Section string      `yaml:"section,omitempty"`
	EnvPath string      `yaml:"env_file"`
	Entries []DiffEntry `yaml:"entries"`
}

// Diff compares an env file with an item without prompting or changing anything. Values
// never appear in the report.
func (s *Syncer) Diff(ctx context.Context, opts DiffOptions) (*DiffReport, error) {
	if opts.Vault == "" || opts.Item == "" {
		return nil, ErrDiffTargetRequired
	}

	if err := s.requireSignedIn(ctx); err != nil {
		return nil, err
	}

	envVars, err := envfile.Read(opts.EnvPath)
	if err != nil {
		return nil, fmt.Errorf("error reading environment file at %v: %w", opts.EnvPath, err)
	}

	vault, err := s.lookupVault(ctx, opts.Vault)
	if err != nil {
		return nil, err
	}

	item, err := s.lookupItem(ctx, vault, opts.Item)
	if err != nil {
		return nil, err
	}

	var section *onepassword.Section
	if opts.Section != "" {
		found, ok := findSection(labeledSections(item), opts.Section)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrSectionNotFound, opts.Section)
		}
		section = &found
	}

	itemVars := onepassword.SectionVariables(item, section, onepassword.FieldToVariable)

	return &DiffReport{
		Vault:   vault.Name,
		Item:    item.Title,
		Section: opts.Section,
		EnvPath: opts.EnvPath,
		Entries: CompareVariables(envVars, itemVars),
	}, nil
}

// CompareVariables lists every key that differs between local and remote, local keys first
// in file order followed by keys only the remote has
func CompareVariables(local []envfile.Variable, remote []envfile.Variable) []DiffEntry {
	entries := []DiffEntry{}

	for _, v := range envfile.Unsynced(local, remote) {
		status := DiffStatusMissing
		if _, ok := envfile.Lookup(remote, v.Key); ok {
			status = DiffStatusChanged
		}
		entries = append(entries, DiffEntry{Key: v.Key, Status: status})
	}

	for _, v := range remote {
		if _, ok := envfile.Lookup(local, v.Key); !ok {
			entries = append(entries, DiffEntry{Key: v.Key, Status: DiffStatusVaultOnly})
		}
	}

	return entries
}
