package envsync

import (
	"context"
	"fmt"
	"strings"

	"github.com/nicjohnson145/envop/internal/envfile"
	"github.com/nicjohnson145/envop/internal/onepassword"
	"github.com/nicjohnson145/envop/internal/storage"
	"github.com/nicjohnson145/hlp"
)

const (
	promptSelectVariables = "Which variables do you want to sync?"
	promptConfirmSync     = "Are you sure you want to sync these variables? \n"
)

type UpOptions struct {
	EnvPath   string
	Vault     string
	Item      string
	Section   string
	NoSection bool
}

type UpResult struct {
	Vault         string
	Item          string
	Section       *string
	Pushed        []string
	ProvisionPath string
	Appended      []string
}

// Up pushes local variables into a 1Password item and records references to them in the
// provision file for the chosen section
func (s *Syncer) Up(ctx context.Context, opts UpOptions) (*UpResult, error) {
	if err := s.ensureSignedIn(ctx); err != nil {
		return nil, err
	}

	envVars, err := envfile.Read(opts.EnvPath)
	if err != nil {
		return nil, fmt.Errorf("error reading environment file at %v: %w", opts.EnvPath, err)
	}
	s.log.Debug().Int("count", len(envVars)).Str("path", opts.EnvPath).Msg("read environment file")

	s.warnIfTracked(opts.EnvPath)

	vault, err := s.selectVault(ctx, opts.Vault)
	if err != nil {
		return nil, err
	}

	item, err := s.selectItem(ctx, vault, opts.Item)
	if err != nil {
		return nil, err
	}

	section, err := s.selectSection(item, opts.Section, opts.NoSection)
	if err != nil {
		return nil, err
	}

	result := &UpResult{
		Vault:    vault.Name,
		Item:     item.Title,
		Pushed:   []string{},
		Appended: []string{},
	}
	if section != nil {
		result.Section = hlp.Ptr(section.Label)
	}

	item, err = s.push(ctx, envVars, vault, item, section, result)
	if err != nil {
		return nil, err
	}

	result.ProvisionPath = s.provisionPath(section)
	write, err := s.prompter.Confirm(fmt.Sprintf("Do you want to write to %v?", result.ProvisionPath), true)
	if err != nil {
		return nil, err
	}
	if !write {
		return result, nil
	}

	refs := onepassword.SectionVariables(item, section, onepassword.FieldToReference)
	appended, err := s.writeProvision(result.ProvisionPath, refs)
	if err != nil {
		return nil, err
	}

	for _, a := range appended {
		result.Appended = append(result.Appended, a.Key)
	}

	s.recordRun(ctx, storage.Run{
		Kind:    storage.RunKindProvision,
		Vault:   hlp.Ptr(vault.Name),
		Item:    hlp.Ptr(item.Title),
		Section: result.Section,
		Keys:    result.Appended,
		Target:  hlp.Ptr(result.ProvisionPath),
	})

	return result, nil
}

// push offers the unsynced variables and writes the chosen ones to the item. The returned
// item is the freshest copy available, a failed edit keeps the previous one.
func (s *Syncer) push(
	ctx context.Context,
	envVars []envfile.Variable,
	vault onepassword.Vault,
	item *onepassword.ItemDetails,
	section *onepassword.Section,
	result *UpResult,
) (*onepassword.ItemDetails, error) {
	itemVars := onepassword.SectionVariables(item, section, onepassword.FieldToVariable)
	unsynced := envfile.Unsynced(envVars, itemVars)

	if len(unsynced) == 0 {
		s.println("No new variables to upload!")
		return item, nil
	}

	options := make([]string, 0, len(unsynced))
	for _, v := range unsynced {
		options = append(options, v.String())
	}

	idxs, err := s.prompter.MultiSelect(promptSelectVariables, options)
	if err != nil {
		return nil, err
	}
	if len(idxs) == 0 {
		return item, nil
	}

	selected := make([]envfile.Variable, 0, len(idxs))
	var confirmation strings.Builder
	for _, idx := range idxs {
		v := unsynced[idx]
		selected = append(selected, v)
		confirmation.WriteString(v.String() + "\n")
	}

	proceed, err := s.prompter.Confirm(promptConfirmSync+confirmation.String(), false)
	if err != nil {
		return nil, err
	}
	if !proceed {
		return item, nil
	}

	assignments := make([]string, 0, len(selected))
	keys := make([]string, 0, len(selected))
	for _, v := range selected {
		assignments = append(assignments, onepassword.Assignment(section, v.Key, v.Value))
		keys = append(keys, v.Key)
	}

	edited, err := s.vault.EditItem(ctx, item.ID, assignments)
	if err != nil {
		s.log.Error().Err(err).Str("item", item.ID).Msg("error editing item")
		s.println("Failed to sync variables!")
		return item, nil
	}

	s.println("Synced variables successfully!")
	result.Pushed = keys

	s.recordRun(ctx, storage.Run{
		Kind:    storage.RunKindPush,
		Vault:   hlp.Ptr(vault.Name),
		Item:    hlp.Ptr(edited.Title),
		Section: result.Section,
		Keys:    keys,
	})

	return edited, nil
}
