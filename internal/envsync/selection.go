package envsync

import (
	"context"
	"fmt"

	"github.com/nicjohnson145/envop/internal/onepassword"
	"github.com/nicjohnson145/hlp"
)

const (
	createNewOption = "(Create new)"
	noneOption      = "(None)"

	promptSelectVault   = "Select vault: "
	promptSelectItem    = "Select item, or create new: "
	promptSelectSection = "Select environment (e.g staging / production), or create new: "
	promptEnterName     = "Enter a name: "
)

func findVault(vaults []onepassword.Vault, name string) (onepassword.Vault, bool) {
	for _, v := range vaults {
		if v.Name == name || v.ID == name {
			return v, true
		}
	}
	return onepassword.Vault{}, false
}

func findItem(items []onepassword.Item, name string) (onepassword.Item, bool) {
	for _, i := range items {
		if i.Title == name || i.ID == name {
			return i, true
		}
	}
	return onepassword.Item{}, false
}

func labeledSections(item *onepassword.ItemDetails) []onepassword.Section {
	return hlp.Filter(item.Sections, func(s onepassword.Section, _ int) bool {
		return s.Label != ""
	})
}

func findSection(sections []onepassword.Section, label string) (onepassword.Section, bool) {
	for _, s := range sections {
		if s.Label == label {
			return s, true
		}
	}
	return onepassword.Section{}, false
}

func (s *Syncer) lookupVault(ctx context.Context, name string) (onepassword.Vault, error) {
	vaults, err := s.vault.ListVaults(ctx)
	if err != nil {
		return onepassword.Vault{}, fmt.Errorf("error listing vaults: %w", err)
	}

	vault, ok := findVault(vaults, name)
	if !ok {
		return onepassword.Vault{}, fmt.Errorf("%w: %v", ErrVaultNotFound, name)
	}
	return vault, nil
}

func (s *Syncer) selectVault(ctx context.Context, name string) (onepassword.Vault, error) {
	if name != "" {
		return s.lookupVault(ctx, name)
	}

	vaults, err := s.vault.ListVaults(ctx)
	if err != nil {
		return onepassword.Vault{}, fmt.Errorf("error listing vaults: %w", err)
	}
	if len(vaults) == 0 {
		return onepassword.Vault{}, ErrNoVaults
	}

	options := make([]string, 0, len(vaults))
	for _, v := range vaults {
		options = append(options, v.String())
	}

	idx, err := s.prompter.Select(promptSelectVault, options)
	if err != nil {
		return onepassword.Vault{}, err
	}

	return vaults[idx], nil
}

func (s *Syncer) lookupItem(ctx context.Context, vault onepassword.Vault, name string) (*onepassword.ItemDetails, error) {
	items, err := s.vault.ListItems(ctx, vault.Name)
	if err != nil {
		return nil, fmt.Errorf("error listing items: %w", err)
	}

	item, ok := findItem(items, name)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrItemNotFound, name)
	}

	return s.getItem(ctx, item.ID)
}

func (s *Syncer) getItem(ctx context.Context, id string) (*onepassword.ItemDetails, error) {
	details, err := s.vault.GetItem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting item: %w", err)
	}
	return details, nil
}

func (s *Syncer) createItem(ctx context.Context, vault onepassword.Vault, title string) (*onepassword.ItemDetails, error) {
	s.log.Info().Str("vault", vault.Name).Str("title", title).Msg("creating item")
	details, err := s.vault.CreateItem(ctx, vault.Name, title)
	if err != nil {
		return nil, fmt.Errorf("error creating item: %w", err)
	}
	return details, nil
}

// selectItem picks an existing item or creates a new one. A name that matches nothing in the
// vault becomes the title of a new item.
func (s *Syncer) selectItem(ctx context.Context, vault onepassword.Vault, name string) (*onepassword.ItemDetails, error) {
	items, err := s.vault.ListItems(ctx, vault.Name)
	if err != nil {
		return nil, fmt.Errorf("error listing items: %w", err)
	}

	if name != "" {
		if item, ok := findItem(items, name); ok {
			return s.getItem(ctx, item.ID)
		}
		return s.createItem(ctx, vault, name)
	}

	options := make([]string, 0, len(items)+1)
	for _, i := range items {
		options = append(options, i.String())
	}
	options = append(options, createNewOption)

	idx, err := s.prompter.Select(promptSelectItem, options)
	if err != nil {
		return nil, err
	}

	if idx < len(items) {
		return s.getItem(ctx, items[idx].ID)
	}

	title, err := s.prompter.Input(promptEnterName)
	if err != nil {
		return nil, err
	}
	return s.createItem(ctx, vault, title)
}

// selectSection returns nil when the fields outside of any section should be used. Sections
// that don't exist yet are created by the first edit that references them.
func (s *Syncer) selectSection(item *onepassword.ItemDetails, label string, none bool) (*onepassword.Section, error) {
	if none {
		return nil, nil
	}

	sections := labeledSections(item)

	if label != "" {
		if section, ok := findSection(sections, label); ok {
			return &section, nil
		}
		return &onepassword.Section{ID: label, Label: label}, nil
	}

	options := make([]string, 0, len(sections)+2)
	for _, section := range sections {
		options = append(options, section.String())
	}
	options = append(options, createNewOption, noneOption)

	idx, err := s.prompter.Select(promptSelectSection, options)
	if err != nil {
		return nil, err
	}

	switch {
	case idx < len(sections):
		return &sections[idx], nil
	case idx == len(sections):
		name, err := s.prompter.Input(promptEnterName)
		if err != nil {
			return nil, err
		}
		return &onepassword.Section{ID: name, Label: name}, nil
	default:
		return nil, nil
	}
}
