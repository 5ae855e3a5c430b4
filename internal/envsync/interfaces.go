package envsync

import (
	"context"

	"github.com/nicjohnson145/envop/internal/gitcheck"
	"github.com/nicjohnson145/envop/internal/onepassword"
	"github.com/nicjohnson145/envop/internal/prompt"
	"github.com/nicjohnson145/envop/internal/storage"
)

type VaultClient interface {
	WhoAmI(ctx context.Context) (bool, error)
	SignIn(ctx context.Context) error
	ListVaults(ctx context.Context) ([]onepassword.Vault, error)
	ListItems(ctx context.Context, vault string) ([]onepassword.Item, error)
	GetItem(ctx context.Context, id string) (*onepassword.ItemDetails, error)
	CreateItem(ctx context.Context, vault string, title string) (*onepassword.ItemDetails, error)
	EditItem(ctx context.Context, id string, assignments []string) (*onepassword.ItemDetails, error)
	Inject(ctx context.Context, provisionPath string, envPath string) error
}

type Prompter interface {
	Select(message string, options []string) (int, error)
	MultiSelect(message string, options []string) ([]int, error)
	Input(message string) (string, error)
	Confirm(message string, def bool) (bool, error)
}

type HistoryStore interface {
	WriteRun(ctx context.Context, run storage.Run) error
}

type IgnoreChecker interface {
	IsIgnored(path string) (bool, bool, error)
}

var (
	_ VaultClient   = (*onepassword.CLI)(nil)
	_ Prompter      = (*prompt.Survey)(nil)
	_ HistoryStore  = (storage.Client)(nil)
	_ IgnoreChecker = (*gitcheck.Checker)(nil)
)
