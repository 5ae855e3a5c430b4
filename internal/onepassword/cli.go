package onepassword

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/nicjohnson145/envop/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var (
	ErrCLINotFound  = errors.New("could not run the 1Password CLI, please make sure it is installed")
	ErrSignInFailed = errors.New("could not log in to 1Password, please try again")
)

type CLIConfig struct {
	Logger zerolog.Logger
	Binary string
}

func NewCLI(conf CLIConfig) *CLI {
	bin := conf.Binary
	if bin == "" {
		bin = config.DefaultOPBinary
	}

	return &CLI{
		log: conf.Logger,
		bin: bin,
	}
}

func NewFromEnv(logger zerolog.Logger) *CLI {
	return NewCLI(CLIConfig{
		Logger: logger,
		Binary: viper.GetString(config.OPBinary),
	})
}

// CLI drives the `op` binary, every call is a separate process
type CLI struct {
	log zerolog.Logger
	bin string
}

func (c *CLI) run(ctx context.Context, args ...string) (string, error) {
	c.log.Debug().Strs("args", redactAssignments(args)).Msg("executing op")

	stdout, stderr, err := ExecuteOSCommand(ctx, c.bin, args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrCLINotFound
		}
		msg := strings.TrimSpace(stderr)
		if msg == "" {
			return "", fmt.Errorf("error executing op %v: %w", args[0], err)
		}
		return "", fmt.Errorf("error executing op %v: %v: %w", args[0], msg, err)
	}

	return stdout, nil
}

func runJSON[T any](ctx context.Context, c *CLI, args ...string) (T, error) {
	var out T

	stdout, err := c.run(ctx, args...)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		return out, fmt.Errorf("error decoding op output: %w", err)
	}

	return out, nil
}

func (c *CLI) WhoAmI(ctx context.Context) (bool, error) {
	_, _, err := ExecuteOSCommand(ctx, c.bin, "whoami")
	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		c.log.Debug().Int("exit_code", exitErr.ExitCode()).Msg("whoami reported no active session")
		return false, nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		return false, ErrCLINotFound
	}

	return false, fmt.Errorf("error executing op whoami: %w", err)
}

func (c *CLI) SignIn(ctx context.Context) error {
	err := ExecuteInteractiveOSCommand(ctx, c.bin, "signin")
	if err == nil {
		return nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		return ErrCLINotFound
	}

	c.log.Debug().Err(err).Msg("signin failed")
	return ErrSignInFailed
}

func (c *CLI) ListVaults(ctx context.Context) ([]Vault, error) {
	return runJSON[[]Vault](ctx, c, "vault", "list", "--format=json")
}

func (c *CLI) ListItems(ctx context.Context, vault string) ([]Item, error) {
	return runJSON[[]Item](ctx, c, "item", "list", "--vault="+vault, "--format=json")
}

func (c *CLI) GetItem(ctx context.Context, id string) (*ItemDetails, error) {
	return runJSON[*ItemDetails](ctx, c, "item", "get", id, "--format=json")
}

func (c *CLI) CreateItem(ctx context.Context, vault string, title string) (*ItemDetails, error) {
	return runJSON[*ItemDetails](
		ctx,
		c,
		"item",
		"create",
		"--title="+title,
		"--vault="+vault,
		"--category="+CategorySecureNote,
		"--format=json",
	)
}

func (c *CLI) EditItem(ctx context.Context, id string, assignments []string) (*ItemDetails, error) {
	args := append([]string{"item", "edit", id, "--format=json"}, assignments...)
	return runJSON[*ItemDetails](ctx, c, args...)
}

func (c *CLI) Inject(ctx context.Context, provisionPath string, envPath string) error {
	_, err := c.run(ctx, "inject", "--in-file="+provisionPath, "--out-file="+envPath, "--force")
	return err
}

// keeps secret values out of debug logs
func redactAssignments(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		if key, _, found := strings.Cut(arg, "[text]="); found {
			out[i] = key + "[text]=<redacted>"
			continue
		}
		out[i] = arg
	}
	return out
}
