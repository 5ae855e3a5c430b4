package main

import (
	"github.com/nicjohnson145/envop/internal/config"
	"github.com/nicjohnson145/envop/internal/envsync"
	"github.com/nicjohnson145/envop/internal/prompt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func up() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Sync variables from .env file to 1Password vault",
		Long: `Push variables that are missing or different in 1Password, then append references to
them to the provision file of the chosen environment.`,
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			annotationDone: "",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := setup(cmd, flagBindings{
				config.EnvFile:      "env",
				config.ProvisionDir: "provision-dir",
				config.GitCheck:     "git-check",
			})
			if err != nil {
				return err
			}

			if err := prompt.RequireTerminal(); err != nil {
				return err
			}

			syncer, cleanup, err := newSyncer(cmd, logger)
			defer cleanup()
			if err != nil {
				logger.Err(err).Msg("error creating syncer")
				return err
			}

			vault, _ := cmd.Flags().GetString("vault")
			item, _ := cmd.Flags().GetString("item")
			section, _ := cmd.Flags().GetString("section")
			noSection, _ := cmd.Flags().GetBool("no-section")

			_, err = syncer.Up(cmd.Context(), envsync.UpOptions{
				EnvPath:   viper.GetString(config.EnvFile),
				Vault:     vault,
				Item:      item,
				Section:   section,
				NoSection: noSection,
			})
			if err != nil {
				logger.Debug().Err(err).Msg("error syncing up")
				return err
			}

			return nil
		},
	}

	cmd.Flags().String("env", config.DefaultEnvFile, "Path to .env file")
	cmd.Flags().String("provision-dir", config.DefaultProvisionDir, "Directory holding provision files")
	cmd.Flags().Bool("git-check", config.DefaultGitCheck, "Warn when the .env file is not ignored by git")
	cmd.Flags().String("vault", "", "Vault name or id, prompts when empty")
	cmd.Flags().String("item", "", "Item title or id, created when it doesn't exist, prompts when empty")
	cmd.Flags().String("section", "", "Section label to sync with, prompts when empty")
	cmd.Flags().Bool("no-section", false, "Sync with the fields outside of any section")
	cmd.MarkFlagsMutuallyExclusive("section", "no-section")

	return cmd
}
