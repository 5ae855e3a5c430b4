package main

import (
	"fmt"

	"github.com/nicjohnson145/envop/internal/config"
	"github.com/nicjohnson145/envop/internal/envsync"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func diff() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show which variables differ between the .env file and 1Password",
		Long:  "Compare keys without prompting or changing anything. Secret values are never printed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := setup(cmd, flagBindings{
				config.EnvFile: "env",
			})
			if err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString("output")
			if output != OutputHuman && output != OutputYAML {
				return fmt.Errorf("output must be one of %v, %v", OutputHuman, OutputYAML)
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

			report, err := syncer.Diff(cmd.Context(), envsync.DiffOptions{
				EnvPath: viper.GetString(config.EnvFile),
				Vault:   vault,
				Item:    item,
				Section: section,
			})
			if err != nil {
				logger.Debug().Err(err).Msg("error diffing")
				return err
			}

			return renderDiff(cmd.OutOrStdout(), report, output)
		},
	}

	cmd.Flags().String("env", config.DefaultEnvFile, "Path to .env file")
	cmd.Flags().String("vault", "", "Vault name or id")
	cmd.Flags().String("item", "", "Item title or id")
	cmd.Flags().String("section", "", "Section label, fields outside of any section when empty")
	cmd.Flags().StringP("output", "o", OutputHuman, "Output format (human, yaml)")
	_ = cmd.MarkFlagRequired("vault")
	_ = cmd.MarkFlagRequired("item")

	return cmd
}
