package main

import (
	"github.com/nicjohnson145/envop/internal/config"
	"github.com/nicjohnson145/envop/internal/envsync"
	"github.com/nicjohnson145/envop/internal/prompt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func down() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Sync variables from 1Password vault to .env file",
		Long:  "Materialize the .env file from a provision file using `op inject`",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			annotationDone: "",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := setup(cmd, flagBindings{
				config.EnvFile:      "env",
				config.ProvisionDir: "provision-dir",
			})
			if err != nil {
				return err
			}

			provision, _ := cmd.Flags().GetString("provision")
			if provision == "" {
				if err := prompt.RequireTerminal(); err != nil {
					return err
				}
			}

			syncer, cleanup, err := newSyncer(cmd, logger)
			defer cleanup()
			if err != nil {
				logger.Err(err).Msg("error creating syncer")
				return err
			}

			_, err = syncer.Down(cmd.Context(), envsync.DownOptions{
				EnvPath:       viper.GetString(config.EnvFile),
				ProvisionPath: provision,
			})
			if err != nil {
				logger.Debug().Err(err).Msg("error syncing down")
				return err
			}

			return nil
		},
	}

	cmd.Flags().String("env", config.DefaultEnvFile, "Path to .env file")
	cmd.Flags().String("provision-dir", config.DefaultProvisionDir, "Directory searched for provision files")
	cmd.Flags().String("provision", "", "Provision file to inject, prompts when empty")

	return cmd
}
