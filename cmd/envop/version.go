package main

import (
	"fmt"

	"github.com/nicjohnson145/envop/internal/release"
	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the envop version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)

			check, _ := cmd.Flags().GetBool("check")
			if !check {
				return nil
			}

			logger, err := setup(cmd, flagBindings{})
			if err != nil {
				return err
			}

			status, err := release.NewCheckerFromEnv(logger).Check(cmd.Context(), version)
			if err != nil {
				logger.Err(err).Msg("error checking for updates")
				return err
			}

			if status.Outdated {
				fmt.Fprintf(cmd.OutOrStdout(), "A newer version is available: %v\n", status.Latest)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "You are running the latest version")
			}

			return nil
		},
	}

	cmd.Flags().Bool("check", false, "Check GitHub for a newer release")

	return cmd
}
