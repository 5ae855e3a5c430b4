package main

import (
	"fmt"

	"github.com/nicjohnson145/envop/internal/storage"
	"github.com/spf13/cobra"
)

func history() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent syncs made by envop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := setup(cmd, flagBindings{})
			if err != nil {
				return err
			}

			limit, _ := cmd.Flags().GetInt("limit")
			if limit <= 0 {
				return fmt.Errorf("limit must be positive")
			}

			store, cleanup, err := storage.NewFromEnv(logger)
			defer cleanup()
			if err != nil {
				logger.Err(err).Msg("error initializing history")
				return err
			}

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				logger.Err(err).Msg("error listing history")
				return err
			}

			renderHistory(cmd.OutOrStdout(), runs)
			return nil
		},
	}

	cmd.Flags().IntP("limit", "n", 20, "Maximum number of entries to show")

	return cmd
}
