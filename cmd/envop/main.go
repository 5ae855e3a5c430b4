package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// annotationDone marks commands that finish with a "Done!" line
const annotationDone = "envop/done"

func main() {
	if err := root().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envop",
		Short: "Sync environment variables using 1Password",
		Long: `Sync environment variables using 1Password. Requires the 1Password CLI to be installed:
https://1password.com/downloads/command-line/

envop never deletes anything from 1Password, it only adds and updates values. Deletion has to
be done manually. Syncing is done using provision files which point to secrets in a 1Password
vault. Different environments such as "staging" and "production" are best handled using
sections in 1Password.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// So we don't print usage messages on execution errors
			cmd.SilenceUsage = true
			// So we dont double report errors
			cmd.SilenceErrors = true
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if _, ok := cmd.Annotations[annotationDone]; ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Done!")
			}
		},
	}

	cmd.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "", "Log format (human, json)")

	cmd.AddCommand(
		up(),
		down(),
		diff(),
		history(),
		versionCmd(),
	)

	return cmd
}
