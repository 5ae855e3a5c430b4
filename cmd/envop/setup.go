package main

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/nicjohnson145/envop/internal/config"
	"github.com/nicjohnson145/envop/internal/envsync"
	"github.com/nicjohnson145/envop/internal/gitcheck"
	"github.com/nicjohnson145/envop/internal/logging"
	"github.com/nicjohnson145/envop/internal/onepassword"
	"github.com/nicjohnson145/envop/internal/prompt"
	"github.com/nicjohnson145/envop/internal/storage"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagBindings maps config keys to the flag that overrides them
type flagBindings map[string]string

// setup loads config, binds the command's flags over it and builds the logger
func setup(cmd *cobra.Command, bindings flagBindings) (zerolog.Logger, error) {
	if err := config.InitConfig(); err != nil {
		return zerolog.Nop(), fmt.Errorf("error initializing config: %w", err)
	}

	bindings[config.LoggingLevel] = "log-level"
	bindings[config.LoggingFormat] = "log-format"
	for key, flag := range bindings {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return zerolog.Nop(), fmt.Errorf("error binding flag %v: %w", flag, err)
		}
	}

	logger := logging.Init(&logging.LoggingConfig{
		Level:  logging.LogLevel(viper.GetString(config.LoggingLevel)),
		Format: logging.LogFormat(viper.GetString(config.LoggingFormat)),
	})

	return logger, nil
}

func newSyncer(cmd *cobra.Command, logger zerolog.Logger) (*envsync.Syncer, func(), error) {
	history, cleanup, err := storage.NewFromEnv(logger)
	if err != nil {
		return nil, cleanup, fmt.Errorf("error initializing history: %w", err)
	}

	prompter := prompt.NewSurvey(prompt.SurveyConfig{
		Logger: logger,
		// prompts draw on stderr, stdout carries command output
		Opts: []survey.AskOpt{survey.WithStdio(os.Stdin, os.Stderr, os.Stderr)},
	})

	conf := envsync.SyncerConfig{
		Logger:       logger,
		Vault:        onepassword.NewFromEnv(logger),
		Prompter:     prompter,
		History:      history,
		Out:          cmd.OutOrStdout(),
		ProvisionDir: viper.GetString(config.ProvisionDir),
	}
	if viper.GetBool(config.GitCheck) {
		conf.IgnoreChecker = gitcheck.NewChecker(gitcheck.CheckerConfig{Logger: logger})
	}

	return envsync.NewSyncer(conf), cleanup, nil
}
