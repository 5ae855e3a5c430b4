package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nicjohnson145/envop/internal/config"
	"github.com/nicjohnson145/envop/internal/util"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	_ "modernc.org/sqlite" // import sqlite driver
)

type Client interface {
	WriteRun(ctx context.Context, run Run) error
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}

func NewFromEnv(logger zerolog.Logger) (Client, func(), error) {
	cleanup := func() {}

	kind, err := config.ParseHistoryKind(viper.GetString(config.HistoryType))
	if err != nil {
		return nil, cleanup, err
	}

	switch kind {
	case config.HistoryKindNone:
		return NewNoop(NoopConfig{Logger: logger}), cleanup, nil
	case config.HistoryKindSqlite:
		return openSqlite(logger, viper.GetString(config.HistoryDBPath))
	default:
		return nil, cleanup, fmt.Errorf("unhandled type of '%v'", kind)
	}
}

func openSqlite(logger zerolog.Logger, dsn string) (Client, func(), error) {
	cleanup := func() {}

	if err := util.EnsureParentDir(dsn); err != nil {
		return nil, cleanup, fmt.Errorf("error ensuring history directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, cleanup, fmt.Errorf("error opening DB: %w", err)
	}

	cleanup = func() {
		db.Close()
	}

	logger.Debug().Str("path", dsn).Msg("executing migrations")
	if err := MigrateSqlite(db); err != nil {
		return nil, cleanup, fmt.Errorf("error executing migrations: %w", err)
	}

	return NewSqlLite(SqlLiteConfig{
		Logger: logger,
		DB:     db,
	}), cleanup, nil
}
