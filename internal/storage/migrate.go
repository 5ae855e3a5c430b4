package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sqlite-migrations/*.sql
var sqliteMigrations embed.FS

// MigrateSqlite brings the history schema of db up to date
func MigrateSqlite(db *sql.DB) error {
	driver, err := sqlite.WithInstance(db, &sqlite.Config{
		NoTxWrap: true,
	})
	if err != nil {
		return fmt.Errorf("error creating sqlite driver: %w", err)
	}

	source, err := iofs.New(sqliteMigrations, "sqlite-migrations")
	if err != nil {
		return fmt.Errorf("error creating migrations source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("error creating migrations instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error executing migrations: %w", err)
	}

	return nil
}
