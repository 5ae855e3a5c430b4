package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	hsqlx "github.com/nicjohnson145/hlp/sqlx"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

type SqlLiteConfig struct {
	Logger  zerolog.Logger
	DB      *sql.DB
	NowFunc func() time.Time
}

func NewSqlLite(conf SqlLiteConfig) *SqlLite {
	now := conf.NowFunc
	if now == nil {
		now = time.Now
	}

	return &SqlLite{
		log: conf.Logger,
		db:  sqlx.NewDb(conf.DB, "sqlite"),
		now: now,
	}
}

var _ Client = (*SqlLite)(nil)

type SqlLite struct {
	log zerolog.Logger
	db  *sqlx.DB
	now func() time.Time
}

func (s *SqlLite) WriteRun(ctx context.Context, run Run) error {
	if run.ID == "" {
		run.ID = ulid.Make().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.now()
	}

	return hsqlx.WithTransaction(s.db, func(txn *sqlx.Tx) error {
		stmt := `
			INSERT INTO
				sync_history
				(
					id,
					kind,
					vault,
					item,
					section,
					keys,
					target,
					created_at
				)
			VALUES
				(
					:id,
					:kind,
					:vault,
					:item,
					:section,
					:keys,
					:target,
					:created_at
				)
		`

		row, err := run.ToDBRow()
		if err != nil {
			return err
		}

		if _, err := txn.NamedExecContext(ctx, stmt, row); err != nil {
			return fmt.Errorf("error inserting: %w", err)
		}

		return nil
	})
}

func (s *SqlLite) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	stmt := `
		SELECT
			*
		FROM
			sync_history
		ORDER BY
			created_at DESC,
			id DESC
		LIMIT ?
	`

	rows := []DBRun{}
	if err := s.db.SelectContext(ctx, &rows, stmt, limit); err != nil {
		return nil, fmt.Errorf("error selecting: %w", err)
	}

	runs := make([]Run, 0, len(rows))
	for _, row := range rows {
		run, err := row.ToRun()
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, nil
}
