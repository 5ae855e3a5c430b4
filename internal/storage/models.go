package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nicjohnson145/hlp"
)

type RunKind string

const (
	RunKindPush      RunKind = "push"
	RunKindProvision RunKind = "provision"
	RunKindInject    RunKind = "inject"
)

// Run is one change envop made, secret values are never recorded
type Run struct {
	ID        string
	Kind      RunKind
	Vault     *string
	Item      *string
	Section   *string
	Keys      []string
	Target    *string
	CreatedAt time.Time
}

func (r *Run) ToDBRow() (DBRun, error) {
	keys := r.Keys
	if keys == nil {
		keys = []string{}
	}
	encoded, err := json.Marshal(keys)
	if err != nil {
		return DBRun{}, fmt.Errorf("error encoding keys: %w", err)
	}

	row := DBRun{
		ID:        r.ID,
		Kind:      string(r.Kind),
		Keys:      string(encoded),
		CreatedAt: r.CreatedAt.UnixMilli(),
	}

	if r.Vault != nil {
		row.Vault = sql.Null[string]{V: *r.Vault, Valid: true}
	}
	if r.Item != nil {
		row.Item = sql.Null[string]{V: *r.Item, Valid: true}
	}
	if r.Section != nil {
		row.Section = sql.Null[string]{V: *r.Section, Valid: true}
	}
	if r.Target != nil {
		row.Target = sql.Null[string]{V: *r.Target, Valid: true}
	}

	return row, nil
}

type DBRun struct {
	ID        string           `db:"id"`
	Kind      string           `db:"kind"`
	Vault     sql.Null[string] `db:"vault"`
	Item      sql.Null[string] `db:"item"`
	Section   sql.Null[string] `db:"section"`
	Keys      string           `db:"keys"`
	Target    sql.Null[string] `db:"target"`
	CreatedAt int64            `db:"created_at"`
}

func (d *DBRun) ToRun() (Run, error) {
	run := Run{
		ID:        d.ID,
		Kind:      RunKind(d.Kind),
		Keys:      []string{},
		CreatedAt: time.UnixMilli(d.CreatedAt).UTC(),
	}

	if d.Keys != "" {
		if err := json.Unmarshal([]byte(d.Keys), &run.Keys); err != nil {
			return Run{}, fmt.Errorf("error decoding keys of run %v: %w", d.ID, err)
		}
	}
	if d.Vault.Valid {
		run.Vault = hlp.Ptr(d.Vault.V)
	}
	if d.Item.Valid {
		run.Item = hlp.Ptr(d.Item.V)
	}
	if d.Section.Valid {
		run.Section = hlp.Ptr(d.Section.V)
	}
	if d.Target.Valid {
		run.Target = hlp.Ptr(d.Target.V)
	}

	return run, nil
}
