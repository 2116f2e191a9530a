// Package store keeps session state and the event log in a local SQLite
// database, using ent's SQL builder over the pure Go modernc driver.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// EnvDB overrides the default database location.
const EnvDB = "ADHDFLOW_DB"

// pragmas are applied once after opening. The pool is limited to one
// connection so they hold for every statement.
var pragmas = [][2]string{
	{"journal_mode", "WAL"},
	{"busy_timeout", "5000"},
	{"foreign_keys", "ON"},
	{"synchronous", "NORMAL"},
}

// Store owns the database handle and hands out repositories.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
	seq *sequence
}

// Open opens (creating if needed) the database at dsn and brings its
// schema up to date.
func Open(dsn string) (_ *Store, err error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	defer func() {
		if err != nil {
			_ = drv.Close()
		}
	}()

	for _, p := range pragmas {
		if _, err = db.Exec("PRAGMA " + p[0] + " = " + p[1]); err != nil {
			return nil, fmt.Errorf("pragma %s: %w", p[0], err)
		}
	}

	ctx := context.Background()
	if err = migrate(ctx, drv); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	seq, err := newSequence(ctx, db)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, drv: drv, seq: seq}, nil
}

// DB exposes the raw handle for ad-hoc queries.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.drv.Close() }

func (s *Store) StateRepo() StateRepo { return &stateRepo{drv: s.drv} }

func (s *Store) EventRepo() EventRepo { return &eventRepo{drv: s.drv, seq: s.seq} }

// DefaultDBPath returns $ADHDFLOW_DB, or adhdflow/adhdflow.db under
// $XDG_DATA_HOME (~/.local/share when unset). Its directory is created.
func DefaultDBPath() (string, error) {
	p := os.Getenv(EnvDB)
	if p == "" {
		base := os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolve home dir: %w", err)
			}
			base = filepath.Join(home, ".local", "share")
		}
		p = filepath.Join(base, "adhdflow", "adhdflow.db")
	}
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
