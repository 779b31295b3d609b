package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// InitDB opens the database for the given dialect and ensures tables exist.
func InitDB(dialect Dialect, dsn string) (*sql.DB, error) {
	if !dialect.Valid() {
		return nil, fmt.Errorf("unsupported db driver %q", dialect)
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}

	if dialect == SQLite {
		if err := configureSQLite(db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	if err := ensureSchema(db, dialect); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}

	return db, nil
}

func configureSQLite(db *sql.DB) error {
	// SQLite is not great with many writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("set %s: %w", pragma, err)
		}
	}
	return nil
}

func ensureSchema(db *sql.DB, dialect Dialect) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range schemaFor(dialect) {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
