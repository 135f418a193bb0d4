// Package migrations manages the local SQLite schema migrations for the
// vault. It uses the goose migration library with embedded SQL files,
// ensuring that all migration files are compiled into the binary
// and applied automatically at startup without requiring external file access.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// embedMigrations holds all *.sql migration files embedded into the binary
// at compile time via the go:embed directive.
// This ensures migrations are always available regardless of the working directory
// or deployment environment.
//
//go:embed sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending schema migrations to the local SQLite
// database using the goose library.
//
// This function is intended to be called once at application startup,
// before the database is used by any other component.
//
// Parameters:
//
//	db - an open *sql.DB connection to the target SQLite database
//
// Returns:
//
//	error - non-nil if setting the dialect or applying migrations fails
//
// Example usage:
//
//	if err := migrations.Migrate(db); err != nil {
//	    log.Fatalf("failed to run migrations: %v", err)
//	}
func Migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "sqlite"); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
