// Package migrate applies the SQL migrations at startup.
package migrate

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Run applies every pending migration from dir against db.
func Run(db *sql.DB, dir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrate: set dialect: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migrate: apply migrations: %w", err)
	}

	return nil
}
