// Package store owns the customers/orders schema: opening the database,
// defining the tables and views, and loading the sample dataset.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open opens (or creates) the SQLite database at path. Foreign-key
// enforcement rides in the DSN so every pooled connection runs with the
// pragma enabled, not just the one that happened to execute it.
func Open(path string) (*gorm.DB, error) {
	dsn := path
	switch {
	case !strings.Contains(dsn, "?"):
		dsn += "?_foreign_keys=on"
	case !strings.Contains(dsn, "_foreign_keys"):
		dsn += "&_foreign_keys=on"
	}

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	return gdb, nil
}

// IsForeignKeyViolation reports whether err is a referential-integrity
// rejection from the driver.
func IsForeignKeyViolation(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}
