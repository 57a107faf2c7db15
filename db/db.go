// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Database type constants
const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
)

// Open opens a database connection for the configured driver.
// Callers should Ping to verify the connection.
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case TypePostgres:
		return sql.Open("postgres", url)
	case TypeSQLite:
		return sql.Open("sqlite", url)
	default:
		return nil, fmt.Errorf("unsupported database type: %q", dbType)
	}
}

// uniqueViolation is the postgres error code for a unique-constraint breach
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique-constraint violation
// from either supported driver. Handlers rely on this to turn the store's
// uniqueness guarantee into a conflict outcome instead of pre-checking.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}

	// modernc.org/sqlite surfaces constraint breaches as plain messages
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
