// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Drivers

Open selects the driver from config:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types are "postgres" (lib/pq) and "sqlite" (modernc.org/sqlite,
cgo-free). sqlite is the development and test default; postgres is the
production target.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL avoids driver-specific constructs so one schema serves both drivers.

# Tables

  - account: registered voters and admins; email is UNIQUE
  - candidate: election candidates
  - vote: at most one row per account (account_id is the PRIMARY KEY)

# Relationships

	account   1──0..1 vote
	candidate 1──*    vote

# Uniqueness Constraints

Two invariants live in the schema, not in application checks:

  - account.email UNIQUE: duplicate registration
  - vote.account_id PRIMARY KEY: duplicate vote

IsUniqueViolation detects a breach from either driver so handlers can map
it to a conflict response:

	if db.IsUniqueViolation(err) { ... }
*/
package db
