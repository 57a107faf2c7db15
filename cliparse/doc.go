// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (via godotenv); real
environment variables take precedence over it, and CLI flags take precedence
over both.

# Config Fields

  - Port: Server listen port (default: 4000)
  - DatabaseURL: Connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - TokenSecret: Session token signing secret (required)
  - AdminEmails: Admin signup allow-list
  - StudentDomain: Required student email domain suffix
  - StudentPrefix: Fixed student ID prefix
  - StudentSerialMin/Max: Bounds for the trailing ID serial

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	-token-secret   Session token secret
	-admin-emails   Comma-separated admin allow-list
	-student-domain Student email domain suffix
	-student-prefix Student ID prefix
	-id-range       Serial range as "min-max" ("" disables the range rule)

# Environment Variables

Flags fall back to environment variables:

	PORT                 → -p
	DATABASE_URL         → -d
	DATABASE_TYPE        → -t
	TOKEN_SECRET         → -token-secret
	ADMIN_EMAILS         → -admin-emails
	STUDENT_EMAIL_DOMAIN → -student-domain
	STUDENT_ID_PREFIX    → -student-prefix
	STUDENT_ID_RANGE     → -id-range

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - TOKEN_SECRET must be provided
  - a non-empty id range must parse as "min-max" with 1 <= min <= max

The eligibility defaults (domain @cse.bubt.edu.bd, prefix 20255203, range
1-41) match the deployed institution; set STUDENT_ID_RANGE to the empty
string to disable the serial-range rule.
*/
package cliparse
