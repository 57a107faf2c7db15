// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the CR Voting API server.

CR Voting runs a class representative election: eligible students
register with their university email, browse the candidate roster,
and cast exactly one vote each. Admins on an allow-list manage the
roster.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... TOKEN_SECRET=... go run main.go

Or with flags:

	go run main.go -p 4000 -d "file:cr.db" -t sqlite -token-secret secret

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string
  - TOKEN_SECRET (-token-secret): HMAC secret for session tokens

Optional settings:

  - PORT (-p): Server port (default: 4000)
  - DATABASE_TYPE (-t): postgres or sqlite (default: sqlite)
  - ADMIN_EMAILS (-admin-emails): comma-separated admin allow-list
  - STUDENT_EMAIL_DOMAIN (-student-domain): eligible email domain
  - STUDENT_ID_PREFIX (-student-prefix): required student ID prefix
  - STUDENT_ID_RANGE (-id-range): allowed serial range, e.g. 1-41

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (accounts, candidates, votes)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Password hashing and session tokens
  - eligibility: Email eligibility rules
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
