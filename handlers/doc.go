// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the CR voting API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - AccountHandler: registration, login, current-account lookup
  - CandidateHandler: candidate listing with tallies, admin-only creation
  - VoteHandler: one-vote-per-account casting and vote lookup

Handlers are created via constructor functions that accept *sql.DB and Config:

	accountHandler := handlers.NewAccountHandler(conn, cfg)

# Signup Flow

	POST /accounts → Register (eligibility check, bcrypt hash, atomic insert)
	POST /sessions → Login (returns a bearer token)
	GET  /accounts/me → GetMe

Registration is gated by the eligibility package: students must carry a
well-formed institutional email, admins must be on the configured
allow-list. A duplicate email surfaces as 409 from the store's unique
constraint, never from a pre-check.

# Voting Flow

	GET  /candidates → List (public; candidates with live vote counts)
	POST /candidates → Create (admin session required)
	POST /votes      → Cast (one per account, enforced by the store)
	GET  /votes/me   → GetMine (caller's vote or null)

Authenticated operations read the caller's identity from the Authorization
bearer token; handlers receive it as an explicit auth.Identity value.

# Error Contract

Failures are JSON ErrorResponse bodies whose "error" field is one of the
models.ErrKind* kinds: eligibility (422), validation (400), conflict (409),
authorization (401/403), internal (500).
*/
package handlers
