// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the CR Voting API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Accounts and sessions:

	POST /accounts    - Register an eligible account
	POST /sessions    - Log in, returns a bearer token
	GET  /accounts/me - Current account (requires Authorization)

Candidates:

	GET  /candidates - Public roster with vote tallies
	POST /candidates - Create candidate (admin only)

Voting (requires Authorization):

	POST /votes    - Cast the account's single vote
	GET  /votes/me - The account's own vote, if any

# Handler Initialization

The router creates handler instances with dependency injection:

	accountHandler := handlers.NewAccountHandler(db, cfg)
	candidateHandler := handlers.NewCandidateHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
