// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/istiakahmeed/cr-voting/cliparse"
	"github.com/istiakahmeed/cr-voting/handlers"
	"github.com/istiakahmeed/cr-voting/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(db, cfg)
	candidateHandler := handlers.NewCandidateHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts and sessions
	mux.HandleFunc("POST /accounts", middleware.WithLogging(accountHandler.Register))
	mux.HandleFunc("POST /sessions", middleware.WithLogging(accountHandler.Login))
	mux.HandleFunc("GET /accounts/me", middleware.WithLogging(accountHandler.GetMe))

	// Candidate roster (list is public, create is admin-only)
	mux.HandleFunc("GET /candidates", middleware.WithLogging(candidateHandler.List))
	mux.HandleFunc("POST /candidates", middleware.WithLogging(candidateHandler.Create))

	// Voting operations
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.Cast))
	mux.HandleFunc("GET /votes/me", middleware.WithLogging(voteHandler.GetMine))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("cr-voting API v1"))
	})

	return mux
}
