// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/istiakahmeed/cr-voting/auth"
	"github.com/istiakahmeed/cr-voting/cliparse"
	"github.com/istiakahmeed/cr-voting/db"
	"github.com/istiakahmeed/cr-voting/middleware"
	"github.com/istiakahmeed/cr-voting/models"
)

type VoteHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVoteHandler(conn *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{db: conn, cfg: cfg}
}

// Cast handles POST /votes
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	ident, err := auth.IdentityFromRequest(r, []byte(h.cfg.TokenSecret))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, models.ErrKindAuthorization, err.Error())
		return
	}

	// The token must map to a real account
	var exists bool
	err = h.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM account WHERE id = $1)`, ident.AccountID).Scan(&exists)
	if err != nil {
		slog.Error("failed to verify account", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKindInternal, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusUnauthorized, models.ErrKindAuthorization, "unknown account")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKindValidation, "Invalid JSON")
		return
	}

	if req.CandidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKindValidation, "candidate_id is required")
		return
	}

	// The vote must reference an existing candidate
	err = h.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM candidate WHERE id = $1)`, req.CandidateID).Scan(&exists)
	if err != nil {
		slog.Error("failed to verify candidate", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKindInternal, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKindValidation, "unknown candidate")
		return
	}

	vote := models.Vote{
		AccountID:   ident.AccountID,
		CandidateID: req.CandidateID,
		CastAt:      time.Now(),
	}

	// Single atomic insert; the primary key on account_id lets at most one
	// concurrent cast per account commit, and the losers surface as a
	// unique violation.
	_, err = h.db.Exec(`
		INSERT INTO vote (account_id, candidate_id, cast_at)
		VALUES ($1, $2, $3)
	`, vote.AccountID, vote.CandidateID, vote.CastAt)

	if err != nil {
		if db.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, models.ErrKindConflict, "already voted")
			return
		}
		slog.Error("failed to insert vote", "error", err, "account_id", ident.AccountID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKindInternal, "Failed to cast vote")
		return
	}

	slog.Info("vote cast", "account_id", vote.AccountID, "candidate_id", vote.CandidateID)

	middleware.JSONResponse(w, http.StatusCreated, vote)
}

// GetMine handles GET /votes/me
// Side-effect-free: reports the caller's vote, or null when none exists.
func (h *VoteHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	ident, err := auth.IdentityFromRequest(r, []byte(h.cfg.TokenSecret))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, models.ErrKindAuthorization, err.Error())
		return
	}

	var candidateID string
	err = h.db.QueryRow(`SELECT candidate_id FROM vote WHERE account_id = $1`, ident.AccountID).Scan(&candidateID)
	if err == sql.ErrNoRows {
		middleware.JSONResponse(w, http.StatusOK, models.MyVoteResponse{CandidateID: nil})
		return
	}
	if err != nil {
		slog.Error("failed to query vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKindInternal, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MyVoteResponse{CandidateID: &candidateID})
}
