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
	"github.com/istiakahmeed/cr-voting/middleware"
	"github.com/istiakahmeed/cr-voting/models"
)

type CandidateHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewCandidateHandler(conn *sql.DB, cfg cliparse.Config) *CandidateHandler {
	return &CandidateHandler{db: conn, cfg: cfg}
}

// List handles GET /candidates
// Public and read-only: every candidate with its current vote tally, in
// insertion order.
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT c.id, c.name, c.description, c.created_at, COUNT(v.account_id)
		FROM candidate c
		LEFT JOIN vote v ON v.candidate_id = c.id
		GROUP BY c.id, c.name, c.description, c.created_at
		ORDER BY c.created_at, c.id
	`)
	if err != nil {
		slog.Error("failed to query candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKindInternal, "Database error")
		return
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.VoteCount); err != nil {
			slog.Error("failed to scan candidate", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKindInternal, "Database error")
			return
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKindInternal, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// Create handles POST /candidates
// Admin only: requires a valid session whose stored account is an admin.
func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident, err := auth.IdentityFromRequest(r, []byte(h.cfg.TokenSecret))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, models.ErrKindAuthorization, err.Error())
		return
	}

	// The stored admin flag is authoritative, not the token claim
	var isAdmin bool
	err = h.db.QueryRow(`SELECT is_admin FROM account WHERE id = $1`, ident.AccountID).Scan(&isAdmin)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusUnauthorized, models.ErrKindAuthorization, "unknown account")
		return
	}
	if err != nil {
		slog.Error("failed to query account", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKindInternal, "Database error")
		return
	}
	if !isAdmin {
		middleware.ErrorResponse(w, http.StatusForbidden, models.ErrKindAuthorization, "only admins can create candidates")
		return
	}

	var req models.CreateCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKindValidation, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKindValidation, "name is required")
		return
	}
	if req.Description == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKindValidation, "description is required")
		return
	}

	candidate := models.Candidate{
		ID:          auth.NewID(),
		Name:        req.Name,
		Description: req.Description,
		VoteCount:   0,
		CreatedAt:   time.Now(),
	}

	_, err = h.db.Exec(`
		INSERT INTO candidate (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)
	`, candidate.ID, candidate.Name, candidate.Description, candidate.CreatedAt)

	if err != nil {
		slog.Error("failed to insert candidate", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKindInternal, "Failed to create candidate")
		return
	}

	slog.Info("candidate created", "candidate_id", candidate.ID, "created_by", ident.AccountID)

	middleware.JSONResponse(w, http.StatusCreated, candidate)
}
