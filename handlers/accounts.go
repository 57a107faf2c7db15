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
	"github.com/istiakahmeed/cr-voting/eligibility"
	"github.com/istiakahmeed/cr-voting/middleware"
	"github.com/istiakahmeed/cr-voting/models"
)

// sessionTTL bounds how long an issued session token stays valid
const sessionTTL = 24 * time.Hour

// minPasswordLen is the minimum accepted password length
const minPasswordLen = 6

type AccountHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	rules eligibility.Rules
}

func NewAccountHandler(conn *sql.DB, cfg cliparse.Config) *AccountHandler {
	return &AccountHandler{
		db:  conn,
		cfg: cfg,
		rules: eligibility.Rules{
			AdminEmails:   cfg.AdminEmails,
			StudentDomain: cfg.StudentDomain,
			StudentPrefix: cfg.StudentPrefix,
			SerialMin:     cfg.StudentSerialMin,
			SerialMax:     cfg.StudentSerialMax,
		},
	}
}

// Register handles POST /accounts
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKindValidation, "Invalid JSON")
		return
	}

	// Validate input shape
	if req.Email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKindValidation, "email is required")
		return
	}
	if len(req.Password) < minPasswordLen {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKindValidation, "password must be at least 6 characters")
		return
	}

	// Role-specific eligibility check
	role := eligibility.RoleStudent
	if req.IsAdmin {
		role = eligibility.RoleAdmin
	}
	if res := h.rules.Validate(req.Email, role); !res.Allowed {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, models.ErrKindEligibility, res.Reason)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKindInternal, "Failed to register account")
		return
	}

	account := models.Account{
		ID:           auth.NewID(),
		Email:        req.Email,
		PasswordHash: hash,
		IsAdmin:      req.IsAdmin,
		CreatedAt:    time.Now(),
	}
	if req.Name != "" {
		account.DisplayName = &req.Name
	}

	// Single atomic insert; the UNIQUE constraint on email decides
	// duplicates, not a pre-check
	_, err = h.db.Exec(`
		INSERT INTO account (id, email, password_hash, display_name, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, account.ID, account.Email, account.PasswordHash, account.DisplayName, account.IsAdmin, account.CreatedAt)

	if err != nil {
		if db.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, models.ErrKindConflict, "account already exists")
			return
		}
		slog.Error("failed to insert account", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKindInternal, "Failed to register account")
		return
	}

	slog.Info("account registered", "account_id", account.ID, "is_admin", account.IsAdmin)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{Account: account})
}

// Login handles POST /sessions
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKindValidation, "Invalid JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrKindValidation, "email and password are required")
		return
	}

	account, err := h.findAccount("email = $1", req.Email)
	if err == sql.ErrNoRows {
		// Same reason for unknown email and wrong password
		middleware.ErrorResponse(w, http.StatusUnauthorized, models.ErrKindAuthorization, "invalid email or password")
		return
	}
	if err != nil {
		slog.Error("failed to query account", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKindInternal, "Database error")
		return
	}

	if err := auth.CheckPassword(account.PasswordHash, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, models.ErrKindAuthorization, "invalid email or password")
		return
	}

	ident := auth.Identity{AccountID: account.ID, IsAdmin: account.IsAdmin}
	token, err := auth.IssueToken([]byte(h.cfg.TokenSecret), ident, sessionTTL)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKindInternal, "Failed to create session")
		return
	}

	slog.Info("session created", "account_id", account.ID)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{Token: token, Account: account})
}

// GetMe handles GET /accounts/me
func (h *AccountHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	ident, err := auth.IdentityFromRequest(r, []byte(h.cfg.TokenSecret))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, models.ErrKindAuthorization, err.Error())
		return
	}

	account, err := h.findAccount("id = $1", ident.AccountID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusUnauthorized, models.ErrKindAuthorization, "unknown account")
		return
	}
	if err != nil {
		slog.Error("failed to query account", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrKindInternal, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, account)
}

// findAccount loads one account by a single-column predicate
func (h *AccountHandler) findAccount(where string, arg interface{}) (models.Account, error) {
	var account models.Account
	err := h.db.QueryRow(`
		SELECT id, email, password_hash, display_name, is_admin, created_at
		FROM account
		WHERE `+where, arg).Scan(
		&account.ID, &account.Email, &account.PasswordHash,
		&account.DisplayName, &account.IsAdmin, &account.CreatedAt,
	)
	return account, err
}
