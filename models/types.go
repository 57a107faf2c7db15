// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Account role constants
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Error kind constants, carried in ErrorResponse.Error
const (
	ErrKindEligibility   = "eligibility"
	ErrKindValidation    = "validation"
	ErrKindConflict      = "conflict"
	ErrKindAuthorization = "authorization"
	ErrKindInternal      = "internal"
)

// Request types

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"is_admin"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateCandidateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CastVoteRequest struct {
	CandidateID string `json:"candidate_id"`
}

// Response types

type RegisterResponse struct {
	Account Account `json:"account"`
}

type LoginResponse struct {
	Token   string  `json:"token"`
	Account Account `json:"account"`
}

type MyVoteResponse struct {
	CandidateID *string `json:"candidate_id"`
}

// Domain types

type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	DisplayName  *string   `json:"name,omitempty"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

type Candidate struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	VoteCount   int       `json:"vote_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type Vote struct {
	AccountID   string    `json:"account_id"`
	CandidateID string    `json:"candidate_id"`
	CastAt      time.Time `json:"cast_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
