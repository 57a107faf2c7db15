// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: email, password, name, is_admin
  - LoginRequest: email, password
  - CreateCandidateRequest: name, description
  - CastVoteRequest: candidate_id

# Response Types

Types for JSON responses:

  - RegisterResponse: account
  - LoginResponse: token, account
  - MyVoteResponse: candidate_id (null when the caller has not voted)
  - ErrorResponse: error (kind), message

# Domain Types

Internal data structures:

  - Account: registered voter or administrator; PasswordHash is never
    serialized
  - Candidate: election candidate with its derived vote_count
  - Vote: one immutable vote per account

# Constants

Roles:

	RoleStudent = "student"
	RoleAdmin   = "admin"

Error kinds carried in ErrorResponse.Error:

	ErrKindEligibility   = "eligibility"
	ErrKindValidation    = "validation"
	ErrKindConflict      = "conflict"
	ErrKindAuthorization = "authorization"
	ErrKindInternal      = "internal"
*/
package models
