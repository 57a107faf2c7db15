// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package eligibility

import (
	"fmt"
	"strconv"
	"strings"
)

// Role is the signup role being requested.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Rules holds the deployment-specific eligibility configuration.
// All fields are injected from config; nothing here is process-global.
type Rules struct {
	// AdminEmails is the fixed allow-list of administrator addresses.
	// Matching is exact and case-sensitive.
	AdminEmails []string

	// StudentDomain is the required email domain suffix, including the
	// leading "@", e.g. "@cse.bubt.edu.bd".
	StudentDomain string

	// StudentPrefix is the fixed institutional student-ID prefix. A valid
	// local part is the prefix followed by exactly three digits.
	StudentPrefix string

	// SerialMin and SerialMax bound the trailing three-digit serial.
	// The range check is disabled when SerialMin is zero.
	SerialMin int
	SerialMax int
}

// Result is the outcome of an eligibility check.
type Result struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
}

// Validate decides whether email may register in the given role.
// It is a pure function: deterministic, no I/O, never errors.
func (r Rules) Validate(email string, role Role) Result {
	if role == RoleAdmin {
		for _, allowed := range r.AdminEmails {
			if email == allowed {
				return Result{Allowed: true, Reason: "valid admin email"}
			}
		}
		return Result{Allowed: false, Reason: "this email is not authorized for admin signup"}
	}

	if !strings.HasSuffix(email, r.StudentDomain) {
		return Result{
			Allowed: false,
			Reason:  fmt.Sprintf("student email must be from the %s domain", r.StudentDomain),
		}
	}

	studentID := email[:len(email)-len(r.StudentDomain)]
	idLen := len(r.StudentPrefix) + 3
	if len(studentID) != idLen {
		return Result{
			Allowed: false,
			Reason:  fmt.Sprintf("student ID must be %d digits", idLen),
		}
	}

	if !strings.HasPrefix(studentID, r.StudentPrefix) || !allDigits(studentID[len(r.StudentPrefix):]) {
		return Result{Allowed: false, Reason: "invalid student ID format"}
	}

	if r.SerialMin > 0 {
		serial, err := strconv.Atoi(studentID[len(studentID)-3:])
		if err != nil || serial < r.SerialMin || serial > r.SerialMax {
			return Result{
				Allowed: false,
				Reason: fmt.Sprintf("student ID must be between %s%03d and %s%03d",
					r.StudentPrefix, r.SerialMin, r.StudentPrefix, r.SerialMax),
			}
		}
	}

	return Result{Allowed: true, Reason: "valid student email"}
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
