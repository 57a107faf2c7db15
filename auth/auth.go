// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor for credential hashing.
// 12 rounds costs a few hundred milliseconds on commodity hardware.
const PasswordHashCost = 12

var (
	ErrNoToken      = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid session token")
)

// Identity is the authenticated caller, passed explicitly into handlers.
type Identity struct {
	AccountID string
	IsAdmin   bool
}

// NewID creates a random UUID for database records
func NewID() string {
	return uuid.NewString()
}

// HashPassword derives a one-way bcrypt hash from a plaintext secret
func HashPassword(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a stored hash against a candidate secret.
// Returns nil on match.
func CheckPassword(hash, secret string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
}

// IssueToken creates a signed HS256 session token for the identity
func IssueToken(secret []byte, ident Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": ident.AccountID,
		"adm": ident.IsAdmin,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken validates a session token and returns the identity it carries
func ParseToken(secret []byte, tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	accountID, ok := claims["sub"].(string)
	if !ok || accountID == "" {
		return Identity{}, ErrInvalidToken
	}

	isAdmin, _ := claims["adm"].(bool)

	return Identity{AccountID: accountID, IsAdmin: isAdmin}, nil
}

// IdentityFromRequest extracts and validates the caller's identity from the
// Authorization header. Returns ErrNoToken when no bearer token is present.
func IdentityFromRequest(r *http.Request, secret []byte) (Identity, error) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return Identity{}, ErrNoToken
	}
	return ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
}
