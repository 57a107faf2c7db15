// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/istiakahmeed/cr-voting/auth"
	"github.com/istiakahmeed/cr-voting/cliparse"
	"github.com/istiakahmeed/cr-voting/db"
)

// SetupTestDB creates a fresh sqlite database with the full schema.
// Each test gets its own file under t.TempDir, so tests are hermetic and
// can run in parallel. WAL + busy_timeout keep concurrent writers honest.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "cr_voting_test.db") +
		"?_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"

	conn, err := db.Open(db.TypeSQLite, dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             4000,
		DatabaseType:     db.TypeSQLite,
		TokenSecret:      "test-token-secret",
		AdminEmails:      []string{"admin@x.org"},
		StudentDomain:    "@cse.bubt.edu.bd",
		StudentPrefix:    "20255203",
		StudentSerialMin: 1,
		StudentSerialMax: 41,
	}
}

// CreateTestAccount inserts an account and returns its ID plus a valid
// session token. The password hash uses bcrypt.MinCost; handler tests that
// exercise the real cost go through the register endpoint.
func CreateTestAccount(t *testing.T, conn *sql.DB, cfg cliparse.Config, email, password string, isAdmin bool) (accountID, token string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	accountID = auth.NewID()
	_, err = conn.Exec(`
		INSERT INTO account (id, email, password_hash, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, accountID, email, string(hash), isAdmin, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}

	token, err = auth.IssueToken([]byte(cfg.TokenSecret), auth.Identity{AccountID: accountID, IsAdmin: isAdmin}, time.Hour)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}

	return accountID, token
}

// CreateTestCandidate inserts a candidate and returns its ID
func CreateTestCandidate(t *testing.T, conn *sql.DB, name, description string) string {
	t.Helper()

	candidateID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO candidate (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)
	`, candidateID, name, description, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}

	return candidateID
}

// CastTestVote inserts a vote directly, bypassing the handler
func CastTestVote(t *testing.T, conn *sql.DB, accountID, candidateID string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote (account_id, candidate_id, cast_at)
		VALUES ($1, $2, $3)
	`, accountID, candidateID, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AuthHeader builds the header map for an authenticated request
func AuthHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertErrorKind checks that the response body is an ErrorResponse with
// the expected domain error kind
func AssertErrorKind(t *testing.T, w *httptest.ResponseRecorder, kind string) {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error != kind {
		t.Errorf("Expected error kind %q, got %q. Body: %s", kind, resp.Error, w.Body.String())
	}
}
