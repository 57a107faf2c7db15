// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/istiakahmeed/cr-voting/models"
	"github.com/istiakahmeed/cr-voting/testutil"
)

// TestFullElectionWorkflow tests the complete end-to-end workflow:
// 1. Admin registers and logs in
// 2. Admin creates candidates
// 3. Students register
// 4. Students list the public roster
// 5. Students cast votes
// 6. A student checks their own vote
// 7. Tallies reflect every cast vote
// 8. A repeat vote conflicts without disturbing the ledger
func TestFullElectionWorkflow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	accountHandler := NewAccountHandler(conn, cfg)
	candidateHandler := NewCandidateHandler(conn, cfg)
	voteHandler := NewVoteHandler(conn, cfg)

	// Step 1: Admin registers and logs in
	regReq := models.RegisterRequest{
		Email:    "admin@x.org",
		Password: "admin-password",
		Name:     "Course Admin",
		IsAdmin:  true,
	}
	body, _ := json.Marshal(regReq)
	req := httptest.NewRequest("POST", "/accounts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	accountHandler.Register(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Admin registration failed: %d - %s", w.Code, w.Body.String())
	}

	loginReq := models.LoginRequest{Email: "admin@x.org", Password: "admin-password"}
	body, _ = json.Marshal(loginReq)
	req = httptest.NewRequest("POST", "/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	accountHandler.Login(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 1 - Admin login failed: %d - %s", w.Code, w.Body.String())
	}

	var adminLogin models.LoginResponse
	json.NewDecoder(w.Body).Decode(&adminLogin)
	if adminLogin.Token == "" {
		t.Fatal("Step 1 - Missing admin session token")
	}
	t.Logf("Step 1 - Admin registered and logged in: %s", adminLogin.Account.ID)

	// Step 2: Admin creates 3 candidates
	names := []string{"Rahim", "Karim", "Fatima"}
	candidateIDs := make([]string, 0, len(names))

	for _, name := range names {
		createReq := models.CreateCandidateRequest{Name: name, Description: name + " for class representative"}
		body, _ := json.Marshal(createReq)
		req := httptest.NewRequest("POST", "/candidates", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminLogin.Token)
		w := httptest.NewRecorder()
		candidateHandler.Create(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Step 2 - Create candidate '%s' failed: %d - %s", name, w.Code, w.Body.String())
		}

		var candidate models.Candidate
		json.NewDecoder(w.Body).Decode(&candidate)
		candidateIDs = append(candidateIDs, candidate.ID)
	}
	t.Logf("Step 2 - Created %d candidates", len(candidateIDs))

	// Step 3: 3 students register and log in
	numStudents := 3
	studentTokens := make([]string, 0, numStudents)

	for i := 0; i < numStudents; i++ {
		email := fmt.Sprintf("20255203%03d@cse.bubt.edu.bd", i+1)

		regReq := models.RegisterRequest{Email: email, Password: "hunter22"}
		body, _ := json.Marshal(regReq)
		req := httptest.NewRequest("POST", "/accounts", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		accountHandler.Register(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Step 3 - Register '%s' failed: %d - %s", email, w.Code, w.Body.String())
		}

		loginReq := models.LoginRequest{Email: email, Password: "hunter22"}
		body, _ = json.Marshal(loginReq)
		req = httptest.NewRequest("POST", "/sessions", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w = httptest.NewRecorder()
		accountHandler.Login(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Step 3 - Login '%s' failed: %d - %s", email, w.Code, w.Body.String())
		}

		var login models.LoginResponse
		json.NewDecoder(w.Body).Decode(&login)
		studentTokens = append(studentTokens, login.Token)
	}
	t.Logf("Step 3 - %d students registered and logged in", numStudents)

	// Step 4: A student lists the roster without a session
	req = testutil.MakeRequest("GET", "/candidates", nil, nil)
	w = httptest.NewRecorder()
	candidateHandler.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 4 - List candidates failed: %d - %s", w.Code, w.Body.String())
	}

	var roster []models.Candidate
	json.NewDecoder(w.Body).Decode(&roster)
	if len(roster) != len(names) {
		t.Fatalf("Step 4 - Expected %d candidates, got %d", len(names), len(roster))
	}
	for _, c := range roster {
		if c.VoteCount != 0 {
			t.Errorf("Step 4 - Candidate %s has votes before the election: %d", c.Name, c.VoteCount)
		}
	}
	t.Logf("Step 4 - Roster lists %d candidates with zero votes", len(roster))

	// Step 5: Students cast votes
	// Students 0 and 1 vote for Rahim, student 2 votes for Karim
	choices := []string{candidateIDs[0], candidateIDs[0], candidateIDs[1]}
	for i, candidateID := range choices {
		castReq := models.CastVoteRequest{CandidateID: candidateID}
		body, _ := json.Marshal(castReq)
		req := httptest.NewRequest("POST", "/votes", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+studentTokens[i])
		w := httptest.NewRecorder()
		voteHandler.Cast(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Step 5 - Vote by student %d failed: %d - %s", i, w.Code, w.Body.String())
		}
	}
	t.Logf("Step 5 - %d votes cast", len(choices))

	// Step 6: First student checks their own vote
	req = testutil.MakeRequest("GET", "/votes/me", nil, testutil.AuthHeader(studentTokens[0]))
	w = httptest.NewRecorder()
	voteHandler.GetMine(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 6 - My-vote lookup failed: %d - %s", w.Code, w.Body.String())
	}

	var mine models.MyVoteResponse
	json.NewDecoder(w.Body).Decode(&mine)
	if mine.CandidateID == nil || *mine.CandidateID != candidateIDs[0] {
		t.Fatal("Step 6 - My-vote does not match the cast ballot")
	}
	t.Logf("Step 6 - My-vote confirmed: %s", *mine.CandidateID)

	// Step 7: Tallies reflect the votes
	req = testutil.MakeRequest("GET", "/candidates", nil, nil)
	w = httptest.NewRecorder()
	candidateHandler.List(w, req)

	roster = nil
	json.NewDecoder(w.Body).Decode(&roster)

	counts := make(map[string]int, len(roster))
	for _, c := range roster {
		counts[c.ID] = c.VoteCount
	}
	if counts[candidateIDs[0]] != 2 {
		t.Errorf("Step 7 - Expected 2 votes for %s, got %d", names[0], counts[candidateIDs[0]])
	}
	if counts[candidateIDs[1]] != 1 {
		t.Errorf("Step 7 - Expected 1 vote for %s, got %d", names[1], counts[candidateIDs[1]])
	}
	if counts[candidateIDs[2]] != 0 {
		t.Errorf("Step 7 - Expected 0 votes for %s, got %d", names[2], counts[candidateIDs[2]])
	}
	t.Log("Step 7 - Tallies match every cast vote")

	// Step 8: A repeat vote conflicts and changes nothing
	castReq := models.CastVoteRequest{CandidateID: candidateIDs[2]}
	body, _ = json.Marshal(castReq)
	req = httptest.NewRequest("POST", "/votes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+studentTokens[0])
	w = httptest.NewRecorder()
	voteHandler.Cast(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("Step 8 - Expected conflict for repeat vote, got %d - %s", w.Code, w.Body.String())
	}

	var totalVotes int
	if err := conn.QueryRow("SELECT COUNT(*) FROM vote").Scan(&totalVotes); err != nil {
		t.Fatalf("Step 8 - Failed to count votes: %v", err)
	}
	if totalVotes != len(choices) {
		t.Errorf("Step 8 - Expected %d votes after rejected repeat, got %d", len(choices), totalVotes)
	}
	t.Log("Step 8 - Repeat vote rejected, ledger untouched")
}
