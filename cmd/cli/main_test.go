package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klikphone/sav-portal/internal/config"
	"github.com/klikphone/sav-portal/internal/models"
)

func backend(t *testing.T) *httptest.Server {
	t.Helper()
	reply := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Pin != "1357" {
			reply(w, http.StatusUnauthorized, map[string]string{"detail": "PIN incorrect"})
			return
		}
		reply(w, http.StatusOK, models.LoginResponse{AccessToken: "jwt", Role: req.Role, Username: "Jonathan"})
	})
	mux.HandleFunc("GET /tickets", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, []models.Ticket{{TicketCode: "KP-000042", Brand: "Apple", Model: "iPhone 13", Status: "Repair in progress", ClientLastName: "Durand"}})
	})
	mux.HandleFunc("GET /tickets/code/{code}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("code") != "KP-000042" {
			reply(w, http.StatusNotFound, map[string]string{"detail": "not found"})
			return
		}
		reply(w, http.StatusOK, models.Ticket{TicketCode: "KP-000042", Status: "Repair in progress"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(t *testing.T, apiURL string) config.Config {
	return config.Config{
		APIURL:          apiURL,
		StateURL:        filepath.Join(t.TempDir(), "state.db"),
		RequestTimeout:  2 * time.Second,
		LogLevel:        "disabled",
		RefreshInterval: time.Second,
	}
}

func runCLI(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), cfg, args, &out)
	return out.String(), err
}

func TestLoginPersistsAcrossRuns(t *testing.T) {
	cfg := testConfig(t, backend(t).URL)

	if _, err := runCLI(t, cfg, "tickets"); err == nil || !strings.Contains(err.Error(), "not logged in") {
		t.Fatalf("expected not logged in, got %v", err)
	}
	if _, err := runCLI(t, cfg, "login", "-role", "technician", "-pin", "0000"); err == nil || err.Error() != "invalid PIN" {
		t.Fatalf("expected invalid PIN, got %v", err)
	}
	out, err := runCLI(t, cfg, "login", "-role", "technician", "-pin", "1357")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(out, "Jonathan (technician)") {
		t.Fatalf("unexpected login output %q", out)
	}

	out, err = runCLI(t, cfg, "whoami")
	if err != nil || strings.TrimSpace(out) != "Jonathan (technician)" {
		t.Fatalf("whoami: %q %v", out, err)
	}

	out, err = runCLI(t, cfg, "tickets")
	if err != nil {
		t.Fatalf("tickets: %v", err)
	}
	if !strings.Contains(out, "KP-000042") || !strings.Contains(out, "Apple iPhone 13") {
		t.Fatalf("unexpected tickets output %q", out)
	}

	if _, err := runCLI(t, cfg, "logout"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	out, _ = runCLI(t, cfg, "whoami")
	if strings.TrimSpace(out) != "not logged in" {
		t.Fatalf("expected not logged in after logout, got %q", out)
	}
}

func TestTrackTimeline(t *testing.T) {
	cfg := testConfig(t, backend(t).URL)

	out, err := runCLI(t, cfg, "track", "-code", " kp-000042 ")
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	if !strings.Contains(out, "[x] Awaiting diagnosis") || !strings.Contains(out, "[>] Repair in progress") {
		t.Fatalf("unexpected timeline %q", out)
	}

	if _, err := runCLI(t, cfg, "track", "-code", "KP-999999"); err == nil || !strings.Contains(err.Error(), "No ticket found") {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUsageErrors(t *testing.T) {
	cfg := testConfig(t, backend(t).URL)
	if _, err := runCLI(t, cfg); err == nil {
		t.Fatal("expected usage error with no command")
	}
	if _, err := runCLI(t, cfg, "frobnicate"); err == nil || !strings.Contains(err.Error(), "expected one of") {
		t.Fatalf("expected usage error, got %v", err)
	}
	if _, err := runCLI(t, cfg, "tickets", "-status", "Lost"); err == nil || !strings.Contains(err.Error(), "unknown status") {
		t.Fatalf("expected status error, got %v", err)
	}
}
