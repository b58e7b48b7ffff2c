package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.RefreshInterval != 30*time.Second || cfg.TarifsRefreshDelay != 3*time.Second {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.TarifsRefreshMode != "delay" || cfg.StateURL != "sav-portal.db" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	body := "API_URL=https://sav.example.com/api/\nTARIFS_REFRESH_MODE=poll\nTARIFS_POLL_TIMEOUT=45s\nPORT=9000\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Setenv("PORT", "9100")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != "https://sav.example.com/api" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.APIURL)
	}
	if cfg.TarifsRefreshMode != "poll" || cfg.TarifsPollTimeout != 45*time.Second {
		t.Fatalf("unexpected tarif refresh config %+v", cfg)
	}
	if cfg.Port != "9100" {
		t.Fatalf("environment must win over the file, got %q", cfg.Port)
	}
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	t.Setenv("TARIFS_REFRESH_MODE", "push")
	if _, err := LoadFile(filepath.Join(t.TempDir(), "none.env")); err == nil {
		t.Fatalf("expected error for unknown refresh mode")
	}
}
