package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFileReturnsZeroConfig(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.PanelURL != "" || cfg.DefaultServer != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := &Config{PanelURL: "https://panel.example/api", DefaultServer: "srv1"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.PanelURL != cfg.PanelURL {
		t.Errorf("PanelURL = %q, want %q", loaded.PanelURL, cfg.PanelURL)
	}
	if loaded.DefaultServer != cfg.DefaultServer {
		t.Errorf("DefaultServer = %q, want %q", loaded.DefaultServer, cfg.DefaultServer)
	}
}

func TestLoadFrom_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected error for corrupt config")
	}
}

func TestResolvedURLs_Defaults(t *testing.T) {
	cfg := &Config{}
	if cfg.ResolvedPanelURL() != DefaultPanelURL {
		t.Errorf("ResolvedPanelURL = %q, want default", cfg.ResolvedPanelURL())
	}
	if cfg.ResolvedCatalogURL() != DefaultCatalogURL {
		t.Errorf("ResolvedCatalogURL = %q, want default", cfg.ResolvedCatalogURL())
	}

	cfg.PanelURL = "https://other.example"
	if cfg.ResolvedPanelURL() != "https://other.example" {
		t.Error("explicit panel URL must win over default")
	}
}

func TestLookup(t *testing.T) {
	if Lookup("default-server") == nil {
		t.Error("expected default-server key to exist")
	}
	if Lookup("  Default-Server ") == nil {
		t.Error("lookup must be case-insensitive and trimmed")
	}
	if Lookup("nope") != nil {
		t.Error("unknown key must return nil")
	}
}
