package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "" || cfg.CatalogPath != "" {
		t.Errorf("expected empty paths, got %+v", cfg)
	}
	if !cfg.InstantAdvance {
		t.Error("expected instant advance on by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "kanjidrill")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "db_path: /tmp/drill.db\ncatalog_path: /tmp/deck.json\ninstant_advance: false\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", base)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/drill.db" {
		t.Errorf("db_path = %q", cfg.DBPath)
	}
	if cfg.CatalogPath != "/tmp/deck.json" {
		t.Errorf("catalog_path = %q", cfg.CatalogPath)
	}
	if cfg.InstantAdvance {
		t.Error("expected instant advance disabled by file")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("KANJIDRILL_DB_PATH", "/elsewhere/drill.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/elsewhere/drill.db" {
		t.Errorf("expected env override, got %q", cfg.DBPath)
	}
}
