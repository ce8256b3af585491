package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseEnvDefaults(t *testing.T) {
	for _, key := range []string{"BUDGET_SAVE_FILE", "BUDGET_JOURNAL_PATH", "BUDGET_SEED", "BUDGET_LOG_FILE", "BUDGET_LOG_LEVEL", "GEMINI_API_KEY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.SaveFile != "savegame.txt" {
		t.Errorf("Expected default save file, got %q", cfg.SaveFile)
	}
	if cfg.JournalPath != "runs.db" {
		t.Errorf("Expected default journal path, got %q", cfg.JournalPath)
	}
	if cfg.Seed != 0 || cfg.LogLevel != "info" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.NarrationEnabled() {
		t.Error("narration should be off without a key")
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("BUDGET_SAVE_FILE", "/tmp/custom.txt")
	t.Setenv("BUDGET_SEED", "1234")
	t.Setenv("GEMINI_API_KEY", "k")

	cfg, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.SaveFile != "/tmp/custom.txt" || cfg.Seed != 1234 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if !cfg.NarrationEnabled() {
		t.Error("narration should be on with a key")
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("BUDGET_SEED", "not-a-number")

	_, err := ParseEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("BUDGET_JOURNAL_PATH=from-dotenv.db\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(dir)
	t.Setenv("BUDGET_JOURNAL_PATH", "")
	os.Unsetenv("BUDGET_JOURNAL_PATH")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.JournalPath != "from-dotenv.db" {
		t.Errorf("Expected journal path from .env, got %q", cfg.JournalPath)
	}
}

func TestLoadConfigWithoutDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := LoadConfig(); err != nil {
		t.Fatalf("missing .env should not be an error: %v", err)
	}
}
