package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidatesAfterNormalize(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Paths.LockPath != cfg.Paths.DBPath+".lock" {
		t.Fatalf("lock path default = %q", cfg.Paths.LockPath)
	}
}

func TestLoadReadsTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
data_dir = "` + dir + `/data"
db_path = "` + dir + `/quizdb.db"

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be reported as existing")
	}
	if resolved != path {
		t.Fatalf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
	if cfg.QuestionSetsDir() != filepath.Join(dir, "data", "question_sets") {
		t.Fatalf("question sets dir = %q", cfg.QuestionSetsDir())
	}
	if cfg.TournamentsDir() != filepath.Join(dir, "data", "tournaments") {
		t.Fatalf("tournaments dir = %q", cfg.TournamentsDir())
	}
}

func TestLoadRejectsBadLogging(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported log format")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}
	got, err := ExpandPath("~/archives")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if got != filepath.Join(home, "archives") {
		t.Fatalf("expanded = %q", got)
	}
	if !strings.HasPrefix(got, home) {
		t.Fatalf("expected home prefix in %q", got)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("create sample: %v", err)
	}
	if _, _, exists, err := Load(path); err != nil || !exists {
		t.Fatalf("sample config should load cleanly: exists=%v err=%v", exists, err)
	}
}
