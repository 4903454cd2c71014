package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizdb/internal/config"
)

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"config", "init", "--path", target})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out.String(), target) {
		t.Fatalf("output does not mention target: %q", out.String())
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "data_dir") {
		t.Fatalf("sample config missing data_dir: %q", string(data))
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(target, []byte("# existing"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	cmd := newRootCommand()
	cmd.SetArgs([]string{"config", "init", "--path", target})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for existing config")
	}
}

func TestStatusOnFreshDatabase(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	content := "[paths]\n" +
		"data_dir = \"" + filepath.Join(dir, "data") + "\"\n" +
		"db_path = \"" + filepath.Join(dir, "quizdb.db") + "\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := newRootCommand()
	cmd.SetArgs([]string{"--config", configPath, "status"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("status: %v", err)
	}
	for _, table := range []string{"question_set", "tournament", "buzz"} {
		if !strings.Contains(out.String(), table) {
			t.Fatalf("status output missing %s table:\n%s", table, out.String())
		}
	}
}

func TestIngestSetsEndToEnd(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	content := "[paths]\n" +
		"data_dir = \"" + filepath.Join(dir, "data") + "\"\n" +
		"db_path = \"" + filepath.Join(dir, "quizdb.db") + "\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	setDir := filepath.Join(dir, "data", "question_sets", "regionals")
	writeFile(t, filepath.Join(setDir, "index.json"),
		`{"name": "Regionals", "slug": "regionals", "metadata_format": "delimited"}`)
	editionDir := filepath.Join(setDir, "editions", "2024")
	writeFile(t, filepath.Join(editionDir, "index.json"), `{"name": "2024", "slug": "2024"}`)
	writeFile(t, filepath.Join(editionDir, "packet_files", "packet_1.json"),
		`{"tossups": [{"question": "q", "answer": "Paris", "metadata": "Geography - Europe"}], "bonuses": []}`)

	cmd := newRootCommand()
	cmd.SetArgs([]string{"--config", configPath, "ingest", "sets"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("ingest sets: %v", err)
	}
	if !strings.Contains(out.String(), "Tossups") {
		t.Fatalf("summary table missing:\n%s", out.String())
	}
}

func TestShouldSkipConfig(t *testing.T) {
	root := newRootCommand()
	version, _, err := root.Find([]string{"version"})
	if err != nil {
		t.Fatalf("find version command: %v", err)
	}
	if !shouldSkipConfig(version) {
		t.Fatal("version should not load config")
	}
	status, _, err := root.Find([]string{"status"})
	if err != nil {
		t.Fatalf("find status command: %v", err)
	}
	if shouldSkipConfig(status) {
		t.Fatal("status should load config")
	}
}

func TestExpandPathUsedByConfigFlag(t *testing.T) {
	expanded, err := config.ExpandPath("~/quizdb.toml")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if strings.HasPrefix(expanded, "~") {
		t.Fatalf("tilde not expanded: %q", expanded)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
