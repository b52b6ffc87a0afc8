package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MaxDiagnostics != 100 {
		t.Errorf("expected max_diagnostics 100, got %d", cfg.MaxDiagnostics)
	}
	if cfg.Color != "auto" {
		t.Errorf("expected color auto, got %q", cfg.Color)
	}
	if !cfg.IsSourceFile("main.fx") {
		t.Error("expected .fx to be a source extension by default")
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
max_diagnostics: 5
color: "off"
disabled:
  - U002
extensions:
  - .fx
  - .fxi
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDiagnostics != 5 {
		t.Errorf("expected max_diagnostics 5, got %d", cfg.MaxDiagnostics)
	}
	if cfg.Color != "off" {
		t.Errorf("expected color off, got %q", cfg.Color)
	}
	if cfg.CodeEnabled("U002") {
		t.Error("U002 must be disabled")
	}
	if !cfg.CodeEnabled("U001") {
		t.Error("U001 must stay enabled")
	}
	if !cfg.IsSourceFile("lib.fxi") {
		t.Error("expected .fxi to be recognized")
	}
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "color: \"on\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDiagnostics != 100 {
		t.Errorf("expected default max_diagnostics, got %d", cfg.MaxDiagnostics)
	}
	if cfg.Color != "on" {
		t.Errorf("expected color on, got %q", cfg.Color)
	}
}

func TestLoadRejectsBadColor(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "color: sometimes\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for invalid color")
	}
}

func TestLoadRejectsNegativeMax(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "max_diagnostics: -1\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for negative max_diagnostics")
	}
}

func TestLoadRejectsMalformedYaml(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "max_diagnostics: [\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed yaml")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "max_diagnostics: 7\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDiagnostics != 7 {
		t.Errorf("expected the root config to be found, got max %d", cfg.MaxDiagnostics)
	}
}

func TestDiscoverFallsBackToDefault(t *testing.T) {
	cfg, err := Discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDiagnostics != Default().MaxDiagnostics {
		t.Error("expected default config when nothing is found")
	}
}

func TestIsSourceFileRejectsOthers(t *testing.T) {
	cfg := Default()
	if cfg.IsSourceFile("notes.txt") {
		t.Error(".txt must not be a source file")
	}
	if cfg.IsSourceFile("fx") {
		t.Error("a bare name must not match")
	}
}
