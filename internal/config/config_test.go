package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eloizer.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFull(t *testing.T) {
	path := writeConfig(t, `
analysis:
  path: ./program
  generate_ast: true
output:
  report_file: audit.md
rules:
  ignore_severities: [low, informational]
  ignore_rules: [SOL-001]
  include_rule_types: [anchor]
display:
  verbose: true
  no_color: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Analysis.Path != "./program" || !cfg.Analysis.GenerateAST {
		t.Errorf("unexpected analysis section: %+v", cfg.Analysis)
	}
	if cfg.Output.ReportFile != "audit.md" {
		t.Errorf("unexpected report file: %q", cfg.Output.ReportFile)
	}
	if len(cfg.Rules.IgnoreSeverities) != 2 || cfg.Rules.IgnoreRules[0] != "SOL-001" {
		t.Errorf("unexpected rules section: %+v", cfg.Rules)
	}
	if !cfg.Display.Verbose || cfg.Display.Quiet || !cfg.Display.NoColor {
		t.Errorf("unexpected display section: %+v", cfg.Display)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "analysis: [not, a, mapping")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoadMissingRequiredFields(t *testing.T) {
	path := writeConfig(t, "analysis:\n  path: ./program\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "output.report_file") {
		t.Fatalf("expected report_file validation error, got %v", err)
	}

	path = writeConfig(t, "output:\n  report_file: out.md\n")
	_, err = Load(path)
	if err == nil || !strings.Contains(err.Error(), "analysis.path") {
		t.Fatalf("expected path validation error, got %v", err)
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eloizer.yaml")
	if err := WriteTemplate(path); err != nil {
		t.Fatalf("WriteTemplate() error = %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("template should load back cleanly: %v", err)
	}
	if cfg.Analysis.Path != "." {
		t.Errorf("template path = %q", cfg.Analysis.Path)
	}
	if cfg.Output.ReportFile != "eloizer-report.md" {
		t.Errorf("template report_file = %q", cfg.Output.ReportFile)
	}
}
