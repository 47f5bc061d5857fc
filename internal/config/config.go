package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNotFound distinguishes a missing config file from a malformed one.
var ErrNotFound = errors.New("configuration file not found")

// Config is the declarative run specification loaded from a YAML document.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Output   OutputConfig   `yaml:"output"`
	Rules    RulesConfig    `yaml:"rules"`
	Display  DisplayConfig  `yaml:"display"`
}

type AnalysisConfig struct {
	Path        string `yaml:"path"`
	GenerateAST bool   `yaml:"generate_ast"`
	Templates   string `yaml:"templates"`
}

type OutputConfig struct {
	ReportFile string `yaml:"report_file"`
}

type RulesConfig struct {
	IgnoreSeverities []string `yaml:"ignore_severities"`
	IgnoreRules      []string `yaml:"ignore_rules"`
	IncludeRuleTypes []string `yaml:"include_rule_types"`
}

type DisplayConfig struct {
	Verbose bool `yaml:"verbose"`
	Quiet   bool `yaml:"quiet"`
	NoColor bool `yaml:"no_color"`
}

// Load reads and validates a config document. A missing file returns
// ErrNotFound so the caller can suggest running init; any parse or
// validation failure aborts before analysis starts.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Analysis.Path == "" {
		return nil, fmt.Errorf("failed to parse config file: analysis.path is required")
	}
	if cfg.Output.ReportFile == "" {
		return nil, fmt.Errorf("failed to parse config file: output.report_file is required")
	}
	return &cfg, nil
}

// Template is the commented config document written by `eloizer init`.
const Template = `# eloizer analysis configuration

analysis:
  # Path to the Solana project directory to analyze
  path: "."
  # Write a <file>.ast.json dump next to each parsed source file
  generate_ast: false
  # Optional custom templates directory
  # templates: "./templates"

output:
  # Markdown report destination (a .md extension is enforced)
  report_file: "eloizer-report.md"

rules:
  # Severities to skip entirely: high, medium, low, informational
  ignore_severities: []
  # Specific rule ids to skip, e.g. SOL-001
  ignore_rules: []
  # Rule families to run; defaults to all of solana, anchor, general
  include_rule_types: []

display:
  verbose: false
  quiet: false
  no_color: false
`

// WriteTemplate writes the template config to path.
func WriteTemplate(path string) error {
	if err := os.WriteFile(path, []byte(Template), 0o644); err != nil {
		return fmt.Errorf("failed to write config template: %w", err)
	}
	return nil
}
