package model

import (
	"fmt"
	"strings"
)

// Severity classifies a finding or rule. The canonical display order is
// High, Medium, Low, Informational, everywhere findings or rules are grouped.
type Severity string

const (
	SeverityHigh          Severity = "high"
	SeverityMedium        Severity = "medium"
	SeverityLow           Severity = "low"
	SeverityInformational Severity = "informational"
)

// Severities returns all severities in canonical descending order.
func Severities() []Severity {
	return []Severity{SeverityHigh, SeverityMedium, SeverityLow, SeverityInformational}
}

// Weight returns a numeric weight for ordering (higher = more severe).
func (s Severity) Weight() int {
	switch s {
	case SeverityHigh:
		return 4
	case SeverityMedium:
		return 3
	case SeverityLow:
		return 2
	case SeverityInformational:
		return 1
	default:
		return 0
	}
}

// Label returns the capitalized display name, e.g. "Informational".
func (s Severity) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

func (s Severity) String() string { return string(s) }

// ParseSeverity maps a user-supplied token to a Severity. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseSeverity(tok string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "high":
		return SeverityHigh, nil
	case "medium":
		return SeverityMedium, nil
	case "low":
		return SeverityLow, nil
	case "informational", "info":
		return SeverityInformational, nil
	}
	return "", fmt.Errorf("unknown severity: %q", strings.TrimSpace(tok))
}

// RuleType is the category a detection rule belongs to.
type RuleType string

const (
	RuleTypeSolana  RuleType = "solana"
	RuleTypeAnchor  RuleType = "anchor"
	RuleTypeGeneral RuleType = "general"
)

// RuleTypes returns every known rule type.
func RuleTypes() []RuleType {
	return []RuleType{RuleTypeSolana, RuleTypeAnchor, RuleTypeGeneral}
}

// ParseRuleType maps a user-supplied token to a RuleType.
func ParseRuleType(tok string) (RuleType, error) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "solana":
		return RuleTypeSolana, nil
	case "anchor":
		return RuleTypeAnchor, nil
	case "general":
		return RuleTypeGeneral, nil
	}
	return "", fmt.Errorf("unknown rule type: %q", strings.TrimSpace(tok))
}

// Location is the source position of a finding.
type Location struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

func (l Location) String() string { return fmt.Sprintf("%s:%d", l.File, l.Line) }

// Finding is one detected issue.
type Finding struct {
	RuleID          string   `json:"ruleId"`
	Severity        Severity `json:"severity"`
	Description     string   `json:"description"`
	Location        Location `json:"location"`
	CodeSnippet     string   `json:"codeSnippet,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// Stats carries the engine's aggregate counters for one run.
type Stats struct {
	FindingsBySeverity map[Severity]int `json:"findingsBySeverity"`
}

// AnalysisResult is the output of one engine invocation. Findings keep the
// engine's emission order; nothing downstream re-sorts within a severity.
type AnalysisResult struct {
	Findings []Finding `json:"findings"`
	Stats    Stats     `json:"stats"`
}

// Rule is one catalog entry. IDs are unique and compared case-insensitively.
type Rule struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Type        RuleType `json:"type"`
}

// AnalysisOptions is the canonical configuration for one analysis run.
// It is built once by the option resolver and read-only afterwards.
type AnalysisOptions struct {
	GenerateAST         bool
	CustomTemplatesPath string
	IncludeRuleTypes    []RuleType
	IgnoreSeverities    map[Severity]struct{}
	IgnoreRules         map[string]struct{}
}

// DefaultAnalysisOptions includes every rule type and ignores nothing.
func DefaultAnalysisOptions() AnalysisOptions {
	return AnalysisOptions{
		IncludeRuleTypes: RuleTypes(),
		IgnoreSeverities: map[Severity]struct{}{},
		IgnoreRules:      map[string]struct{}{},
	}
}

// IgnoresSeverity reports whether findings of severity s are excluded.
func (o AnalysisOptions) IgnoresSeverity(s Severity) bool {
	_, ok := o.IgnoreSeverities[s]
	return ok
}

// IgnoresRule reports whether the rule id is excluded. Ids are matched
// case-insensitively, consistent with catalog lookup.
func (o AnalysisOptions) IgnoresRule(id string) bool {
	_, ok := o.IgnoreRules[strings.ToLower(id)]
	return ok
}

// IncludesRuleType reports whether rules of type t participate in the run.
func (o AnalysisOptions) IncludesRuleType(t RuleType) bool {
	for _, rt := range o.IncludeRuleTypes {
		if rt == t {
			return true
		}
	}
	return false
}
