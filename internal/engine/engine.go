package engine

import (
	"github.com/Inversive-Labs/eloizer/internal/model"
	"github.com/Inversive-Labs/eloizer/internal/parser"
	"github.com/Inversive-Labs/eloizer/internal/rules"
)

// Analyzer evaluates the rule catalog against parsed source files. It is
// configured once at construction and holds no per-run mutable state.
type Analyzer struct {
	catalog *rules.Catalog
	opts    model.AnalysisOptions
}

// New builds an analyzer over the built-in catalog.
func New(opts model.AnalysisOptions) *Analyzer {
	return NewWithCatalog(rules.NewCatalog(), opts)
}

func NewWithCatalog(c *rules.Catalog, opts model.AnalysisOptions) *Analyzer {
	return &Analyzer{catalog: c, opts: opts}
}

// Catalog exposes the analyzer's rule catalog for read-only queries.
func (a *Analyzer) Catalog() *rules.Catalog { return a.catalog }

// AnalyzeFiles runs every active rule over every file, in catalog order per
// file, excluding rules and severities the options ignore. The returned
// stats always agree with the returned findings.
func (a *Analyzer) AnalyzeFiles(files []*parser.SourceFile) (*model.AnalysisResult, error) {
	result := &model.AnalysisResult{
		Stats: model.Stats{FindingsBySeverity: map[model.Severity]int{}},
	}
	for _, sf := range files {
		for _, def := range a.catalog.Definitions() {
			if !a.opts.IncludesRuleType(def.Rule.Type) {
				continue
			}
			if a.opts.IgnoresRule(def.Rule.ID) || a.opts.IgnoresSeverity(def.Rule.Severity) {
				continue
			}
			for _, f := range def.Check(sf) {
				if a.opts.IgnoresSeverity(f.Severity) {
					continue
				}
				result.Findings = append(result.Findings, f)
				result.Stats.FindingsBySeverity[f.Severity]++
			}
		}
	}
	return result, nil
}
