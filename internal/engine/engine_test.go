package engine

import (
	"strings"
	"testing"

	"github.com/Inversive-Labs/eloizer/internal/model"
	"github.com/Inversive-Labs/eloizer/internal/parser"
	"github.com/Inversive-Labs/eloizer/internal/rules"
)

// vulnerableSource trips SOL-001 (high), GEN-002 (low) and GEN-003 (informational).
const vulnerableSource = `// TODO: tighten access control
pub fn drain(account: &AccountInfo) -> ProgramResult {
    let balance = account.lamports();
    **account.try_borrow_mut_lamports()? = 0;
    let data = account.data.borrow_mut().first().unwrap();
    Ok(())
}
`

func analyze(t *testing.T, opts model.AnalysisOptions) *model.AnalysisResult {
	t.Helper()
	files := []*parser.SourceFile{parser.Parse("programs/vault/src/lib.rs", vulnerableSource)}
	result, err := New(opts).AnalyzeFiles(files)
	if err != nil {
		t.Fatalf("AnalyzeFiles() error = %v", err)
	}
	return result
}

func TestAnalyzeFindsKnownIssues(t *testing.T) {
	result := analyze(t, model.DefaultAnalysisOptions())
	got := map[string]bool{}
	for _, f := range result.Findings {
		got[f.RuleID] = true
	}
	for _, want := range []string{"SOL-001", "GEN-002", "GEN-003"} {
		if !got[want] {
			t.Errorf("expected finding for %s, findings: %v", want, got)
		}
	}
}

func TestStatsMatchFindings(t *testing.T) {
	result := analyze(t, model.DefaultAnalysisOptions())
	total := 0
	for _, n := range result.Stats.FindingsBySeverity {
		total += n
	}
	if total != len(result.Findings) {
		t.Fatalf("stats total %d != findings %d", total, len(result.Findings))
	}
	counted := map[model.Severity]int{}
	for _, f := range result.Findings {
		counted[f.Severity]++
	}
	for sev, n := range result.Stats.FindingsBySeverity {
		if counted[sev] != n {
			t.Errorf("severity %s: stats %d, counted %d", sev, n, counted[sev])
		}
	}
}

func TestIgnoreSeverities(t *testing.T) {
	opts := model.DefaultAnalysisOptions()
	opts.IgnoreSeverities[model.SeverityLow] = struct{}{}
	opts.IgnoreSeverities[model.SeverityInformational] = struct{}{}
	result := analyze(t, opts)
	for _, f := range result.Findings {
		if f.Severity == model.SeverityLow || f.Severity == model.SeverityInformational {
			t.Errorf("ignored severity leaked through: %+v", f)
		}
	}
	if len(result.Findings) == 0 {
		t.Error("high findings should survive")
	}
}

func TestIgnoreRules(t *testing.T) {
	opts := model.DefaultAnalysisOptions()
	opts.IgnoreRules["sol-001"] = struct{}{}
	result := analyze(t, opts)
	for _, f := range result.Findings {
		if strings.EqualFold(f.RuleID, "SOL-001") {
			t.Errorf("ignored rule leaked through: %+v", f)
		}
	}
	// unknown ids are inert
	opts.IgnoreRules["sol-999"] = struct{}{}
	again := analyze(t, opts)
	if len(again.Findings) != len(result.Findings) {
		t.Error("unknown ignored rule changed the result")
	}
}

func TestIncludeRuleTypes(t *testing.T) {
	opts := model.DefaultAnalysisOptions()
	opts.IncludeRuleTypes = []model.RuleType{model.RuleTypeAnchor}
	result := analyze(t, opts)
	if len(result.Findings) != 0 {
		t.Errorf("anchor-only run over non-anchor issues should be clean, got %d", len(result.Findings))
	}
}

func TestAnalyzeNoFiles(t *testing.T) {
	result, err := New(model.DefaultAnalysisOptions()).AnalyzeFiles(nil)
	if err != nil {
		t.Fatalf("AnalyzeFiles(nil) error = %v", err)
	}
	if len(result.Findings) != 0 {
		t.Errorf("expected no findings, got %d", len(result.Findings))
	}
}

func TestCustomCatalog(t *testing.T) {
	c := &rules.Catalog{}
	r := model.Rule{ID: "X-001", Title: "x", Description: "x", Severity: model.SeverityMedium, Type: model.RuleTypeGeneral}
	c.Register(rules.Definition{Rule: r, Check: func(sf *parser.SourceFile) []model.Finding {
		return []model.Finding{{RuleID: r.ID, Severity: r.Severity, Description: "always", Location: model.Location{File: sf.Path, Line: 1}}}
	}})
	result, err := NewWithCatalog(c, model.DefaultAnalysisOptions()).AnalyzeFiles([]*parser.SourceFile{parser.Parse("a.rs", "fn main() {}")})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Findings) != 1 || result.Stats.FindingsBySeverity[model.SeverityMedium] != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
}
