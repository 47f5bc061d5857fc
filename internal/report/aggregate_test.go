package report

import (
	"testing"

	"github.com/Inversive-Labs/eloizer/internal/model"
)

func mixedResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		Findings: []model.Finding{
			{RuleID: "GEN-002", Severity: model.SeverityLow, Description: "first low"},
			{RuleID: "SOL-001", Severity: model.SeverityHigh, Description: "first high"},
			{RuleID: "SOL-002", Severity: model.SeverityHigh, Description: "second high"},
		},
		Stats: model.Stats{FindingsBySeverity: map[model.Severity]int{
			model.SeverityHigh: 2,
			model.SeverityLow:  1,
		}},
	}
}

func TestAggregateCanonicalOrder(t *testing.T) {
	s := Aggregate(mixedResult())
	if s.Total != 3 {
		t.Fatalf("Total = %d, want 3", s.Total)
	}
	if len(s.Groups) != 2 {
		t.Fatalf("expected 2 non-empty groups, got %d", len(s.Groups))
	}
	if s.Groups[0].Severity != model.SeverityHigh || s.Groups[1].Severity != model.SeverityLow {
		t.Errorf("group order wrong: %s, %s", s.Groups[0].Severity, s.Groups[1].Severity)
	}
}

func TestAggregateStablePartition(t *testing.T) {
	s := Aggregate(mixedResult())
	high := s.Groups[0]
	if high.Findings[0].Description != "first high" || high.Findings[1].Description != "second high" {
		t.Errorf("engine order not preserved within group: %+v", high.Findings)
	}
}

func TestAggregateCountsAgreeWithStats(t *testing.T) {
	s := Aggregate(mixedResult())
	if !s.Consistent() {
		t.Fatal("partition counts should match engine stats")
	}
	if s.Count(model.SeverityHigh) != 2 || s.Count(model.SeverityLow) != 1 {
		t.Errorf("summary counts wrong: high=%d low=%d", s.Count(model.SeverityHigh), s.Count(model.SeverityLow))
	}
	statTotal := 0
	for _, n := range s.EngineStat {
		statTotal += n
	}
	if statTotal != s.Total {
		t.Errorf("sum of stats %d != total %d", statTotal, s.Total)
	}
}

func TestAggregateDetectsInconsistentStats(t *testing.T) {
	r := mixedResult()
	r.Stats.FindingsBySeverity[model.SeverityHigh] = 5
	if Aggregate(r).Consistent() {
		t.Error("mismatched stats should be reported as inconsistent")
	}
}

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(&model.AnalysisResult{Stats: model.Stats{FindingsBySeverity: map[model.Severity]int{}}})
	if s.Total != 0 || len(s.Groups) != 0 {
		t.Errorf("unexpected summary for empty result: %+v", s)
	}
	if !s.Consistent() {
		t.Error("empty result is trivially consistent")
	}
}
