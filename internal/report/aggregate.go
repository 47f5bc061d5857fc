package report

import "github.com/Inversive-Labs/eloizer/internal/model"

// Group is one severity bucket of aggregated findings. Findings keep the
// order the engine emitted them in.
type Group struct {
	Severity model.Severity
	Findings []model.Finding
}

// Summary is the aggregated view of one analysis result: non-empty severity
// groups in canonical order, the grand total, and the engine's own
// per-severity counters.
type Summary struct {
	Total      int
	Groups     []Group
	EngineStat map[model.Severity]int
}

// Aggregate partitions findings by severity in canonical order. The
// partition is stable: within a group, engine output order is untouched.
func Aggregate(result *model.AnalysisResult) Summary {
	s := Summary{
		Total:      len(result.Findings),
		EngineStat: result.Stats.FindingsBySeverity,
	}
	for _, sev := range model.Severities() {
		var g Group
		g.Severity = sev
		for _, f := range result.Findings {
			if f.Severity == sev {
				g.Findings = append(g.Findings, f)
			}
		}
		if len(g.Findings) > 0 {
			s.Groups = append(s.Groups, g)
		}
	}
	return s
}

// Count returns the engine-reported count for a severity, as shown in the
// summary view.
func (s Summary) Count(sev model.Severity) int { return s.EngineStat[sev] }

// Consistent reports whether the engine's per-severity counters agree with
// the partitioned findings. A well-behaved engine always satisfies this.
func (s Summary) Consistent() bool {
	statTotal := 0
	for _, n := range s.EngineStat {
		statTotal += n
	}
	if statTotal != s.Total {
		return false
	}
	for _, g := range s.Groups {
		if s.EngineStat[g.Severity] != len(g.Findings) {
			return false
		}
	}
	return true
}
