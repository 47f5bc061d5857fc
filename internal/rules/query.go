package rules

import "github.com/Inversive-Labs/eloizer/internal/model"

// Group is one severity bucket of a listing.
type Group struct {
	Severity model.Severity
	Rules    []model.Rule
}

// Listing is a severity-grouped, deterministically ordered view of the
// catalog. Groups appear in canonical severity order; empty groups are
// omitted. Within a group, catalog order is preserved.
type Listing struct {
	Groups []Group
	Total  int
}

// List builds a grouped view of rules, optionally restricted to one
// severity. Validating the filter token is the caller's job: here a filter
// is already a model.Severity.
func List(rules []model.Rule, filter *model.Severity) Listing {
	var listing Listing
	for _, sev := range model.Severities() {
		if filter != nil && *filter != sev {
			continue
		}
		var g Group
		g.Severity = sev
		for _, r := range rules {
			if r.Severity == sev {
				g.Rules = append(g.Rules, r)
			}
		}
		if len(g.Rules) == 0 {
			continue
		}
		listing.Groups = append(listing.Groups, g)
		listing.Total += len(g.Rules)
	}
	return listing
}
