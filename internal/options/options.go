package options

import (
	"strings"

	"go.uber.org/zap"

	"github.com/Inversive-Labs/eloizer/internal/config"
	"github.com/Inversive-Labs/eloizer/internal/model"
)

// Params are the raw, per-run inputs collected from flags or a config
// document before resolution into model.AnalysisOptions.
type Params struct {
	Path             string
	TemplatesPath    string
	Output           string
	GenerateAST      bool
	IgnoreSeverities string // comma-separated tokens
	IgnoreRules      string // comma-separated rule ids
	IncludeRuleTypes []string
	Verbose          bool
	Quiet            bool
	NoColor          bool
}

// Resolve normalizes Params into one immutable AnalysisOptions value.
// Unknown severity tokens are warned about and dropped; rule ids are taken
// verbatim (an unknown id simply never matches). An unknown rule-type token
// is a hard error because it silently changes which rules run.
func Resolve(p Params, log *zap.SugaredLogger) (model.AnalysisOptions, error) {
	opts := model.DefaultAnalysisOptions()
	opts.GenerateAST = p.GenerateAST
	opts.CustomTemplatesPath = p.TemplatesPath
	opts.IgnoreSeverities = ParseSeverityList(p.IgnoreSeverities, log)
	opts.IgnoreRules = ParseRuleList(p.IgnoreRules)

	if len(p.IncludeRuleTypes) > 0 {
		var types []model.RuleType
		seen := map[model.RuleType]struct{}{}
		for _, tok := range p.IncludeRuleTypes {
			rt, err := model.ParseRuleType(tok)
			if err != nil {
				return model.AnalysisOptions{}, err
			}
			if _, dup := seen[rt]; dup {
				continue
			}
			seen[rt] = struct{}{}
			types = append(types, rt)
		}
		opts.IncludeRuleTypes = types
	}
	return opts, nil
}

// ParseSeverityList splits a comma-separated severity list into a set.
// Tokens are trimmed and matched case-insensitively; unrecognized tokens
// log a warning and are skipped, never fatal.
func ParseSeverityList(list string, log *zap.SugaredLogger) map[model.Severity]struct{} {
	out := map[model.Severity]struct{}{}
	if strings.TrimSpace(list) == "" {
		return out
	}
	for _, tok := range strings.Split(list, ",") {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		sev, err := model.ParseSeverity(tok)
		if err != nil {
			if log != nil {
				log.Warnf("Unknown severity level: %s", strings.TrimSpace(tok))
			}
			continue
		}
		out[sev] = struct{}{}
	}
	return out
}

// ParseRuleList splits a comma-separated rule-id list into a set keyed by
// lowercased id. Ids are opaque; no validation against the catalog happens
// here.
func ParseRuleList(list string) map[string]struct{} {
	out := map[string]struct{}{}
	if strings.TrimSpace(list) == "" {
		return out
	}
	for _, tok := range strings.Split(list, ",") {
		id := strings.ToLower(strings.TrimSpace(tok))
		if id == "" {
			continue
		}
		out[id] = struct{}{}
	}
	return out
}

// FromConfig maps a loaded config document onto Params. CLI-supplied
// verbose/quiet combine with the config's display section by logical OR, so
// a flag is never silently overridden by an absent config value.
func FromConfig(cfg *config.Config, cliVerbose, cliQuiet, cliNoColor bool) Params {
	return Params{
		Path:             cfg.Analysis.Path,
		TemplatesPath:    cfg.Analysis.Templates,
		Output:           cfg.Output.ReportFile,
		GenerateAST:      cfg.Analysis.GenerateAST,
		IgnoreSeverities: strings.Join(cfg.Rules.IgnoreSeverities, ","),
		IgnoreRules:      strings.Join(cfg.Rules.IgnoreRules, ","),
		IncludeRuleTypes: cfg.Rules.IncludeRuleTypes,
		Verbose:          cliVerbose || cfg.Display.Verbose,
		Quiet:            cliQuiet || cfg.Display.Quiet,
		NoColor:          cliNoColor || cfg.Display.NoColor,
	}
}
