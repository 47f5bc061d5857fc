package rules

import (
	"strings"

	"github.com/Inversive-Labs/eloizer/internal/model"
	"github.com/Inversive-Labs/eloizer/internal/parser"
)

// CheckFunc inspects one parsed source file and reports findings for its rule.
type CheckFunc func(*parser.SourceFile) []model.Finding

// Definition pairs a rule's metadata with its check.
type Definition struct {
	Rule  model.Rule
	Check CheckFunc
}

// Catalog holds the registered detection rules. Registration order is the
// catalog's stable iteration order.
type Catalog struct {
	defs []Definition
}

func NewCatalog() *Catalog {
	c := &Catalog{}
	c.registerBuiltin()
	return c
}

func (c *Catalog) Register(d Definition) { c.defs = append(c.defs, d) }

// Definitions returns every registered rule with its check.
func (c *Catalog) Definitions() []Definition { return c.defs }

// Rules returns the metadata of every registered rule.
func (c *Catalog) Rules() []model.Rule {
	out := make([]model.Rule, 0, len(c.defs))
	for _, d := range c.defs {
		out = append(out, d.Rule)
	}
	return out
}

// Find looks a rule up by id, case-insensitively. Ids are unique, so the
// result is exactly found or not found.
func (c *Catalog) Find(id string) (model.Rule, bool) {
	for _, d := range c.defs {
		if strings.EqualFold(d.Rule.ID, id) {
			return d.Rule, true
		}
	}
	return model.Rule{}, false
}
