package rules

import (
	"strings"

	"github.com/Inversive-Labs/eloizer/internal/model"
	"github.com/Inversive-Labs/eloizer/internal/parser"
	"github.com/Inversive-Labs/eloizer/internal/util"
)

// registerBuiltin wires the built-in Solana, Anchor and general rules.
// Checks are line heuristics over the parsed source; precision comes from
// requiring the risky pattern and the missing guard in the same file.
func (c *Catalog) registerBuiltin() {
	c.Register(missingSignerCheck())
	c.Register(missingOwnerCheck())
	c.Register(arbitraryCPI())
	c.Register(unsafeSeedDerivation())
	c.Register(uncheckedArithmetic())
	c.Register(mutAccountWithoutConstraint())
	c.Register(uncheckedAccountWithoutDoc())
	c.Register(initWithoutSpace())
	c.Register(unwrapInHandler())
	c.Register(todoMarker())
}

func newFinding(r model.Rule, sf *parser.SourceFile, line int, desc string, recs ...string) model.Finding {
	return model.Finding{
		RuleID:          r.ID,
		Severity:        r.Severity,
		Description:     desc,
		Location:        model.Location{File: sf.Path, Line: line},
		CodeSnippet:     util.ExtractSnippet(sf.Lines, line, 4),
		Recommendations: recs,
	}
}

func missingSignerCheck() Definition {
	r := model.Rule{
		ID:          "SOL-001",
		Title:       "Missing signer check",
		Description: "An instruction mutates account state using a raw AccountInfo without verifying is_signer. Any caller can forge the account and trigger the mutation.",
		Severity:    model.SeverityHigh,
		Type:        model.RuleTypeSolana,
	}
	return Definition{Rule: r, Check: func(sf *parser.SourceFile) []model.Finding {
		src := sf.Source()
		if !strings.Contains(src, "AccountInfo") || strings.Contains(src, "is_signer") {
			return nil
		}
		var out []model.Finding
		for i, line := range sf.Lines {
			if strings.Contains(line, "try_borrow_mut_lamports") || strings.Contains(line, "try_borrow_mut_data") {
				out = append(out, newFinding(r, sf, i+1,
					"Account state is mutated without a signer check",
					"Verify account.is_signer before mutating state",
					"Prefer the Anchor Signer<'info> account type"))
			}
		}
		return out
	}}
}

func missingOwnerCheck() Definition {
	r := model.Rule{
		ID:          "SOL-002",
		Title:       "Missing owner check",
		Description: "Account data is deserialized from a raw AccountInfo without verifying the owning program. A crafted account owned by another program passes validation.",
		Severity:    model.SeverityHigh,
		Type:        model.RuleTypeSolana,
	}
	return Definition{Rule: r, Check: func(sf *parser.SourceFile) []model.Finding {
		src := sf.Source()
		if !strings.Contains(src, "AccountInfo") {
			return nil
		}
		if strings.Contains(src, ".owner") || strings.Contains(src, "owner ==") {
			return nil
		}
		var out []model.Finding
		for i, line := range sf.Lines {
			if strings.Contains(line, "try_from_slice") || strings.Contains(line, "deserialize(") {
				out = append(out, newFinding(r, sf, i+1,
					"Account data is deserialized without an owner check",
					"Compare account.owner against the expected program id",
					"Use Anchor Account<'info, T> which enforces ownership"))
			}
		}
		return out
	}}
}

func arbitraryCPI() Definition {
	r := model.Rule{
		ID:          "SOL-003",
		Title:       "Arbitrary cross-program invocation",
		Description: "invoke() is called with a program account taken from the instruction's accounts without pinning its id, letting an attacker substitute a malicious program.",
		Severity:    model.SeverityHigh,
		Type:        model.RuleTypeSolana,
	}
	return Definition{Rule: r, Check: func(sf *parser.SourceFile) []model.Finding {
		src := sf.Source()
		if strings.Contains(src, "check_program_account") || strings.Contains(src, "program::ID") {
			return nil
		}
		var out []model.Finding
		for i, line := range sf.Lines {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, "invoke(") || strings.HasPrefix(trimmed, "invoke_signed(") {
				out = append(out, newFinding(r, sf, i+1,
					"Cross-program invocation without validating the target program id",
					"Check the callee's pubkey against a known program id before invoking"))
			}
		}
		return out
	}}
}

func unsafeSeedDerivation() Definition {
	r := model.Rule{
		ID:          "SOL-004",
		Title:       "PDA derived without canonical bump",
		Description: "create_program_address derives a PDA from a caller-supplied bump. Non-canonical bumps yield distinct addresses for the same seeds, enabling account confusion.",
		Severity:    model.SeverityMedium,
		Type:        model.RuleTypeSolana,
	}
	return Definition{Rule: r, Check: func(sf *parser.SourceFile) []model.Finding {
		var out []model.Finding
		for i, line := range sf.Lines {
			if strings.Contains(line, "create_program_address") {
				out = append(out, newFinding(r, sf, i+1,
					"PDA derived with create_program_address instead of find_program_address",
					"Use find_program_address and store the canonical bump"))
			}
		}
		return out
	}}
}

func uncheckedArithmetic() Definition {
	r := model.Rule{
		ID:          "GEN-001",
		Title:       "Unchecked lamport arithmetic",
		Description: "Lamport balances are combined with raw +/- operators. In release builds overflow wraps silently and can mint or destroy funds.",
		Severity:    model.SeverityMedium,
		Type:        model.RuleTypeGeneral,
	}
	return Definition{Rule: r, Check: func(sf *parser.SourceFile) []model.Finding {
		var out []model.Finding
		for i, line := range sf.Lines {
			if !strings.Contains(line, "lamports") {
				continue
			}
			if strings.Contains(line, "checked_add") || strings.Contains(line, "checked_sub") {
				continue
			}
			if strings.Contains(line, "+=") || strings.Contains(line, "-=") {
				out = append(out, newFinding(r, sf, i+1,
					"Lamport balance updated with unchecked arithmetic",
					"Use checked_add/checked_sub and propagate the error"))
			}
		}
		return out
	}}
}

func mutAccountWithoutConstraint() Definition {
	r := model.Rule{
		ID:          "ANCHOR-001",
		Title:       "Mutable account without constraint",
		Description: "An #[account(mut)] field carries no has_one or constraint expression, so any account of the right type can be passed and mutated.",
		Severity:    model.SeverityMedium,
		Type:        model.RuleTypeAnchor,
	}
	return Definition{Rule: r, Check: func(sf *parser.SourceFile) []model.Finding {
		var out []model.Finding
		for i, line := range sf.Lines {
			attr := strings.TrimSpace(line)
			if !strings.HasPrefix(attr, "#[account(") || !strings.Contains(attr, "mut") {
				continue
			}
			if strings.Contains(attr, "has_one") || strings.Contains(attr, "constraint") || strings.Contains(attr, "seeds") || strings.Contains(attr, "address") {
				continue
			}
			out = append(out, newFinding(r, sf, i+1,
				"Mutable account attribute without a binding constraint",
				"Add has_one, seeds or a constraint expression tying the account to the authority"))
		}
		return out
	}}
}

func uncheckedAccountWithoutDoc() Definition {
	r := model.Rule{
		ID:          "ANCHOR-002",
		Title:       "UncheckedAccount without safety note",
		Description: "UncheckedAccount skips all of Anchor's validation. Each use should carry a /// CHECK: comment explaining why that is safe.",
		Severity:    model.SeverityMedium,
		Type:        model.RuleTypeAnchor,
	}
	return Definition{Rule: r, Check: func(sf *parser.SourceFile) []model.Finding {
		var out []model.Finding
		for i, line := range sf.Lines {
			if !strings.Contains(line, "UncheckedAccount") {
				continue
			}
			documented := false
			for j := i - 1; j >= 0 && j >= i-3; j-- {
				if strings.Contains(sf.Lines[j], "/// CHECK") {
					documented = true
					break
				}
			}
			if !documented {
				out = append(out, newFinding(r, sf, i+1,
					"UncheckedAccount used without a /// CHECK: safety comment",
					"Document why validation is unnecessary, or use a typed Account"))
			}
		}
		return out
	}}
}

func initWithoutSpace() Definition {
	r := model.Rule{
		ID:          "ANCHOR-003",
		Title:       "Account init without explicit space",
		Description: "#[account(init)] without a space allocation relies on defaults and breaks when the account struct grows.",
		Severity:    model.SeverityLow,
		Type:        model.RuleTypeAnchor,
	}
	return Definition{Rule: r, Check: func(sf *parser.SourceFile) []model.Finding {
		var out []model.Finding
		for i, line := range sf.Lines {
			attr := strings.TrimSpace(line)
			if !strings.HasPrefix(attr, "#[account(init") {
				continue
			}
			if strings.Contains(attr, "space") || strings.Contains(attr, "zero_copy") {
				continue
			}
			out = append(out, newFinding(r, sf, i+1,
				"Account initialized without an explicit space allocation",
				"Specify space = 8 + size_of the account data"))
		}
		return out
	}}
}

func unwrapInHandler() Definition {
	r := model.Rule{
		ID:          "GEN-002",
		Title:       "Panic path in instruction handler",
		Description: "unwrap/expect/panic aborts the transaction with an opaque error and can be used to grief instruction processing.",
		Severity:    model.SeverityLow,
		Type:        model.RuleTypeGeneral,
	}
	return Definition{Rule: r, Check: func(sf *parser.SourceFile) []model.Finding {
		var out []model.Finding
		for i, line := range sf.Lines {
			if strings.Contains(line, ".unwrap()") || strings.Contains(line, ".expect(") || strings.Contains(line, "panic!(") {
				out = append(out, newFinding(r, sf, i+1,
					"Potential panic in program code",
					"Return a ProgramError/Anchor error instead of panicking"))
			}
		}
		return out
	}}
}

func todoMarker() Definition {
	r := model.Rule{
		ID:          "GEN-003",
		Title:       "Unresolved TODO marker",
		Description: "TODO/FIXME comments flag unfinished logic that should not ship in a deployed program.",
		Severity:    model.SeverityInformational,
		Type:        model.RuleTypeGeneral,
	}
	return Definition{Rule: r, Check: func(sf *parser.SourceFile) []model.Finding {
		var out []model.Finding
		for i, line := range sf.Lines {
			if strings.Contains(line, "TODO") || strings.Contains(line, "FIXME") {
				out = append(out, newFinding(r, sf, i+1, "Unresolved TODO/FIXME marker"))
			}
		}
		return out
	}}
}
