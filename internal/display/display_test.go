package display

import (
	"strings"
	"testing"

	"github.com/Inversive-Labs/eloizer/internal/model"
)

func TestSeverityStyleTotal(t *testing.T) {
	c := New(true, false, false)
	for _, sev := range model.Severities() {
		st := c.SeverityStyle(sev)
		if st.Icon == "" {
			t.Errorf("severity %s has no icon", sev)
		}
	}
	// unknown values fall back instead of panicking
	if st := c.SeverityStyle(model.Severity("whatever")); st.Icon == "" {
		t.Error("fallback style missing icon")
	}
}

func TestNoColorStripsEscapes(t *testing.T) {
	c := New(true, false, false)
	out := c.SeverityStyle(model.SeverityHigh).Sprint("danger")
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected plain output with color disabled, got %q", out)
	}
	if out != "danger" {
		t.Errorf("Sprint() = %q", out)
	}
}

func TestQuietSpinnerIsInert(t *testing.T) {
	c := New(true, false, true)
	sp := c.NewSpinner("working")
	sp.Stop()
	sp.Stop() // idempotent
}
