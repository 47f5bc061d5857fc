package util

import (
	"strings"
	"testing"
)

func TestExtractSnippet(t *testing.T) {
	lines := []string{"l1", "l2", "l3", "l4", "l5", "l6"}
	got := ExtractSnippet(lines, 3, 2)
	if !strings.Contains(got, "l3") {
		t.Errorf("snippet should contain the target line, got %q", got)
	}
	if len(strings.Split(got, "\n")) > 3 {
		t.Errorf("snippet too wide: %q", got)
	}
	// out-of-range lines clamp instead of panicking
	if got := ExtractSnippet(lines, 99, 2); got == "" {
		t.Error("expected clamped snippet for out-of-range line")
	}
	if got := ExtractSnippet(nil, 1, 2); got != "" {
		t.Errorf("empty input should yield empty snippet, got %q", got)
	}
}
