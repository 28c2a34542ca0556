// Package diagnostics provides human-readable diffing between document
// snapshots, for debugging and golden-file test failures.
package diagnostics

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	colorGreen = "\x1b[32m"
	colorRed   = "\x1b[31m"
	colorCyan  = "\x1b[36m"
	colorReset = "\x1b[0m"
)

// UnifiedDiff renders a unified diff between two renderings of a document
// (e.g. two tree dumps, or before/after HTML) with the given amount of
// surrounding context. Pass color to highlight additions/removals/hunk
// headers for terminal output.
func UnifiedDiff(before, after, label string, context int, color bool) string {
	d := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: label,
		ToFile:   label + " (after)",
		Context:  context,
	}
	text, err := difflib.GetUnifiedDiffString(d)
	if err != nil {
		return "(diff error: " + err.Error() + ")"
	}
	if !color {
		return text
	}
	return colorizeDiff(text)
}

func colorizeDiff(text string) string {
	var sb strings.Builder
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if i == len(lines)-1 && l == "" {
			continue
		}
		switch {
		case strings.HasPrefix(l, "+"):
			sb.WriteString(colorGreen + l + colorReset + "\n")
		case strings.HasPrefix(l, "-"):
			sb.WriteString(colorRed + l + colorReset + "\n")
		case strings.HasPrefix(l, "@"):
			sb.WriteString(colorCyan + l + colorReset + "\n")
		default:
			sb.WriteString(l + "\n")
		}
	}
	return sb.String()
}

// Equal reports whether two renderings are identical, for tests that only
// need a pass/fail rather than a printed diff.
func Equal(before, after string) bool {
	return before == after
}
