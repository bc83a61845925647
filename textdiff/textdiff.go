// Package textdiff renders compact inline diffs of two strings, for test
// failure output.
package textdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns an inline diff from `from` to `to`, with deletions in
// [-...-] and insertions in {+...+}.
func Diff(from, to string) string {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	var sb strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			sb.WriteString("[-")
			sb.WriteString(diff.Text)
			sb.WriteString("-]")
		case diffpatch.DiffInsert:
			sb.WriteString("{+")
			sb.WriteString(diff.Text)
			sb.WriteString("+}")
		case diffpatch.DiffEqual:
			sb.WriteString(diff.Text)
		}
	}
	return sb.String()
}
