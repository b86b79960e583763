package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	previewDel  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	previewAdd  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	previewKeep = lipgloss.NewStyle().Faint(true)
)

// renderPreview renders the before/after worksheet listing as a unified
// line diff. Rows the pending action removes show up with "-" markers;
// changed rows (a kill flipping a state) show as a -/+ pair.
func renderPreview(before, after string, noColor bool) string {
	if before == after {
		return "No changes\n"
	}
	d := dmp.New()
	c1, c2, lineIndex := d.DiffLinesToChars(before, after)
	diffs := d.DiffCharsToLines(d.DiffMain(c1, c2, false), lineIndex)

	var sb strings.Builder
	for _, df := range diffs {
		marker, style := "  ", previewKeep
		switch df.Type {
		case dmp.DiffDelete:
			marker, style = "- ", previewDel
		case dmp.DiffInsert:
			marker, style = "+ ", previewAdd
		}
		for _, line := range splitLines(df.Text) {
			if noColor {
				sb.WriteString(marker + line + "\n")
				continue
			}
			sb.WriteString(style.Render(marker+line) + "\n")
		}
	}
	return sb.String()
}

// splitLines splits diff chunk text into lines, dropping the trailing
// empty element produced by a final newline.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
