// Package statechips renders a bundle's run state as a small colored
// chip, with an ASCII fallback when color is disabled.
package statechips

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"bundleboard/internal/tui/util"
	"bundleboard/internal/worksheet"
)

// View renders one state chip.
func View(bundleState string, noColor bool) string {
	if util.NoColor(noColor) {
		return fmt.Sprintf("[%s]", bundleState)
	}
	return chipStyle(bundleState).Render(" " + bundleState + " ")
}

func chipStyle(bundleState string) lipgloss.Style {
	p := util.DefaultPalette()
	base := lipgloss.NewStyle().Bold(true)
	switch bundleState {
	case worksheet.StateReady:
		return base.Foreground(p.Success)
	case worksheet.StateRunning:
		return base.Foreground(p.Primary)
	case worksheet.StateFailed:
		return base.Foreground(p.Danger)
	case worksheet.StateKilled:
		return base.Foreground(p.Warning)
	case worksheet.StateCreated:
		return base.Foreground(p.Muted)
	default:
		return base
	}
}
