// Package confirm renders the modal confirmation dialog for the bulk
// actions that need one. The dialog holds no state of its own: which
// dialog is up, and whether force is checked, live in state.UIState.
package confirm

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bundleboard/internal/shared"
	"bundleboard/internal/tui/state"
	"bundleboard/internal/tui/util"
)

// Title returns the heading for a dialog.
func Title(id shared.DialogID) string {
	switch id {
	case shared.DialogDeleteBundle:
		return "Delete bundles"
	case shared.DialogDetach:
		return "Detach from worksheet"
	case shared.DialogKill:
		return "Kill running bundles"
	case shared.DialogDeleteMarkdown:
		return "Delete markdown block"
	default:
		return ""
	}
}

type Dialog struct {
	noColor bool
}

func NewDialog(noColor bool) Dialog {
	return Dialog{noColor: util.NoColor(noColor)}
}

// View renders the dialog box for the active dialog. preview is the
// before/after listing diff supplied by the host; targets is how many
// rows the action applies to.
func (d Dialog) View(s state.UIState, targets int, preview string) string {
	if s.Stage != state.StageConfirming {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d selected)\n\n", Title(s.Dialog), targets)
	b.WriteString(preview)
	if s.Dialog == shared.DialogDeleteBundle {
		box := "[ ]"
		if s.Force {
			box = "[x]"
		}
		fmt.Fprintf(&b, "\n%s force: also break dependent bundles (f)\n", box)
	}
	b.WriteString("\nenter: confirm   esc: cancel")

	if d.noColor {
		return b.String()
	}
	p := util.DefaultPalette()
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor(s.Dialog, p)).
		Padding(0, 1).
		Width(shared.DialogWidth)
	return frame.Render(b.String())
}

func borderColor(id shared.DialogID, p util.Palette) lipgloss.Color {
	switch id {
	case shared.DialogDeleteBundle, shared.DialogKill:
		return p.Danger
	case shared.DialogDetach:
		return p.Warning
	default:
		return p.Muted
	}
}
