// Package actionmenu renders the fixed row of bundle bulk actions and
// forwards activations to a host-supplied dispatcher. The menu owns no
// behavior: every activation becomes exactly one dispatch call with the
// action's identifier, and what happens next is the host's business.
package actionmenu

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Action identifies one bulk action. The set is closed: these five, in
// this order, known at build time.
type Action string

const (
	ActionRm     Action = "rm"
	ActionDetach Action = "detach"
	ActionKill   Action = "kill"
	ActionCopy   Action = "copy"
	ActionCut    Action = "cut"
)

// Actions is the fixed display order.
var Actions = []Action{ActionRm, ActionDetach, ActionKill, ActionCopy, ActionCut}

// Dispatch produces the host's handler for an action. The menu never
// inspects the returned command. Must be non-nil before any activation;
// a nil dispatch is a caller contract violation, not a handled error.
type Dispatch func(Action) tea.Cmd

type entry struct {
	action Action
	label  string
	hotkey string
}

// One direct hotkey per action, active regardless of focus.
var entries = []entry{
	{ActionRm, "Delete", "d"},
	{ActionDetach, "Detach", "t"},
	{ActionKill, "Kill", "k"},
	{ActionCopy, "Copy", "c"},
	{ActionCut, "Cut", "x"},
}

// Menu is the action row. Zero focus is the first action.
type Menu struct {
	dispatch Dispatch
	focus    int
	noColor  bool
}

func New(dispatch Dispatch) Menu {
	return Menu{dispatch: dispatch, noColor: os.Getenv("NO_COLOR") != ""}
}

// Focused returns the action the focus cursor is on.
func (m Menu) Focused() Action { return entries[m.focus].action }

// Update handles menu key events. Focus movement never dispatches;
// enter dispatches the focused action, a hotkey dispatches its action
// directly. Unrecognized keys return the menu unchanged.
func (m Menu) Update(msg tea.KeyMsg) (Menu, tea.Cmd) {
	k := msg.String()
	switch k {
	case "left", "h":
		if m.focus > 0 {
			m.focus--
		}
		return m, nil
	case "right", "l":
		if m.focus < len(entries)-1 {
			m.focus++
		}
		return m, nil
	case "enter":
		return m, m.dispatch(entries[m.focus].action)
	}
	for _, e := range entries {
		if k == e.hotkey {
			return m, m.dispatch(e.action)
		}
	}
	return m, nil
}

// View renders the chips row. ASCII fallback under NO_COLOR keeps the
// focused chip visible as >Label<.
func (m Menu) View() string {
	parts := make([]string, 0, len(entries))
	for i, e := range entries {
		parts = append(parts, m.renderChip(e, i == m.focus))
	}
	return strings.Join(parts, " ")
}

func (m Menu) renderChip(e entry, focused bool) string {
	label := fmt.Sprintf("%s (%s)", e.label, e.hotkey)
	if m.noColor {
		if focused {
			return fmt.Sprintf(">%s<", label)
		}
		return fmt.Sprintf("[%s]", label)
	}
	style := chipStyle(e.action, focused)
	return style.Render(" " + label + " ")
}

func chipStyle(a Action, focused bool) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)
	if focused {
		base = base.Bold(true).Reverse(true)
	}
	switch a {
	case ActionRm:
		return base.Foreground(lipgloss.Color("#D9534F"))
	case ActionDetach:
		return base.Foreground(lipgloss.Color("#F0AD4E"))
	case ActionKill:
		return base.Foreground(lipgloss.Color("#D9534F"))
	case ActionCopy:
		return base.Foreground(lipgloss.Color("#3D6DFF"))
	case ActionCut:
		return base.Foreground(lipgloss.Color("#3D6DFF"))
	default:
		return base
	}
}
