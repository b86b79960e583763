// Package tui is the host for the bundle action menu: it owns the
// worksheet list, the confirmation dialogs, the clipboard effects, and
// the content fetcher. The action menu itself only forwards identifiers
// here.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bundleboard/internal/fetch"
	"bundleboard/internal/shared"
	"bundleboard/internal/tui/state"
	"bundleboard/internal/tui/util"
	"bundleboard/internal/tui/widgets/actionmenu"
	"bundleboard/internal/tui/widgets/confirm"
	"bundleboard/internal/tui/widgets/statechips"
	"bundleboard/internal/tui/widgets/statusbar"
	"bundleboard/internal/worksheet"
)

// Outcome is what Run returns when the session applied at least one
// action. Applied holds one human-readable line per applied action.
type Outcome struct {
	Worksheet *worksheet.Worksheet
	Applied   []string
}

// Run shows the worksheet TUI. It returns nil when the user aborted or
// applied nothing, otherwise the modified worksheet and the action log.
func Run(ws *worksheet.Worksheet, storeDir string) (*Outcome, error) {
	m := newModel(ws, storeDir)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}
	fm, ok := final.(model)
	if !ok || fm.aborted || len(fm.applied) == 0 {
		return nil, nil
	}
	return &Outcome{Worksheet: fm.ws, Applied: fm.applied}, nil
}

/* ---------- messages ---------- */

// actionMsg is the product of the dispatcher handed to the action menu:
// one message per activation, carrying the action identifier.
type actionMsg struct {
	action actionmenu.Action
}

type clipboardMsg struct {
	uuids []string
	cut   bool
	err   error
}

type fetchMsg fetch.Result

// dispatchAction is the Dispatch implementation given to the menu. It
// closes over nothing: the effect is decided in Update, where current
// state is available.
func dispatchAction(a actionmenu.Action) tea.Cmd {
	return func() tea.Msg { return actionMsg{action: a} }
}

/* ---------- model ---------- */

type model struct {
	ws       *worksheet.Worksheet
	storeDir string

	s       state.UIState
	menu    actionmenu.Menu
	dialog  confirm.Dialog
	status  statusbar.StatusBar
	keys    KeyMap
	help    help.Model
	noColor bool

	// fetch summaries by uuid, shown in the side panel
	summaries map[string]string

	applied []string
	aborted bool
}

func newModel(ws *worksheet.Worksheet, storeDir string) model {
	noColor := util.NoColor(false)
	return model{
		ws:        ws,
		storeDir:  storeDir,
		s:         state.NewUIState(len(ws.Items)),
		menu:      actionmenu.New(dispatchAction),
		dialog:    confirm.NewDialog(noColor),
		status:    statusbar.NewStatusBar(),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		noColor:   noColor,
		summaries: map[string]string{},
	}
}

func (m model) Init() tea.Cmd {
	_, cmd := m.peekCursor()
	return cmd
}

// Update handles all TUI interactions.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.s = state.Resize(m.s, msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.s.Stage == state.StageConfirming {
			return m.updateConfirming(msg)
		}
		return m.updateBrowsing(msg)

	case actionMsg:
		return m.handleAction(msg.action)

	case clipboardMsg:
		return m.handleClipboard(msg)

	case fetchMsg:
		m.s = state.SetFetch(m.s, msg.UUID, msg.Status)
		if msg.Summary != "" {
			m.summaries[msg.UUID] = msg.Summary
		}
		return m, nil
	}
	return m, nil
}

func (m model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Abort):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.s = state.MoveCursor(m.s, -1)
		next, cmd := m.peekCursor()
		return next, cmd
	case key.Matches(msg, m.keys.Down):
		m.s = state.MoveCursor(m.s, 1)
		next, cmd := m.peekCursor()
		return next, cmd
	case key.Matches(msg, m.keys.Mark):
		m.s = state.ToggleMark(m.s)
		return m, nil
	case key.Matches(msg, m.keys.Unmark):
		m.s = state.ClearMarks(m.s)
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	// Everything else belongs to the action menu.
	menu, cmd := m.menu.Update(msg)
	m.menu = menu
	return m, cmd
}

func (m model) updateConfirming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Abort):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.s = state.CloseDialog(m.s)
		return m, nil
	case key.Matches(msg, m.keys.Force):
		m.s = state.ToggleForce(m.s)
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		return m.applyDialog()
	}
	return m, nil
}

/* ---------- dispatcher effects ---------- */

// handleAction is the host side of the dispatch contract: map the
// identifier to an effect. rm/detach/kill open a confirmation dialog;
// copy/cut go straight to the clipboard.
func (m model) handleAction(a actionmenu.Action) (tea.Model, tea.Cmd) {
	switch a {
	case actionmenu.ActionRm:
		id := shared.DialogDeleteBundle
		if it, ok := m.cursorItem(); ok && it.Kind == worksheet.KindMarkdown && len(m.s.Marks) == 0 {
			id = shared.DialogDeleteMarkdown
		} else if len(m.targetUUIDs()) == 0 {
			m.s = state.SetNotice(m.s, "no bundles selected")
			return m, nil
		}
		m.s = state.OpenDialog(m.s, id)
		return m, nil

	case actionmenu.ActionDetach, actionmenu.ActionKill:
		if len(m.targetUUIDs()) == 0 {
			m.s = state.SetNotice(m.s, "no bundles selected")
			return m, nil
		}
		id := shared.DialogDetach
		if a == actionmenu.ActionKill {
			id = shared.DialogKill
		}
		m.s = state.OpenDialog(m.s, id)
		return m, nil

	case actionmenu.ActionCopy:
		return m, copyCmd(m.targetUUIDs(), false)

	case actionmenu.ActionCut:
		return m, copyCmd(m.targetUUIDs(), true)
	}
	return m, nil
}

func copyCmd(uuids []string, cut bool) tea.Cmd {
	if len(uuids) == 0 {
		return func() tea.Msg { return clipboardMsg{err: fmt.Errorf("no bundles selected")} }
	}
	return func() tea.Msg {
		err := clipboard.WriteAll(strings.Join(uuids, "\n"))
		return clipboardMsg{uuids: uuids, cut: cut, err: err}
	}
}

func (m model) handleClipboard(msg clipboardMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.s = state.SetNotice(m.s, fmt.Sprintf("copy failed: %v", msg.err))
		return m, nil
	}
	if msg.cut {
		m.ws = worksheet.Detach(m.ws, msg.uuids)
		m.s = state.Shrink(m.s, len(m.ws.Items))
		m.applied = append(m.applied, fmt.Sprintf("cut %d bundle(s) to clipboard", len(msg.uuids)))
		m.s = state.SetNotice(m.s, fmt.Sprintf("cut %d uuid(s)", len(msg.uuids)))
		return m, nil
	}
	m.applied = append(m.applied, fmt.Sprintf("copied %d uuid(s) to clipboard", len(msg.uuids)))
	m.s = state.SetNotice(m.s, fmt.Sprintf("copied %d uuid(s)", len(msg.uuids)))
	return m, nil
}

// applyDialog commits the confirmed action. Errors (a refused
// non-forced delete) keep the dialog open with a notice so the user can
// toggle force and retry.
func (m model) applyDialog() (tea.Model, tea.Cmd) {
	switch m.s.Dialog {
	case shared.DialogDeleteBundle:
		uuids := m.targetUUIDs()
		out, err := worksheet.Remove(m.ws, uuids, m.s.Force)
		if err != nil {
			m.s = state.SetNotice(m.s, err.Error())
			return m, nil
		}
		m.ws = out
		m.applied = append(m.applied, fmt.Sprintf("deleted %d bundle(s)", len(uuids)))
	case shared.DialogDetach:
		uuids := m.targetUUIDs()
		m.ws = worksheet.Detach(m.ws, uuids)
		m.applied = append(m.applied, fmt.Sprintf("detached %d bundle(s)", len(uuids)))
	case shared.DialogKill:
		uuids := m.targetUUIDs()
		m.ws = worksheet.Kill(m.ws, uuids)
		m.applied = append(m.applied, fmt.Sprintf("killed %d bundle(s)", len(uuids)))
	case shared.DialogDeleteMarkdown:
		out, err := worksheet.RemoveMarkdown(m.ws, m.s.Cursor)
		if err != nil {
			m.s = state.SetNotice(m.s, err.Error())
			m.s = state.CloseDialog(m.s)
			return m, nil
		}
		m.ws = out
		m.applied = append(m.applied, "deleted markdown block")
	}
	m.s = state.CloseDialog(m.s)
	m.s = state.Shrink(m.s, len(m.ws.Items))
	next, cmd := m.peekCursor()
	return next, cmd
}

/* ---------- selection & fetch ---------- */

func (m model) cursorItem() (worksheet.Item, bool) {
	if m.s.Cursor < 0 || m.s.Cursor >= len(m.ws.Items) {
		return worksheet.Item{}, false
	}
	return m.ws.Items[m.s.Cursor], true
}

// targetUUIDs resolves the marked set (or cursor row) to bundle uuids;
// markdown rows are skipped.
func (m model) targetUUIDs() []string {
	var out []string
	for _, i := range m.s.MarkedOrCursor() {
		if i < 0 || i >= len(m.ws.Items) {
			continue
		}
		if it := m.ws.Items[i]; it.Kind == worksheet.KindBundle {
			out = append(out, it.UUID)
		}
	}
	return out
}

// peekCursor marks the cursor bundle pending and starts a content fetch
// for it, unless its status is already resolved.
func (m model) peekCursor() (model, tea.Cmd) {
	it, ok := m.cursorItem()
	if !ok || it.Kind != worksheet.KindBundle {
		return m, nil
	}
	if st := m.s.Fetch[it.UUID]; st != "" && st != shared.FetchUnknown {
		return m, nil
	}
	m.s = state.SetFetch(m.s, it.UUID, shared.FetchPending)
	storeDir, uuid := m.storeDir, it.UUID
	return m, func() tea.Msg {
		res, err := fetch.Peek(context.Background(), storeDir, uuid)
		if err != nil {
			return fetchMsg(fetch.Result{UUID: uuid, Status: shared.FetchUnknown})
		}
		return fetchMsg(res)
	}
}

/* ---------- view ---------- */

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			PaddingLeft(1).
			Width(shared.SidePanelWidth)
)

func (m model) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render(fmt.Sprintf("Worksheet: %s (%s)", m.ws.Name, m.ws.UUID)))

	if m.s.Stage == state.StageConfirming {
		b.WriteString(m.dialog.View(m.s, m.dialogTargets(), m.previewDiff()))
		b.WriteString("\n")
		b.WriteString(m.status.View(m.s, m.cursorUUID()))
		return b.String()
	}

	list := m.listView()
	panel := panelStyle.Render(m.panelView())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, panel))
	b.WriteString("\n")
	b.WriteString(m.menu.View())
	b.WriteString("\n")
	b.WriteString(m.status.View(m.s, m.cursorUUID()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m model) listView() string {
	visible := m.s.Height - shared.MenuBarHeight - 6
	if visible < shared.MinListHeight {
		visible = shared.MinListHeight
	}
	top := 0
	if m.s.Cursor >= visible {
		top = m.s.Cursor - visible + 1
	}

	var b strings.Builder
	for i := top; i < len(m.ws.Items) && i < top+visible; i++ {
		it := m.ws.Items[i]
		cursor := "  "
		if i == m.s.Cursor {
			cursor = "> "
		}
		mark := " "
		if m.s.Marks[i] {
			mark = "*"
		}
		line := cursor + mark + " " + m.itemLine(it)
		if i == m.s.Cursor && !m.noColor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if len(m.ws.Items) == 0 {
		b.WriteString("  (worksheet is empty)\n")
	}
	return b.String()
}

func (m model) itemLine(it worksheet.Item) string {
	if it.Kind == worksheet.KindMarkdown {
		first := it.Text
		if i := strings.IndexByte(first, '\n'); i >= 0 {
			first = first[:i]
		}
		return "## " + first
	}
	uuid := it.UUID
	if len(uuid) > 8 {
		uuid = uuid[:8]
	}
	return fmt.Sprintf("%-8s  %-20s %s", uuid, it.Name, statechips.View(it.State, m.noColor))
}

// panelView shows the cursor bundle's fetch summary.
func (m model) panelView() string {
	it, ok := m.cursorItem()
	if !ok || it.Kind != worksheet.KindBundle {
		return "contents: n/a"
	}
	st := m.s.Fetch[it.UUID]
	if st == "" {
		st = shared.FetchUnknown
	}
	out := "contents: " + string(st)
	if sum := m.summaries[it.UUID]; sum != "" {
		out += "\n" + sum
	}
	return out
}

func (m model) cursorUUID() string {
	if it, ok := m.cursorItem(); ok && it.Kind == worksheet.KindBundle {
		return it.UUID
	}
	return ""
}

func (m model) dialogTargets() int {
	if m.s.Dialog == shared.DialogDeleteMarkdown {
		return 1
	}
	return len(m.targetUUIDs())
}

// previewDiff renders what the pending dialog would do to the listing.
func (m model) previewDiff() string {
	before := m.ws.Lines()
	after := before
	switch m.s.Dialog {
	case shared.DialogDeleteBundle:
		if out, err := worksheet.Remove(m.ws, m.targetUUIDs(), true); err == nil {
			after = out.Lines()
		}
	case shared.DialogDetach:
		after = worksheet.Detach(m.ws, m.targetUUIDs()).Lines()
	case shared.DialogKill:
		after = worksheet.Kill(m.ws, m.targetUUIDs()).Lines()
	case shared.DialogDeleteMarkdown:
		if out, err := worksheet.RemoveMarkdown(m.ws, m.s.Cursor); err == nil {
			after = out.Lines()
		}
	}
	return renderPreview(before, after, m.noColor)
}
