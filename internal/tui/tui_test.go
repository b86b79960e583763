package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"bundleboard/internal/shared"
	"bundleboard/internal/tui/state"
	"bundleboard/internal/worksheet"
)

func testWorksheet() *worksheet.Worksheet {
	return &worksheet.Worksheet{
		Name: "experiments",
		UUID: "0xws1",
		Items: []worksheet.Item{
			{Kind: worksheet.KindMarkdown, Text: "Runs"},
			{Kind: worksheet.KindBundle, UUID: "0xaaa", Name: "dataset", BundleType: "dataset", State: worksheet.StateReady},
			{Kind: worksheet.KindBundle, UUID: "0xbbb", Name: "train", BundleType: "run", State: worksheet.StateRunning, Deps: []string{"0xaaa"}},
		},
	}
}

func step(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func enter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func esc() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEscape} }
func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRmOnBundleOpensDeleteDialog(t *testing.T) {
	m := newModel(testWorksheet(), t.TempDir())
	m.s = state.MoveCursor(m.s, 1) // first bundle row
	m = step(t, m, actionMsg{action: "rm"})
	if m.s.Stage != state.StageConfirming || m.s.Dialog != shared.DialogDeleteBundle {
		t.Fatalf("expected delete dialog, got stage=%d dialog=%d", m.s.Stage, m.s.Dialog)
	}
}

func TestRmOnMarkdownOpensMarkdownDialog(t *testing.T) {
	m := newModel(testWorksheet(), t.TempDir())
	m = step(t, m, actionMsg{action: "rm"}) // cursor starts on the markdown block
	if m.s.Dialog != shared.DialogDeleteMarkdown {
		t.Fatalf("expected markdown dialog, got %d", m.s.Dialog)
	}
	m = step(t, m, enter())
	if len(m.ws.Items) != 2 {
		t.Fatalf("markdown block not removed: %d items", len(m.ws.Items))
	}
	if len(m.applied) != 1 {
		t.Fatalf("applied log: %v", m.applied)
	}
}

func TestDeleteRefusedWithoutForceKeepsDialogOpen(t *testing.T) {
	m := newModel(testWorksheet(), t.TempDir())
	m.s = state.MoveCursor(m.s, 1) // dataset, which train depends on
	m = step(t, m, actionMsg{action: "rm"})
	m = step(t, m, enter())
	if m.s.Stage != state.StageConfirming {
		t.Fatalf("refused delete must keep dialog open")
	}
	if !strings.Contains(m.s.Notice, "depends on") {
		t.Fatalf("expected dependency notice, got %q", m.s.Notice)
	}
	if len(m.ws.Items) != 3 {
		t.Fatalf("worksheet changed despite refusal")
	}

	m = step(t, m, runes("f")) // force, then retry
	m = step(t, m, enter())
	if m.s.Stage != state.StageClosed {
		t.Fatalf("forced delete should close dialog")
	}
	if len(m.ws.Bundles()) != 1 {
		t.Fatalf("expected 1 bundle left, got %d", len(m.ws.Bundles()))
	}
}

func TestDetachFlow(t *testing.T) {
	m := newModel(testWorksheet(), t.TempDir())
	m.s = state.MoveCursor(m.s, 2) // train
	m = step(t, m, actionMsg{action: "detach"})
	if m.s.Dialog != shared.DialogDetach {
		t.Fatalf("expected detach dialog, got %d", m.s.Dialog)
	}
	m = step(t, m, enter())
	if len(m.ws.Bundles()) != 1 {
		t.Fatalf("detach did not drop row")
	}
	if m.ws.Items[0].Kind != worksheet.KindMarkdown {
		t.Fatalf("markdown must survive detach")
	}
}

func TestKillFlow(t *testing.T) {
	m := newModel(testWorksheet(), t.TempDir())
	m.s = state.MoveCursor(m.s, 2)
	m = step(t, m, actionMsg{action: "kill"})
	if m.s.Dialog != shared.DialogKill {
		t.Fatalf("expected kill dialog, got %d", m.s.Dialog)
	}
	m = step(t, m, enter())
	if m.ws.Items[2].State != worksheet.StateKilled {
		t.Fatalf("train not killed: %s", m.ws.Items[2].State)
	}
	if len(m.ws.Items) != 3 {
		t.Fatalf("kill must not remove rows")
	}
}

func TestCancelAppliesNothing(t *testing.T) {
	m := newModel(testWorksheet(), t.TempDir())
	m.s = state.MoveCursor(m.s, 1)
	m = step(t, m, actionMsg{action: "detach"})
	m = step(t, m, esc())
	if m.s.Stage != state.StageClosed {
		t.Fatalf("esc must close dialog")
	}
	if len(m.applied) != 0 || len(m.ws.Items) != 3 {
		t.Fatalf("cancel must not change anything")
	}
}

func TestCutDetachesAfterClipboardWrite(t *testing.T) {
	m := newModel(testWorksheet(), t.TempDir())
	m.s = state.MoveCursor(m.s, 2)
	m = step(t, m, clipboardMsg{uuids: []string{"0xbbb"}, cut: true})
	if len(m.ws.Bundles()) != 1 {
		t.Fatalf("cut did not detach")
	}
	if len(m.applied) != 1 || !strings.Contains(m.applied[0], "cut") {
		t.Fatalf("applied log: %v", m.applied)
	}
}

func TestClipboardFailureOnlySetsNotice(t *testing.T) {
	m := newModel(testWorksheet(), t.TempDir())
	m = step(t, m, clipboardMsg{uuids: []string{"0xbbb"}, cut: true, err: errFake})
	if len(m.ws.Items) != 3 || len(m.applied) != 0 {
		t.Fatalf("failed clipboard write must not apply the cut")
	}
	if !strings.Contains(m.s.Notice, "copy failed") {
		t.Fatalf("notice: %q", m.s.Notice)
	}
}

func TestFetchMsgRecordsStatusAndSummary(t *testing.T) {
	m := newModel(testWorksheet(), t.TempDir())
	m = step(t, m, fetchMsg{UUID: "0xaaa", Status: shared.FetchReady, Summary: "stdout stderr"})
	if m.s.Fetch["0xaaa"] != shared.FetchReady {
		t.Fatalf("fetch status not recorded")
	}
	if m.summaries["0xaaa"] != "stdout stderr" {
		t.Fatalf("summary not recorded")
	}
}

var errFake = fakeErr{}

type fakeErr struct{}

func (fakeErr) Error() string { return "clipboard unavailable" }
