package actionmenu

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// recorder collects dispatched identifiers. The returned command is a
// marker so tests can also check that the widget hands the host's
// command back unmodified.
type recorder struct {
	calls []Action
}

func (r *recorder) dispatch(a Action) tea.Cmd {
	r.calls = append(r.calls, a)
	return func() tea.Msg { return a }
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "left" {
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	if s == "right" {
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNoDispatchBeforeActivation(t *testing.T) {
	rec := &recorder{}
	m := New(rec.dispatch)
	_ = m.View()
	m, _ = m.Update(keyMsg("right"))
	m, _ = m.Update(keyMsg("left"))
	_ = m.View()
	if len(rec.calls) != 0 {
		t.Fatalf("render/focus must not dispatch, got %v", rec.calls)
	}
}

func TestHotkeysDispatchMatchingIdentifier(t *testing.T) {
	cases := []struct {
		key  string
		want Action
	}{
		{"d", "rm"},
		{"t", "detach"},
		{"k", "kill"},
		{"c", "copy"},
		{"x", "cut"},
	}
	for _, tc := range cases {
		rec := &recorder{}
		m := New(rec.dispatch)
		_, cmd := m.Update(keyMsg(tc.key))
		if len(rec.calls) != 1 || rec.calls[0] != tc.want {
			t.Fatalf("key %q: recorded %v, want [%s]", tc.key, rec.calls, tc.want)
		}
		if cmd == nil {
			t.Fatalf("key %q: host command dropped", tc.key)
		}
		if got := cmd(); got != tc.want {
			t.Fatalf("key %q: command yielded %v", tc.key, got)
		}
	}
}

func TestEnterDispatchesFocusedActionOnce(t *testing.T) {
	rec := &recorder{}
	m := New(rec.dispatch)
	m, _ = m.Update(keyMsg("right")) // detach
	m, _ = m.Update(keyMsg("right")) // kill
	m, _ = m.Update(keyMsg("enter"))
	if len(rec.calls) != 1 || rec.calls[0] != ActionKill {
		t.Fatalf("recorded %v, want [kill]", rec.calls)
	}
}

func TestFocusClampsAtEdges(t *testing.T) {
	m := New((&recorder{}).dispatch)
	m, _ = m.Update(keyMsg("left"))
	if m.Focused() != ActionRm {
		t.Fatalf("focus moved past left edge: %s", m.Focused())
	}
	for i := 0; i < 10; i++ {
		m, _ = m.Update(keyMsg("right"))
	}
	if m.Focused() != ActionCut {
		t.Fatalf("focus moved past right edge: %s", m.Focused())
	}
}

func TestFixedOrder(t *testing.T) {
	want := []Action{"rm", "detach", "kill", "copy", "cut"}
	if len(Actions) != len(want) {
		t.Fatalf("action set changed: %v", Actions)
	}
	for i, a := range want {
		if Actions[i] != a {
			t.Fatalf("action %d: got %s, want %s", i, Actions[i], a)
		}
	}
}

func TestViewASCIIFallback(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	m := New((&recorder{}).dispatch)
	out := m.View()
	for _, label := range []string{"Delete", "Detach", "Kill", "Copy", "Cut"} {
		if !strings.Contains(out, label) {
			t.Fatalf("label %q missing: %s", label, out)
		}
	}
	if !strings.Contains(out, ">Delete (d)<") {
		t.Fatalf("focused chip not marked: %s", out)
	}
}
