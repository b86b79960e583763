package confirm

import (
	"strings"
	"testing"

	"bundleboard/internal/shared"
	"bundleboard/internal/tui/state"
)

func confirming(id shared.DialogID) state.UIState {
	return state.OpenDialog(state.NewUIState(3), id)
}

func TestViewEmptyWhenClosed(t *testing.T) {
	d := NewDialog(true)
	if out := d.View(state.NewUIState(3), 1, ""); out != "" {
		t.Fatalf("closed dialog must render nothing, got %q", out)
	}
}

func TestTitlesPerDialog(t *testing.T) {
	cases := map[shared.DialogID]string{
		shared.DialogDeleteBundle:   "Delete bundles",
		shared.DialogDetach:         "Detach",
		shared.DialogKill:           "Kill",
		shared.DialogDeleteMarkdown: "markdown",
	}
	d := NewDialog(true)
	for id, want := range cases {
		out := d.View(confirming(id), 2, "- gone\n")
		if !strings.Contains(out, want) {
			t.Fatalf("dialog %d: %q missing from %q", id, want, out)
		}
	}
}

func TestForceCheckboxOnlyForDelete(t *testing.T) {
	d := NewDialog(true)
	out := d.View(confirming(shared.DialogDeleteBundle), 1, "")
	if !strings.Contains(out, "[ ] force") {
		t.Fatalf("expected unchecked force box: %q", out)
	}
	s := state.ToggleForce(confirming(shared.DialogDeleteBundle))
	if out := d.View(s, 1, ""); !strings.Contains(out, "[x] force") {
		t.Fatalf("expected checked force box: %q", out)
	}
	if out := d.View(confirming(shared.DialogKill), 1, ""); strings.Contains(out, "force") {
		t.Fatalf("kill dialog must not offer force: %q", out)
	}
}

func TestPreviewEmbedded(t *testing.T) {
	d := NewDialog(true)
	out := d.View(confirming(shared.DialogDetach), 1, "- 0xaaa  dataset\n")
	if !strings.Contains(out, "- 0xaaa") {
		t.Fatalf("preview not embedded: %q", out)
	}
}
