package state

import "bundleboard/internal/shared"

// Stage is the confirmation machine: either no dialog is up, or exactly
// one dialog is awaiting confirm/cancel.
type Stage int

const (
	StageClosed Stage = iota
	StageConfirming
)

// UIState holds cross-widget UI state used by the menu, list, dialog and
// status bar. Reducers copy it in and out; map fields are replaced, not
// mutated, by any transition that touches them.
type UIState struct {
	// Layout
	Width  int
	Height int

	// List cursor & space-marked selection (item indices).
	Cursor int
	Items  int // total item count, for cursor clamping
	Marks  map[int]bool

	// Confirmation dialog
	Stage  Stage
	Dialog shared.DialogID
	Force  bool // "break dependencies" checkbox, delete dialog only

	// Per-bundle fetch status, keyed by uuid.
	Fetch map[string]shared.FetchStatus

	// Ephemeral one-line message for the status bar.
	Notice string
}

// NewUIState returns a state for a list of n items with empty maps.
func NewUIState(n int) UIState {
	return UIState{
		Items: n,
		Marks: map[int]bool{},
		Fetch: map[string]shared.FetchStatus{},
	}
}

// MarkedOrCursor returns the indices an action applies to: the marked
// set when non-empty, otherwise just the cursor row.
func (s UIState) MarkedOrCursor() []int {
	if len(s.Marks) == 0 {
		if s.Items == 0 {
			return nil
		}
		return []int{s.Cursor}
	}
	out := make([]int, 0, len(s.Marks))
	for i := range s.Marks {
		out = append(out, i)
	}
	return out
}
