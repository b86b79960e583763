package state

import "bundleboard/internal/shared"

// OpenDialog enters StageConfirming with the given dialog. A no-op while
// another dialog is already up: one dialog at a time.
func OpenDialog(s UIState, id shared.DialogID) UIState {
	if s.Stage == StageConfirming || id == shared.DialogNone {
		return s
	}
	s.Stage = StageConfirming
	s.Dialog = id
	s.Force = false
	return s
}

// CloseDialog returns to StageClosed regardless of which dialog was up.
// The Force checkbox never survives a close.
func CloseDialog(s UIState) UIState {
	s.Stage = StageClosed
	s.Dialog = shared.DialogNone
	s.Force = false
	return s
}

// ToggleForce flips the break-dependencies checkbox. Only meaningful
// while the delete-bundle dialog is confirming; otherwise a no-op.
func ToggleForce(s UIState) UIState {
	if s.Stage != StageConfirming || s.Dialog != shared.DialogDeleteBundle {
		return s
	}
	s.Force = !s.Force
	return s
}

// MoveCursor shifts the cursor by delta, clamped to the item range.
func MoveCursor(s UIState, delta int) UIState {
	s.Cursor += delta
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor >= s.Items {
		s.Cursor = s.Items - 1
	}
	if s.Cursor < 0 { // empty list
		s.Cursor = 0
	}
	return s
}

// ToggleMark flips the mark on the cursor row.
func ToggleMark(s UIState) UIState {
	if s.Items == 0 {
		return s
	}
	marks := make(map[int]bool, len(s.Marks)+1)
	for k := range s.Marks {
		marks[k] = true
	}
	if marks[s.Cursor] {
		delete(marks, s.Cursor)
	} else {
		marks[s.Cursor] = true
	}
	s.Marks = marks
	return s
}

// ClearMarks drops the whole marked set.
func ClearMarks(s UIState) UIState {
	s.Marks = map[int]bool{}
	return s
}

// Resize records the new terminal size.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height
	return s
}

// SetFetch records a fetch status for one bundle.
func SetFetch(s UIState, uuid string, st shared.FetchStatus) UIState {
	fetch := make(map[string]shared.FetchStatus, len(s.Fetch)+1)
	for k, v := range s.Fetch {
		fetch[k] = v
	}
	fetch[uuid] = st
	s.Fetch = fetch
	return s
}

// SetNotice replaces the status-bar message.
func SetNotice(s UIState, msg string) UIState {
	s.Notice = msg
	return s
}

// Shrink clamps cursor and marks after the item count changed (an action
// removed rows). Marks do not survive a shrink; stale indices would
// point at the wrong rows.
func Shrink(s UIState, items int) UIState {
	s.Items = items
	s.Marks = map[int]bool{}
	if s.Cursor >= items {
		s.Cursor = items - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	return s
}
