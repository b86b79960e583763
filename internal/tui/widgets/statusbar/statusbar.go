package statusbar

import (
	"fmt"
	"strings"

	"bundleboard/internal/shared"
	"bundleboard/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line: version, item/mark counts, the
// cursor row's fetch status, and any pending notice.
func (StatusBar) View(s state.UIState, cursorUUID string) string {
	version := "v" + shared.Version
	items := fmt.Sprintf("%d items", s.Items)
	parts := []string{version, items}
	if len(s.Marks) > 0 {
		parts = append(parts, fmt.Sprintf("%d marked", len(s.Marks)))
	}
	if cursorUUID != "" {
		st := s.Fetch[cursorUUID]
		if st == "" {
			st = shared.FetchUnknown
		}
		parts = append(parts, fmt.Sprintf("fetch: %s", st))
	}
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
