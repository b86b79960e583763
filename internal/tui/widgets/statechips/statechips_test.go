package statechips

import (
	"testing"

	"bundleboard/internal/worksheet"
)

func TestASCIIFallback(t *testing.T) {
	for _, st := range []string{
		worksheet.StateCreated,
		worksheet.StateRunning,
		worksheet.StateReady,
		worksheet.StateFailed,
		worksheet.StateKilled,
	} {
		if got := View(st, true); got != "["+st+"]" {
			t.Fatalf("state %s: got %q", st, got)
		}
	}
}
