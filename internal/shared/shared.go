// Package shared holds process-wide constants used across the TUI and the
// worksheet model. Everything here is fixed at build time and read-only.
package shared

// Version is shown in the status bar and sent along with API calls.
// It must stay in sync with the version advertised by the bundle service;
// nothing in this program can enforce that on its own.
const Version = "0.5.2"

// Layout sizing shared by widgets so panels line up.
const (
	MenuBarHeight  = 1
	SidePanelWidth = 28
	DialogWidth    = 56
	MinListHeight  = 5
)

// DialogID distinguishes which confirmation dialog is active.
// Values are wire-stable: the host persists the last-open dialog across
// redraws and other components key off the integer.
type DialogID int

const (
	DialogNone           DialogID = 0
	DialogDeleteBundle   DialogID = 1
	DialogDetach         DialogID = 2
	DialogKill           DialogID = 3
	DialogDeleteMarkdown DialogID = 4
)

// FetchStatus is the lifecycle state of an asynchronous bundle-content
// fetch. The codes match the service's own status strings.
type FetchStatus string

const (
	FetchUnknown       FetchStatus = "unknown"
	FetchPending       FetchStatus = "pending"
	FetchBrieflyLoaded FetchStatus = "briefly_loaded"
	FetchReady         FetchStatus = "ready"
	FetchNotFound      FetchStatus = "not_found"
	FetchNoPermission  FetchStatus = "no_permission"
)
