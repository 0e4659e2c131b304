package models

// ============================================================================
// STATUS CONSTANTS
// ============================================================================

// Source statuses with special meaning during import. These never become
// columns; the first two map to lifecycle transitions.
const (
	StatusDone   = "Done"
	StatusNotNow = "Not now"
	StatusMaybe  = "Maybe?"
)

// DefaultTerminalStatuses lists the statuses that never materialize as columns
var DefaultTerminalStatuses = []string{StatusDone, StatusNotNow, StatusMaybe}
