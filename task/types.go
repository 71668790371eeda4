// Package task implements the treehouse task list.
//
// Tasks live in a single flat list persisted as a JSON array by Store.
// The operations are pure transitions on that list: each validates its
// input, applies one change, and leaves persistence to the caller.
//
// The public API mirrors the menu actions:
//   - Add, Complete, Remove, Edit for the task lifecycle
//   - Enumerate, CompletedCount for display
//   - SortByPriority, SortByDueDate for reordering
package task

// Priority constants for tasks. Lower numbers are more urgent.
const (
	PriorityHigh       = 1
	PriorityMediumHigh = 2
	PriorityMedium     = 3
	PriorityMediumLow  = 4
	PriorityLow        = 5

	PriorityMin = 1
	PriorityMax = 5
)

// PriorityName returns a human-readable name for the priority level.
func PriorityName(p int) string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMediumHigh:
		return "medium-high"
	case PriorityMedium:
		return "medium"
	case PriorityMediumLow:
		return "medium-low"
	case PriorityLow:
		return "low"
	default:
		return "unknown"
	}
}

// PriorityPtr returns a pointer to the provided priority.
func PriorityPtr(priority int) *int {
	return &priority
}

// NoDueDate is stored in a task's due date field when none was given.
const NoDueDate = "No due date"

// DueDateFormat is the reference layout for parseable due dates.
const DueDateFormat = "2006-01-02"
