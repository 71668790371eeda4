package task

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDescription is returned when a task description is empty.
	ErrEmptyDescription = errors.New("task description cannot be empty")

	// ErrInvalidPriority is returned when priority is outside valid range.
	ErrInvalidPriority = errors.New("priority must be between 1 and 5")

	// ErrIndexOutOfRange is returned when a task number does not identify
	// a task in the list.
	ErrIndexOutOfRange = errors.New("task number out of range")
)

// ValidateDescription checks if the description is valid.
func ValidateDescription(description string) error {
	if description == "" {
		return ErrEmptyDescription
	}
	return nil
}

// ValidatePriority checks if the priority is valid.
func ValidatePriority(priority int) error {
	if priority < PriorityMin || priority > PriorityMax {
		return fmt.Errorf("%w: got %d", ErrInvalidPriority, priority)
	}
	return nil
}

func validateIndex(tasks []Task, index int) error {
	if index < 1 || index > len(tasks) {
		return fmt.Errorf("%w: got %d with %d tasks", ErrIndexOutOfRange, index, len(tasks))
	}
	return nil
}
