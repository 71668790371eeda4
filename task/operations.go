package task

import (
	"iter"
	"strings"
)

// Add appends a new pending task to the list. The description is trimmed
// and must be non-empty. A blank due date is stored as NoDueDate; anything
// else is stored as entered.
func Add(tasks []Task, description string, priority int, dueDate string) ([]Task, error) {
	description = strings.TrimSpace(description)
	if err := ValidateDescription(description); err != nil {
		return nil, err
	}
	if err := ValidatePriority(priority); err != nil {
		return nil, err
	}

	dueDate = strings.TrimSpace(dueDate)
	if dueDate == "" {
		dueDate = NoDueDate
	}

	return append(tasks, Task{
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
	}), nil
}

// Complete marks the task at the 1-based index as completed. Completing
// an already-completed task is a no-op.
func Complete(tasks []Task, index int) ([]Task, error) {
	if err := validateIndex(tasks, index); err != nil {
		return nil, err
	}

	tasks[index-1].Completed = true
	return tasks, nil
}

// Remove deletes the task at the 1-based index, returning the updated
// list and the removed task.
func Remove(tasks []Task, index int) ([]Task, Task, error) {
	if err := validateIndex(tasks, index); err != nil {
		return nil, Task{}, err
	}

	removed := tasks[index-1]
	return append(tasks[:index-1], tasks[index:]...), removed, nil
}

// EditOptions configures fields to update on a task.
// Nil pointers mean "keep the current value".
type EditOptions struct {
	Description *string
	Priority    *int
	DueDate     *string
}

// Edit updates the task at the 1-based index with the given options.
// A non-nil blank due date clears the field back to NoDueDate.
func Edit(tasks []Task, index int, opts EditOptions) ([]Task, error) {
	if err := validateIndex(tasks, index); err != nil {
		return nil, err
	}

	if opts.Description != nil {
		description := strings.TrimSpace(*opts.Description)
		if err := ValidateDescription(description); err != nil {
			return nil, err
		}
		opts.Description = &description
	}
	if opts.Priority != nil {
		if err := ValidatePriority(*opts.Priority); err != nil {
			return nil, err
		}
	}

	t := &tasks[index-1]
	if opts.Description != nil {
		t.Description = *opts.Description
	}
	if opts.Priority != nil {
		t.Priority = *opts.Priority
	}
	if opts.DueDate != nil {
		dueDate := strings.TrimSpace(*opts.DueDate)
		if dueDate == "" {
			dueDate = NoDueDate
		}
		t.DueDate = dueDate
	}

	return tasks, nil
}

// Enumerate yields tasks with their 1-based display numbers.
func Enumerate(tasks []Task) iter.Seq2[int, Task] {
	return func(yield func(int, Task) bool) {
		for i, t := range tasks {
			if !yield(i+1, t) {
				return
			}
		}
	}
}

// CompletedCount returns the number of completed tasks.
func CompletedCount(tasks []Task) int {
	count := 0
	for _, t := range tasks {
		if t.Completed {
			count++
		}
	}
	return count
}
