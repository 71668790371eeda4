package task

// Task represents a single tracked task.
type Task struct {
	// Description is the free-text summary of the task.
	Description string `json:"description"`

	// Priority is the importance level (1=high, 5=low).
	Priority int `json:"priority"`

	// DueDate is the due date as entered (YYYY-MM-DD or free-form),
	// or NoDueDate when none was given.
	DueDate string `json:"due_date"`

	// Completed reports whether the task has been marked completed.
	Completed bool `json:"completed"`
}
