package task

import (
	"errors"
	"testing"
)

func sampleTasks() []Task {
	return []Task{
		{Description: "Build fort", Priority: 2, DueDate: "2025-01-01"},
		{Description: "Paint walls", Priority: 1, DueDate: NoDueDate},
		{Description: "Hang swing", Priority: 3, DueDate: "2024-06-15", Completed: true},
	}
}

func TestAdd(t *testing.T) {
	tasks, err := Add(nil, "Build fort", 2, "2025-01-01")
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Description != "Build fort" {
		t.Errorf("expected description 'Build fort', got %q", tasks[0].Description)
	}
	if tasks[0].Priority != 2 {
		t.Errorf("expected priority 2, got %d", tasks[0].Priority)
	}
	if tasks[0].DueDate != "2025-01-01" {
		t.Errorf("expected due date '2025-01-01', got %q", tasks[0].DueDate)
	}
	if tasks[0].Completed {
		t.Error("expected new task to be pending")
	}
}

func TestAdd_AppendsToEnd(t *testing.T) {
	tasks, err := Add(sampleTasks(), "New task", 5, "")
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	if len(tasks) != 4 {
		t.Fatalf("expected 4 tasks, got %d", len(tasks))
	}
	if tasks[3].Description != "New task" {
		t.Errorf("expected new task last, got %q", tasks[3].Description)
	}
}

func TestAdd_BlankDueDate(t *testing.T) {
	tasks, err := Add(nil, "Build fort", 2, "  ")
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	if tasks[0].DueDate != NoDueDate {
		t.Errorf("expected due date %q, got %q", NoDueDate, tasks[0].DueDate)
	}
}

func TestAdd_FreeFormDueDate(t *testing.T) {
	tasks, err := Add(nil, "Build fort", 2, "next tuesday")
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	if tasks[0].DueDate != "next tuesday" {
		t.Errorf("expected due date stored as entered, got %q", tasks[0].DueDate)
	}
}

func TestAdd_TrimsDescription(t *testing.T) {
	tasks, err := Add(nil, "  Build fort  ", 2, "")
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	if tasks[0].Description != "Build fort" {
		t.Errorf("expected trimmed description, got %q", tasks[0].Description)
	}
}

func TestAdd_EmptyDescription(t *testing.T) {
	for _, description := range []string{"", "   "} {
		if _, err := Add(nil, description, 2, ""); !errors.Is(err, ErrEmptyDescription) {
			t.Errorf("Add(%q) error = %v, expected ErrEmptyDescription", description, err)
		}
	}
}

func TestAdd_InvalidPriority(t *testing.T) {
	for _, priority := range []int{0, 6, -1, 100} {
		if _, err := Add(nil, "Build fort", priority, ""); !errors.Is(err, ErrInvalidPriority) {
			t.Errorf("Add(priority=%d) error = %v, expected ErrInvalidPriority", priority, err)
		}
	}
}

func TestComplete(t *testing.T) {
	tasks, err := Complete(sampleTasks(), 1)
	if err != nil {
		t.Fatalf("failed to complete task: %v", err)
	}

	if !tasks[0].Completed {
		t.Error("expected task 1 to be completed")
	}
	if tasks[1].Completed {
		t.Error("expected task 2 to stay pending")
	}
}

func TestComplete_AlreadyCompleted(t *testing.T) {
	tasks, err := Complete(sampleTasks(), 3)
	if err != nil {
		t.Fatalf("failed to complete task: %v", err)
	}

	if !tasks[2].Completed {
		t.Error("expected task 3 to stay completed")
	}
}

func TestComplete_IndexOutOfRange(t *testing.T) {
	for _, index := range []int{0, -1, 4, 100} {
		if _, err := Complete(sampleTasks(), index); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Complete(%d) error = %v, expected ErrIndexOutOfRange", index, err)
		}
	}
}

func TestComplete_EmptyList(t *testing.T) {
	if _, err := Complete(nil, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	tasks, removed, err := Remove(sampleTasks(), 2)
	if err != nil {
		t.Fatalf("failed to remove task: %v", err)
	}

	if removed.Description != "Paint walls" {
		t.Errorf("expected removed task 'Paint walls', got %q", removed.Description)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Description != "Build fort" || tasks[1].Description != "Hang swing" {
		t.Errorf("expected remaining tasks to keep order, got %q and %q", tasks[0].Description, tasks[1].Description)
	}
}

func TestRemove_First(t *testing.T) {
	tasks, removed, err := Remove(sampleTasks(), 1)
	if err != nil {
		t.Fatalf("failed to remove task: %v", err)
	}

	if removed.Description != "Build fort" {
		t.Errorf("expected removed task 'Build fort', got %q", removed.Description)
	}
	if tasks[0].Description != "Paint walls" {
		t.Errorf("expected 'Paint walls' first, got %q", tasks[0].Description)
	}
}

func TestRemove_Last(t *testing.T) {
	tasks, removed, err := Remove(sampleTasks(), 3)
	if err != nil {
		t.Fatalf("failed to remove task: %v", err)
	}

	if removed.Description != "Hang swing" {
		t.Errorf("expected removed task 'Hang swing', got %q", removed.Description)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
}

func TestRemove_IndexOutOfRange(t *testing.T) {
	for _, index := range []int{0, -1, 4} {
		if _, _, err := Remove(sampleTasks(), index); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Remove(%d) error = %v, expected ErrIndexOutOfRange", index, err)
		}
	}
}

func TestEdit_Description(t *testing.T) {
	description := "Reinforce fort"
	tasks, err := Edit(sampleTasks(), 1, EditOptions{Description: &description})
	if err != nil {
		t.Fatalf("failed to edit task: %v", err)
	}

	if tasks[0].Description != "Reinforce fort" {
		t.Errorf("expected description 'Reinforce fort', got %q", tasks[0].Description)
	}
	if tasks[0].Priority != 2 || tasks[0].DueDate != "2025-01-01" {
		t.Error("expected other fields to be unchanged")
	}
}

func TestEdit_Priority(t *testing.T) {
	tasks, err := Edit(sampleTasks(), 1, EditOptions{Priority: PriorityPtr(5)})
	if err != nil {
		t.Fatalf("failed to edit task: %v", err)
	}

	if tasks[0].Priority != 5 {
		t.Errorf("expected priority 5, got %d", tasks[0].Priority)
	}
	if tasks[0].Description != "Build fort" {
		t.Error("expected description to be unchanged")
	}
}

func TestEdit_DueDate(t *testing.T) {
	dueDate := "2026-03-01"
	tasks, err := Edit(sampleTasks(), 2, EditOptions{DueDate: &dueDate})
	if err != nil {
		t.Fatalf("failed to edit task: %v", err)
	}

	if tasks[1].DueDate != "2026-03-01" {
		t.Errorf("expected due date '2026-03-01', got %q", tasks[1].DueDate)
	}
}

func TestEdit_BlankDueDateClears(t *testing.T) {
	dueDate := "   "
	tasks, err := Edit(sampleTasks(), 1, EditOptions{DueDate: &dueDate})
	if err != nil {
		t.Fatalf("failed to edit task: %v", err)
	}

	if tasks[0].DueDate != NoDueDate {
		t.Errorf("expected due date %q, got %q", NoDueDate, tasks[0].DueDate)
	}
}

func TestEdit_AllFields(t *testing.T) {
	description := "Rebuild fort"
	dueDate := "2027-01-01"
	tasks, err := Edit(sampleTasks(), 1, EditOptions{
		Description: &description,
		Priority:    PriorityPtr(4),
		DueDate:     &dueDate,
	})
	if err != nil {
		t.Fatalf("failed to edit task: %v", err)
	}

	if tasks[0].Description != "Rebuild fort" {
		t.Errorf("expected description 'Rebuild fort', got %q", tasks[0].Description)
	}
	if tasks[0].Priority != 4 {
		t.Errorf("expected priority 4, got %d", tasks[0].Priority)
	}
	if tasks[0].DueDate != "2027-01-01" {
		t.Errorf("expected due date '2027-01-01', got %q", tasks[0].DueDate)
	}
}

func TestEdit_NoFields(t *testing.T) {
	tasks, err := Edit(sampleTasks(), 1, EditOptions{})
	if err != nil {
		t.Fatalf("failed to edit task: %v", err)
	}

	if tasks[0] != (sampleTasks())[0] {
		t.Errorf("expected task to be unchanged, got %+v", tasks[0])
	}
}

func TestEdit_EmptyDescription(t *testing.T) {
	description := "   "
	if _, err := Edit(sampleTasks(), 1, EditOptions{Description: &description}); !errors.Is(err, ErrEmptyDescription) {
		t.Errorf("expected ErrEmptyDescription, got %v", err)
	}
}

func TestEdit_InvalidPriority(t *testing.T) {
	if _, err := Edit(sampleTasks(), 1, EditOptions{Priority: PriorityPtr(9)}); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestEdit_IndexOutOfRange(t *testing.T) {
	if _, err := Edit(sampleTasks(), 4, EditOptions{}); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestEnumerate(t *testing.T) {
	var numbers []int
	var descriptions []string
	for i, task := range Enumerate(sampleTasks()) {
		numbers = append(numbers, i)
		descriptions = append(descriptions, task.Description)
	}

	if len(numbers) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(numbers))
	}
	for i, n := range numbers {
		if n != i+1 {
			t.Errorf("expected number %d, got %d", i+1, n)
		}
	}
	if descriptions[0] != "Build fort" || descriptions[2] != "Hang swing" {
		t.Errorf("expected tasks in list order, got %v", descriptions)
	}
}

func TestEnumerate_Restartable(t *testing.T) {
	seq := Enumerate(sampleTasks())

	count := 0
	for i := range seq {
		count++
		if i == 2 {
			break
		}
	}
	if count != 2 {
		t.Fatalf("expected early break after 2 tasks, got %d", count)
	}

	count = 0
	for range seq {
		count++
	}
	if count != 3 {
		t.Errorf("expected full second pass over 3 tasks, got %d", count)
	}
}

func TestEnumerate_Empty(t *testing.T) {
	for range Enumerate(nil) {
		t.Fatal("expected no tasks")
	}
}

func TestCompletedCount(t *testing.T) {
	if got := CompletedCount(nil); got != 0 {
		t.Errorf("expected 0 completed, got %d", got)
	}
	if got := CompletedCount(sampleTasks()); got != 1 {
		t.Errorf("expected 1 completed, got %d", got)
	}

	tasks := sampleTasks()
	for i := range tasks {
		tasks[i].Completed = true
	}
	if got := CompletedCount(tasks); got != 3 {
		t.Errorf("expected 3 completed, got %d", got)
	}
}
