package main

import (
	"fmt"

	"github.com/amonks/treehouse/internal/ui"
	"github.com/amonks/treehouse/task"
)

func (l *loop) viewTasks() {
	fmt.Fprintln(l.out, "\n"+ui.HeaderStyle.Render("-- View Tasks --"))
	if len(l.tasks) == 0 {
		fmt.Fprintln(l.out, ui.MutedStyle.Render("No tasks yet! Add one using the 'Add Task' option."))
		return
	}

	for i, t := range task.Enumerate(l.tasks) {
		fmt.Fprintln(l.out, l.taskLine(i, t))
	}
	fmt.Fprintln(l.out)
}

// taskLine renders one numbered task entry, wrapping long descriptions
// at the terminal width when one is known.
func (l *loop) taskLine(number int, t task.Task) string {
	prefix := fmt.Sprintf("%d. ", number)
	entry := fmt.Sprintf("%s %s | Priority: %d | Due: %s",
		ui.Checkbox(t.Completed), t.Description, t.Priority, t.DueDate)
	return ui.WrapLine(prefix, entry, l.width)
}
