package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/amonks/treehouse/internal/ui"
	"github.com/amonks/treehouse/task"
)

func (l *loop) addTask() error {
	fmt.Fprintln(l.out, "\n"+ui.HeaderStyle.Render("-- Add a New Task --"))

	description, err := l.readLine("Task description: ")
	if err != nil {
		return err
	}
	if description == "" {
		fmt.Fprintln(l.out, ui.ErrorStyle.Render("Task description cannot be empty."))
		return nil
	}

	priority, err := l.readPriority()
	if err != nil {
		return err
	}

	dueDate, err := l.readLine("Due date (YYYY-MM-DD or leave blank): ")
	if err != nil {
		return err
	}

	tasks, err := task.Add(l.tasks, description, priority, dueDate)
	if err != nil {
		return err
	}
	l.tasks = tasks

	fmt.Fprintln(l.out, ui.SuccessStyle.Render(fmt.Sprintf("Task '%s' added successfully.", description)))
	l.logger.Info("task added",
		"description", description,
		"priority", priority,
		"priority_name", task.PriorityName(priority))
	return nil
}

// readPriority prompts until the user enters a priority between 1 and 5.
func (l *loop) readPriority() (int, error) {
	for {
		input, err := l.readLine("Priority (1=High, 5=Low): ")
		if err != nil {
			return 0, err
		}

		if digitsOnly(input) {
			priority, err := strconv.Atoi(input)
			if err == nil && task.ValidatePriority(priority) == nil {
				return priority, nil
			}
		}
		fmt.Fprintln(l.out, ui.ErrorStyle.Render("Invalid priority. Please enter a number between 1 and 5."))
	}
}

func (l *loop) completeTask() error {
	fmt.Fprintln(l.out, "\n"+ui.HeaderStyle.Render("-- Complete a Task --"))
	if len(l.tasks) == 0 {
		fmt.Fprintln(l.out, ui.MutedStyle.Render("No tasks available to complete."))
		return nil
	}

	l.viewTasks()

	index, done, err := l.readIndex("Enter the task number to mark as completed (0 to cancel): ")
	if err != nil || done {
		return err
	}

	tasks, err := task.Complete(l.tasks, index)
	if errors.Is(err, task.ErrIndexOutOfRange) {
		fmt.Fprintln(l.out, ui.ErrorStyle.Render("Invalid task number."))
		return nil
	}
	if err != nil {
		return err
	}
	l.tasks = tasks

	fmt.Fprintln(l.out, ui.SuccessStyle.Render(fmt.Sprintf("Task '%s' marked completed!", l.tasks[index-1].Description)))
	l.logger.Info("task completed", "index", index, "description", l.tasks[index-1].Description)
	return nil
}

func (l *loop) removeTask() error {
	fmt.Fprintln(l.out, "\n"+ui.HeaderStyle.Render("-- Remove a Task --"))
	if len(l.tasks) == 0 {
		fmt.Fprintln(l.out, ui.MutedStyle.Render("No tasks to remove."))
		return nil
	}

	l.viewTasks()

	index, done, err := l.readIndex("Enter the task number to remove (0 to cancel): ")
	if err != nil || done {
		return err
	}

	tasks, removed, err := task.Remove(l.tasks, index)
	if errors.Is(err, task.ErrIndexOutOfRange) {
		fmt.Fprintln(l.out, ui.ErrorStyle.Render("Invalid task number."))
		return nil
	}
	if err != nil {
		return err
	}
	l.tasks = tasks

	fmt.Fprintln(l.out, ui.SuccessStyle.Render(fmt.Sprintf("Task '%s' removed.", removed.Description)))
	l.logger.Info("task removed", "index", index, "description", removed.Description)
	return nil
}

func (l *loop) editTask() error {
	fmt.Fprintln(l.out, "\n"+ui.HeaderStyle.Render("-- Edit a Task --"))
	if len(l.tasks) == 0 {
		fmt.Fprintln(l.out, ui.MutedStyle.Render("No tasks to edit."))
		return nil
	}

	l.viewTasks()

	index, done, err := l.readIndex("Enter the task number to edit (0 to cancel): ")
	if err != nil || done {
		return err
	}
	if index < 1 || index > len(l.tasks) {
		fmt.Fprintln(l.out, ui.ErrorStyle.Render("Invalid task number."))
		return nil
	}

	fmt.Fprintf(l.out, "Editing Task #%d: '%s'\n", index, l.tasks[index-1].Description)

	var opts task.EditOptions

	description, err := l.readLine("New description (leave blank to keep current): ")
	if err != nil {
		return err
	}
	if description != "" {
		opts.Description = &description
	}

	input, err := l.readLine("New priority (1=High, 5=Low) [leave blank to keep current]: ")
	if err != nil {
		return err
	}
	if input != "" {
		if digitsOnly(input) {
			priority, convErr := strconv.Atoi(input)
			if convErr == nil && task.ValidatePriority(priority) == nil {
				opts.Priority = &priority
			} else {
				fmt.Fprintln(l.out, ui.ErrorStyle.Render("Invalid priority. Keeping old value."))
			}
		} else {
			fmt.Fprintln(l.out, ui.ErrorStyle.Render("Invalid priority input. Keeping old value."))
		}
	}

	dueDate, err := l.readLine("New due date (YYYY-MM-DD or blank) [leave blank to keep current]: ")
	if err != nil {
		return err
	}
	if dueDate != "" {
		opts.DueDate = &dueDate
	}

	tasks, err := task.Edit(l.tasks, index, opts)
	if err != nil {
		return err
	}
	l.tasks = tasks

	fmt.Fprintln(l.out, ui.SuccessStyle.Render("Task updated successfully."))
	l.logger.Info("task edited", "index", index, "description", l.tasks[index-1].Description)
	return nil
}

func (l *loop) sortTasks() error {
	fmt.Fprintln(l.out, "\n"+ui.HeaderStyle.Render("-- Sort Tasks --"))
	if len(l.tasks) == 0 {
		fmt.Fprintln(l.out, ui.MutedStyle.Render("No tasks to sort."))
		return nil
	}

	fmt.Fprintln(l.out, "1. Sort by Priority (ascending: 1=High, 5=Low)")
	fmt.Fprintln(l.out, "2. Sort by Due Date (ascending)")
	fmt.Fprintln(l.out, "3. Cancel")

	choice, err := l.readLine("Select an option: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		task.SortByPriority(l.tasks)
		fmt.Fprintln(l.out, ui.SuccessStyle.Render("Tasks sorted by priority."))
		l.logger.Info("tasks sorted", "by", "priority")
	case "2":
		task.SortByDueDate(l.tasks)
		fmt.Fprintln(l.out, ui.SuccessStyle.Render("Tasks sorted by due date."))
		l.logger.Info("tasks sorted", "by", "due date")
	default:
		fmt.Fprintln(l.out, ui.MutedStyle.Render("Sorting cancelled."))
	}
	return nil
}
