package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/amonks/treehouse/internal/ui"
	"github.com/amonks/treehouse/task"
)

// command identifies one numbered menu option.
type command int

const (
	cmdAdd command = iota + 1
	cmdView
	cmdComplete
	cmdRemove
	cmdEdit
	cmdSort
	cmdTreehouse
	cmdExit
)

// parseCommand maps a menu entry to a command. Entries are matched
// after trimming, so " 1 " selects the add command but "01" does not.
func parseCommand(input string) (command, bool) {
	switch strings.TrimSpace(input) {
	case "1":
		return cmdAdd, true
	case "2":
		return cmdView, true
	case "3":
		return cmdComplete, true
	case "4":
		return cmdRemove, true
	case "5":
		return cmdEdit, true
	case "6":
		return cmdSort, true
	case "7":
		return cmdTreehouse, true
	case "8":
		return cmdExit, true
	}
	return 0, false
}

// mutating reports whether the command persists the task list after it
// runs. Mutating commands save whether or not anything changed.
func (c command) mutating() bool {
	switch c {
	case cmdAdd, cmdComplete, cmdRemove, cmdEdit, cmdSort:
		return true
	}
	return false
}

// loop drives the interactive menu. It owns the in-memory task list and
// persists it through the store after every mutating command.
type loop struct {
	in     *bufio.Reader
	out    io.Writer
	store  *task.Store
	tasks  []task.Task
	logger *log.Logger
	width  int
}

func newLoop(in io.Reader, out io.Writer, store *task.Store, tasks []task.Task, logger *log.Logger, width int) *loop {
	return &loop{
		in:     bufio.NewReader(in),
		out:    out,
		store:  store,
		tasks:  tasks,
		logger: logger,
		width:  width,
	}
}

// run shows the menu until the user exits. Exhausted input ends the
// session as if the user had chosen to exit.
func (l *loop) run() error {
	for {
		l.printMenu()

		choice, err := l.readLine("Select an option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		cmd, ok := parseCommand(choice)
		if !ok {
			fmt.Fprintln(l.out, ui.ErrorStyle.Render("Invalid choice. Please try again."))
			continue
		}

		if cmd == cmdExit {
			fmt.Fprintln(l.out, "Exiting... Thank you for using Treehouse Tasks!")
			return nil
		}

		if err := l.dispatch(cmd); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (l *loop) printMenu() {
	fmt.Fprintln(l.out, ui.TitleStyle.Render("========== Treehouse Tasks =========="))
	fmt.Fprintln(l.out, "1. Add Task")
	fmt.Fprintln(l.out, "2. View Tasks")
	fmt.Fprintln(l.out, "3. Complete Task")
	fmt.Fprintln(l.out, "4. Remove Task")
	fmt.Fprintln(l.out, "5. Edit Task")
	fmt.Fprintln(l.out, "6. Sort Tasks")
	fmt.Fprintln(l.out, "7. Show My Treehouse")
	fmt.Fprintln(l.out, "8. Exit")
}

func (l *loop) dispatch(cmd command) error {
	var err error
	switch cmd {
	case cmdAdd:
		err = l.addTask()
	case cmdView:
		l.viewTasks()
	case cmdComplete:
		err = l.completeTask()
	case cmdRemove:
		err = l.removeTask()
	case cmdEdit:
		err = l.editTask()
	case cmdSort:
		err = l.sortTasks()
	case cmdTreehouse:
		l.showTreehouse()
	}
	if err != nil {
		return err
	}

	if cmd.mutating() {
		if err := l.store.Save(l.tasks); err != nil {
			return fmt.Errorf("save tasks: %w", err)
		}
		l.logger.Debug("saved tasks", "file", l.store.Path(), "count", len(l.tasks))
	}
	return nil
}
