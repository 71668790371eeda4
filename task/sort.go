package task

import (
	"sort"
	"time"
)

// SortByPriority sorts tasks in place by ascending priority (1=high
// first). Tasks with equal priority keep their relative order.
func SortByPriority(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Priority < tasks[j].Priority
	})
}

// SortByDueDate sorts tasks in place by ascending due date. Tasks whose
// due date field does not hold a YYYY-MM-DD date sort after all dated
// tasks, keeping their relative order.
func SortByDueDate(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a := ParseDueDate(tasks[i].DueDate)
		b := ParseDueDate(tasks[j].DueDate)
		if a.Known != b.Known {
			return a.Known
		}
		if !a.Known {
			return false
		}
		return a.Time.Before(b.Time)
	})
}

// DueDate is the parsed form of a task's due date field.
type DueDate struct {
	// Time is the parsed date. Zero when Known is false.
	Time time.Time

	// Known reports whether the field held a date in YYYY-MM-DD form.
	Known bool
}

// ParseDueDate parses a due date field. The NoDueDate marker and
// free-form text yield Known=false.
func ParseDueDate(value string) DueDate {
	t, err := time.Parse(DueDateFormat, value)
	if err != nil {
		return DueDate{}
	}
	return DueDate{Time: t, Known: true}
}
