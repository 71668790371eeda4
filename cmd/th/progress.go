package main

import (
	"fmt"

	"github.com/amonks/treehouse/internal/ui"
	"github.com/amonks/treehouse/task"
	"github.com/amonks/treehouse/treehouse"
)

func (l *loop) showTreehouse() {
	completed := task.CompletedCount(l.tasks)
	level := treehouse.Level(completed)

	fmt.Fprintln(l.out, "\n"+ui.BannerStyle.Render("=== Your Treehouse ==="))
	fmt.Fprintln(l.out, treehouse.Render(level))
	fmt.Fprintln(l.out)

	l.logger.Debug("treehouse shown", "completed", completed, "level", level)
}
