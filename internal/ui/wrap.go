package ui

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"github.com/amonks/treehouse/internal/config"
)

// Width returns the wrap width for stdout. A configured width wins;
// otherwise the terminal width is detected. Returns 0 when stdout is not
// a terminal, which disables wrapping.
func Width(configured int) int {
	if configured > 0 {
		return configured
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return config.DefaultWidth
	}
	return width
}

// WrapLine renders prefix followed by value, wrapping value at width and
// indenting continuation lines to hang under the first value column.
// A width of 0 disables wrapping.
func WrapLine(prefix, value string, width int) string {
	if width <= 0 {
		return prefix + value
	}

	indent := utf8.RuneCountInString(prefix)
	wrapWidth := width - indent
	if wrapWidth < 1 {
		wrapWidth = 1
	}

	wrapped := wordwrap.String(value, wrapWidth)
	lines := strings.Split(wrapped, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = strings.Repeat(" ", indent) + lines[i]
	}
	return prefix + strings.Join(lines, "\n")
}
