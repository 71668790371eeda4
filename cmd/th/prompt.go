package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/amonks/treehouse/internal/ui"
)

// readLine prints the prompt and reads one line of input, trimmed of
// surrounding whitespace. A final unterminated line is returned before
// io.EOF is reported.
func (l *loop) readLine(prompt string) (string, error) {
	fmt.Fprint(l.out, prompt)

	line, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readIndex prompts for a 1-based task number. done is true when the
// flow should stop without acting: zero cancels the operation and a
// non-numeric entry is reported to the user.
func (l *loop) readIndex(prompt string) (index int, done bool, err error) {
	input, err := l.readLine(prompt)
	if err != nil {
		return 0, true, err
	}

	index, convErr := strconv.Atoi(input)
	if convErr != nil {
		fmt.Fprintln(l.out, ui.ErrorStyle.Render("Please enter a valid number."))
		return 0, true, nil
	}
	if index == 0 {
		fmt.Fprintln(l.out, ui.MutedStyle.Render("Operation cancelled."))
		return 0, true, nil
	}
	return index, false, nil
}

// digitsOnly reports whether input is one or more ASCII digits. Unlike
// strconv.Atoi it rejects signed numbers.
func digitsOnly(input string) bool {
	if input == "" {
		return false
	}
	for _, r := range input {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
