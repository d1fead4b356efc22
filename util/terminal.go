// Package util holds small helpers shared by the argon engine and its
// rendering backends.
package util

import (
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the current terminal width in columns, or fallback
// when stdout is not attached to a terminal or the size cannot be determined.
func TerminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// IsTerminal reports whether stdout is attached to a terminal. Backends use
// it to decide whether emitting color output makes sense at all.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
