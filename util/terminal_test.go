package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalWidth(t *testing.T) {
	// The test binary's stdout is a pipe, so the fallback path is what runs
	// here. When a tty is attached, only sanity-check the reported width.
	if IsTerminal() {
		assert.Greater(t, TerminalWidth(80), 0)
		return
	}
	assert.Equal(t, 80, TerminalWidth(80))
	assert.Equal(t, 120, TerminalWidth(120))
}
