package argon

import (
	"fmt"
)

// defaultRenderWidth is used when width auto-detection fails off-terminal.
const defaultRenderWidth = 80

// Config holds the layout and highlighting knobs for one Help. A Config is a
// plain value; Render never mutates it, so one Config may back concurrent
// renders of independent Help trees.
type Config struct {
	// Indent is the number of spaces before labels and body rows.
	Indent int
	// SectionGap is the number of blank lines between sections.
	SectionGap int
	// MaxWidth overrides the render width. Zero means auto-detect the
	// terminal width, falling back to 80 columns off-terminal.
	MaxWidth int
	// NoWrapUsage keeps the usage line unwrapped even when it overflows.
	NoWrapUsage bool
	// ArgColumnWidth fixes the label column width. Zero means auto-compute
	// per section from the widest label.
	ArgColumnWidth int
	// DynHighlight enables pattern-based highlighting of option tokens, the
	// program name, backtick spans and custom patterns.
	DynHighlight bool
	// PreserveBackticks keeps backtick characters visible in highlighted
	// code spans instead of stripping them.
	PreserveBackticks bool
	// NormalizeBullets rewrites recognized list markers to BulletChar.
	NormalizeBullets bool
	// BulletChar is the canonical bullet marker.
	BulletChar rune
	// BulletSet lists the markers recognized as bullets.
	BulletSet []rune
}

// DefaultConfig returns the configuration used when no options are supplied.
func DefaultConfig() Config {
	return Config{
		Indent:           2,
		SectionGap:       1,
		NoWrapUsage:      true,
		DynHighlight:     true,
		NormalizeBullets: true,
		BulletChar:       '•',
		BulletSet:        []rune{'•', '◦', '▪', '▫', '-', '*'},
	}
}

func (c Config) validate() error {
	if c.Indent < 0 {
		return fmt.Errorf("%w: indent must not be negative, got %d", ErrInvalidConfig, c.Indent)
	}
	if c.SectionGap < 0 {
		return fmt.Errorf("%w: section gap must not be negative, got %d", ErrInvalidConfig, c.SectionGap)
	}
	if c.MaxWidth < 0 {
		return fmt.Errorf("%w: max width must not be negative, got %d", ErrInvalidConfig, c.MaxWidth)
	}
	if c.ArgColumnWidth < 0 {
		return fmt.Errorf("%w: argument column width must not be negative, got %d", ErrInvalidConfig, c.ArgColumnWidth)
	}
	if c.NormalizeBullets && c.BulletChar == 0 {
		return fmt.Errorf("%w: bullet normalization enabled without a bullet character", ErrInvalidConfig)
	}
	return nil
}
