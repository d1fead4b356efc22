package argon

import (
	"github.com/charmbracelet/log"
)

// WithConfig replaces the whole configuration in one step.
func WithConfig(config Config) ConfigureHelpFunc {
	return func(h *Help, err *error) {
		if *err != nil {
			return
		}
		if *err = config.validate(); *err != nil {
			return
		}
		h.config = &config
	}
}

func (h *Help) editConfig(apply func(*Config)) {
	config := h.effectiveConfig()
	apply(&config)
	h.config = &config
}

// WithIndent sets the number of spaces before labels and body rows.
func WithIndent(indent int) ConfigureHelpFunc {
	return func(h *Help, err *error) {
		h.editConfig(func(c *Config) { c.Indent = indent })
	}
}

// WithSectionGap sets the number of blank lines between sections.
func WithSectionGap(gap int) ConfigureHelpFunc {
	return func(h *Help, err *error) {
		h.editConfig(func(c *Config) { c.SectionGap = gap })
	}
}

// WithMaxWidth overrides terminal-width auto-detection.
func WithMaxWidth(width int) ConfigureHelpFunc {
	return func(h *Help, err *error) {
		h.editConfig(func(c *Config) { c.MaxWidth = width })
	}
}

// WithNoWrapUsage keeps the usage line on one line even when it overflows the
// render width.
func WithNoWrapUsage(noWrap bool) ConfigureHelpFunc {
	return func(h *Help, err *error) {
		h.editConfig(func(c *Config) { c.NoWrapUsage = noWrap })
	}
}

// WithArgColumnWidth caps the auto-computed label column width.
func WithArgColumnWidth(width int) ConfigureHelpFunc {
	return func(h *Help, err *error) {
		h.editConfig(func(c *Config) { c.ArgColumnWidth = width })
	}
}

// WithDynamicHighlight toggles pattern-based highlighting.
func WithDynamicHighlight(enabled bool) ConfigureHelpFunc {
	return func(h *Help, err *error) {
		h.editConfig(func(c *Config) { c.DynHighlight = enabled })
	}
}

// WithPreserveBackticks keeps backtick characters visible in highlighted code
// spans.
func WithPreserveBackticks(preserve bool) ConfigureHelpFunc {
	return func(h *Help, err *error) {
		h.editConfig(func(c *Config) { c.PreserveBackticks = preserve })
	}
}

// WithBulletChar sets the canonical bullet marker.
func WithBulletChar(bullet rune) ConfigureHelpFunc {
	return func(h *Help, err *error) {
		h.editConfig(func(c *Config) { c.BulletChar = bullet })
	}
}

// WithBulletSet sets the markers recognized as bullets.
func WithBulletSet(bullets ...rune) ConfigureHelpFunc {
	return func(h *Help, err *error) {
		h.editConfig(func(c *Config) { c.BulletSet = bullets })
	}
}

// WithBulletNormalization toggles rewriting of recognized bullet markers.
func WithBulletNormalization(enabled bool) ConfigureHelpFunc {
	return func(h *Help, err *error) {
		h.editConfig(func(c *Config) { c.NormalizeBullets = enabled })
	}
}

// WithTheme overlays theme entries on the effective theme. Unspecified
// categories keep their inherited or default styles.
func WithTheme(theme Theme) ConfigureHelpFunc {
	return func(h *Help, err *error) {
		if *err != nil {
			return
		}
		h.theme = h.theme.Merge(theme)
	}
}

// WithThemeFile loads theme overrides from a YAML file.
func WithThemeFile(path string) ConfigureHelpFunc {
	return func(h *Help, err *error) {
		if *err != nil {
			return
		}
		theme, loadErr := LoadThemeFile(path)
		if loadErr != nil {
			*err = loadErr
			return
		}
		h.theme = h.theme.Merge(theme)
	}
}

// WithPattern registers a custom highlighting rule during construction.
func WithPattern(pattern string, category StyleCategory) ConfigureHelpFunc {
	return func(h *Help, err *error) {
		if *err != nil {
			return
		}
		*err = h.AddPattern(pattern, category)
	}
}

// WithHeader sets free text rendered above the usage line.
func WithHeader(header string) ConfigureHelpFunc {
	return func(h *Help, err *error) {
		h.header = header
	}
}

// WithDescription sets the free-text block rendered after the usage line.
func WithDescription(description string) ConfigureHelpFunc {
	return func(h *Help, err *error) {
		h.description = description
	}
}

// WithEpilog sets the free-text block rendered last.
func WithEpilog(epilog string) ConfigureHelpFunc {
	return func(h *Help, err *error) {
		h.epilog = epilog
	}
}

// WithExamples registers the conventional Examples section.
func WithExamples(lines ...string) ConfigureHelpFunc {
	return func(h *Help, err *error) {
		if *err != nil {
			return
		}
		*err = h.AddExamples(lines...)
	}
}

// WithNotes registers the conventional Notes section.
func WithNotes(lines ...string) ConfigureHelpFunc {
	return func(h *Help, err *error) {
		if *err != nil {
			return
		}
		*err = h.AddNotes(lines...)
	}
}

// WithLogger installs a logger for recoverable render anomalies.
func WithLogger(logger *log.Logger) ConfigureHelpFunc {
	return func(h *Help, err *error) {
		h.logger = logger
	}
}
