// Copyright 2023-2025, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package argon turns command-line argument metadata into styled,
// column-aligned help output.
//
// A Help collects the already-known metadata of a program - flags,
// positionals, argument groups, subcommands, custom sections - and renders it
// as a sequence of lines whose fragments are tagged with style categories
// (argument, program name, metavar, code span, ...). Option tokens, the
// program name, backtick-delimited spans and user-registered patterns are
// highlighted automatically; labels are padded to a shared per-section column
// measured on plain text; bullets are normalized to one canonical marker.
//
// The engine performs no I/O and never parses command-line input. Turning the
// tagged fragments into terminal colors is the job of a rendering backend
// such as the ansi subpackage.
package argon

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// reservedSections are the built-in section titles custom sections may not
// shadow.
var reservedSections = map[string]bool{
	"Usage":                true,
	"Commands":             true,
	"Positional Arguments": true,
	"Options":              true,
}

type customPattern struct {
	re       *regexp.Regexp
	category StyleCategory
}

// Help holds the metadata of one program or subcommand for rendering. Build
// it up with the Add/Set methods, then call Render or Format; a Help owns no
// state across renders, so the same instance may render repeatedly and
// independent Help trees may render in parallel.
type Help struct {
	name        string
	description string
	epilog      string
	header      string

	// nil means inherit from the parent (or the defaults at the root).
	config *Config
	theme  Theme
	logger *log.Logger

	args     []*Argument
	lookup   map[string]*Argument
	patterns *orderedmap.OrderedMap[string, *customPattern]
	sections *orderedmap.OrderedMap[string, *Section]
	commands *orderedmap.OrderedMap[string, *Help]

	parent *Help
}

// New creates a Help for the named program and applies the given
// configuration options.
func New(prog string, configs ...ConfigureHelpFunc) (*Help, error) {
	prog = strings.TrimSpace(prog)
	if prog == "" {
		return nil, fmt.Errorf("%w: program name", ErrEmptyName)
	}
	h := newHelp(prog, nil)
	var err error
	for _, config := range configs {
		config(h, &err)
		if err != nil {
			return nil, err
		}
	}
	return h, nil
}

func newHelp(name string, parent *Help) *Help {
	return &Help{
		name:     name,
		parent:   parent,
		lookup:   map[string]*Argument{},
		patterns: orderedmap.New[string, *customPattern](),
		sections: orderedmap.New[string, *Section](),
		commands: orderedmap.New[string, *Help](),
	}
}

// AddFlag registers an optional argument under its long name. The argument
// must carry help text.
func (h *Help) AddFlag(long string, configs ...ConfigureArgumentFunc) error {
	argument := NewArg(configs...)
	argument.Long = strings.TrimLeft(strings.TrimSpace(long), "-")
	return h.AddArgument(argument)
}

// AddPositional registers a positional argument under its name.
func (h *Help) AddPositional(name string, configs ...ConfigureArgumentFunc) error {
	argument := NewArg(configs...)
	argument.Long = strings.TrimSpace(name)
	argument.positional = true
	return h.AddArgument(argument)
}

// AddArgument registers a pre-built Argument. Metadata errors (missing help
// text, duplicate invocations) surface here, before any render attempt.
func (h *Help) AddArgument(argument *Argument) error {
	if err := argument.validate(); err != nil {
		return err
	}
	keys := argument.invocations()
	if argument.positional {
		keys = []string{argument.Long}
	}
	for _, key := range keys {
		if _, exists := h.lookup[key]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateFlag, key)
		}
	}
	for _, key := range keys {
		h.lookup[key] = argument
	}
	h.args = append(h.args, argument)
	return nil
}

// AddCommand registers a subcommand and returns its Help. The subcommand
// inherits the parent's theme, configuration, custom patterns and custom
// sections unless it sets its own; inherited pattern and section entries are
// merged with the subcommand's, never replaced wholesale.
func (h *Help) AddCommand(name, description string, configs ...ConfigureHelpFunc) (*Help, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: command name", ErrEmptyName)
	}
	if _, exists := h.commands.Get(name); exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}
	sub := newHelp(name, h)
	sub.description = description
	var err error
	for _, config := range configs {
		config(sub, &err)
		if err != nil {
			return nil, err
		}
	}
	h.commands.Set(name, sub)
	return sub, nil
}

// AddSection registers a custom section of body-only lines, rendered after
// the built-in sections in registration order.
func (h *Help) AddSection(title string, lines ...string) error {
	rows := make([]Row, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, Row{Body: line})
	}
	return h.AddSectionRows(title, rows...)
}

// AddSectionRows registers a custom section of label/body rows.
func (h *Help) AddSectionRows(title string, rows ...Row) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("%w: section title", ErrEmptyName)
	}
	if reservedSections[title] {
		return fmt.Errorf("%w: %q is a built-in section", ErrDuplicateSection, title)
	}
	if _, exists := h.sections.Get(title); exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSection, title)
	}
	for _, row := range rows {
		if row.Label != "" && strings.TrimSpace(row.Body) == "" {
			return fmt.Errorf("%w: section %q row %q", ErrMissingHelpText, title, row.Label)
		}
	}
	h.sections.Set(title, &Section{Title: title, Rows: rows})
	return nil
}

// AddExamples registers the conventional Examples section.
func (h *Help) AddExamples(lines ...string) error {
	return h.AddSection("Examples", lines...)
}

// AddNotes registers the conventional Notes section.
func (h *Help) AddNotes(lines ...string) error {
	return h.AddSection("Notes", lines...)
}

// AddPattern registers a custom highlighting rule binding a regular
// expression to a style category, either built-in or caller-defined. A
// malformed expression is rejected here with a descriptive error; it never
// reaches a render pass. Re-registering a pattern updates its category while
// keeping its original position in the evaluation order.
func (h *Help) AddPattern(pattern string, category StyleCategory) error {
	compiled, err := compilePattern(pattern, category)
	if err != nil {
		return err
	}
	h.patterns.Set(pattern, compiled)
	return nil
}

// SetHeader sets free text rendered above the usage line, styled as the
// program name.
func (h *Help) SetHeader(header string) { h.header = header }

// SetDescription sets the free-text block rendered after the usage line.
func (h *Help) SetDescription(description string) { h.description = description }

// SetEpilog sets the free-text block rendered last.
func (h *Help) SetEpilog(epilog string) { h.epilog = epilog }

// SetLogger installs a logger for recoverable render anomalies. The engine
// stays silent without one.
func (h *Help) SetLogger(logger *log.Logger) { h.logger = logger }

// Prog returns the full program phrase, e.g. "mytool" or "mytool sync" for a
// subcommand's help.
func (h *Help) Prog() string { return h.progPhrase() }

func (h *Help) progPhrase() string {
	if h.parent == nil {
		return h.name
	}
	return h.parent.progPhrase() + " " + h.name
}

func (h *Help) root() *Help {
	current := h
	for current.parent != nil {
		current = current.parent
	}
	return current
}

// chain returns the path from the root to h, root first.
func (h *Help) chain() []*Help {
	if h.parent == nil {
		return []*Help{h}
	}
	return append(h.parent.chain(), h)
}

func (h *Help) effectiveConfig() Config {
	for current := h; current != nil; current = current.parent {
		if current.config != nil {
			return *current.config
		}
	}
	return DefaultConfig()
}

func (h *Help) effectiveTheme() Theme {
	merged := DefaultTheme()
	for _, current := range h.chain() {
		merged = merged.Merge(current.theme)
	}
	return merged
}

func (h *Help) effectiveLogger() *log.Logger {
	for current := h; current != nil; current = current.parent {
		if current.logger != nil {
			return current.logger
		}
	}
	return nil
}

// effectivePatterns merges the custom patterns along the parent chain, root
// first. A child re-registering a parent's pattern overrides its category
// without disturbing the parent's position.
func (h *Help) effectivePatterns() []*customPattern {
	merged := orderedmap.New[string, *customPattern]()
	for _, current := range h.chain() {
		for pair := current.patterns.Oldest(); pair != nil; pair = pair.Next() {
			merged.Set(pair.Key, pair.Value)
		}
	}
	out := make([]*customPattern, 0, merged.Len())
	for pair := merged.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// effectiveSections merges custom sections along the parent chain, root
// first, so subcommand help keeps the parent's Examples and Notes unless the
// subcommand defines its own under the same title.
func (h *Help) effectiveSections() []*Section {
	merged := orderedmap.New[string, *Section]()
	for _, current := range h.chain() {
		for pair := current.sections.Oldest(); pair != nil; pair = pair.Next() {
			merged.Set(pair.Key, pair.Value)
		}
	}
	out := make([]*Section, 0, merged.Len())
	for pair := merged.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Theme returns the effective theme for this Help: the static defaults merged
// with every override along the parent chain, root first.
func (h *Help) Theme() Theme {
	return h.effectiveTheme()
}

// Config returns the effective configuration for this Help.
func (h *Help) Config() Config {
	return h.effectiveConfig()
}
