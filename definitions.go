package argon

import (
	"errors"
	"strings"
)

// StyleCategory names a rendering intent independent of any concrete color or
// terminal attribute. The built-in categories below cover everything the engine
// emits on its own; callers may introduce additional categories by binding a
// custom pattern to a new name and supplying a matching theme entry.
type StyleCategory string

const (
	// CategoryText is plain body text; every fragment not claimed by a rule.
	CategoryText StyleCategory = "text"
	// CategoryArg marks registered option tokens such as -v or --verbose.
	CategoryArg StyleCategory = "arg"
	// CategoryGroup marks section and group headers.
	CategoryGroup StyleCategory = "group"
	// CategoryHelp marks argument help text.
	CategoryHelp StyleCategory = "help"
	// CategoryMetavar marks value placeholders (FILE, COUNT) and version strings.
	CategoryMetavar StyleCategory = "metavar"
	// CategoryProg marks occurrences of the program name.
	CategoryProg StyleCategory = "prog"
	// CategorySyntax marks backtick-delimited code spans.
	CategorySyntax StyleCategory = "syntax"
	// CategoryDefault marks rendered default values, e.g. "(default: 8080)".
	CategoryDefault StyleCategory = "default"
)

// Span is a contiguous byte-offset range of one source line tagged with a
// single StyleCategory. Spans produced by one highlighting pass never overlap.
type Span struct {
	Start    int
	End      int
	Category StyleCategory
}

// Fragment is a run of text carrying one StyleCategory.
type Fragment struct {
	Text     string
	Category StyleCategory
}

// StyledLine is one fully laid-out output line as a sequence of fragments.
// Concatenating the fragment texts yields the plain-text form of the line.
type StyledLine []Fragment

// Plain returns the line's text with all styling information discarded.
func (l StyledLine) Plain() string {
	var sb []byte
	for _, f := range l {
		sb = append(sb, f.Text...)
	}
	return string(sb)
}

// Row is one label/body pair within a section. A row with an empty label is a
// body-only row (a paragraph or example line).
type Row struct {
	Label string
	Body  string
}

// Section is a headered block of rows rendered as one unit. Built-in sections
// always precede custom sections; custom sections keep registration order.
type Section struct {
	Title string
	Rows  []Row
}

// RenderedSection is one section after layout: the styled header line (absent
// for header/usage/description blocks without a title) followed by its body
// lines, all padded and wrapped.
type RenderedSection struct {
	Title string
	Lines []StyledLine
}

// LayoutResult is the outcome of one render pass: every section in canonical
// order, fully wrapped, aligned and styled.
type LayoutResult struct {
	Sections []RenderedSection

	gap int
}

// Lines flattens the result into the final line sequence, with the configured
// number of blank lines between sections.
func (r *LayoutResult) Lines() []StyledLine {
	var out []StyledLine
	for i, section := range r.Sections {
		if i > 0 {
			for g := 0; g < r.gap; g++ {
				out = append(out, StyledLine{})
			}
		}
		out = append(out, section.Lines...)
	}
	return out
}

// Plain renders the document without styling. The returned string ends with
// exactly one newline regardless of the last section's content.
func (r *LayoutResult) Plain() string {
	lines := r.Lines()
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(strings.TrimRight(line.Plain(), " "))
		sb.WriteByte('\n')
	}
	out := strings.TrimRight(sb.String(), "\n")
	if out == "" {
		return "\n"
	}
	return out + "\n"
}

// ConfigureHelpFunc configures a Help during construction. When a
// configuration step fails it stores the failure in err; subsequent steps are
// skipped.
type ConfigureHelpFunc func(h *Help, err *error)

// ConfigureArgumentFunc configures an Argument during registration.
type ConfigureArgumentFunc func(a *Argument, err *error)

var (
	ErrInvalidPattern   = errors.New("invalid highlight pattern")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrDuplicateSection = errors.New("duplicate section")
	ErrDuplicateFlag    = errors.New("duplicate flag")
	ErrDuplicateCommand = errors.New("duplicate command")
	ErrMissingHelpText  = errors.New("missing help text")
	ErrEmptyName        = errors.New("empty name")
	ErrThemeNotFound    = errors.New("theme not found")
	ErrInvalidTheme     = errors.New("invalid theme")
	ErrInvalidStyle     = errors.New("invalid style descriptor")
)
