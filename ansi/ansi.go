// Package ansi renders argon's styled lines as terminal output. It is the
// default rendering backend: the core engine only tags text fragments with
// style categories, and this package maps those categories to colors and
// attributes via lipgloss.
package ansi

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/shlex"

	"github.com/napalu/argon"
)

// namedColors translates the palette names used by the default theme to
// ANSI-256 indexes. Unlisted names pass through to lipgloss untouched, which
// accepts hex values and raw ANSI indexes.
var namedColors = map[string]string{
	"black":       "0",
	"red":         "1",
	"green":       "2",
	"yellow":      "3",
	"blue":        "4",
	"magenta":     "5",
	"cyan":        "6",
	"white":       "7",
	"dark_cyan":   "36",
	"dark_orange": "166",
	"dark_green":  "22",
	"grey42":      "242",
	"grey74":      "250",
}

// Renderer turns styled lines into ANSI strings. Build one per theme; it is
// immutable after construction and safe for concurrent use.
type Renderer struct {
	styles map[argon.StyleCategory]lipgloss.Style
	theme  argon.Theme
}

// NewRenderer compiles every theme entry into a lipgloss style. Invalid
// descriptors are rejected here so rendering itself cannot fail.
func NewRenderer(theme argon.Theme) (*Renderer, error) {
	if theme == nil {
		theme = argon.DefaultTheme()
	}
	styles := make(map[argon.StyleCategory]lipgloss.Style, len(theme))
	for category, descriptor := range theme {
		style, err := ParseStyle(descriptor)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", category, err)
		}
		styles[category] = style
	}
	return &Renderer{styles: styles, theme: theme}, nil
}

// ParseStyle compiles a style descriptor ("bold dark_cyan", "#ff8700 italic",
// "white on blue") into a lipgloss style. Descriptors are split with shlex so
// quoted values survive intact.
func ParseStyle(descriptor string) (lipgloss.Style, error) {
	style := lipgloss.NewStyle()
	tokens, err := shlex.Split(descriptor)
	if err != nil {
		return style, fmt.Errorf("%w: %q: %v", argon.ErrInvalidStyle, descriptor, err)
	}

	background := false
	for _, token := range tokens {
		switch strings.ToLower(token) {
		case "bold":
			style = style.Bold(true)
		case "italic":
			style = style.Italic(true)
		case "underline":
			style = style.Underline(true)
		case "faint", "dim":
			style = style.Faint(true)
		case "blink":
			style = style.Blink(true)
		case "strikethrough":
			style = style.Strikethrough(true)
		case "reverse":
			style = style.Reverse(true)
		case "on":
			background = true
		default:
			color := token
			if mapped, ok := namedColors[strings.ToLower(token)]; ok {
				color = mapped
			}
			if background {
				style = style.Background(lipgloss.Color(color))
				background = false
			} else {
				style = style.Foreground(lipgloss.Color(color))
			}
		}
	}
	if background {
		return style, fmt.Errorf("%w: %q: dangling %q", argon.ErrInvalidStyle, descriptor, "on")
	}
	return style, nil
}

// RenderLine renders one styled line, trimming styled trailing padding.
func (r *Renderer) RenderLine(line argon.StyledLine) string {
	var sb strings.Builder
	for _, fragment := range trimRight(line) {
		if fragment.Text == "" {
			continue
		}
		sb.WriteString(r.style(fragment.Category).Render(fragment.Text))
	}
	return sb.String()
}

// Render renders a whole layout result. The output ends with exactly one
// newline, matching the plain-text contract.
func (r *Renderer) Render(result *argon.LayoutResult) string {
	var sb strings.Builder
	for _, line := range result.Lines() {
		sb.WriteString(r.RenderLine(line))
		sb.WriteByte('\n')
	}
	out := strings.TrimRight(sb.String(), "\n")
	if out == "" {
		return "\n"
	}
	return out + "\n"
}

func (r *Renderer) style(category argon.StyleCategory) lipgloss.Style {
	if style, ok := r.styles[category]; ok {
		return style
	}
	// Unknown categories fall back to the default theme's descriptor; a
	// category unknown to both renders unstyled.
	style, err := ParseStyle(r.theme.Style(category))
	if err != nil {
		return lipgloss.NewStyle()
	}
	return style
}

// trimRight drops trailing whitespace-only fragments and trims the last
// textual fragment so padding never renders as styled spaces.
func trimRight(line argon.StyledLine) argon.StyledLine {
	end := len(line)
	for end > 0 && strings.TrimRight(line[end-1].Text, " ") == "" {
		end--
	}
	if end == 0 {
		return nil
	}
	trimmed := make(argon.StyledLine, end)
	copy(trimmed, line[:end])
	last := trimmed[end-1]
	trimmed[end-1] = argon.Fragment{
		Text:     strings.TrimRight(last.Text, " "),
		Category: last.Category,
	}
	return trimmed
}
