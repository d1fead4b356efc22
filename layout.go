package argon

import (
	"strings"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/mattn/go-runewidth"
)

// gutterWidth separates the label column from body text.
const gutterWidth = 2

// lineRange is one wrapped output line as a byte-offset range into the
// source text.
type lineRange struct {
	start, end int
}

func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// columnWidth computes the shared label-column width for one section: the
// widest label measured on plain text, capped by the fixed width when one is
// configured. Styled representations never participate in the measurement.
func columnWidth(labels []string, fixed int) int {
	width := 0
	for _, label := range labels {
		if w := displayWidth(label); w > width {
			width = w
		}
	}
	if fixed > 0 && width > fixed {
		width = fixed
	}
	return width
}

// wrapRanges splits text into word-boundary wrapped lines. The first line may
// use firstWidth display cells, continuation lines restWidth. Tokens are never
// split mid-word unless a single token is wider than the whole line, in which
// case it degrades to rune-by-rune chunks rather than failing.
func wrapRanges(text string, firstWidth, restWidth int) []lineRange {
	if firstWidth < 1 {
		firstWidth = 1
	}
	if restWidth < 1 {
		restWidth = 1
	}
	if displayWidth(text) <= firstWidth {
		return []lineRange{{0, len(text)}}
	}

	var out []lineRange
	limit := firstWidth
	cur := lineRange{-1, -1}
	curWidth := 0
	pendEnd, pendWidth := -1, 0
	leadWidth := 0

	flush := func() {
		out = append(out, cur)
		cur = lineRange{-1, -1}
		curWidth = 0
		pendEnd, pendWidth = -1, 0
		limit = restWidth
	}

	offset := 0
	tokens := words.FromString(text)
	for tokens.Next() {
		token := tokens.Value()
		start := offset
		offset += len(token)
		width := displayWidth(token)

		if strings.TrimSpace(token) == "" {
			// Whitespace binds to the line only if a word follows on it;
			// otherwise it is dropped at the break. Whitespace ahead of the
			// very first word is the line's own indentation and is kept.
			if cur.start >= 0 {
				if pendEnd >= 0 {
					pendEnd, pendWidth = offset, pendWidth+width
				} else {
					pendEnd, pendWidth = offset, width
				}
			} else if len(out) == 0 {
				leadWidth += width
			}
			continue
		}

		if cur.start < 0 {
			if len(out) == 0 && leadWidth > 0 && leadWidth+width <= limit {
				cur = lineRange{0, offset}
				curWidth = leadWidth + width
				continue
			}
			if width <= limit {
				cur = lineRange{start, offset}
				curWidth = width
				continue
			}
			head, rest := splitWide(text, start, offset, limit, restWidth)
			out = append(out, head...)
			cur = rest
			curWidth = displayWidth(text[rest.start:rest.end])
			limit = restWidth
			continue
		}

		joined := pendWidth + width
		if pendEnd < 0 {
			joined = width
		}
		if curWidth+joined <= limit {
			cur.end = offset
			curWidth += joined
			pendEnd, pendWidth = -1, 0
			continue
		}

		flush()
		if width <= limit {
			cur = lineRange{start, offset}
			curWidth = width
			continue
		}
		head, rest := splitWide(text, start, offset, limit, restWidth)
		out = append(out, head...)
		cur = rest
		curWidth = displayWidth(text[rest.start:rest.end])
	}
	if cur.start >= 0 {
		out = append(out, cur)
	}
	if len(out) == 0 {
		out = []lineRange{{0, len(text)}}
	}
	return out
}

// splitWide chunks an over-long token rune by rune. All chunks but the last
// are returned as full lines; the last becomes the new current line.
func splitWide(text string, start, end, firstWidth, restWidth int) ([]lineRange, lineRange) {
	var full []lineRange
	limit := firstWidth
	cur := lineRange{start, start}
	curWidth := 0
	for i := start; i < end; {
		r, size := utf8.DecodeRuneInString(text[i:])
		w := runewidth.RuneWidth(r)
		if curWidth > 0 && curWidth+w > limit {
			full = append(full, cur)
			cur = lineRange{i, i}
			curWidth = 0
			limit = restWidth
		}
		cur.end = i + size
		curWidth += w
		i += size
	}
	return full, cur
}

// projectSpans maps spans from the unwrapped text onto one wrapped line. A
// span crossing the wrap boundary is clipped to the line and re-offset; its
// category is preserved, so the remainder reappears on the next line.
func projectSpans(spans []Span, lr lineRange, base int) []Span {
	var out []Span
	for _, s := range spans {
		start, end := s.Start, s.End
		if start < lr.start {
			start = lr.start
		}
		if end > lr.end {
			end = lr.end
		}
		if start >= end {
			continue
		}
		out = append(out, Span{Start: start - lr.start + base, End: end - lr.start + base, Category: s.Category})
	}
	return out
}

// styledFragments converts text plus resolved spans into a fragment sequence.
// Text not covered by any span carries the base category.
func styledFragments(text string, spans []Span, base StyleCategory) StyledLine {
	var line StyledLine
	last := 0
	for _, s := range spans {
		if s.Start > last {
			line = append(line, Fragment{Text: text[last:s.Start], Category: base})
		}
		line = append(line, Fragment{Text: text[s.Start:s.End], Category: s.Category})
		last = s.End
	}
	if last < len(text) {
		line = append(line, Fragment{Text: text[last:], Category: base})
	}
	return line
}

// pad returns n spaces.
func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
