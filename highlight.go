package argon

import (
	"regexp"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// candidate is one raw rule match before overlap resolution.
type candidate struct {
	start    int
	end      int
	category StyleCategory
	order    int
	// backtick matches remember the full delimiter positions so the
	// delimiters can be stripped after resolution.
	backtickOpen  int
	backtickClose int
	isBacktick    bool
}

var (
	backtickSpan   = regexp.MustCompile("`([^`]+)`")
	metavarTrailer = regexp.MustCompile(`^\s+(\S+)`)
)

// highlight classifies one line against the registry. It returns the
// processed text (backtick delimiters stripped unless preservation is on) and
// the accepted spans over that processed text, left to right, non-overlapping.
//
// Overlap resolution is greedy: candidates sort by start offset, then by
// descending length, then by rule registration order; a candidate is accepted
// only when it starts at or after the end of the last accepted one.
// Zero-length matches are discarded up front and logged as anomalies.
func (reg *PatternRegistry) highlight(line string, seeds []Span, logger *log.Logger) (string, []Span) {
	candidates := reg.collect(line, logger)
	for _, s := range seeds {
		if s.End <= s.Start {
			continue
		}
		candidates = append(candidates, candidate{start: s.Start, end: s.End, category: s.Category, order: -1})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.start != b.start {
			return a.start < b.start
		}
		if la, lb := a.end-a.start, b.end-b.start; la != lb {
			return la > lb
		}
		return a.order < b.order
	})

	var accepted []candidate
	lastEnd := 0
	for _, c := range candidates {
		if c.start < lastEnd {
			continue
		}
		accepted = append(accepted, c)
		lastEnd = c.end
	}

	accepted = reg.tagTrailingMetavars(line, accepted)

	if reg.preserveBackticks {
		return line, spansOf(accepted)
	}
	return stripBackticks(line, accepted)
}

// collect gathers every raw match of every rule against the line.
func (reg *PatternRegistry) collect(line string, logger *log.Logger) []candidate {
	var out []candidate
	for _, rule := range reg.rules {
		switch rule.kind {
		case ruleProg:
			out = append(out, reg.progCandidates(line, rule)...)
		case ruleBacktick:
			for _, m := range backtickSpan.FindAllStringSubmatchIndex(line, -1) {
				out = append(out, candidate{
					start:         m[2],
					end:           m[3],
					category:      rule.category,
					order:         rule.order,
					backtickOpen:  m[0],
					backtickClose: m[1] - 1,
					isBacktick:    true,
				})
			}
		case ruleLiteral:
			for _, at := range literalOccurrences(line, rule.literal) {
				out = append(out, candidate{
					start:    at,
					end:      at + len(rule.literal),
					category: rule.category,
					order:    rule.order,
				})
			}
		case ruleRegex:
			for _, m := range rule.re.FindAllStringIndex(line, -1) {
				if m[1] <= m[0] {
					if logger != nil {
						logger.Debug("discarding zero-length highlight match",
							"pattern", rule.re.String(), "offset", m[0])
					}
					continue
				}
				out = append(out, candidate{
					start:    m[0],
					end:      m[1],
					category: rule.category,
					order:    rule.order,
				})
			}
		}
	}
	return out
}

// progCandidates matches the program name as whole words. For subcommand help
// the full phrase ("tool sync") yields one span per word; the bare root name
// is matched as well so examples mentioning only the main program still
// highlight.
func (reg *PatternRegistry) progCandidates(line string, rule patternRule) []candidate {
	var out []candidate
	if len(reg.progWords) > 1 {
		phrase := strings.Join(reg.progWords, " ")
		for _, at := range literalOccurrences(line, phrase) {
			word := at
			for _, w := range reg.progWords {
				out = append(out, candidate{
					start:    word,
					end:      word + len(w),
					category: rule.category,
					order:    rule.order,
				})
				word += len(w) + 1
			}
		}
	}
	for _, at := range literalOccurrences(line, reg.progWords[0]) {
		out = append(out, candidate{
			start:    at,
			end:      at + len(reg.progWords[0]),
			category: rule.category,
			order:    rule.order,
		})
	}
	return out
}

// tagTrailingMetavars adds a metavar span after each accepted option token
// whose argument takes a value, when the following token matches the declared
// metavar ("--output FILE"). Added spans never overlap existing ones.
func (reg *PatternRegistry) tagTrailingMetavars(line string, accepted []candidate) []candidate {
	var added []candidate
	for i, c := range accepted {
		if c.category != CategoryArg || c.isBacktick {
			continue
		}
		metavar := reg.metavars[line[c.start:c.end]]
		if metavar == "" {
			continue
		}
		m := metavarTrailer.FindStringSubmatchIndex(line[c.end:])
		if m == nil {
			continue
		}
		start, end := c.end+m[2], c.end+m[3]
		if line[start:end] != metavar {
			continue
		}
		if i+1 < len(accepted) && end > accepted[i+1].start {
			continue
		}
		added = append(added, candidate{start: start, end: end, category: CategoryMetavar, order: c.order})
	}
	if len(added) == 0 {
		return accepted
	}
	merged := append(accepted, added...)
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].start < merged[j].start })
	return merged
}

// stripBackticks removes the delimiter characters of every accepted backtick
// match and re-offsets all spans onto the shortened text.
func stripBackticks(line string, accepted []candidate) (string, []Span) {
	var removals []int
	for _, c := range accepted {
		if c.isBacktick {
			removals = append(removals, c.backtickOpen, c.backtickClose)
		}
	}
	if len(removals) == 0 {
		return line, spansOf(accepted)
	}
	sort.Ints(removals)

	remove := make(map[int]bool, len(removals))
	for _, at := range removals {
		remove[at] = true
	}
	var sb strings.Builder
	sb.Grow(len(line) - len(removals))
	for i := 0; i < len(line); i++ {
		if !remove[i] {
			sb.WriteByte(line[i])
		}
	}

	shift := func(off int) int {
		n := sort.SearchInts(removals, off)
		return off - n
	}
	spans := make([]Span, 0, len(accepted))
	for _, c := range accepted {
		spans = append(spans, Span{Start: shift(c.start), End: shift(c.end), Category: c.category})
	}
	return sb.String(), spans
}

func spansOf(accepted []candidate) []Span {
	spans := make([]Span, 0, len(accepted))
	for _, c := range accepted {
		spans = append(spans, Span{Start: c.start, End: c.end, Category: c.category})
	}
	return spans
}
