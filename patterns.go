package argon

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ef-ds/deque/v2"
)

type ruleKind int

const (
	ruleProg ruleKind = iota
	ruleBacktick
	ruleLiteral
	ruleRegex
)

// patternRule is one classification rule. Rules carry a registration order so
// that exact overlap ties resolve to the earliest-registered rule; built-in
// rules always order before custom rules.
type patternRule struct {
	kind     ruleKind
	literal  string
	re       *regexp.Regexp
	category StyleCategory
	order    int
}

// PatternRegistry holds the finalized rule set for one render pass. It is
// built once per render by merging the program name, every option registered
// on the Help and its subcommand tree, the built-in backtick and version
// rules, and the inherited chain of custom patterns. A registry is immutable
// once built.
type PatternRegistry struct {
	rules             []patternRule
	metavars          map[string]string
	progWords         []string
	preserveBackticks bool
}

var versionPattern = regexp.MustCompile(`\bv?\d+\.\d+\.\d+\b`)

// buildPatternRegistry assembles the active rule set for h. Option tokens are
// collected breadth-first across the whole subcommand tree so that a parent's
// help can highlight tokens mentioned in subcommand descriptions and nested
// help stays consistent with the parent's.
func buildPatternRegistry(h *Help, cfg Config) *PatternRegistry {
	reg := &PatternRegistry{
		metavars:          map[string]string{},
		preserveBackticks: cfg.PreserveBackticks,
	}

	order := 0
	if prog := h.progPhrase(); prog != "" {
		reg.progWords = strings.Fields(prog)
		reg.rules = append(reg.rules, patternRule{kind: ruleProg, category: CategoryProg, order: order})
	}
	order++

	reg.rules = append(reg.rules, patternRule{kind: ruleBacktick, category: CategorySyntax, order: order})
	order++

	queue := deque.New[*Help]()
	queue.PushBack(h.root())
	seen := map[string]bool{}
	for queue.Len() > 0 {
		current, _ := queue.PopFront()
		for _, arg := range current.args {
			for _, inv := range arg.invocations() {
				if seen[inv] {
					continue
				}
				seen[inv] = true
				reg.rules = append(reg.rules, patternRule{
					kind:     ruleLiteral,
					literal:  inv,
					category: CategoryArg,
					order:    order,
				})
				if arg.TakesValue {
					reg.metavars[inv] = arg.metavar()
				}
			}
		}
		for pair := current.commands.Oldest(); pair != nil; pair = pair.Next() {
			queue.PushBack(pair.Value)
		}
	}
	order++

	reg.rules = append(reg.rules, patternRule{kind: ruleRegex, re: versionPattern, category: CategoryMetavar, order: order})
	order++

	for _, custom := range h.effectivePatterns() {
		reg.rules = append(reg.rules, patternRule{
			kind:     ruleRegex,
			re:       custom.re,
			category: custom.category,
			order:    order,
		})
		order++
	}

	return reg
}

// compilePattern validates a user-supplied pattern at registration time so a
// malformed expression never reaches a render pass.
func compilePattern(pattern string, category StyleCategory) (*customPattern, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: pattern %q has no style category", ErrInvalidPattern, pattern)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}
	return &customPattern{re: re, category: category}, nil
}

// isWordChar reports whether b continues an option-like token. Literal token
// matches must be bounded by non-word characters so -v never matches inside
// -verbose-extra.
func isWordChar(b byte) bool {
	return b == '-' || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// literalOccurrences returns the byte offsets of every whole-word occurrence
// of token in line.
func literalOccurrences(line, token string) []int {
	var out []int
	for from := 0; ; {
		i := strings.Index(line[from:], token)
		if i < 0 {
			break
		}
		at := from + i
		end := at + len(token)
		before := at == 0 || !isWordChar(line[at-1])
		after := end == len(line) || !isWordChar(line[end])
		if before && after {
			out = append(out, at)
		}
		from = at + 1
	}
	return out
}
