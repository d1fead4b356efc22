package argon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T, configure func(h *Help) error, configs ...ConfigureHelpFunc) *PatternRegistry {
	t.Helper()
	h, err := New("mytool", configs...)
	require.NoError(t, err)
	if configure != nil {
		require.NoError(t, configure(h))
	}
	return buildPatternRegistry(h, h.effectiveConfig())
}

func TestHighlightOptionTokens(t *testing.T) {
	reg := testRegistry(t, func(h *Help) error {
		return h.AddFlag("verbose", WithShortFlag("v"), WithHelpText("more detail"))
	})

	text, spans := reg.highlight("Use --verbose or -v for detailed output", nil, nil)
	assert.Equal(t, "Use --verbose or -v for detailed output", text, "literal matches must not change the text")
	require.Len(t, spans, 2, "expected one span per option token")
	assert.Equal(t, Span{Start: 4, End: 13, Category: CategoryArg}, spans[0])
	assert.Equal(t, Span{Start: 17, End: 19, Category: CategoryArg}, spans[1])
}

func TestHighlightWordBoundaries(t *testing.T) {
	reg := testRegistry(t, func(h *Help) error {
		return h.AddFlag("verbose", WithShortFlag("v"), WithHelpText("more detail"))
	})

	_, spans := reg.highlight("-verbose-extra is not -v", nil, nil)
	require.Len(t, spans, 1, "-v must not match inside -verbose-extra")
	assert.Equal(t, Span{Start: 22, End: 24, Category: CategoryArg}, spans[0])
}

func TestHighlightProgramName(t *testing.T) {
	reg := testRegistry(t, func(h *Help) error {
		return h.AddFlag("verbose", WithHelpText("more detail"))
	})

	_, spans := reg.highlight("mytool input.txt --verbose", nil, nil)
	require.Len(t, spans, 2)
	assert.Equal(t, Span{Start: 0, End: 6, Category: CategoryProg}, spans[0], "program name should be tagged prog")
	assert.Equal(t, Span{Start: 17, End: 26, Category: CategoryArg}, spans[1])
}

func TestHighlightSubcommandProgramPhrase(t *testing.T) {
	h, err := New("bh")
	require.NoError(t, err)
	sub, err := h.AddCommand("add", "Adds things")
	require.NoError(t, err)

	reg := buildPatternRegistry(sub, sub.effectiveConfig())
	_, spans := reg.highlight("run bh add to store", nil, nil)
	require.Len(t, spans, 2)
	assert.Equal(t, Span{Start: 4, End: 6, Category: CategoryProg}, spans[0])
	assert.Equal(t, Span{Start: 7, End: 10, Category: CategoryProg}, spans[1])
}

func TestHighlightBackticks(t *testing.T) {
	t.Run("backticks stripped by default", func(t *testing.T) {
		reg := testRegistry(t, func(h *Help) error {
			return h.AddFlag("user", WithShortFlag("u"), WithHelpText("sets the user"))
		})

		text, spans := reg.highlight("Use `--user` to specify username", nil, nil)
		assert.Equal(t, "Use --user to specify username", text)
		require.Len(t, spans, 1)
		assert.Equal(t, Span{Start: 4, End: 10, Category: CategorySyntax}, spans[0])
	})

	t.Run("backticks preserved when configured", func(t *testing.T) {
		reg := testRegistry(t, func(h *Help) error {
			return h.AddFlag("user", WithShortFlag("u"), WithHelpText("sets the user"))
		}, WithPreserveBackticks(true))

		text, spans := reg.highlight("Use `--user` now", nil, nil)
		assert.Equal(t, "Use `--user` now", text, "text must keep the backticks")
		require.Len(t, spans, 1)
		assert.Equal(t, Span{Start: 5, End: 11, Category: CategorySyntax}, spans[0], "delimiters stay visible but unstyled")
	})
}

func TestHighlightOverlapResolution(t *testing.T) {
	t.Run("longest match wins", func(t *testing.T) {
		reg := testRegistry(t, func(h *Help) error {
			if err := h.AddPattern(`foo`, "short"); err != nil {
				return err
			}
			return h.AddPattern(`foobarb`, "long")
		})

		_, spans := reg.highlight("foobarbaz", nil, nil)
		require.Len(t, spans, 1)
		assert.Equal(t, Span{Start: 0, End: 7, Category: StyleCategory("long")}, spans[0])
	})

	t.Run("first registered wins on exact ties", func(t *testing.T) {
		reg := testRegistry(t, func(h *Help) error {
			if err := h.AddPattern(`fo+`, "first"); err != nil {
				return err
			}
			return h.AddPattern(`f..`, "second")
		})

		_, spans := reg.highlight("foo", nil, nil)
		require.Len(t, spans, 1)
		assert.Equal(t, StyleCategory("first"), spans[0].Category)
	})

	t.Run("rejected overlaps are discarded", func(t *testing.T) {
		reg := testRegistry(t, func(h *Help) error {
			if err := h.AddPattern(`abcdef`, "wide"); err != nil {
				return err
			}
			return h.AddPattern(`cde`, "inner")
		})

		_, spans := reg.highlight("abcdef", nil, nil)
		require.Len(t, spans, 1, "the shorter overlapping match must be dropped")
		assert.Equal(t, StyleCategory("wide"), spans[0].Category)
	})
}

func TestHighlightZeroLengthMatches(t *testing.T) {
	reg := testRegistry(t, func(h *Help) error {
		return h.AddPattern(`x*`, "xs")
	})

	_, spans := reg.highlight("ax", nil, nil)
	require.Len(t, spans, 1, "zero-length matches must be discarded, not looped on")
	assert.Equal(t, Span{Start: 1, End: 2, Category: StyleCategory("xs")}, spans[0])
}

func TestHighlightVersionStrings(t *testing.T) {
	reg := testRegistry(t, nil)

	_, spans := reg.highlight("mytool v1.2.3 is current", nil, nil)
	require.Len(t, spans, 2)
	assert.Equal(t, CategoryProg, spans[0].Category)
	assert.Equal(t, Span{Start: 7, End: 13, Category: CategoryMetavar}, spans[1])
}

func TestHighlightTrailingMetavar(t *testing.T) {
	reg := testRegistry(t, func(h *Help) error {
		return h.AddFlag("output", WithShortFlag("o"), WithHelpText("write here"), WithMetavar("FILE"))
	})

	_, spans := reg.highlight("--output FILE selects the target", nil, nil)
	require.Len(t, spans, 2)
	assert.Equal(t, Span{Start: 0, End: 8, Category: CategoryArg}, spans[0])
	assert.Equal(t, Span{Start: 9, End: 13, Category: CategoryMetavar}, spans[1])
}

func TestHighlightSeedsWinTies(t *testing.T) {
	reg := testRegistry(t, func(h *Help) error {
		return h.AddFlag("user", WithHelpText("sets the user"))
	})

	seeds := []Span{{Start: 0, End: 6, Category: CategoryDefault}}
	_, spans := reg.highlight("--user", seeds, nil)
	require.Len(t, spans, 1)
	assert.Equal(t, CategoryDefault, spans[0].Category, "seed spans take precedence on exact ties")
}
