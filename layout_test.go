package argon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnWidth(t *testing.T) {
	t.Run("widest plain label wins", func(t *testing.T) {
		assert.Equal(t, 13, columnWidth([]string{"-u, --user", "-v, --verbose"}, 0))
	})

	t.Run("fixed width caps the computed width", func(t *testing.T) {
		assert.Equal(t, 10, columnWidth([]string{"-u, --user", "-v, --verbose"}, 10))
	})

	t.Run("cap above the computed width is ignored", func(t *testing.T) {
		assert.Equal(t, 13, columnWidth([]string{"-v, --verbose"}, 40))
	})

	t.Run("no labels means no column", func(t *testing.T) {
		assert.Equal(t, 0, columnWidth(nil, 0))
	})
}

func TestWrapRanges(t *testing.T) {
	text := func(s string, lr lineRange) string { return s[lr.start:lr.end] }

	t.Run("breaks on word boundaries only", func(t *testing.T) {
		s := "the quick brown fox"
		ranges := wrapRanges(s, 10, 10)
		require.Len(t, ranges, 2)
		assert.Equal(t, "the quick", text(s, ranges[0]))
		assert.Equal(t, "brown fox", text(s, ranges[1]))
	})

	t.Run("short text stays on one line", func(t *testing.T) {
		s := "short"
		ranges := wrapRanges(s, 40, 40)
		require.Len(t, ranges, 1)
		assert.Equal(t, "short", text(s, ranges[0]))
	})

	t.Run("pathologically narrow width degrades to rune chunks", func(t *testing.T) {
		s := "abc"
		ranges := wrapRanges(s, 1, 1)
		require.Len(t, ranges, 3)
		for i, want := range []string{"a", "b", "c"} {
			assert.Equal(t, want, text(s, ranges[i]))
		}
	})

	t.Run("over-long token inside a sentence is chunked", func(t *testing.T) {
		s := "see documentation"
		ranges := wrapRanges(s, 6, 6)
		for _, lr := range ranges {
			assert.LessOrEqual(t, displayWidth(text(s, lr)), 6)
		}
	})

	t.Run("separator at the break is dropped", func(t *testing.T) {
		s := "alpha beta"
		ranges := wrapRanges(s, 5, 5)
		require.Len(t, ranges, 2)
		assert.Equal(t, "alpha", text(s, ranges[0]))
		assert.Equal(t, "beta", text(s, ranges[1]))
	})

	t.Run("leading indentation stays on the first line", func(t *testing.T) {
		s := "  alpha beta gamma"
		ranges := wrapRanges(s, 12, 12)
		require.Len(t, ranges, 2)
		assert.Equal(t, "  alpha beta", text(s, ranges[0]), "the indent must wrap with the first word")
		assert.Equal(t, "gamma", text(s, ranges[1]))
	})

	t.Run("indentation counts against the first line's width", func(t *testing.T) {
		s := "    alpha beta"
		ranges := wrapRanges(s, 10, 10)
		require.Len(t, ranges, 2)
		assert.Equal(t, "    alpha", text(s, ranges[0]))
		assert.Equal(t, "beta", text(s, ranges[1]))
	})

	t.Run("hanging continuation width", func(t *testing.T) {
		s := "one two three four five six"
		ranges := wrapRanges(s, 15, 9)
		assert.LessOrEqual(t, displayWidth(text(s, ranges[0])), 15)
		for _, lr := range ranges[1:] {
			assert.LessOrEqual(t, displayWidth(text(s, lr)), 9)
		}
	})
}

func TestProjectSpans(t *testing.T) {
	spans := []Span{
		{Start: 0, End: 3, Category: CategoryArg},
		{Start: 5, End: 15, Category: CategorySyntax},
	}

	t.Run("span crossing the wrap boundary is split with its category", func(t *testing.T) {
		first := projectSpans(spans, lineRange{0, 9}, 0)
		require.Len(t, first, 2)
		assert.Equal(t, Span{Start: 0, End: 3, Category: CategoryArg}, first[0])
		assert.Equal(t, Span{Start: 5, End: 9, Category: CategorySyntax}, first[1])

		second := projectSpans(spans, lineRange{10, 19}, 0)
		require.Len(t, second, 1)
		assert.Equal(t, Span{Start: 0, End: 5, Category: CategorySyntax}, second[0])
	})

	t.Run("base offset shifts projected spans", func(t *testing.T) {
		shifted := projectSpans(spans, lineRange{0, 9}, 4)
		require.Len(t, shifted, 2)
		assert.Equal(t, 4, shifted[0].Start)
	})

	t.Run("spans outside the line vanish", func(t *testing.T) {
		assert.Empty(t, projectSpans(spans, lineRange{16, 20}, 0))
	})
}

func TestStyledFragments(t *testing.T) {
	t.Run("spans split the text around the base category", func(t *testing.T) {
		line := styledFragments("use --user here", []Span{{Start: 4, End: 10, Category: CategoryArg}}, CategoryHelp)
		require.Len(t, line, 3)
		assert.Equal(t, Fragment{Text: "use ", Category: CategoryHelp}, line[0])
		assert.Equal(t, Fragment{Text: "--user", Category: CategoryArg}, line[1])
		assert.Equal(t, Fragment{Text: " here", Category: CategoryHelp}, line[2])
		assert.Equal(t, "use --user here", line.Plain())
	})

	t.Run("no spans yields one base fragment", func(t *testing.T) {
		line := styledFragments("plain text", nil, CategoryText)
		require.Len(t, line, 1)
		assert.Equal(t, Fragment{Text: "plain text", Category: CategoryText}, line[0])
	})
}
