package argon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeMerge(t *testing.T) {
	base := Theme{CategoryArg: "cyan", CategoryGroup: "bold"}
	override := Theme{CategoryArg: "red", CategoryProg: "green"}

	merged := base.Merge(override)
	assert.Equal(t, "red", merged[CategoryArg], "override wins per key")
	assert.Equal(t, "bold", merged[CategoryGroup], "untouched keys survive")
	assert.Equal(t, "green", merged[CategoryProg], "new keys are added")

	assert.Equal(t, "cyan", base[CategoryArg], "receiver must not be modified")
	assert.NotContains(t, override, CategoryGroup, "override must not be modified")
}

func TestThemeStyle(t *testing.T) {
	theme := Theme{CategoryArg: "red"}

	assert.Equal(t, "red", theme.Style(CategoryArg))
	assert.Equal(t, DefaultTheme()[CategoryGroup], theme.Style(CategoryGroup), "missing keys fall back to the default theme")
	assert.Equal(t, "", theme.Style(StyleCategory("nonexistent")), "unknown categories resolve empty")
}

func TestLoadThemeFile(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "theme.yaml")
		content := "theme:\n  arg: bold red\n  alert: \"#ff8700\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		theme, err := LoadThemeFile(path)
		require.NoError(t, err)
		assert.Equal(t, "bold red", theme[CategoryArg])
		assert.Equal(t, "#ff8700", theme[StyleCategory("alert")], "caller-defined categories are kept")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadThemeFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, ErrThemeNotFound)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "theme.yaml")
		require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed"), 0o644))

		_, err := LoadThemeFile(path)
		assert.ErrorIs(t, err, ErrInvalidTheme)
	})

	t.Run("missing theme mapping", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "theme.yaml")
		require.NoError(t, os.WriteFile(path, []byte("colors:\n  arg: red\n"), 0o644))

		_, err := LoadThemeFile(path)
		assert.ErrorIs(t, err, ErrInvalidTheme)
	})
}

func TestThemeInheritance(t *testing.T) {
	parent, err := New("mytool", WithTheme(Theme{CategoryArg: "red"}))
	require.NoError(t, err)
	sub, err := parent.AddCommand("sync", "Synchronizes state")
	require.NoError(t, err)

	theme := sub.Theme()
	assert.Equal(t, "red", theme[CategoryArg], "subcommands inherit parent overrides")
	assert.Equal(t, DefaultTheme()[CategoryGroup], theme[CategoryGroup], "defaults fill the rest")

	deeper, err := sub.AddCommand("all", "Synchronizes everything",
		WithTheme(Theme{CategoryArg: "blue"}))
	require.NoError(t, err)
	assert.Equal(t, "blue", deeper.Theme()[CategoryArg], "a child override wins over the inherited value")
	assert.Equal(t, "red", sub.Theme()[CategoryArg], "overriding in a child leaves the parent chain alone")
}

func TestWithThemeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme:\n  group: underline\n"), 0o644))

	h, err := New("mytool", WithThemeFile(path))
	require.NoError(t, err)
	assert.Equal(t, "underline", h.Theme()[CategoryGroup])

	_, err = New("mytool", WithThemeFile(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.ErrorIs(t, err, ErrThemeNotFound)
}
