// Command argon-demo renders a sample help document, styled when stdout is a
// terminal and plain otherwise. Pass a YAML theme file as the only argument to
// try custom styles:
//
//	argon-demo [theme.yaml]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/napalu/argon"
	"github.com/napalu/argon/ansi"
	"github.com/napalu/argon/util"
)

func main() {
	logger := log.New(os.Stderr)

	var configs []argon.ConfigureHelpFunc
	if len(os.Args) > 1 {
		configs = append(configs, argon.WithThemeFile(os.Args[1]))
	}

	h, err := buildHelp(configs...)
	if err != nil {
		logger.Fatal("building help", "err", err)
	}

	if !util.IsTerminal() {
		out, err := h.Format()
		if err != nil {
			logger.Fatal("rendering help", "err", err)
		}
		fmt.Print(out)
		return
	}

	result, err := h.Render()
	if err != nil {
		logger.Fatal("rendering help", "err", err)
	}
	renderer, err := ansi.NewRenderer(h.Theme())
	if err != nil {
		logger.Fatal("compiling theme", "err", err)
	}
	fmt.Print(renderer.Render(result))
}

func buildHelp(configs ...argon.ConfigureHelpFunc) (*argon.Help, error) {
	h, err := argon.New("argon-demo", configs...)
	if err != nil {
		return nil, err
	}
	h.SetDescription("Shows what styled help output looks like. " +
		"Option tokens such as --theme, the program name and `code spans` are highlighted automatically.")
	h.SetEpilog("Report issues at https://github.com/napalu/argon.")

	if err := h.AddFlag("theme",
		argon.WithShortFlag("t"),
		argon.WithMetavar("FILE"),
		argon.WithHelpText("Loads style overrides from a YAML theme file")); err != nil {
		return nil, err
	}
	if err := h.AddFlag("width",
		argon.WithShortFlag("w"),
		argon.WithMetavar("COLS"),
		argon.WithDefaultValue("auto"),
		argon.WithHelpText("Wraps output at the given column")); err != nil {
		return nil, err
	}
	if err := h.AddFlag("verbose",
		argon.WithShortFlag("v"),
		argon.WithHelpText("Prints more detail")); err != nil {
		return nil, err
	}
	if err := h.AddNotes(
		"- themes are plain YAML files",
		"- unknown style categories pass through to custom patterns",
	); err != nil {
		return nil, err
	}
	if _, err := h.AddCommand("show", "Renders the demo document"); err != nil {
		return nil, err
	}
	return h, nil
}
