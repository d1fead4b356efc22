package argon

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// Argument describes one declared flag or positional for help rendering. The
// engine only consumes this metadata; it never parses command-line input.
type Argument struct {
	// Long is the long invocation without the leading dashes, e.g. "verbose".
	Long string
	// Short is the short invocation without the leading dash, e.g. "v".
	Short string
	// Metavar is the value placeholder shown after the invocation. When empty
	// and the argument takes a value, it is derived from the long name.
	Metavar string
	// Help is the argument's help text. Required for every argument.
	Help string
	// DefaultValue, when non-empty, is appended to the help text as a
	// "(default: ...)" decoration.
	DefaultValue string
	// Choices, when non-empty, are appended as a "(choices: ...)" decoration.
	Choices []string
	// Required arguments render without the surrounding brackets in usage.
	Required bool
	// TakesValue reports whether the argument accepts a value. Standalone
	// boolean flags leave it false and render without a metavar.
	TakesValue bool
	// Group is the title of the argument group this argument belongs to.
	// Empty means the built-in "Options" or "Positional Arguments" group.
	Group string

	positional bool
}

// NewArg configures an Argument using option functions. Errors raised by the
// option functions are reported when the argument is registered.
func NewArg(configs ...ConfigureArgumentFunc) *Argument {
	argument := &Argument{}
	for _, config := range configs {
		config(argument, nil)
	}

	return argument
}

// Set configures the Argument instance with the provided
// ConfigureArgumentFunc(s), and returns an error if a configuration results in
// an error.
func (a *Argument) Set(configs ...ConfigureArgumentFunc) error {
	var err error
	for _, config := range configs {
		config(a, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// invocations returns every token under which the argument can be highlighted,
// dashes included, short first.
func (a *Argument) invocations() []string {
	if a.positional {
		return nil
	}
	var out []string
	if a.Short != "" {
		out = append(out, "-"+a.Short)
	}
	if a.Long != "" {
		out = append(out, "--"+a.Long)
	}
	return out
}

// metavar returns the explicit metavar, or one derived from the long name for
// value-taking flags and from the positional's own name otherwise.
func (a *Argument) metavar() string {
	if a.Metavar != "" {
		return a.Metavar
	}
	if a.positional {
		return strcase.ToScreamingSnake(a.Long)
	}
	if !a.TakesValue {
		return ""
	}
	return strcase.ToScreamingSnake(a.Long)
}

// decorations returns the "(default: ...)" and "(choices: ...)" suffixes to
// append to the help text, each paired with the category it is styled with.
func (a *Argument) decorations() []Fragment {
	var out []Fragment
	if a.DefaultValue != "" {
		out = append(out, Fragment{
			Text:     fmt.Sprintf("(default: %s)", a.DefaultValue),
			Category: CategoryDefault,
		})
	}
	if len(a.Choices) > 0 {
		out = append(out, Fragment{
			Text:     fmt.Sprintf("(choices: %s)", strings.Join(a.Choices, ", ")),
			Category: CategoryMetavar,
		})
	}
	return out
}

func (a *Argument) validate() error {
	if a.Long == "" && a.Short == "" {
		return fmt.Errorf("%w: argument needs a long or short name", ErrEmptyName)
	}
	if strings.TrimSpace(a.Help) == "" {
		name := a.Long
		if name == "" {
			name = a.Short
		}
		return fmt.Errorf("%w: argument %q", ErrMissingHelpText, name)
	}
	return nil
}
