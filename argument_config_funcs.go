package argon

import (
	"fmt"
	"strings"
)

// WithShortFlag sets the short form of the flag, without the leading dash.
func WithShortFlag(short string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		if err != nil && *err != nil {
			return
		}
		short = strings.TrimLeft(short, "-")
		if short == "" {
			if err != nil {
				*err = fmt.Errorf("%w: short flag", ErrEmptyName)
			}
			return
		}
		argument.Short = short
	}
}

// WithHelpText sets the help text shown next to the argument. Every argument
// must carry help text; registration fails otherwise.
func WithHelpText(help string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Help = help
	}
}

// WithMetavar sets the value placeholder shown after the invocation and
// implies that the argument takes a value.
func WithMetavar(metavar string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Metavar = metavar
		argument.TakesValue = true
	}
}

// WithDefaultValue records the default shown as a "(default: ...)" decoration.
func WithDefaultValue(value string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.DefaultValue = value
	}
}

// WithChoices records the accepted values shown as a "(choices: ...)"
// decoration.
func WithChoices(choices ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Choices = choices
	}
}

// SetRequired marks the argument as required; required arguments render
// without surrounding brackets on the usage line.
func SetRequired(required bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Required = required
	}
}

// TakesValue marks the argument as value-taking without naming the metavar;
// the placeholder is derived from the long name.
func TakesValue(takes bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.TakesValue = takes
	}
}

// WithGroup assigns the argument to a named argument group. Groups render as
// their own sections, in first-use order, after the built-in groups.
func WithGroup(title string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		if strings.TrimSpace(title) == "" {
			if err != nil {
				*err = fmt.Errorf("%w: group title", ErrEmptyName)
			}
			return
		}
		argument.Group = title
	}
}
