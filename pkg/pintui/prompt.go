package pintui

import (
	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/pintui/internal/errors"
)

// runForm runs an interactive form. Tests replace it.
var runForm = func(f *huh.Form) error {
	return f.Run()
}

// Confirm asks a yes/no question defaulting to yes.
func Confirm(msg string) (bool, error) {
	return ConfirmDefault(msg, true)
}

// ConfirmDefault asks a yes/no question with the given default.
func ConfirmDefault(msg string, def bool) (bool, error) {
	answer := def
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(msg).
				Affirmative("Yes").
				Negative("No").
				Value(&answer),
		),
	)
	if err := runForm(form); err != nil {
		return def, promptError(err, msg)
	}
	return answer, nil
}

// Select asks the user to pick one of items and returns its index.
// The first item is preselected.
func Select(msg string, items []string) (int, error) {
	if len(items) == 0 {
		return 0, errors.New(errors.ErrPrompt,
			"Nothing to select for: "+msg,
			"Pass at least one item")
	}

	options := make([]huh.Option[int], len(items))
	for i, item := range items {
		options[i] = huh.NewOption(item, i)
	}

	choice := 0
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(msg).
				Options(options...).
				Value(&choice),
		),
	)
	if err := runForm(form); err != nil {
		return 0, promptError(err, msg)
	}
	return choice, nil
}

// Input asks for a line of text.
func Input(msg string) (string, error) {
	return InputDefault(msg, "")
}

// InputDefault asks for a line of text, prefilled with def.
func InputDefault(msg, def string) (string, error) {
	answer := def
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(msg).
				Value(&answer),
		),
	)
	if err := runForm(form); err != nil {
		return def, promptError(err, msg)
	}
	return answer, nil
}

func promptError(err error, msg string) error {
	if err == huh.ErrUserAborted {
		return errors.WrapWithCode(err, errors.ErrPrompt,
			"Prompt cancelled: "+msg, "")
	}
	return errors.WrapWithCode(err, errors.ErrPrompt,
		"Failed to read answer for: "+msg,
		"Prompts need an interactive terminal")
}
