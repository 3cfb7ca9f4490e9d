package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"svnbranch/internal/logging"
	"svnbranch/internal/ports"
)

// HuhPrompter implements ports.Prompter with charmbracelet/huh forms
type HuhPrompter struct{}

// Verify interface compliance at compile time
var _ ports.Prompter = (*HuhPrompter)(nil)

// NewHuhPrompter creates a new HuhPrompter
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{}
}

// Confirm asks a yes/no question. Aborting the form counts as "no".
func (p *HuhPrompter) Confirm(title, description string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(&confirmed).
				Affirmative("Yes").
				Negative("No"),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			logging.Logger.Info("Confirmation aborted", "title", title)
			return false, nil
		}
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return confirmed, nil
}

// Input asks for a single non-empty line of text
func (p *HuhPrompter) Input(title, placeholder string) (string, error) {
	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder(placeholder).
				Value(&value).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("value required")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("input failed: %w", err)
	}
	return value, nil
}

// NonInteractive implements ports.Prompter for scripted runs: every confirmation is declined
type NonInteractive struct{}

// Verify interface compliance at compile time
var _ ports.Prompter = NonInteractive{}

// Confirm always declines
func (NonInteractive) Confirm(title, description string) (bool, error) {
	return false, nil
}

// Input always fails
func (NonInteractive) Input(title, placeholder string) (string, error) {
	return "", fmt.Errorf("%s: input required but running non-interactively", title)
}
