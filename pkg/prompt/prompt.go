package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate mockgen -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// TargetChoice represents a selectable target.
type TargetChoice struct {
	Name  string
	Label string // optional, display only
}

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptSelectTarget prompts the user to select a target from a list.
	PromptSelectTarget(choices []TargetChoice) (TargetChoice, error)
}

type realPrompt struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompt creates a new Prompt instance reading from stdin.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
		writer: os.Stdout,
	}
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	fmt.Fprintf(p.writer, "%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(strings.ToLower(input))

	// Use default if input is empty
	if input == "" {
		return defaultYes, nil
	}

	// Check for yes/no responses
	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptSelectTarget prompts the user to select a target from a list.
func (p *realPrompt) PromptSelectTarget(choices []TargetChoice) (TargetChoice, error) {
	if len(choices) == 0 {
		return TargetChoice{}, ErrNoChoices
	}

	// Use Bubble Tea selector for interactive selection
	return promptSelectTargetBubbleTea(choices)
}
