// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt implements the terminal selection prompt and progress
// indicator consumed by the lifecycle operations.
package prompt

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/briandowns/spinner"

	"github.com/pdiddy/ocr-workbench/internal/ops"
)

// Survey renders selection prompts with survey/v2. A Ctrl-C interrupt at
// the prompt surfaces as ops.ErrCancelled.
type Survey struct{}

// Select asks the user to pick one of options and returns its index.
func (Survey) Select(message string, options []string) (int, error) {
	var idx int
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 12,
	}
	if err := survey.AskOne(prompt, &idx); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return 0, ops.ErrCancelled
		}
		return 0, fmt.Errorf("prompt: %w", err)
	}
	return idx, nil
}

// Spinner shows progress around remote calls using a terminal spinner.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner builds a spinner writing to stderr so piped stdout stays clean.
func NewSpinner() *Spinner {
	return &Spinner{
		s: spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr)),
	}
}

// Start begins the spinner with a status message.
func (sp *Spinner) Start(message string) {
	sp.s.Suffix = " " + message
	sp.s.Start()
}

// Stop halts the spinner and prints the outcome line.
func (sp *Spinner) Stop(ok bool, message string) {
	sp.s.Stop()
	if ok {
		fmt.Fprintf(os.Stderr, "✔ %s\n", message)
	} else {
		fmt.Fprintf(os.Stderr, "✘ %s\n", message)
	}
}
