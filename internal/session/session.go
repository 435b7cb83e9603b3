// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session runs the interactive menu loop. The menu is a dispatch
// table of operation handlers; one selection dispatches one operation, and
// the loop returns to the menu after every outcome. Only an explicit Exit
// choice or a cancellation at the top-level menu ends the session.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/ocr-workbench/internal/ops"
)

// Handler runs one lifecycle operation.
type Handler func(ctx context.Context) ops.Result

// Item is one menu entry.
type Item struct {
	Label string
	Run   Handler
}

// exitLabel terminates the session when selected.
const exitLabel = "Exit"

// Menu builds the standard dispatch table over the lifecycle operations.
func Menu(o *ops.Operations) []Item {
	return []Item{
		{Label: "Upload a document", Run: o.Upload},
		{Label: "Run OCR", Run: o.RunOCR},
		{Label: "Convert OCR result to Markdown", Run: o.Convert},
		{Label: "Delete a document", Run: o.Delete},
		{Label: exitLabel},
	}
}

// Session drives the menu loop.
type Session struct {
	Prompter ops.Prompter
	Items    []Item
	Out      io.Writer
}

// Run loops over the menu until the user exits or cancels at the top level.
// Operation failures are reported and the loop continues; Run itself only
// returns an error for a broken prompt source.
func (s *Session) Run(ctx context.Context) error {
	options := make([]string, len(s.Items))
	for i, item := range s.Items {
		options[i] = item.Label
	}

	for {
		idx, err := s.Prompter.Select("What would you like to do?", options)
		if err != nil {
			if errors.Is(err, ops.ErrCancelled) {
				fmt.Fprintln(s.Out, "Bye.")
				return nil
			}
			return fmt.Errorf("reading menu selection: %w", err)
		}

		item := s.Items[idx]
		if item.Run == nil {
			fmt.Fprintln(s.Out, "Bye.")
			return nil
		}

		res := item.Run(ctx)
		switch res.Status {
		case ops.StatusDone:
			fmt.Fprintf(s.Out, "%s\n\n", res.Message)
		case ops.StatusSkipped:
			fmt.Fprintf(s.Out, "Nothing to do: %s\n\n", res.Message)
		case ops.StatusCancelled:
			fmt.Fprintf(s.Out, "Operation cancelled.\n\n")
		case ops.StatusFailed:
			fmt.Fprintf(s.Out, "Operation failed: %s\n\n", res.Message)
		}
	}
}
