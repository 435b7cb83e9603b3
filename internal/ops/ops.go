// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ops implements the four document lifecycle operations: Upload,
// Delete, RunOCR, and Convert. Each follows the same shape — validate
// preconditions, perform one unit of work, report — and returns a Result
// the session loop can display without terminating.
package ops

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/ocr-workbench/internal/mistral"
	"github.com/pdiddy/ocr-workbench/internal/workspace"
)

// Purpose tags uploads so listing only returns documents relevant to this
// workflow.
const Purpose = "ocr"

// ErrCancelled is returned by a Prompter when the user aborts a selection.
// Cancellation is honored only at the selection step, never once a remote
// call has been issued.
var ErrCancelled = errors.New("selection cancelled")

// PreconditionError reports that an operation had nothing to act on (empty
// inbox, no remote documents, no artifacts). It is informational: the
// operation is skipped and the session continues.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string { return e.Reason }

// Status classifies the outcome of one operation run.
type Status int

const (
	// StatusDone means the operation completed its unit of work.
	StatusDone Status = iota
	// StatusSkipped means a precondition was not met and nothing was done.
	StatusSkipped
	// StatusCancelled means the user aborted at a selection prompt.
	StatusCancelled
	// StatusFailed means the operation started but did not complete.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusSkipped:
		return "skipped"
	case StatusCancelled:
		return "cancelled"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of one operation run. Err is set only for
// StatusFailed; Message carries the human-readable summary for the others.
type Result struct {
	Status  Status
	Message string
	Err     error
}

func done(format string, args ...any) Result {
	return Result{Status: StatusDone, Message: fmt.Sprintf(format, args...)}
}

func skipped(format string, args ...any) Result {
	return Result{Status: StatusSkipped, Message: fmt.Sprintf(format, args...)}
}

func cancelled() Result {
	return Result{Status: StatusCancelled, Message: "cancelled"}
}

func failed(err error) Result {
	return Result{Status: StatusFailed, Message: err.Error(), Err: err}
}

// RemoteClient is the slice of the OCR service this workflow consumes.
// *mistral.Client satisfies it; tests substitute fakes.
type RemoteClient interface {
	ListFiles(ctx context.Context, purpose string) ([]mistral.File, error)
	UploadFile(ctx context.Context, filename string, content []byte, purpose string) (mistral.File, error)
	SignedURL(ctx context.Context, fileID string) (string, error)
	ProcessDocument(ctx context.Context, model, documentURL string, opts mistral.OCROptions) (*mistral.OCRResponse, error)
	DeleteFile(ctx context.Context, fileID string) error
}

// Prompter asks the user to pick one option. Select returns the index of
// the chosen option, or an error wrapping ErrCancelled on abort.
type Prompter interface {
	Select(message string, options []string) (int, error)
}

// Indicator shows progress around a long-running step and its outcome.
type Indicator interface {
	Start(message string)
	Stop(ok bool, message string)
}

// Operations bundles the collaborators the lifecycle operations need. All
// fields are injected; Operations holds no state of its own between runs.
type Operations struct {
	Workspace workspace.Workspace
	Client    RemoteClient
	Prompter  Prompter
	Indicator Indicator
	Model     string
	Out       io.Writer
}

// selectRemote lists uploaded documents and prompts for one. The label
// function renders each file as a menu option.
func (o *Operations) selectRemote(ctx context.Context, message string, label func(mistral.File) string) (mistral.File, Result, bool) {
	o.Indicator.Start("Fetching document list")
	files, err := o.Client.ListFiles(ctx, Purpose)
	if err != nil {
		o.Indicator.Stop(false, err.Error())
		return mistral.File{}, failed(err), false
	}
	o.Indicator.Stop(true, fmt.Sprintf("%d document(s) on the service", len(files)))

	if len(files) == 0 {
		return mistral.File{}, skipped("no documents uploaded yet; upload one first"), false
	}

	options := make([]string, len(files))
	for i, f := range files {
		options[i] = label(f)
	}
	idx, err := o.Prompter.Select(message, options)
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			return mistral.File{}, cancelled(), false
		}
		return mistral.File{}, failed(err), false
	}
	return files[idx], Result{}, true
}
