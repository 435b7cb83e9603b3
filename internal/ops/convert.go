// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ops

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/ocr-workbench/internal/mistral"
	"github.com/pdiddy/ocr-workbench/internal/workspace"
)

// Convert projects one serialized OCR artifact into per-page Markdown files
// under the document's pages directory. Pages are written in artifact array
// order, named by their page index, overwriting earlier conversions. Pages
// written before a failure remain on disk.
func (o *Operations) Convert(ctx context.Context) Result {
	artifacts, err := o.Workspace.FindArtifacts()
	if err != nil {
		return failed(err)
	}
	if len(artifacts) == 0 {
		return skipped("no OCR artifacts under %s; run OCR first", o.Workspace.OutputDir)
	}

	options := make([]string, len(artifacts))
	for i, a := range artifacts {
		options[i] = a.Name
	}
	idx, err := o.Prompter.Select("Select an artifact to convert", options)
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			return cancelled()
		}
		return failed(err)
	}
	artifact := artifacts[idx]

	result, err := readArtifact(artifact.Path)
	if err != nil {
		return failed(err)
	}

	pagesDir := o.Workspace.PagesDir(artifact.Name)
	if err := os.MkdirAll(pagesDir, 0o755); err != nil {
		return failed(fmt.Errorf("creating %s: %w", pagesDir, err))
	}

	for _, page := range result.Pages {
		path := filepath.Join(pagesDir, workspace.PageFileName(page.Index))
		if err := os.WriteFile(path, []byte(page.Markdown), 0o644); err != nil {
			return failed(fmt.Errorf("writing %s: %w", path, err))
		}
		fmt.Fprintf(o.Out, "  wrote %s\n", path)
	}

	return done("%d page(s) written to %s", len(result.Pages), pagesDir)
}

// readArtifact parses a serialized OCR result and validates its shape: the
// pages field must be present and each page carries an index and markdown
// text. A malformed artifact is a local error, not a crash.
func readArtifact(path string) (*mistral.OCRResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading artifact %s: %w", path, err)
	}
	var result mistral.OCRResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing artifact %s: %w", path, err)
	}
	if result.Pages == nil {
		return nil, fmt.Errorf("artifact %s has no pages field", path)
	}
	for i, p := range result.Pages {
		if p.Index < 0 {
			return nil, fmt.Errorf("artifact %s: page %d has negative index %d", path, i, p.Index)
		}
	}
	return &result, nil
}
