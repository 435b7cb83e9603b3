// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workspace manages the local directory layout for the OCR workflow:
// an inbox of source PDFs and an output root holding one subdirectory per
// document with its serialized OCR artifact and converted pages.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/ocr-workbench/pkg/types"
)

// pagesDir is the subdirectory under a document directory for per-page Markdown.
const pagesDir = "pages"

// ArtifactExt is the extension of serialized OCR artifacts.
const ArtifactExt = ".json"

// Workspace resolves paths under the inbox and output roots. Construct it
// once at startup and pass it explicitly to every component that needs it.
type Workspace struct {
	InboxDir  string
	OutputDir string
}

// New builds a Workspace from configuration.
func New(cfg types.WorkspaceConfig) Workspace {
	return Workspace{InboxDir: cfg.InboxDir, OutputDir: cfg.OutputDir}
}

// Init creates the inbox and output roots, including missing ancestors.
// It is idempotent; an existing directory is not an error. Failure here is
// fatal to startup.
func (w Workspace) Init() error {
	for _, dir := range []string{w.InboxDir, w.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return nil
}

// ListInbox returns the names of regular files in the inbox, sorted.
// A missing inbox directory is an error.
func (w Workspace) ListInbox() ([]string, error) {
	entries, err := os.ReadDir(w.InboxDir)
	if err != nil {
		return nil, fmt.Errorf("reading inbox %s: %w", w.InboxDir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// BaseName returns the portion of filename before the first dot, or the whole
// name when there is no dot. Note the truncation is at the FIRST dot:
// "report.v2.final.pdf" maps to "report", so "reportA.pdf" and
// "reportA.v2.pdf" collide on the same output directory.
func BaseName(filename string) string {
	if i := strings.Index(filename, "."); i >= 0 {
		return filename[:i]
	}
	return filename
}

// DocumentDir returns the output subdirectory for a source filename.
func (w Workspace) DocumentDir(filename string) string {
	return filepath.Join(w.OutputDir, BaseName(filename))
}

// PagesDir returns the per-page Markdown directory for a source filename.
func (w Workspace) PagesDir(filename string) string {
	return filepath.Join(w.DocumentDir(filename), pagesDir)
}

// PageFileName returns the Markdown file name for a page index.
func PageFileName(index int) string {
	return fmt.Sprintf("page_%d.md", index)
}

// Artifact is a serialized OCR result discovered under the output root.
type Artifact struct {
	// Name is the artifact file name, e.g. "scan.pdf.json".
	Name string
	// Path is the full path to the artifact file.
	Path string
}

// FindArtifacts scans every immediate subdirectory of the output root and
// collects files with the artifact extension, sorted by name. A missing
// output root is an error; an output root with no artifacts returns an
// empty slice.
func (w Workspace) FindArtifacts() ([]Artifact, error) {
	entries, err := os.ReadDir(w.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("reading output root %s: %w", w.OutputDir, err)
	}

	var artifacts []Artifact
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(w.OutputDir, e.Name())
		children, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", dir, err)
		}
		for _, c := range children {
			if c.IsDir() || !strings.HasSuffix(c.Name(), ArtifactExt) {
				continue
			}
			artifacts = append(artifacts, Artifact{
				Name: c.Name(),
				Path: filepath.Join(dir, c.Name()),
			})
		}
	}
	sort.Slice(artifacts, func(i, j int) bool { return artifacts[i].Name < artifacts[j].Name })
	return artifacts, nil
}
