// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ops

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ocr-workbench/internal/mistral"
	"github.com/pdiddy/ocr-workbench/internal/workspace"
)

// metadataFile is the per-run sidecar written next to the artifact.
const metadataFile = "metadata.yaml"

// runMetadata records where an artifact came from and what the service
// processed. Written as YAML next to the artifact; the conversion step
// ignores it.
type runMetadata struct {
	SourceFilename string `yaml:"source_filename"`
	FileID         string `yaml:"file_id"`
	Model          string `yaml:"model"`
	Pages          int    `yaml:"pages"`
	ProcessedAt    string `yaml:"processed_at"`
}

// RunOCR processes one uploaded document and serializes the full structured
// result to <documentDir>/<filename>.json. Any failing step aborts the
// whole operation; no step is retried.
func (o *Operations) RunOCR(ctx context.Context) Result {
	file, res, ok := o.selectRemote(ctx, "Select a document to OCR", func(f mistral.File) string {
		return f.Filename
	})
	if !ok {
		return res
	}

	o.Indicator.Start("Requesting signed access URL")
	signedURL, err := o.Client.SignedURL(ctx, file.ID)
	if err != nil {
		o.Indicator.Stop(false, err.Error())
		return failed(err)
	}
	o.Indicator.Stop(true, "Signed URL ready")

	o.Indicator.Start("Running OCR on " + file.Filename)
	result, err := o.Client.ProcessDocument(ctx, o.Model, signedURL, mistral.OCROptions{
		IncludeImageBase64: false,
		ImageLimit:         0,
	})
	if err != nil {
		o.Indicator.Stop(false, err.Error())
		return failed(err)
	}
	o.Indicator.Stop(true, fmt.Sprintf("OCR finished: %d page(s)", len(result.Pages)))

	docDir := o.Workspace.DocumentDir(file.Filename)
	if err := os.MkdirAll(docDir, 0o755); err != nil {
		return failed(fmt.Errorf("creating %s: %w", docDir, err))
	}

	artifactPath := filepath.Join(docDir, file.Filename+workspace.ArtifactExt)
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return failed(fmt.Errorf("serializing OCR result: %w", err))
	}
	if err := os.WriteFile(artifactPath, data, 0o644); err != nil {
		return failed(fmt.Errorf("writing %s: %w", artifactPath, err))
	}

	if err := o.writeMetadata(docDir, file, len(result.Pages)); err != nil {
		return failed(err)
	}

	return done("OCR result written to %s", artifactPath)
}

func (o *Operations) writeMetadata(docDir string, file mistral.File, pages int) error {
	meta := runMetadata{
		SourceFilename: file.Filename,
		FileID:         file.ID,
		Model:          o.Model,
		Pages:          pages,
		ProcessedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	data, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("serializing metadata: %w", err)
	}
	path := filepath.Join(docDir, metadataFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
