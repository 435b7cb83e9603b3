// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workspace

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pdiddy/ocr-workbench/pkg/types"
)

func TestBaseName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"simple pdf", "scan.pdf", "scan"},
		{"no extension", "README", "README"},
		{"multiple dots truncate at first", "report.v2.final.pdf", "report"},
		{"leading dot", ".hidden", ""},
		{"trailing dot", "name.", "name"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BaseName(tt.filename); got != tt.want {
				t.Errorf("BaseName(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDocumentDirAndPagesDir(t *testing.T) {
	w := Workspace{InboxDir: "pdf", OutputDir: "ocr"}

	if got, want := w.DocumentDir("scan.pdf"), filepath.Join("ocr", "scan"); got != want {
		t.Errorf("DocumentDir = %q, want %q", got, want)
	}
	if got, want := w.DocumentDir("nodot"), filepath.Join("ocr", "nodot"); got != want {
		t.Errorf("DocumentDir(no dot) = %q, want %q", got, want)
	}
	if got, want := w.PagesDir("scan.pdf.json"), filepath.Join("ocr", "scan", "pages"); got != want {
		t.Errorf("PagesDir = %q, want %q", got, want)
	}
}

func TestPageFileName(t *testing.T) {
	if got := PageFileName(0); got != "page_0.md" {
		t.Errorf("PageFileName(0) = %q, want page_0.md", got)
	}
	if got := PageFileName(17); got != "page_17.md" {
		t.Errorf("PageFileName(17) = %q, want page_17.md", got)
	}
}

func TestInitIdempotent(t *testing.T) {
	root := t.TempDir()
	w := New(types.WorkspaceConfig{
		InboxDir:  filepath.Join(root, "pdf"),
		OutputDir: filepath.Join(root, "ocr"),
	})

	if err := w.Init(); err != nil {
		t.Fatalf("first Init: %v", err)
	}
	if err := w.Init(); err != nil {
		t.Fatalf("second Init: %v", err)
	}

	for _, dir := range []string{w.InboxDir, w.OutputDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("stat %s: %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}
}

func TestListInbox(t *testing.T) {
	root := t.TempDir()
	w := Workspace{InboxDir: filepath.Join(root, "pdf"), OutputDir: filepath.Join(root, "ocr")}

	if _, err := w.ListInbox(); err == nil {
		t.Fatal("ListInbox on missing directory: want error, got nil")
	}

	if err := w.Init(); err != nil {
		t.Fatal(err)
	}
	writeFile(t, w.InboxDir, "b.pdf", "two")
	writeFile(t, w.InboxDir, "a.pdf", "one")
	if err := os.Mkdir(filepath.Join(w.InboxDir, "subdir"), 0o755); err != nil {
		t.Fatal(err)
	}

	names, err := w.ListInbox()
	if err != nil {
		t.Fatalf("ListInbox: %v", err)
	}
	want := []string{"a.pdf", "b.pdf"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ListInbox = %v, want %v", names, want)
	}
}

func TestFindArtifacts(t *testing.T) {
	root := t.TempDir()
	w := Workspace{InboxDir: filepath.Join(root, "pdf"), OutputDir: filepath.Join(root, "ocr")}
	if err := w.Init(); err != nil {
		t.Fatal(err)
	}

	// Empty output root: no artifacts, no error.
	artifacts, err := w.FindArtifacts()
	if err != nil {
		t.Fatalf("FindArtifacts(empty): %v", err)
	}
	if len(artifacts) != 0 {
		t.Errorf("FindArtifacts(empty) = %v, want none", artifacts)
	}

	scanDir := filepath.Join(w.OutputDir, "scan")
	reportDir := filepath.Join(w.OutputDir, "report")
	for _, dir := range []string{scanDir, reportDir, filepath.Join(scanDir, "pages")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	writeFile(t, scanDir, "scan.pdf.json", "{}")
	writeFile(t, scanDir, "metadata.yaml", "model: x")
	writeFile(t, reportDir, "report.pdf.json", "{}")
	writeFile(t, w.OutputDir, "stray.json", "{}") // files at the root are not artifacts

	artifacts, err = w.FindArtifacts()
	if err != nil {
		t.Fatalf("FindArtifacts: %v", err)
	}
	var names []string
	for _, a := range artifacts {
		names = append(names, a.Name)
	}
	want := []string{"report.pdf.json", "scan.pdf.json"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("artifact names = %v, want %v", names, want)
	}
	for _, a := range artifacts {
		if _, err := os.Stat(a.Path); err != nil {
			t.Errorf("artifact path %s: %v", a.Path, err)
		}
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
