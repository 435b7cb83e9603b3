//go:build mage

// Package main contains Mage build targets for ocr-workbench developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// workspaceDirs lists the working directories the workflow expects.
var workspaceDirs = []string{
	"pdf",
	"ocr",
}

// Init creates the workspace directory structure.
func Init() error {
	for _, dir := range workspaceDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Workspace directories initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "ocr-workbench"
	cmdPkg  = "./cmd/ocr-workbench"
)

// Build compiles the CLI binary into bin/, stamping the version from git.
func Build() error {
	mg.Deps(Vet)
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	version := gitVersion()
	if err := sh.RunV("go", "build",
		"-ldflags", "-X main.version="+version,
		"-o", out, cmdPkg); err != nil {
		return err
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// gitVersion returns the current git describe output, or "dev" outside a
// repository.
func gitVersion() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(out)
}
