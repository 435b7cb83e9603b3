// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves API credentials. The process environment is the
// primary source; a directory of plain-text key files (one secret per file,
// filename is the key name) serves as a fallback for local development.
package secrets

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is the conventional secrets directory at the project root.
const DefaultDir = ".secrets"

// Resolve returns the credential named envKey from the environment, or the
// trimmed contents of dir/fileName when the variable is unset or blank.
// Returns "" when neither source yields a value. A missing directory or
// file is not an error.
func Resolve(envKey, dir, fileName string) string {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	return FromFile(filepath.Join(dir, fileName))
}

// FromFile returns the trimmed contents of a secret file, or "" if the file
// is missing, unreadable, or blank.
func FromFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
