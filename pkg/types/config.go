package types

import "time"

// HTTPConfig holds shared HTTP settings for components that call the remote API.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no client-enforced
	// timeout; a hung remote call hangs the visible operation.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "ocr-workbench/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// WorkspaceConfig holds the local directory layout for the workflow.
type WorkspaceConfig struct {
	// InboxDir is the directory holding source PDFs awaiting upload (default "pdf").
	InboxDir string `json:"inbox_dir" yaml:"inbox_dir"`

	// OutputDir is the root for per-document OCR output (default "ocr").
	// Each document gets a subdirectory named after its base name.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// OCRConfig holds settings for the OCR stage.
type OCRConfig struct {
	HTTPConfig `yaml:",inline"`

	// Model is the OCR model identifier (default "mistral-ocr-latest").
	Model string `json:"model" yaml:"model"`

	// BaseURL is the API endpoint base (default "https://api.mistral.ai").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIKey authenticates against the remote service. Resolved from the
	// environment or the secrets directory, never from the config file.
	APIKey string `json:"-" yaml:"-"`
}

// Config groups all settings for the workbench.
type Config struct {
	Workspace WorkspaceConfig `json:"workspace" yaml:"workspace"`
	OCR       OCRConfig       `json:"ocr" yaml:"ocr"`
}
