// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ocr-workbench CLI: an interactive
// workflow for uploading PDFs to the Mistral OCR service, running OCR, and
// projecting results to per-page Markdown files.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ocr-workbench/internal/mistral"
	"github.com/pdiddy/ocr-workbench/internal/ops"
	"github.com/pdiddy/ocr-workbench/internal/prompt"
	"github.com/pdiddy/ocr-workbench/internal/secrets"
	"github.com/pdiddy/ocr-workbench/internal/session"
	"github.com/pdiddy/ocr-workbench/internal/workspace"
	"github.com/pdiddy/ocr-workbench/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// apiKeyEnv names the environment variable holding the service credential.
const apiKeyEnv = "MISTRAL_API_KEY"

// apiKeyFile is the secrets-directory fallback for the credential.
const apiKeyFile = "mistral-api-key"

// rootCmd is the single interactive entry point; there are no operation
// subcommands. The menu inside the session selects the operation.
var rootCmd = &cobra.Command{
	Use:     "ocr-workbench",
	Short:   "Interactive PDF OCR workflow against the Mistral API",
	Version: version,
	Long: `ocr-workbench walks a PDF document through the Mistral OCR service: upload
files from a local inbox, run OCR on uploaded documents, convert the
serialized results into one Markdown file per page, and delete remote
documents when done.

Results land under the output root, one subdirectory per document, holding
the raw OCR artifact and a pages/ directory of Markdown files.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run()
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ocr-workbench.yaml or ~/.config/ocr-workbench/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ocr-workbench")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ocr-workbench"))
		}
	}

	viper.SetDefault("inbox_dir", "pdf")
	viper.SetDefault("output_dir", "ocr")
	viper.SetDefault("model", "mistral-ocr-latest")
	viper.SetDefault("base_url", mistral.DefaultBaseURL)

	viper.SetEnvPrefix("OCR_WORKBENCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig materializes the effective configuration from viper.
func loadConfig() types.Config {
	return types.Config{
		Workspace: types.WorkspaceConfig{
			InboxDir:  viper.GetString("inbox_dir"),
			OutputDir: viper.GetString("output_dir"),
		},
		OCR: types.OCRConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("http_timeout"),
				UserAgent: "ocr-workbench/" + version,
			},
			Model:   viper.GetString("model"),
			BaseURL: viper.GetString("base_url"),
		},
	}
}

func run() error {
	cfg := loadConfig()

	// The credential check runs before any directory is created or menu
	// shown; its absence is the only fatal error in the workflow.
	apiKey := secrets.Resolve(apiKeyEnv, secrets.DefaultDir, apiKeyFile)
	if apiKey == "" {
		fmt.Fprintf(os.Stderr, `%s is not set.

Get an API key from https://console.mistral.ai/ and either:

  export %s=<your key>

or write it to %s.
`, apiKeyEnv, apiKeyEnv, filepath.Join(secrets.DefaultDir, apiKeyFile))
		return fmt.Errorf("missing credential %s", apiKeyEnv)
	}

	ws := workspace.New(cfg.Workspace)
	if err := ws.Init(); err != nil {
		return err
	}

	clientOpts := []mistral.Option{
		mistral.WithBaseURL(cfg.OCR.BaseURL),
		mistral.WithUserAgent(cfg.OCR.UserAgent),
	}
	// No timeout by default: a hung remote call hangs the visible operation
	// rather than failing it mid-flight.
	if cfg.OCR.Timeout > 0 {
		clientOpts = append(clientOpts, mistral.WithHTTPClient(&http.Client{Timeout: cfg.OCR.Timeout}))
	}
	client := mistral.NewClient(apiKey, clientOpts...)

	prompter := prompt.Survey{}
	operations := &ops.Operations{
		Workspace: ws,
		Client:    client,
		Prompter:  prompter,
		Indicator: prompt.NewSpinner(),
		Model:     cfg.OCR.Model,
		Out:       os.Stdout,
	}

	s := &session.Session{
		Prompter: prompter,
		Items:    session.Menu(operations),
		Out:      os.Stdout,
	}
	return s.Run(rootCmd.Context())
}

func main() {
	// A missing .env file is fine; exported variables win either way.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
