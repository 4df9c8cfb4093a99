// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/notescript/internal/generate"
	"github.com/pdiddy/notescript/internal/history"
	"github.com/pdiddy/notescript/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate <notes-file>",
	Short: "Generate a Python script from a meeting-notes file",
	Long: `Generate sends the meeting notes to the configured AI backend, extracts
the code block from the reply, checks that it parses as Python, and writes
it to disk with a provenance header. Exactly one model call is made per
run; there is no retry or caching.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", "output file path (default: <output-dir>/generated_script_<timestamp>.py)")
	generateCmd.Flags().String("output-dir", "", "directory for generated scripts when --output is not set")
	generateCmd.Flags().String("api-key", "", "API key for the AI backend (default: environment, .env, or .secrets/)")
	generateCmd.Flags().String("backend", "", "AI backend: anthropic or openai")
	generateCmd.Flags().String("model", "", "AI model identifier")
	generateCmd.Flags().String("script-type", "script", "type of Python code to generate: script, module, or class")
	generateCmd.Flags().Bool("no-history", false, "do not record this run in the history ledger")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := generationConfig(cmd)

	backend, err := generate.NewBackend(cfg)
	if err != nil {
		return err
	}

	pipeline := &generate.Pipeline{
		Backend: backend,
		Config:  cfg,
	}

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		store, err := history.NewStore(historyConfig())
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: history ledger unavailable: %v\n", err)
		} else {
			defer store.Close()
			pipeline.History = store
		}
	}

	outputPath, _ := cmd.Flags().GetString("output")
	_, err = pipeline.Run(cmd.Context(), args[0], outputPath, os.Stdout)
	return err
}

// generationConfig assembles the run configuration from flags, viper
// (config file + NOTESCRIPT_* environment), and .secrets/ key files.
// Flags win over viper; the credential falls through resolveAPIKey.
func generationConfig(cmd *cobra.Command) types.GenerationConfig {
	backendName, _ := cmd.Flags().GetString("backend")
	if backendName == "" {
		backendName = viper.GetString("backend")
	}
	backend := types.BackendKind(backendName)

	model, _ := cmd.Flags().GetString("model")
	if model == "" {
		model = viper.GetString("model")
	}

	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = viper.GetString("output_dir")
	}

	scriptType, _ := cmd.Flags().GetString("script-type")

	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" {
		apiKey = resolveAPIKey(backend)
	}

	return types.GenerationConfig{
		AIConfig: types.AIConfig{
			Backend:   backend,
			Model:     model,
			APIKey:    apiKey,
			MaxTokens: viper.GetInt("max_tokens"),
		},
		HTTP: types.HTTPConfig{
			Timeout:   viper.GetDuration("http_timeout"),
			UserAgent: "notescript/" + version,
		},
		OutputDir:  outputDir,
		ScriptType: types.ScriptType(scriptType),
	}
}

// resolveAPIKey checks NOTESCRIPT_API_KEY (via viper), the backend's
// conventional environment variable, then the .secrets/ key file.
func resolveAPIKey(backend types.BackendKind) string {
	if v := viper.GetString("api_key"); v != "" {
		return v
	}

	envVar, secretFile := "ANTHROPIC_API_KEY", "anthropic-api-key"
	if backend == types.BackendOpenAI {
		envVar, secretFile = "OPENAI_API_KEY", "openai-api-key"
	}
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return loadedSecrets[secretFile]
}
