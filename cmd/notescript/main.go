// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the notescript CLI, a one-shot
// meeting-notes to Python-script generator.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/notescript/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// setupGuidance is printed alongside any top-level failure.
const setupGuidance = `
Make sure you have:
  1. An API key for the selected backend: set ANTHROPIC_API_KEY or
     OPENAI_API_KEY (in the environment, a .env file, or a key file
     under .secrets/), or pass --api-key
  2. A stable internet connection

Run 'notescript generate --help' for backend and model options.`

// rootCmd is the base command for the notescript CLI.
var rootCmd = &cobra.Command{
	Use:   "notescript",
	Short: "Generate runnable Python scripts from meeting notes",
	Long: `notescript reads a text file of meeting notes, asks a conversational AI
model for a matching Python starter script, extracts and validates the code
in the reply, and writes it to disk with a provenance header.

The pipeline is one-shot: one input file, one model call, one script out.
Past runs are recorded in a local history ledger.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env first so both viper and the backends see its values.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("loading .env: %w", err)
		}

		s, err := secrets.Load(".secrets/", os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./notescript.yaml or ~/.config/notescript/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("notescript")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "notescript"))
		}
	}

	viper.SetDefault("backend", "anthropic")
	viper.SetDefault("output_dir", "output_scripts")
	viper.SetDefault("history_dir", ".notescript")
	viper.SetDefault("max_tokens", 4096)

	viper.SetEnvPrefix("NOTESCRIPT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, setupGuidance)
		os.Exit(1)
	}
}
