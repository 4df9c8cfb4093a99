// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/notescript/internal/history"
	"github.com/pdiddy/notescript/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the generation history ledger",
	Long: `History manages the local SQLite ledger of past generation runs. Each
run records when it happened, which backend and model served it, and
whether the generated code passed the syntax check.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded generation runs, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(context.Background(), historyOptsFromFlags(cmd))
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-9s  %-28s  %-7s  %-6s  %s\n",
		"When", "Backend", "Model", "Type", "Syntax", "Output")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, r := range records {
		syntax := "ok"
		if !r.SyntaxOK {
			syntax = "errors"
		} else if r.Repaired {
			syntax = "fixed"
		}
		model := r.Model
		if len(model) > 28 {
			model = model[:25] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-9s  %-28s  %-7s  %-6s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"), r.Backend, model, r.ScriptType, syntax, r.OutputPath)
	}

	fmt.Fprintf(os.Stdout, "\n%d runs\n", len(records))
	return nil
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the history ledger to YAML or JSON",
	RunE:  runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "history." + format
	}

	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	opts := historyOptsFromFlags(cmd)
	switch format {
	case "yaml":
		err = store.ExportYAML(context.Background(), output, opts)
	case "json":
		err = store.ExportJSON(context.Background(), output, opts)
	default:
		return fmt.Errorf("unknown format %q: must be yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported history to %s\n", output)
	return nil
}

func init() {
	historyListCmd.Flags().Int("limit", 0, "maximum number of runs to show (default 20)")
	historyListCmd.Flags().String("backend", "", "filter by AI backend (anthropic or openai)")
	historyListCmd.Flags().Bool("json", false, "print as JSON")

	historyExportCmd.Flags().String("format", "yaml", "output format: yaml or json")
	historyExportCmd.Flags().String("output", "", "output file path (default: history.<format>)")
	historyExportCmd.Flags().Int("limit", 0, "maximum number of runs to export (default 20)")
	historyExportCmd.Flags().String("backend", "", "filter by AI backend (anthropic or openai)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}

func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{HistoryDir: viper.GetString("history_dir")}
}

func historyOptsFromFlags(cmd *cobra.Command) history.ListOptions {
	limit, _ := cmd.Flags().GetInt("limit")
	backend, _ := cmd.Flags().GetString("backend")
	return history.ListOptions{
		Backend: types.BackendKind(backend),
		Limit:   limit,
	}
}
