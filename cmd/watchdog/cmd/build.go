package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Jib667/Watchdog/pkg/reconcile"
)

// buildCmd performs a one-shot directory build and reports the result.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the directory from the datasets and print a summary",
	Long: `Build the congressional directory from the congress-legislators
datasets without starting a server.

Prints member and committee counts, skip reasons, and any dataset
diagnostics. Missing or malformed datasets are reported but do not fail
the build; the command exits nonzero only when none of the three
datasets could be read at all.`,
	Example: `  # Summarize a build of the default data directory
  watchdog build

  # Build from another directory and write the normalized JSON files
  watchdog build --data-dir ./congress_data --out ./dist

  # Machine-readable stats
  watchdog build --json`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().Bool("json", false, "Print build stats as JSON")
	buildCmd.Flags().String("out", "", "Write representatives.json, senators.json, and committees.json to this directory")
	buildCmd.Flags().String("names-file", "", "Extra committee display-name overrides (YAML)")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	in := reconcile.LoadInputs(cmd.Context(), os.DirFS(dataDir()))
	if len(in.Legislators) == 0 && len(in.Committees) == 0 && len(in.Membership) == 0 && len(in.Diagnostics) >= 3 {
		return fmt.Errorf("no datasets could be read from %s", dataDir())
	}

	auth, err := committeeAuthority(mustGetString(cmd, "names-file"))
	if err != nil {
		return err
	}

	result, err := reconcile.Build(cmd.Context(), in, auth)
	if err != nil {
		return fmt.Errorf("building directory: %w", err)
	}

	if out := mustGetString(cmd, "out"); out != "" {
		if err := writeDirectoryFiles(out, result); err != nil {
			return err
		}
	}

	if mustGetBool(cmd, "json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Stats)
	}

	printBuildSummary(result)
	return nil
}

// printBuildSummary prints a human-readable build report.
func printBuildSummary(result *reconcile.Result) {
	stats := result.Stats

	fmt.Printf("Directory built in %s\n", stats.Duration)
	fmt.Printf("  Legislator records: %d\n", stats.LegislatorRecords)
	fmt.Printf("  Representatives:    %d\n", stats.Representatives)
	fmt.Printf("  Senators:           %d\n", stats.Senators)
	fmt.Printf("  Committees:         %d (%d subcommittees)\n", stats.Committees, stats.Subcommittees)

	if stats.Skipped > 0 {
		fmt.Printf("  Skipped records:    %d\n", stats.Skipped)
		reasons := make([]string, 0, len(stats.SkipReasons))
		for reason := range stats.SkipReasons {
			reasons = append(reasons, reason)
		}
		sort.Strings(reasons)
		for _, reason := range reasons {
			fmt.Printf("    %s: %d\n", reason, stats.SkipReasons[reason])
		}
	}

	if len(stats.Diagnostics) > 0 {
		fmt.Printf("  Diagnostics:\n")
		for _, diag := range stats.Diagnostics {
			fmt.Printf("    %s\n", diag)
		}
	}
}

// writeDirectoryFiles writes the normalized member and committee lists as JSON.
func writeDirectoryFiles(dir string, result *reconcile.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	files := map[string]any{
		"representatives.json": result.Representatives,
		"senators.json":        result.Senators,
		"committees.json":      result.Committees,
	}

	for name, data := range files {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}

		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			_ = f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", path, err)
		}

		fmt.Printf("Wrote %s\n", path)
	}

	return nil
}
