// =============================================================================
// parts-table - Components Command
// =============================================================================
//
// The 'components' command is the per-component-type variant: the argument
// directory holds one subdirectory per component type, each with one or
// more part-list exports. Every subdirectory becomes one page, and an
// index page links them all.
//
// A subdirectory that cannot be processed is reported and skipped; the
// remaining groups still get their pages and index entries. Only a failure
// to write output aborts the run.
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/partsbench/parts-table/internal/generator"
	"github.com/partsbench/parts-table/pkg/utils"
)

// componentsCmd represents the 'components' command.
var componentsCmd = &cobra.Command{
	Use:   "components <dir>",
	Short: "Generate one HTML table page per component-type subdirectory",
	Long: `The components command scans the given directory for subdirectories,
treats each as one component type, combines that subdirectory's part-list
exports into one table, and writes one <subdirectory>.html page per type
plus an index.html linking to all of them.

Groups are processed sequentially; an unreadable subdirectory is skipped
with a warning and the remaining groups still produce pages.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runComponents(args[0])
	},
}

func init() {
	rootCmd.AddCommand(componentsCmd)
}

// runComponents drives the multi-group run and prints the summary.
func runComponents(mainDir string) error {
	startTime := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	runID := uuid.NewString()
	slog.Info("starting components run", "run_id", runID, "dir", mainDir)

	groups, err := utils.ListSubdirectories(mainDir)
	if err != nil {
		return fmt.Errorf("failed to scan main directory: %w", err)
	}
	if len(groups) == 0 {
		fmt.Println("No component subdirectories found.")
		return nil
	}

	gen := generator.New(cfg)
	if err := gen.EnsureOutputDir(); err != nil {
		return err
	}

	var results []generator.Result
	var indexed []string
	for _, group := range groups {
		result := gen.RunGroup(group, filepath.Join(mainDir, group))
		results = append(results, result)
		if result.Success {
			indexed = append(indexed, group)
			fmt.Printf("  ✓ %s -> %s\n", result.Group, result.OutputFile)
		} else {
			slog.Warn("skipping component group", "group", result.Group, "error", result.Error)
			fmt.Printf("  ✗ %s: %v\n", result.Group, result.Error)
		}
	}

	indexPath, err := gen.WriteIndex(indexed)
	if err != nil {
		return fmt.Errorf("failed to write index page: %w", err)
	}

	successCount := len(indexed)
	fmt.Println("\n=== Generation Complete ===")
	fmt.Printf("Component groups: %d\n", len(results))
	fmt.Printf("Pages written:    %d (+ %s)\n", successCount, indexPath)
	fmt.Printf("Skipped:          %d\n", len(results)-successCount)
	fmt.Printf("Time elapsed:     %s\n", time.Since(startTime))

	return nil
}
