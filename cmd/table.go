// =============================================================================
// parts-table - Table Command
// =============================================================================
//
// The 'table' command is the single-flat-table variant: every part-list
// export directly inside the argument directory is combined into one table
// on one page.
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/partsbench/parts-table/internal/generator"
)

// outputFile is the name of the generated page, relative to the configured
// output directory.
var outputFile string

// tableCmd represents the 'table' command.
var tableCmd = &cobra.Command{
	Use:   "table <dir>",
	Short: "Generate a single HTML page combining all part lists in a directory",
	Long: `The table command combines every part-list export directly inside the
given directory into one table and writes it as a single HTML page
(default: index.html in the configured output directory).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTable(args[0])
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().StringVarP(
		&outputFile,
		"output",
		"o",
		"index.html",
		"Output file name for the generated page",
	)
}

// runTable drives the flat-table run.
func runTable(dir string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	gen := generator.New(cfg)
	if err := gen.EnsureOutputDir(); err != nil {
		return err
	}

	group := filepath.Base(filepath.Clean(dir))
	result := gen.RunFlat(group, dir, outputFile)
	if !result.Success {
		return result.Error
	}

	slog.Debug("flat table generated",
		"rows_loaded", result.Stats.RowsLoaded,
		"rows_after_split", result.Stats.RowsAfterSplit)
	fmt.Printf("Generated %s (%d rows)\n", result.OutputFile, result.Stats.RowsAfterSplit)
	return nil
}
