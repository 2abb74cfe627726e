// =============================================================================
// parts-table - Validate Command
// =============================================================================
//
// The 'validate' command loads the configuration file and checks it for
// inconsistencies without processing any part lists. Useful after editing
// config.yaml.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/partsbench/parts-table/internal/config"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file without processing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("configuration is invalid:\n%w", err)
		}

		fmt.Printf("Configuration OK (%s)\n", cfgFile)
		fmt.Printf("  output_dir:  %s\n", cfg.OutputDir)
		fmt.Printf("  header_mode: %s\n", cfg.HeaderMode)
		fmt.Printf("  excluded columns: %d\n", len(cfg.Columns.Exclude))
		if len(cfg.Columns.Include) > 0 {
			fmt.Printf("  included columns: %d (allow-list active)\n", len(cfg.Columns.Include))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
