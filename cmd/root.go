// =============================================================================
// parts-table - Root Command
// =============================================================================
//
// Defines the base Cobra command all subcommands attach to:
//
//   rootCmd (parttable)
//   ├── componentsCmd (parttable components <dir>)
//   ├── tableCmd      (parttable table <dir>)
//   ├── validateCmd   (parttable validate)
//   └── versionCmd    (parttable version)
//
// The root command owns the global flags (--config, --verbose) and the
// shared configuration/logging bootstrap used by the subcommands.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/partsbench/parts-table/internal/config"
	"github.com/partsbench/parts-table/internal/logging"
)

// cfgFile holds the path to the configuration file.
// Overridden with the --config flag.
var cfgFile string

// verbose enables debug logging when set.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "parttable",
	Short: "parts-table - Turn part-list CSV exports into browsable HTML tables",
	Long: `parts-table converts directories of component part-list CSV exports
(e.g. distributor downloads) into static HTML pages with client-side
sorting, filtering and a per-row copy-to-clipboard action.

Rows packing several interchangeable SKUs into comma-separated part-number
and package cells are flattened into one row per SKU, so every row of the
output can be sorted, filtered and copied on its own.

Example Usage:
  parttable components ./exports        # One page per component-type subdirectory
  parttable table ./exports/caps -o caps.html
  parttable validate                    # Check the configuration file
`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it.
// Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadConfig performs the shared bootstrap: .env, config file, environment
// overrides, then logger installation. --verbose beats the configured level.
func loadConfig() (*config.Config, error) {
	// A .env file is optional; absence is the normal case.
	_ = godotenv.Load()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logging.Setup(level, cfg.Logging.Format)

	return cfg, nil
}
