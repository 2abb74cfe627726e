// =============================================================================
// parts-table - Configuration Module
// =============================================================================
//
// Loads the application configuration from a YAML file. Every setting has a
// default reproducing the behavior of the original part-table exports, so
// running without a config file is fully supported. A handful of settings
// can additionally be overridden through PARTTABLE_* environment variables
// (optionally supplied via a .env file), which is convenient when the tool
// is driven from scripts.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the full application configuration.
type Config struct {
	// OutputDir is the directory where generated HTML pages are written.
	// Default: "." (current working directory).
	OutputDir string `yaml:"output_dir"`

	// HeaderMode controls how headers are merged when a directory holds
	// CSV files with differing column sets.
	// Valid values: "first" (first file's header is canonical), "union".
	HeaderMode string `yaml:"header_mode"`

	// Columns selects which columns are retained in the output tables.
	Columns ColumnsConfig `yaml:"columns"`

	// Expand names the two linked multi-value columns flattened by the
	// row expander.
	Expand ExpandConfig `yaml:"expand"`

	// Assets are the CDN URLs embedded into every generated page.
	// They are browser-side dependencies, not build-time ones.
	Assets AssetsConfig `yaml:"assets"`

	// Logging configures the structured logger.
	Logging LoggingConfig `yaml:"logging"`
}

// ColumnsConfig configures the column filter.
type ColumnsConfig struct {
	// Exclude is the set of column names dropped from every table.
	Exclude []string `yaml:"exclude"`

	// Include is an optional allow-list. When non-empty it replaces the
	// exclude set entirely.
	Include []string `yaml:"include"`
}

// ExpandConfig names the linked columns for the row expander.
// Column names are matched verbatim against the CSV header, whitespace
// included.
type ExpandConfig struct {
	PartColumn    string `yaml:"part_column"`
	PackageColumn string `yaml:"package_column"`
}

// AssetsConfig holds the CDN URLs for the table widget and styling.
type AssetsConfig struct {
	BootstrapCSS  string `yaml:"bootstrap_css"`
	DataTablesCSS string `yaml:"datatables_css"`
	JQueryJS      string `yaml:"jquery_js"`
	DataTablesJS  string `yaml:"datatables_js"`
}

// LoggingConfig controls log verbosity and output format.
type LoggingConfig struct {
	// Level: "debug", "info", "warn", "error". Default: "info".
	Level string `yaml:"level"`

	// Format: "text" or "json". Default: "text".
	Format string `yaml:"format"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// defaultExcludeColumns reproduces the column exclusion set the tool has
// always shipped with: distributor noise that drowns out the part data.
var defaultExcludeColumns = []string{
	"Price", "Stock", "@ qty", "Min Qty", "Series", "Size / Dimension",
	"Number of Terminations", "Features", "Temperature Coefficient",
	"Operating Temperature", "Supplier Device Package",
	"Height - Seated (Max)", "Composition", "Product Status", "Supplier",
	"Failure Rate", "Ratings", "Image", "Datasheet", "Applications",
	"Lead Spacing", "Lead Style", "Thickness (Max)",
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutputDir:  ".",
		HeaderMode: "first",
		Columns: ColumnsConfig{
			Exclude: append([]string(nil), defaultExcludeColumns...),
		},
		Expand: ExpandConfig{
			PartColumn: "DK Part #",
			// Leading space is intentional: distributor exports name the
			// column exactly this way.
			PackageColumn: " Package",
		},
		Assets: AssetsConfig{
			BootstrapCSS:  "https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css",
			DataTablesCSS: "https://cdn.datatables.net/1.13.4/css/jquery.dataTables.min.css",
			JQueryJS:      "https://code.jquery.com/jquery-3.6.0.min.js",
			DataTablesJS:  "https://cdn.datatables.net/1.13.4/js/jquery.dataTables.min.js",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from path, layering it over the defaults.
// A missing file is not an error; the defaults are returned unchanged.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides lets the environment win over file settings for the
// values commonly tweaked per invocation.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PARTTABLE_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("PARTTABLE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("PARTTABLE_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
