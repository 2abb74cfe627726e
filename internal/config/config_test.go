package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, ".")
	}
	if cfg.HeaderMode != "first" {
		t.Errorf("HeaderMode = %q, want %q", cfg.HeaderMode, "first")
	}
	if cfg.Expand.PartColumn != "DK Part #" {
		t.Errorf("Expand.PartColumn = %q, want %q", cfg.Expand.PartColumn, "DK Part #")
	}
	if cfg.Expand.PackageColumn != " Package" {
		t.Errorf("Expand.PackageColumn = %q, want %q (leading space)", cfg.Expand.PackageColumn, " Package")
	}
	if len(cfg.Columns.Exclude) == 0 {
		t.Error("default exclude set is empty")
	}
	if cfg.Assets.DataTablesJS == "" {
		t.Error("default DataTables asset URL is empty")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
output_dir: ./site
header_mode: union
columns:
  exclude: [Price]
expand:
  part_column: "Part"
  package_column: "Footprint"
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OutputDir != "./site" {
		t.Errorf("OutputDir = %q, want ./site", cfg.OutputDir)
	}
	if cfg.HeaderMode != "union" {
		t.Errorf("HeaderMode = %q, want union", cfg.HeaderMode)
	}
	if len(cfg.Columns.Exclude) != 1 || cfg.Columns.Exclude[0] != "Price" {
		t.Errorf("Columns.Exclude = %v, want [Price]", cfg.Columns.Exclude)
	}
	if cfg.Expand.PackageColumn != "Footprint" {
		t.Errorf("Expand.PackageColumn = %q, want Footprint", cfg.Expand.PackageColumn)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
	// Settings absent from the file keep their defaults.
	if cfg.Assets.BootstrapCSS == "" {
		t.Error("partial config lost default asset URLs")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PARTTABLE_OUTPUT_DIR", "/tmp/pages")
	t.Setenv("PARTTABLE_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OutputDir != "/tmp/pages" {
		t.Errorf("OutputDir = %q, want /tmp/pages", cfg.OutputDir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output_dir: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.HeaderMode = "sideways"
	cfg.Expand.PartColumn = ""
	cfg.Assets.JQueryJS = ""
	cfg.Columns.Include = []string{"Price"}
	cfg.Columns.Exclude = []string{"Price"}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors, got nil")
	}

	for _, want := range []string{"header_mode", "part_column", "jquery_js", "columns.include"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("validation error missing %q: %v", want, err)
		}
	}
}
