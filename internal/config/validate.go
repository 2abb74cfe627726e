package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for inconsistencies. All problems are
// reported at once rather than one per run.
func (c *Config) Validate() error {
	var errs []error

	switch c.HeaderMode {
	case "first", "union":
	default:
		errs = append(errs, fmt.Errorf("header_mode must be \"first\" or \"union\", got %q", c.HeaderMode))
	}

	if c.OutputDir == "" {
		errs = append(errs, errors.New("output_dir must not be empty"))
	}

	if c.Expand.PartColumn == "" {
		errs = append(errs, errors.New("expand.part_column must not be empty"))
	}
	if c.Expand.PackageColumn == "" {
		errs = append(errs, errors.New("expand.package_column must not be empty"))
	}

	// An allow-list that also appears in the exclude set is almost always
	// a config editing mistake.
	if len(c.Columns.Include) > 0 {
		excluded := make(map[string]struct{}, len(c.Columns.Exclude))
		for _, name := range c.Columns.Exclude {
			excluded[name] = struct{}{}
		}
		for _, name := range c.Columns.Include {
			if _, ok := excluded[name]; ok {
				errs = append(errs, fmt.Errorf("column %q appears in both columns.include and columns.exclude", name))
			}
		}
	}

	for name, url := range map[string]string{
		"assets.bootstrap_css":  c.Assets.BootstrapCSS,
		"assets.datatables_css": c.Assets.DataTablesCSS,
		"assets.jquery_js":      c.Assets.JQueryJS,
		"assets.datatables_js":  c.Assets.DataTablesJS,
	} {
		if url == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", name))
		}
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not a known level", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be \"text\" or \"json\", got %q", c.Logging.Format))
	}

	return errors.Join(errs...)
}
