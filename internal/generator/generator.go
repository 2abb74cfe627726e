// =============================================================================
// parts-table - Page Generator
// =============================================================================
//
// Orchestrates the per-group pipeline:
//
//   load part lists -> filter columns -> expand rows -> render -> write
//
// Each component group is independent; a group that fails to load is
// reported in its Result and the remaining groups still get their pages.
// Failures to write output are the one fatal condition, surfaced through
// the Result and treated as terminal by the caller.
//
// =============================================================================

package generator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/partsbench/parts-table/internal/config"
	"github.com/partsbench/parts-table/internal/htmlwriter"
	"github.com/partsbench/parts-table/internal/loader"
	"github.com/partsbench/parts-table/internal/table"
	"github.com/partsbench/parts-table/pkg/utils"
)

// Result reports the outcome of generating one page.
type Result struct {
	// Group is the component group (or flat-table) name.
	Group string

	// OutputFile is the path of the written page, when Success.
	OutputFile string

	// Success reports whether the page was generated and written.
	Success bool

	// Error holds the failure, when !Success.
	Error error

	// Stats carries processing counters for the run summary.
	Stats Stats
}

// Stats holds processing counters for one page.
type Stats struct {
	RowsLoaded     int
	RowsAfterSplit int
	ProcessingTime time.Duration
}

// Generator turns one directory of part lists into one HTML page.
type Generator struct {
	cfg      *config.Config
	renderer *htmlwriter.Renderer
	files    *utils.FileManager
}

// New builds a Generator from the application configuration.
func New(cfg *config.Config) *Generator {
	return &Generator{
		cfg: cfg,
		renderer: htmlwriter.New(htmlwriter.Assets{
			BootstrapCSS:  cfg.Assets.BootstrapCSS,
			DataTablesCSS: cfg.Assets.DataTablesCSS,
			JQueryJS:      cfg.Assets.JQueryJS,
			DataTablesJS:  cfg.Assets.DataTablesJS,
		}),
		files: utils.NewFileManager(cfg.OutputDir),
	}
}

// RunGroup generates `<group>.html` from the part lists in dir.
func (g *Generator) RunGroup(group, dir string) Result {
	return g.run(group, dir, group+".html")
}

// RunFlat generates a single combined page from the part lists in dir,
// written under outputFile. The page title derives from the group name.
func (g *Generator) RunFlat(group, dir, outputFile string) Result {
	return g.run(group, dir, outputFile)
}

func (g *Generator) run(group, dir, outputFile string) Result {
	startTime := time.Now()
	result := Result{Group: group}

	slog.Info("processing component group", "group", group, "dir", dir)

	expanded, stats, err := g.pipeline(dir)
	if err != nil {
		result.Error = err
		return result
	}
	result.Stats = stats

	page, err := g.renderer.ComponentPage(group, expanded)
	if err != nil {
		result.Error = fmt.Errorf("failed to render page: %w", err)
		return result
	}

	path, err := g.files.WritePage(outputFile, page)
	if err != nil {
		result.Error = fmt.Errorf("failed to write output: %w", err)
		return result
	}

	result.OutputFile = path
	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)

	slog.Debug("generated page",
		"group", group,
		"output", path,
		"rows", result.Stats.RowsAfterSplit,
		"elapsed", result.Stats.ProcessingTime)
	return result
}

// pipeline loads a directory and applies the column filter and row
// expander, in that order. The filter must run first so excluded columns
// never influence expansion output.
func (g *Generator) pipeline(dir string) (*table.Table, Stats, error) {
	var stats Stats

	tbl, err := loader.LoadDir(dir, loader.Options{
		HeaderMode: loader.HeaderMode(g.cfg.HeaderMode),
	})
	if err != nil {
		return nil, stats, fmt.Errorf("failed to load part lists: %w", err)
	}
	stats.RowsLoaded = tbl.Len()

	projection := table.Projection{
		Include: g.cfg.Columns.Include,
		Exclude: g.cfg.Columns.Exclude,
	}
	filtered := projection.Apply(tbl)

	expander := table.Expander{
		PartColumn:    g.cfg.Expand.PartColumn,
		PackageColumn: g.cfg.Expand.PackageColumn,
	}
	expanded := expander.ExpandTable(filtered)
	stats.RowsAfterSplit = expanded.Len()

	return expanded, stats, nil
}

// WriteIndex renders and writes index.html linking the given groups.
func (g *Generator) WriteIndex(groups []string) (string, error) {
	page, err := g.renderer.IndexPage(groups)
	if err != nil {
		return "", err
	}
	return g.files.WritePage("index.html", page)
}

// EnsureOutputDir prepares the output directory before a run.
func (g *Generator) EnsureOutputDir() error {
	return g.files.EnsureOutputDir()
}
