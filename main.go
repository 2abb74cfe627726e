// =============================================================================
// parts-table - Main Entry Point
// =============================================================================
//
// parts-table turns directories of component part-list CSV exports into
// static, browsable HTML tables with client-side sorting/filtering and a
// per-row copy-to-clipboard action.
//
// USAGE:
//   parttable components <dir>   - One page per component-type subdirectory
//   parttable table <dir>        - One combined flat table
//   parttable validate           - Validate the configuration file
//   parttable version            - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core logic (loader, table ops, HTML rendering)
//   - pkg/           : Shared file-handling utilities
//
// =============================================================================

package main

import (
	"github.com/partsbench/parts-table/cmd"
)

func main() {
	cmd.Execute()
}
