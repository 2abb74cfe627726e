// =============================================================================
// parts-table - Part-List Loader
// =============================================================================
//
// Reads every part-list export directly inside a directory (non-recursive)
// and concatenates the rows into one Table. Both CSV and XLSX exports are
// accepted; the first row of each file is its header.
//
// Header and cell text is preserved verbatim - no trimming. Distributor
// exports name columns with stray whitespace (" Package") and downstream
// configuration matches those names exactly.
//
// A file that cannot be parsed is logged and skipped; the remaining files
// still contribute to the Table. A directory with no loadable files yields
// an empty Table, not an error.
//
// =============================================================================

package loader

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/partsbench/parts-table/internal/table"
)

// HeaderMode controls how headers are merged across files with differing
// column sets.
type HeaderMode string

const (
	// HeaderModeFirst takes the first loadable file's header as canonical.
	// Extra columns in later files are dropped; missing ones read empty.
	HeaderModeFirst HeaderMode = "first"

	// HeaderModeUnion appends unseen columns in first-seen order.
	HeaderModeUnion HeaderMode = "union"
)

// Options configures directory loading.
type Options struct {
	HeaderMode HeaderMode
}

// fileTable is one parsed source file before merging.
type fileTable struct {
	headers []string
	records []table.Record
}

// LoadDir parses every .csv and .xlsx file directly inside dir and merges
// the rows into one Table. Row order follows directory enumeration order,
// then in-file order.
func LoadDir(dir string, opts Options) (*table.Table, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	out := table.New(nil)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		var ft *fileTable
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".csv":
			ft, err = parseCSV(path)
		case ".xlsx":
			ft, err = parseXLSX(path)
		default:
			continue
		}
		if err != nil {
			slog.Warn("skipping unreadable part list", "file", path, "error", err)
			continue
		}

		merge(out, ft, opts.HeaderMode)
		slog.Debug("loaded part list", "file", path, "rows", len(ft.records))
	}

	return out, nil
}

// merge folds one file's rows into the accumulated table under the given
// header mode. The first file to arrive always establishes the header.
func merge(dst *table.Table, src *fileTable, mode HeaderMode) {
	if len(dst.Headers) == 0 {
		dst.Headers = src.headers
	} else if mode == HeaderModeUnion {
		for _, h := range src.headers {
			if !dst.HasHeader(h) {
				dst.Headers = append(dst.Headers, h)
			}
		}
	}
	dst.Append(src.records...)
}

// parseCSV reads one comma-separated export. Ragged rows are tolerated;
// short rows read empty for trailing columns and surplus cells are dropped.
func parseCSV(path string) (*fileTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("file is empty")
	}

	return tableFromRows(rows), nil
}

// tableFromRows builds a fileTable from raw rows, first row = header.
func tableFromRows(rows [][]string) *fileTable {
	ft := &fileTable{headers: rows[0]}
	for _, row := range rows[1:] {
		rec := make(table.Record, len(ft.headers))
		for i, h := range ft.headers {
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = ""
			}
		}
		ft.records = append(ft.records, rec)
	}
	return ft
}
