package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// parseXLSX reads the first sheet of a workbook export. Some distributors
// hand out .xlsx instead of .csv; the table shape is the same, first row =
// header.
func parseXLSX(path string) (*fileTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheets[0])
	}

	return tableFromRows(rows), nil
}
