// =============================================================================
// parts-table - Table Model
// =============================================================================
//
// This package holds the in-memory tabular model shared by the loader, the
// column filter, the row expander and the HTML renderer:
//   - Record: one logical row as a column-name -> cell-value map
//   - Table:  an ordered sequence of Records sharing a header
//
// Column order is carried by Table.Headers; Records themselves are plain
// maps. A column missing from a Record reads as the empty string.
//
// =============================================================================

package table

// Record represents one logical row of tabular data.
// Keys are column names exactly as they appear in the source header,
// including any surrounding whitespace (distributor exports are not tidy:
// a column literally named " Package" is common and must stay addressable).
type Record map[string]string

// Clone returns a shallow copy of the Record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an ordered sequence of Records sharing a common header.
type Table struct {
	// Headers contains the column names in display order.
	Headers []string

	// Records contains the data rows. Order follows source file
	// enumeration order, then in-file order.
	Records []Record
}

// New returns an empty Table with the given header.
func New(headers []string) *Table {
	return &Table{Headers: headers}
}

// Append adds records to the table.
func (t *Table) Append(records ...Record) {
	t.Records = append(t.Records, records...)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Records)
}

// HasHeader reports whether the table's header contains the given column.
func (t *Table) HasHeader(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Values returns the record's cell values in header order.
// Missing columns yield empty strings.
func (t *Table) Values(r Record) []string {
	values := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		values[i] = r[h]
	}
	return values
}
