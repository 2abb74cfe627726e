// =============================================================================
// parts-table - Row Expander
// =============================================================================
//
// Distributor part-list exports often pack several interchangeable SKUs into
// one row: the distributor part-number cell and the package cell each hold a
// comma-separated sub-list, where the Nth part number corresponds to the Nth
// package variant. Such rows cannot be meaningfully sorted, filtered or
// copied, so the expander flattens each of them into one row per SKU before
// rendering.
//
// ALIGNMENT RULE:
//   Both cells are split on "," and each entry trimmed. A missing cell is a
//   single empty entry. If exactly one side is a singleton it is replicated
//   to the other side's length; the two lists are then paired positionally,
//   truncating to the shorter list. The truncation when both sides are
//   multi-valued but unequal drops trailing entries of the longer side.
//   That behavior is load-bearing for existing outputs and must not be
//   "repaired" into a cross product or an error.
//
// =============================================================================

package table

import "strings"

// Expander flattens multi-valued linked columns into one Record per
// aligned entry pair.
type Expander struct {
	// PartColumn is the distributor part-number column name.
	PartColumn string

	// PackageColumn is the package/footprint column name.
	PackageColumn string
}

// ExpandTable applies ExpandRecord to every record of t, preserving record
// order. Every output record traces to exactly one input record. The input
// table is not modified.
func (e Expander) ExpandTable(t *Table) *Table {
	out := New(t.Headers)
	for _, rec := range t.Records {
		out.Append(e.ExpandRecord(rec)...)
	}
	return out
}

// ExpandRecord returns one Record per aligned part/package pair. Records
// with single-valued cells in both columns come back as a one-element slice
// holding an identical copy. All columns other than the two linked ones are
// carried into every output record unchanged.
func (e Expander) ExpandRecord(rec Record) []Record {
	parts := splitCell(rec[e.PartColumn])
	packages := splitCell(rec[e.PackageColumn])

	n := len(parts)
	if len(packages) > n {
		n = len(packages)
	}
	if len(parts) == 1 && n > 1 {
		parts = replicate(parts[0], n)
	}
	if len(packages) == 1 && n > 1 {
		packages = replicate(packages[0], n)
	}

	// Positional zip: pairs beyond the shorter list are dropped.
	pairs := len(parts)
	if len(packages) < pairs {
		pairs = len(packages)
	}

	expanded := make([]Record, 0, pairs)
	for i := 0; i < pairs; i++ {
		row := rec.Clone()
		row[e.PartColumn] = strings.TrimSpace(parts[i])
		row[e.PackageColumn] = strings.TrimSpace(packages[i])
		expanded = append(expanded, row)
	}
	return expanded
}

// splitCell splits a cell on commas. A missing or empty cell degrades to a
// single empty entry rather than an error.
func splitCell(value string) []string {
	if value == "" {
		return []string{""}
	}
	return strings.Split(value, ",")
}

func replicate(value string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = value
	}
	return out
}
