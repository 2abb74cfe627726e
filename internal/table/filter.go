// =============================================================================
// parts-table - Column Filter
// =============================================================================
//
// Projects a Table down to the columns worth showing. Distributor exports
// carry dozens of columns (pricing, stock, packaging trivia) that only add
// noise to a browsable part table, so the default configuration excludes
// them. The filter runs once per Table, before row expansion.
//
// =============================================================================

package table

// Projection selects which columns of a Table are retained.
//
// When Include is non-empty it acts as an explicit allow-list and Exclude is
// ignored. Otherwise every column not named in Exclude is kept. In both
// modes the original relative column order is preserved, and configured
// names that are absent from the source header are silently ignored.
type Projection struct {
	// Include is an optional allow-list of column names.
	Include []string

	// Exclude is the set of column names to drop.
	Exclude []string
}

// Apply returns a new Table containing only the retained columns.
// Records are copied; the input Table is left untouched.
func (p Projection) Apply(t *Table) *Table {
	keep := p.keepFunc()

	headers := make([]string, 0, len(t.Headers))
	for _, h := range t.Headers {
		if keep(h) {
			headers = append(headers, h)
		}
	}

	out := New(headers)
	for _, rec := range t.Records {
		projected := make(Record, len(headers))
		for _, h := range headers {
			projected[h] = rec[h]
		}
		out.Append(projected)
	}
	return out
}

// keepFunc builds the retention predicate for this projection.
func (p Projection) keepFunc() func(string) bool {
	if len(p.Include) > 0 {
		allowed := make(map[string]struct{}, len(p.Include))
		for _, name := range p.Include {
			allowed[name] = struct{}{}
		}
		return func(h string) bool {
			_, ok := allowed[h]
			return ok
		}
	}

	excluded := make(map[string]struct{}, len(p.Exclude))
	for _, name := range p.Exclude {
		excluded[name] = struct{}{}
	}
	return func(h string) bool {
		_, ok := excluded[h]
		return !ok
	}
}
