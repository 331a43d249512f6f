package grid

import "slices"

// Canonical maps a column name to the index it returns to when shown again.
type Canonical map[string]int

// DefaultCanonical returns the built in ordering table.
func DefaultCanonical() Canonical {
	return Canonical{
		"Name":    0,
		"Company": 1,
		"Country": 2,
		"Email":   3,
	}
}

// CanonicalFrom orders columns by their position in names.
func CanonicalFrom(names []string) Canonical {
	canonical := Canonical{}
	for i, name := range names {
		if _, ok := canonical[name]; !ok {
			canonical[name] = i
		}
	}
	return canonical
}

// insertAt returns where name goes among n columns: its canonical index
// clipped to n, or the end when it has none.
func (canonical Canonical) insertAt(name string, n int) int {
	idx, ok := canonical[name]
	if !ok || idx > n {
		return n
	}
	return max(idx, 0)
}

// ToggleColumn hides column name when shown, or shows it at its canonical position.
func (eng *Engine) ToggleColumn(name string) Plan {

	if name == "" {
		return eng.plan
	}

	idx := slices.Index(eng.columns, name)
	if idx >= 0 {
		eng.columns = slices.Delete(eng.columns, idx, idx+1)
	} else {
		at := eng.canonical.insertAt(name, len(eng.columns))
		eng.columns = slices.Insert(eng.columns, at, name)
	}

	eng.logger.Info(eng.ctx, "column toggled", "column", name, "shown", idx < 0)
	return eng.recompute()
}

// Columns returns the column names shown, in order.
func (eng *Engine) Columns() []string {
	return slices.Clone(eng.columns)
}
