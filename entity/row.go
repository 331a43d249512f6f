package entity

import "maps"

// Row is a single record keyed by column name.
type Row map[string]Value

// Cell returns the value under column, or the zero Value when absent.
func (row Row) Cell(column string) Value {
	return row[column]
}

// Project renders the cells of row for the given columns, in order.
func (row Row) Project(columns []string) []string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		cells[i] = row[col].String()
	}
	return cells
}

// Clone returns a shallow copy of row.
func (row Row) Clone() Row {
	return maps.Clone(row)
}

// TextRow builds a Row from plain strings.
func TextRow(kv map[string]string) Row {
	row := make(Row, len(kv))
	for k, v := range kv {
		row[k] = Text(v)
	}
	return row
}
