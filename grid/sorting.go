package grid

import (
	"slices"

	nt "tablo/entity"
)

// Direction is the order applied by the next sort.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (dir Direction) String() string {
	if dir == Descending {
		return "desc"
	}
	return "asc"
}

// Flip returns the opposite direction.
func (dir Direction) Flip() Direction {
	if dir == Descending {
		return Ascending
	}
	return Descending
}

// SortState records the last sorted column and the direction the next
// sort will apply. Direction is shared by all columns.
type SortState struct {
	Column    string
	Direction Direction
}

// SortBy reorders the data on column using the pending direction, then flips
// the direction for the next call, whichever column that is for.
// The current page is kept.
func (eng *Engine) SortBy(column string) Plan {

	dir := eng.sort.Direction
	compare := func(a, b nt.Row) int {
		return a.Cell(column).Compare(b.Cell(column))
	}
	if dir == Descending {
		compare = func(a, b nt.Row) int {
			return b.Cell(column).Compare(a.Cell(column))
		}
	}
	slices.SortStableFunc(eng.data, compare)

	eng.sort = SortState{
		Column:    column,
		Direction: dir.Flip(),
	}

	eng.logger.Info(eng.ctx, "sorted", "column", column, "direction", dir.String())
	return eng.recompute()
}
