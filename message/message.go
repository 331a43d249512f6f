package message

import (
	nt "tablo/entity"
	"tablo/grid"
)

// PlanMsg carries the latest plan to the panels.
type PlanMsg struct {
	Plan grid.Plan
}

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}

// RowsMsg contains rows loaded from a store
type RowsMsg struct {
	Rows []nt.Row
}

// SortMsg asks to sort on a column
type SortMsg struct {
	Column string
}

// PageMsg asks to show a page
type PageMsg struct {
	Page int
}

// SearchMsg asks to apply a search term
type SearchMsg struct {
	Term string
}

// ToggleColumnMsg asks to hide or show a column
type ToggleColumnMsg struct {
	Column string
}

// EditMsg carries an edited cell back
type EditMsg struct {
	Position int
	Column   string
	Text     string
}
