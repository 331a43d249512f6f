package grid

import (
	"slices"

	nt "tablo/entity"
)

// Plan is a snapshot of what should be presented.
// Everything in it is a copy; changing it does not affect the Engine.
type Plan struct {
	Columns           []string
	Rows              []PlanRow
	PageLinks         []int
	CurrentPage       int
	PaginationVisible bool
	Search            string
	Sort              SortState
}

// PlanRow is a visible row along with its position in the data,
// which identifies it when calling back into the Engine.
type PlanRow struct {
	Position int
	Row      nt.Row
	Cells    []string
}

// VisibleRows returns the rows of the plan in display order.
func (plan Plan) VisibleRows() []nt.Row {
	rows := make([]nt.Row, len(plan.Rows))
	for i, pr := range plan.Rows {
		rows[i] = pr.Row
	}
	return rows
}

// LastPage returns the highest page link.
func (plan Plan) LastPage() int {
	if len(plan.PageLinks) == 0 {
		return 1
	}
	return plan.PageLinks[len(plan.PageLinks)-1]
}

func (eng *Engine) assemble() Plan {

	rows := eng.window()
	if eng.search != "" {
		rows = eng.filter(rows)
	}

	planRows := make([]PlanRow, len(rows))
	for i, pos := range rows {
		row := eng.data[pos]
		planRows[i] = PlanRow{
			Position: pos,
			Row:      row.Clone(),
			Cells:    row.Project(eng.columns),
		}
	}

	return Plan{
		Columns:           slices.Clone(eng.columns),
		Rows:              planRows,
		PageLinks:         eng.pageLinks(),
		CurrentPage:       eng.currentPage,
		PaginationVisible: eng.search == "",
		Search:            eng.search,
		Sort:              eng.sort,
	}
}
