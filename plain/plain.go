// Package plain paints plans as text tables, for output that is not interactive.
package plain

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"tablo/grid"
)

// Renderer writes each plan it is given to Writer.
type Renderer struct {
	Writer io.Writer
	Style  table.Style
}

// New creates a Renderer with a light box style.
func New(w io.Writer) *Renderer {
	return &Renderer{
		Writer: w,
		Style:  table.StyleLight,
	}
}

// Paint writes plan as a table followed by a pagination line.
func (rdr *Renderer) Paint(plan grid.Plan) {

	tw := table.NewWriter()
	tw.SetOutputMirror(rdr.Writer)
	tw.SetStyle(rdr.Style)

	header := make(table.Row, len(plan.Columns))
	for i, col := range plan.Columns {
		header[i] = col
	}
	tw.AppendHeader(header)

	for _, pr := range plan.Rows {
		row := make(table.Row, len(pr.Cells))
		for i, cell := range pr.Cells {
			row[i] = cell
		}
		tw.AppendRow(row)
	}

	if len(plan.Rows) == 0 {
		tw.AppendRow(table.Row{"(0 rows)"})
	}

	tw.Render()
	_, _ = fmt.Fprintln(rdr.Writer, Pagination(plan))
}

// Pagination describes the page links of plan, marking the current page.
func Pagination(plan grid.Plan) string {

	if !plan.PaginationVisible {
		return fmt.Sprintf("search: %q", plan.Search)
	}

	links := make([]string, len(plan.PageLinks))
	for i, page := range plan.PageLinks {
		if page == plan.CurrentPage {
			links[i] = fmt.Sprintf("[%d]", page)
			continue
		}
		links[i] = fmt.Sprintf("%d", page)
	}
	return "pages: " + strings.Join(links, " ")
}
