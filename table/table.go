package table

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	nt "tablo/entity"
	"tablo/grid"
	"tablo/input"
	"tablo/message"
	"tablo/style"
)

// Todo: scroll columns that overflow the panel width

// TablePanel paints a plan and turns key presses into requests against it.
type TablePanel struct {
	plan   grid.Plan
	widths map[string]int

	selectedRow int // Index into plan rows
	selectedCol int // Index into plan columns
	hidden      []string // Shown again by X, last first

	editing bool
	editor  input.Input

	width int

	table *table.Table

	ctx    context.Context
	logger nt.Logger
}

func NewTablePanel(ctx context.Context, columns []nt.Column, lgr nt.Logger) TablePanel {

	lgt := table.New()
	style.StyleTable(lgt)

	widths := map[string]int{}
	hidden := []string{}
	for _, col := range columns {
		widths[col.Field] = col.Width
		if col.Hidden {
			hidden = append(hidden, col.Field)
		}
	}

	return TablePanel{
		widths: widths,
		hidden: hidden,
		table:  lgt,
		ctx:    ctx,
		logger: lgr,
	}
}

func (pnl TablePanel) Init() tea.Cmd {
	return nil
}

func (pnl TablePanel) Update(msg tea.Msg) (TablePanel, tea.Cmd) {
	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width

	case message.PlanMsg:
		pnl.plan = msg.Plan
		pnl.selectedRow = clamp(pnl.selectedRow, len(pnl.plan.Rows))
		pnl.selectedCol = clamp(pnl.selectedCol, len(pnl.plan.Columns))

	case tea.KeyPressMsg:
		if pnl.editing {
			return pnl.handleEditKey(msg)
		}
		return pnl.handleKey(msg)
	}

	return pnl, nil
}

// View renders the table with pagination below
func (pnl TablePanel) View() tea.View {
	return tea.NewView(pnl.Render())
}

// Render paints the current plan
func (pnl TablePanel) Render() string {

	pnl.table.StyleFunc(style.CellStyler(pnl.selectedRow, pnl.selectedCol, pnl.editing))
	pnl.table.Headers(pnl.headers()...)
	if pnl.width > 0 {
		pnl.table.Width(pnl.width)
	}

	pnl.table.ClearRows()
	for i, pr := range pnl.plan.Rows {
		pnl.table.Row(pnl.row(i, pr)...)
	}

	body := pnl.table.String()
	if len(pnl.plan.Rows) == 0 {
		body = lipgloss.JoinVertical(lipgloss.Left, body, style.MutedStyle.Render("no rows"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, pnl.pagination())
}

// Editing reports whether a cell is being edited
func (pnl TablePanel) Editing() bool {
	return pnl.editing
}

// SelectedCell returns the data position and column under the cursor
func (pnl TablePanel) SelectedCell() (position int, column string, ok bool) {

	if pnl.selectedRow >= len(pnl.plan.Rows) || pnl.selectedCol >= len(pnl.plan.Columns) {
		return
	}

	position = pnl.plan.Rows[pnl.selectedRow].Position
	column = pnl.plan.Columns[pnl.selectedCol]
	ok = true
	return
}

// unexported

func (pnl TablePanel) handleKey(msg tea.KeyPressMsg) (TablePanel, tea.Cmd) {

	switch msg.String() {
	case "up", "k":
		if pnl.selectedRow > 0 {
			pnl.selectedRow--
		}

	case "down", "j":
		if pnl.selectedRow < len(pnl.plan.Rows)-1 {
			pnl.selectedRow++
		}

	case "left", "h":
		if pnl.selectedCol > 0 {
			pnl.selectedCol--
		}

	case "right", "l":
		if pnl.selectedCol < len(pnl.plan.Columns)-1 {
			pnl.selectedCol++
		}

	case "s":
		if column, ok := pnl.selectedColumn(); ok {
			return pnl, message.Intent(message.SortMsg{Column: column})
		}

	case "]":
		if pnl.plan.PaginationVisible && pnl.plan.CurrentPage < pnl.plan.LastPage() {
			return pnl, message.Intent(message.PageMsg{Page: pnl.plan.CurrentPage + 1})
		}

	case "[":
		if pnl.plan.PaginationVisible && pnl.plan.CurrentPage > 1 {
			return pnl, message.Intent(message.PageMsg{Page: pnl.plan.CurrentPage - 1})
		}

	case "g":
		if pnl.plan.PaginationVisible {
			return pnl, message.Intent(message.PageMsg{Page: 1})
		}

	case "G":
		if pnl.plan.PaginationVisible {
			return pnl, message.Intent(message.PageMsg{Page: pnl.plan.LastPage()})
		}

	case "x":
		if column, ok := pnl.selectedColumn(); ok {
			pnl.hidden = append(pnl.hidden, column)
			return pnl, message.Intent(message.ToggleColumnMsg{Column: column})
		}

	case "X":
		if len(pnl.hidden) > 0 {
			column := pnl.hidden[len(pnl.hidden)-1]
			pnl.hidden = pnl.hidden[:len(pnl.hidden)-1]
			return pnl, message.Intent(message.ToggleColumnMsg{Column: column})
		}

	case "e", "enter":
		if _, _, ok := pnl.SelectedCell(); ok {
			text := pnl.plan.Rows[pnl.selectedRow].Cells[pnl.selectedCol]
			pnl.editor = input.New(text, 0)
			pnl.editing = true
		}
	}

	return pnl, nil
}

func (pnl TablePanel) handleEditKey(msg tea.KeyPressMsg) (TablePanel, tea.Cmd) {

	switch msg.String() {
	case "esc":
		pnl.editing = false
		return pnl, nil

	case "enter":
		pnl.editing = false
		position, column, ok := pnl.SelectedCell()
		if !ok {
			return pnl, nil
		}
		return pnl, message.Intent(message.EditMsg{
			Position: position,
			Column:   column,
			Text:     pnl.editor.Value(),
		})
	}

	// editor changes are only committed on enter
	pnl.editor, _ = pnl.editor.Update(msg)
	return pnl, nil
}

func (pnl TablePanel) selectedColumn() (string, bool) {
	if pnl.selectedCol >= len(pnl.plan.Columns) {
		return "", false
	}
	return pnl.plan.Columns[pnl.selectedCol], true
}

func (pnl TablePanel) headers() []string {

	headers := make([]string, len(pnl.plan.Columns))
	for i, col := range pnl.plan.Columns {
		label := col
		if col == pnl.plan.Sort.Column {
			label = fmt.Sprintf("%s %s", col, arrow(pnl.plan.Sort.Direction.Flip()))
		}
		headers[i] = pad(label, pnl.widths[col])
	}
	return headers
}

func (pnl TablePanel) row(idx int, pr grid.PlanRow) []string {

	row := make([]string, len(pr.Cells))
	for i, cell := range pr.Cells {
		if pnl.editing && idx == pnl.selectedRow && i == pnl.selectedCol {
			cell = pnl.editor.Render()
		}
		row[i] = truncate(cell, pnl.widths[pnl.plan.Columns[i]])
	}
	return row
}

func (pnl TablePanel) pagination() string {

	if !pnl.plan.PaginationVisible {
		return style.MutedStyle.Render(fmt.Sprintf("filtered by %q", pnl.plan.Search))
	}

	links := make([]string, len(pnl.plan.PageLinks))
	for i, page := range pnl.plan.PageLinks {
		label := fmt.Sprintf("%d", page)
		if page == pnl.plan.CurrentPage {
			links[i] = style.CurrentPageStyle.Render(label)
			continue
		}
		links[i] = style.PageStyle.Render(label)
	}
	return strings.Join(links, "")
}

// help

func arrow(dir grid.Direction) string {
	if dir == grid.Descending {
		return "▼"
	}
	return "▲"
}

func clamp(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func pad(in string, width int) string {
	if width <= 0 {
		return in
	}
	return fmt.Sprintf("%-*s", width+1, in)
}

func truncate(in string, width int) string {

	runes := []rune(in)
	if width <= 0 || len(runes) <= width {
		return in
	}

	truncated := string(runes[:width-1])
	ellipsis := style.MutedStyle.Render("…")
	return truncated + ellipsis
}
