package table

import (
	"context"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "tablo/entity"
	"tablo/grid"
	"tablo/message"
)

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, kv ...any)              {}
func (nopLogger) Error(ctx context.Context, msg string, err error, kv ...any) {}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	}
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func engine(n int) *grid.Engine {
	rows := make([]nt.Row, n)
	for i := range rows {
		rows[i] = nt.TextRow(map[string]string{
			"Name":    fmt.Sprintf("person%02d", i+1),
			"Company": fmt.Sprintf("company number %d", i),
		})
	}

	cfg := grid.Config{Headers: []string{"Name", "Company"}}
	return cfg.New(context.Background(), rows, nil, nopLogger{})
}

func panel(plan grid.Plan) TablePanel {
	columns := []nt.Column{{Field: "Name", Width: 10}, {Field: "Company", Width: 8}}
	pnl := NewTablePanel(context.Background(), columns, nopLogger{})
	pnl, _ = pnl.Update(message.PlanMsg{Plan: plan})
	return pnl
}

// press feeds keys and returns the message of the last command.
func press(pnl TablePanel, keys ...string) (TablePanel, tea.Msg) {
	var last tea.Msg
	for _, k := range keys {
		var cmd tea.Cmd
		pnl, cmd = pnl.Update(key(k))
		last = nil
		if cmd != nil {
			last = cmd()
		}
	}
	return pnl, last
}

func TestNavigation(t *testing.T) {

	pnl := panel(engine(7).Plan())

	pnl, _ = press(pnl, "j", "j", "l")
	position, column, ok := pnl.SelectedCell()
	require.True(t, ok)
	assert.Equal(t, 2, position)
	assert.Equal(t, "Company", column)

	pnl, _ = press(pnl, "l", "j", "j", "j", "j")
	position, column, _ = pnl.SelectedCell()
	assert.Equal(t, 4, position)
	assert.Equal(t, "Company", column)

	pnl, _ = press(pnl, "h", "h", "k")
	position, column, _ = pnl.SelectedCell()
	assert.Equal(t, 3, position)
	assert.Equal(t, "Name", column)
}

func TestSelectionClamped(t *testing.T) {

	eng := engine(7)
	pnl := panel(eng.Plan())
	pnl, _ = press(pnl, "j", "j", "j", "j")

	pnl, _ = pnl.Update(message.PlanMsg{Plan: eng.GoToPage(2)})
	position, _, ok := pnl.SelectedCell()
	require.True(t, ok)
	assert.Equal(t, 6, position)

	pnl, _ = pnl.Update(message.PlanMsg{Plan: eng.GoToPage(3)})
	_, _, ok = pnl.SelectedCell()
	assert.False(t, ok)
}

func TestIntents(t *testing.T) {

	eng := engine(12)
	pnl := panel(eng.Plan())

	_, msg := press(pnl, "l", "s")
	assert.Equal(t, message.SortMsg{Column: "Company"}, msg)

	_, msg = press(pnl, "]")
	assert.Equal(t, message.PageMsg{Page: 2}, msg)

	_, msg = press(pnl, "[")
	assert.Nil(t, msg)

	_, msg = press(pnl, "G")
	assert.Equal(t, message.PageMsg{Page: 3}, msg)

	_, msg = press(pnl, "g")
	assert.Equal(t, message.PageMsg{Page: 1}, msg)

	pnl, _ = pnl.Update(message.PlanMsg{Plan: eng.GoToPage(3)})
	_, msg = press(pnl, "]")
	assert.Nil(t, msg)
	_, msg = press(pnl, "[")
	assert.Equal(t, message.PageMsg{Page: 2}, msg)

	pnl, _ = pnl.Update(message.PlanMsg{Plan: eng.ApplySearch("person")})
	_, msg = press(pnl, "g")
	assert.Nil(t, msg)
}

func TestToggleKeys(t *testing.T) {

	eng := engine(3)
	pnl := panel(eng.Plan())

	pnl, msg := press(pnl, "x")
	assert.Equal(t, message.ToggleColumnMsg{Column: "Name"}, msg)

	pnl, _ = pnl.Update(message.PlanMsg{Plan: eng.ToggleColumn("Name")})
	pnl, msg = press(pnl, "x")
	assert.Equal(t, message.ToggleColumnMsg{Column: "Company"}, msg)

	pnl, msg = press(pnl, "X")
	assert.Equal(t, message.ToggleColumnMsg{Column: "Company"}, msg)
	pnl, msg = press(pnl, "X")
	assert.Equal(t, message.ToggleColumnMsg{Column: "Name"}, msg)
	_, msg = press(pnl, "X")
	assert.Nil(t, msg)
}

func TestLayoutHiddenColumns(t *testing.T) {

	rows := []nt.Row{nt.TextRow(map[string]string{"Name": "Bob", "Company": "Acme", "Email": "bob@acme.test"})}
	cfg := grid.Config{
		Headers:   []string{"Name", "Company"},
		Canonical: grid.CanonicalFrom([]string{"Name", "Email", "Company"}),
	}
	eng := cfg.New(context.Background(), rows, nil, nopLogger{})

	columns := []nt.Column{
		{Field: "Name", Width: 10},
		{Field: "Email", Width: 16, Hidden: true},
		{Field: "Company", Width: 8},
	}
	pnl := NewTablePanel(context.Background(), columns, nopLogger{})
	pnl, _ = pnl.Update(message.PlanMsg{Plan: eng.Plan()})

	pnl, msg := press(pnl, "X")
	require.Equal(t, message.ToggleColumnMsg{Column: "Email"}, msg)

	plan := eng.ToggleColumn("Email")
	assert.Equal(t, []string{"Name", "Email", "Company"}, plan.Columns)

	pnl, _ = pnl.Update(message.PlanMsg{Plan: plan})
	_, msg = press(pnl, "X")
	assert.Nil(t, msg)
}

func TestEditing(t *testing.T) {

	eng := engine(3)
	pnl := panel(eng.Plan())

	pnl, msg := press(pnl, "j", "e")
	assert.Nil(t, msg)
	assert.True(t, pnl.Editing())

	pnl, msg = press(pnl, "backspace", "X")
	assert.Nil(t, msg)
	assert.Contains(t, pnl.Render(), "person0X")

	pnl, msg = press(pnl, "enter")
	assert.False(t, pnl.Editing())
	assert.Equal(t, message.EditMsg{Position: 1, Column: "Name", Text: "person0X"}, msg)

	pnl, _ = press(pnl, "e", "z", "esc")
	assert.False(t, pnl.Editing())
}

func TestRender(t *testing.T) {

	eng := engine(12)
	eng.SortBy("Name")

	out := panel(eng.Plan()).Render()
	assert.Contains(t, out, "Name ▲")
	assert.Contains(t, out, "person01")
	assert.Contains(t, out, "company")
	assert.NotContains(t, out, "company number")
	assert.NotContains(t, out, "person06")

	out = panel(eng.GoToPage(4)).Render()
	assert.Contains(t, out, "no rows")

	out = panel(eng.ApplySearch("person1")).Render()
	assert.Contains(t, out, `filtered by "person1"`)
	assert.NotContains(t, out, "person10")
}
