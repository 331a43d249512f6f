package message

import (
	tea "charm.land/bubbletea/v2"

	"tablo/grid"
)

// PlanCmd returns a command delivering plan to the panels.
func PlanCmd(plan grid.Plan) tea.Cmd {
	return func() tea.Msg {
		return PlanMsg{Plan: plan}
	}
}

// ErrorCmd returns a command reporting err.
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// Intent wraps msg as a command, for panels asking the model to act.
func Intent(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
