package tablo

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "tablo/entity"
	"tablo/grid"
	"tablo/input"
	"tablo/message"
	"tablo/style"
	"tablo/table"
)

const (
	footerHeight = 2
	searchHeight = 1
)

// Model is the bubbletea model for the table TUI.
type Model struct {
	Store  Store
	Engine *grid.Engine

	TablePanel table.TablePanel
	Search     input.Input
	searching  bool

	errorString string

	Width  int
	Height int

	ctx    context.Context
	logger nt.Logger
}

// NewModel creates a new bt model around engine.
func NewModel(ctx context.Context, store Store, engine *grid.Engine, layout *Layout, lgr nt.Logger) Model {

	return Model{
		Store:      store,
		Engine:     engine,
		TablePanel: table.NewTablePanel(ctx, layout.Columns, lgr),
		Search:     input.New(engine.Plan().Search, 0),
		ctx:        ctx,
		logger:     lgr,
	}
}

func (m Model) Init() tea.Cmd {
	return message.PlanCmd(m.Engine.Plan())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.PlanMsg:
		var cmd tea.Cmd
		m.TablePanel, cmd = m.TablePanel.Update(msg)
		return m, cmd

	case message.SortMsg:
		return m, message.PlanCmd(m.Engine.SortBy(msg.Column))

	case message.PageMsg:
		return m, message.PlanCmd(m.Engine.GoToPage(msg.Page))

	case message.ToggleColumnMsg:
		return m, message.PlanCmd(m.Engine.ToggleColumn(msg.Column))

	case message.EditMsg:
		return m, message.PlanCmd(m.Engine.EditCell(msg.Position, msg.Column, msg.Text))

	case message.SearchMsg:
		return m, message.PlanCmd(m.Engine.ApplySearch(msg.Term))

	case input.ChangedMsg:
		return m, message.PlanCmd(m.Engine.ApplySearch(msg.Value))

	case message.RowsMsg:
		return m, message.PlanCmd(m.Engine.SetData(msg.Rows))

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case tea.KeyPressMsg:
		m.errorString = ""
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		var cmd tea.Cmd
		m.TablePanel, cmd = m.TablePanel.Update(table.SizeMsg{Width: msg.Width})
		return m, cmd
	}

	return m, nil
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	plan := m.Engine.Plan()

	searchLine := style.MutedStyle.Render("/ to search")
	if m.searching || plan.Search != "" {
		searchLine = "search: " + m.Search.Value()
		if m.searching {
			searchLine = "search: " + m.Search.Render()
		}
	}

	footer := RenderFooter(plan, m.Engine.Len(), m.Store.Name(), m.Width)
	if m.errorString != "" {
		footer = style.ErrorStyle.Render(m.errorString)
	}

	screenLayer := lipgloss.NewLayer("screen", m.TablePanel.Render())
	searchLayer := lipgloss.NewLayer("search", searchLine).Y(m.Height - footerHeight - searchHeight)
	footerLayer := lipgloss.NewLayer("footer", footer).Y(m.Height - footerHeight)

	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(screenLayer)
	canvas.Compose(searchLayer)
	canvas.Compose(footerLayer)

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}

// unexported

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	if m.searching {
		switch msg.String() {
		case "enter":
			m.searching = false
			return m, nil
		case "esc":
			m.searching = false
			m.Search = input.New("", 0)
			return m, message.Intent(message.SearchMsg{Term: ""})
		}

		var cmd tea.Cmd
		m.Search, cmd = m.Search.Update(msg)
		return m, cmd
	}

	if m.TablePanel.Editing() {
		var cmd tea.Cmd
		m.TablePanel, cmd = m.TablePanel.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "/":
		m.searching = true
		return m, nil

	case "r":
		return m, m.reload()
	}

	var cmd tea.Cmd
	m.TablePanel, cmd = m.TablePanel.Update(msg)
	return m, cmd
}

// reload fetches rows from the store again
func (m Model) reload() tea.Cmd {

	return func() tea.Msg {
		rows, err := m.Store.Rows()
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		return message.RowsMsg{Rows: rows}
	}
}
