// Package grid holds the state of a paginated, sortable, searchable table
// and recomputes what should be presented after every change.
package grid

import (
	"context"

	nt "tablo/entity"
)

const (
	// DefaultPageSize is used when no positive page size is configured.
	DefaultPageSize = 5
)

// Renderer paints a plan.
type Renderer interface {
	Paint(plan Plan)
}

// HeaderSource supplies column names discovered by a collaborator,
// such as header labels of an existing view or fields of a data source.
type HeaderSource interface {
	Headers() []string
}

// Config specifies the initial state of an Engine.
type Config struct {
	PageSize  int         `yaml:"page_size"`
	Headers   []string    `yaml:"headers,omitempty"`
	Canonical Canonical   `yaml:"canonical,omitempty"`
	Scope     SearchScope `yaml:"search,omitempty"`
}

// Engine owns the rows of a table and everything derived from them.
// It is not safe for concurrent use.
type Engine struct {
	data      []nt.Row
	columns   []string
	canonical Canonical
	scope     SearchScope

	pageSize    int
	currentPage int
	sort        SortState
	search      string

	plan     Plan
	renderer Renderer

	ctx    context.Context
	logger nt.Logger
}

// New creates an Engine from config, computing its first plan.
// Headers come from cfg, or from src when cfg has none.
func (cfg *Config) New(ctx context.Context, rows []nt.Row, src HeaderSource, lgr nt.Logger) *Engine {

	headers := cfg.Headers
	if len(headers) == 0 && src != nil {
		headers = src.Headers()
	}

	pageSize := cfg.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	canonical := cfg.Canonical
	if canonical == nil {
		canonical = DefaultCanonical()
	}

	scope := cfg.Scope
	if scope == "" {
		scope = ScopePage
	}

	eng := &Engine{
		data:        cloneRows(rows),
		columns:     dedupe(headers),
		canonical:   canonical,
		scope:       scope,
		pageSize:    pageSize,
		currentPage: 1,
		sort:        SortState{Direction: Ascending},
		ctx:         ctx,
		logger:      lgr,
	}
	eng.recompute()

	return eng
}

// Attach paints the current plan with r, and every plan after it.
func (eng *Engine) Attach(r Renderer) {
	eng.renderer = r
	if r != nil {
		r.Paint(eng.plan)
	}
}

// Plan returns the most recently computed plan.
func (eng *Engine) Plan() Plan {
	return eng.plan
}

// Len returns the number of rows held.
func (eng *Engine) Len() int {
	return len(eng.data)
}

// PageSize returns the number of rows per page.
func (eng *Engine) PageSize() int {
	return eng.pageSize
}

// SetData replaces all rows, keeping page, sort and search state.
func (eng *Engine) SetData(rows []nt.Row) Plan {

	eng.data = cloneRows(rows)
	eng.logger.Info(eng.ctx, "data replaced", "rows", len(rows))

	return eng.recompute()
}

// EditCell stores text in the given column of the row at position,
// parsed to the kind of the value it replaces.
// Positions outside the data and empty columns are ignored.
func (eng *Engine) EditCell(position int, column, text string) Plan {

	if position < 0 || position >= len(eng.data) || column == "" {
		return eng.plan
	}

	row := eng.data[position].Clone()
	if row == nil {
		row = nt.Row{}
	}
	row[column] = row.Cell(column).Parse(text)
	eng.data[position] = row

	eng.logger.Info(eng.ctx, "cell edited", "position", position, "column", column)
	return eng.recompute()
}

// unexported

func (eng *Engine) recompute() Plan {

	eng.plan = eng.assemble()
	if eng.renderer != nil {
		eng.renderer.Paint(eng.plan)
	}
	return eng.plan
}

func cloneRows(rows []nt.Row) []nt.Row {

	out := make([]nt.Row, len(rows))
	for i, row := range rows {
		out[i] = row.Clone()
	}
	return out
}

func dedupe(names []string) []string {

	seen := map[string]bool{}
	out := []string{}
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
