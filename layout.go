package tablo

import (
	"github.com/pkg/errors"

	nt "tablo/entity"
	"tablo/grid"
	"tablo/util"
)

// Layout specifies columns and paging for a table, as loaded from yaml.
type Layout struct {
	PageSize  int            `yaml:"page_size"`
	Search    string         `yaml:"search,omitempty"`
	Columns   []nt.Column    `yaml:"columns"`
	Canonical grid.Canonical `yaml:"canonical,omitempty"`
}

// LoadLayout reads a layout file.
func LoadLayout(path string) (layout *Layout, err error) {

	layout = &Layout{}
	err = util.LoadConfig(layout, path)
	if err != nil {
		layout = nil
		err = errors.Wrapf(err, "failed to load layout")
	}
	return
}

// Config converts layout into engine config.
// Hidden columns are left out of the headers but keep their canonical slot.
// A layout with columns must leave at least one of them visible.
func (layout *Layout) Config() (cfg *grid.Config, err error) {

	scope, err := grid.ParseScope(layout.Search)
	if err != nil {
		return
	}

	headers := []string{}
	fields := []string{}
	for _, col := range layout.Columns {
		fields = append(fields, col.Field)
		if !col.Hidden {
			headers = append(headers, col.Field)
		}
	}

	if len(fields) > 0 && len(headers) == 0 {
		err = errors.Errorf("layout hides all %d columns", len(fields))
		return
	}

	canonical := layout.Canonical
	if canonical == nil && len(fields) > 0 {
		canonical = grid.CanonicalFrom(fields)
	}

	cfg = &grid.Config{
		PageSize:  layout.PageSize,
		Headers:   headers,
		Canonical: canonical,
		Scope:     scope,
	}
	return
}
