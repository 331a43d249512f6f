package grid

import (
	"strings"

	"github.com/pkg/errors"
)

// SearchScope selects which rows a search looks at.
type SearchScope string

const (
	// ScopePage searches only the rows on the current page.
	ScopePage SearchScope = "page"
	// ScopeData searches every row.
	ScopeData SearchScope = "data"
)

// ParseScope converts a name into a SearchScope, empty being ScopePage.
func ParseScope(name string) (scope SearchScope, err error) {

	switch SearchScope(name) {
	case "", ScopePage:
		scope = ScopePage
	case ScopeData:
		scope = ScopeData
	default:
		err = errors.Errorf("unknown search scope %q", name)
	}
	return
}

// ApplySearch shows only rows with a cell containing term, ignoring case,
// and hides pagination while term is not empty.
// An empty term restores the paginated view.
func (eng *Engine) ApplySearch(term string) Plan {

	eng.search = term

	eng.logger.Info(eng.ctx, "search applied", "term", term, "scope", string(eng.scope))
	return eng.recompute()
}

// filter keeps the positions whose rendered cells match the search term.
func (eng *Engine) filter(positions []int) []int {

	if eng.scope == ScopeData {
		positions = make([]int, len(eng.data))
		for i := range positions {
			positions[i] = i
		}
	}

	needle := strings.ToUpper(eng.search)
	matched := []int{}
	for _, pos := range positions {
		for _, cell := range eng.data[pos].Project(eng.columns) {
			if strings.Contains(strings.ToUpper(cell), needle) {
				matched = append(matched, pos)
				break
			}
		}
	}
	return matched
}
