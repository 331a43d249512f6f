package grid

// GoToPage shows page n. Pages below 1 are taken as page 1,
// and pages past the last one show no rows.
func (eng *Engine) GoToPage(n int) Plan {

	if n < 1 {
		n = 1
	}
	eng.currentPage = n

	eng.logger.Info(eng.ctx, "page changed", "page", n)
	return eng.recompute()
}

// window returns the data positions on the current page.
func (eng *Engine) window() []int {

	offset := (eng.currentPage - 1) * eng.pageSize
	if offset >= len(eng.data) {
		return []int{}
	}

	end := min(offset+eng.pageSize, len(eng.data))

	positions := make([]int, 0, end-offset)
	for pos := offset; pos < end; pos++ {
		positions = append(positions, pos)
	}
	return positions
}

// pageLinks numbers every page, with at least one even when empty.
func (eng *Engine) pageLinks() []int {

	count := (len(eng.data) + eng.pageSize - 1) / eng.pageSize
	if count < 1 {
		count = 1
	}

	links := make([]int, count)
	for i := range links {
		links[i] = i + 1
	}
	return links
}
