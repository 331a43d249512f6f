package tablo

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"tablo/grid"
)

// RenderFooter renders a footer with metadata about the table.
func RenderFooter(plan grid.Plan, rows int, name string, width int) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	parts := []string{
		fmt.Sprintf("page %d/%d", plan.CurrentPage, plan.LastPage()),
		fmt.Sprintf("%d rows", rows),
	}
	if plan.Sort.Column != "" {
		parts = append(parts, fmt.Sprintf("sorted %s %s", plan.Sort.Column, plan.Sort.Direction.Flip()))
	}
	if plan.Search != "" {
		parts = append(parts, fmt.Sprintf("search %q", plan.Search))
	}

	left := strings.Join(parts, "  ")
	right := name

	// Calculate padding
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	footer := style.Render(left + strings.Repeat(" ", padding) + right)
	return footer
}
