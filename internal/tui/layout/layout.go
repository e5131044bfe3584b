// Package layout computes the dashboard geometry. Widths and heights here are
// content sizes; each column adds one border cell on every side.
package layout

// Ratio splits the twelve-unit grid between the three columns.
var Ratio = [3]int{3, 6, 3}

const (
	gridUnits = 12

	// BorderCells is the horizontal and vertical space one bordered box adds.
	BorderCells = 2

	// ScreenChromeLines are the header and footer lines outside the columns.
	ScreenChromeLines = 2

	// ListChromeLines are the title and help lines the conversation list
	// emits around its rows.
	ListChromeLines = 2
)

// ColumnWidths returns the content width of each column for a terminal total
// cells wide. Widths never go below zero.
func ColumnWidths(total int) [3]int {
	var widths [3]int
	for i, r := range Ratio {
		widths[i] = max(total*r/gridUnits-BorderCells, 0)
	}
	return widths
}

// InteriorHeight is the content height of every column: the terminal height
// minus the header, footer and the column's top and bottom border.
func InteriorHeight(height int) int {
	return max(height-ScreenChromeLines-BorderCells, 0)
}

// ListRowBudget is how many conversation rows fit in the list column.
func ListRowBudget(height int) int {
	return max(InteriorHeight(height)-ListChromeLines, 0)
}
