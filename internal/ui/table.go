package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn is a column title and its cell width.
type TableColumn struct {
	Title string
	Width int
}

// NoHighlight renders every row with the cell style.
const NoHighlight = -1

// NewTable builds an unfocused bubbles table sized to show every row.
// Row highlight, if not NoHighlight, is drawn in the neon accent.
func NewTable(columns []TableColumn, rows []table.Row, highlight int) table.Model {
	cols := make([]table.Column, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, table.Column(c))
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(ColorSecondary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorGlassBorder).
		BorderBottom(true)
	styles.Cell = styles.Cell.Foreground(ColorPrimary)

	// The cursor row gets Selected; only let it stand out when asked.
	if highlight >= 0 && highlight < len(rows) {
		styles.Selected = styles.Cell.Foreground(ColorNeonCyan).Bold(true)
		t.SetCursor(highlight)
	} else {
		styles.Selected = styles.Cell
	}

	t.SetStyles(styles)
	return t
}

// RenderTable renders rows as a static string, highlighting one row.
// Returns "" when there is nothing to show.
func RenderTable(columns []TableColumn, rows [][]string, highlight int) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = row
	}
	return NewTable(columns, tableRows, highlight).View()
}

// Mark is the boolean cell glyph.
func Mark(ok bool) string {
	if ok {
		return SymbolSuccess
	}
	return SymbolPending
}
