package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-corrview/internal/colormap"
	"github.com/vovakirdan/tui-corrview/internal/dataset"
)

// cellWidth is the rendered width of one heatmap cell in characters.
const cellWidth = 3

// cursor addresses one lower-triangle cell. col <= row always holds.
type cursor struct {
	row, col int
}

// moveCursor shifts the cursor by (dRow, dCol) and clamps it back into the
// lower triangle of an n-asset matrix. Moving up past the diagonal pulls the
// column in with the row.
func moveCursor(c cursor, dRow, dCol, n int) cursor {
	if n == 0 {
		return cursor{}
	}
	c.row += dRow
	c.col += dCol
	if c.row < 0 {
		c.row = 0
	}
	if c.row > n-1 {
		c.row = n - 1
	}
	if c.col < 0 {
		c.col = 0
	}
	if c.col > c.row {
		c.col = c.row
	}
	return c
}

// colAbbrev shortens an asset name for the column header.
func colAbbrev(name string) string {
	if len(name) > cellWidth-1 {
		name = name[:cellWidth-1]
	}
	return name
}

// renderGrid draws the lower-triangular heatmap with row labels, a column
// header, and the cursor cell marked.
func renderGrid(ds *dataset.Dataset, scheme colormap.Scheme, cur cursor, theme Theme) string {
	n := ds.Size()
	labelW := 0
	for _, a := range ds.Assets {
		if len(a) > labelW {
			labelW = len(a)
		}
	}

	var b strings.Builder

	// Column header.
	b.WriteString(strings.Repeat(" ", labelW+1))
	for j := 0; j < n; j++ {
		h := colAbbrev(ds.Assets[j])
		b.WriteString(theme.ColLabel.Render(fmt.Sprintf("%-*s", cellWidth, h)))
	}
	b.WriteString("\n")

	for i := 0; i < n; i++ {
		b.WriteString(theme.RowLabel.Render(fmt.Sprintf("%*s", labelW, ds.Assets[i])))
		b.WriteString(" ")
		for j := 0; j <= i; j++ {
			b.WriteString(renderCell(ds, scheme, i, j, cur == cursor{row: i, col: j}, theme))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderCell fills one cell with the mapped background color. The cursor
// cell shows brackets so it stays visible on any gradient.
func renderCell(ds *dataset.Dataset, scheme colormap.Scheme, row, col int, selected bool, theme Theme) string {
	v, ok := ds.At(row, col)
	if !ok {
		return theme.EmptyCell.Render(strings.Repeat("·", cellWidth))
	}
	body := strings.Repeat(" ", cellWidth)
	if selected {
		body = "[" + strings.Repeat(" ", cellWidth-2) + "]"
	}
	style := cellStyle(scheme.ColorFor(v))
	if selected {
		style = style.Bold(true)
	}
	return style.Render(body)
}

// renderInspector is the hover tooltip: asset pair, value, and mapped color
// for the cursor cell.
func renderInspector(ds *dataset.Dataset, scheme colormap.Scheme, cur cursor, theme Theme) string {
	var lines []string
	lines = append(lines, theme.InspectorTitle.Render(
		fmt.Sprintf("%s × %s", ds.Assets[cur.row], ds.Assets[cur.col])))

	if v, ok := ds.At(cur.row, cur.col); ok {
		hex := scheme.ColorFor(v)
		swatch := cellStyle(hex).Render("  ")
		lines = append(lines,
			theme.InspectorValue.Render(fmt.Sprintf("correlation %+.2f", v)),
			theme.InspectorValue.Render(fmt.Sprintf("color %s ", hex))+swatch,
		)
	} else {
		lines = append(lines, theme.InspectorValue.Render("no data"))
	}
	return theme.InspectorBorder.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
