package tui

import (
	"strings"

	"github.com/vovakirdan/tui-corrview/internal/colormap"
)

const (
	legendDots      = 8   // discrete swatches
	gradientSamples = 100 // continuous strip resolution
)

// renderLegend draws the discrete 8-dot scale and a continuous gradient
// strip, both running low (-1) to high (+1). The strip is sampled at 100
// points and clipped to the available width.
func renderLegend(scheme colormap.Scheme, width int, theme Theme) string {
	var b strings.Builder

	dots, err := colormap.Swatches(scheme, legendDots)
	if err != nil {
		dots, _ = colormap.Swatches(colormap.DefaultScheme(), legendDots)
	}
	b.WriteString(theme.LegendLabel.Render("-1 "))
	for _, hex := range dots {
		b.WriteString(cellStyle(hex).Render("  "))
		b.WriteString(" ")
	}
	b.WriteString(theme.LegendLabel.Render("+1"))
	b.WriteString("\n")

	strip, err := colormap.Swatches(scheme, gradientSamples)
	if err != nil {
		strip, _ = colormap.Swatches(colormap.DefaultScheme(), gradientSamples)
	}
	cols := width - 6
	if cols > gradientSamples {
		cols = gradientSamples
	}
	if cols < 2 {
		cols = 2
	}
	b.WriteString(theme.LegendLabel.Render("-1 "))
	for i := 0; i < cols; i++ {
		// Nearest sample for this column.
		idx := i * (gradientSamples - 1) / (cols - 1)
		b.WriteString(cellStyle(strip[idx]).Render(" "))
	}
	b.WriteString(theme.LegendLabel.Render(" +1"))

	return b.String()
}
