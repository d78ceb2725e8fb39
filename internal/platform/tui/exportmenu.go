package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-corrview/internal/export"
)

// exportMenu holds the raster export settings overlay.
type exportMenu struct {
	format  string
	scale   int
	quality int
	field   int // 0 = format, 1 = scale, 2 = quality
}

const exportMenuFields = 3

func newExportMenu(format string, scale, quality int) exportMenu {
	m := exportMenu{format: format, scale: scale, quality: quality}
	if m.format != export.FormatJPEG {
		m.format = export.FormatPNG
	}
	return m.clamped()
}

func (m exportMenu) clamped() exportMenu {
	if m.scale < 1 {
		m.scale = 1
	}
	if m.scale > 8 {
		m.scale = 8
	}
	if m.quality < 10 {
		m.quality = 10
	}
	if m.quality > 100 {
		m.quality = 100
	}
	return m
}

func (m exportMenu) moveUp() exportMenu {
	if m.field > 0 {
		m.field--
	}
	return m
}

func (m exportMenu) moveDown() exportMenu {
	if m.field < exportMenuFields-1 {
		m.field++
	}
	return m
}

// adjust changes the focused field by delta steps. Format toggles between
// png and jpeg regardless of direction.
func (m exportMenu) adjust(delta int) exportMenu {
	switch m.field {
	case 0:
		if m.format == export.FormatPNG {
			m.format = export.FormatJPEG
		} else {
			m.format = export.FormatPNG
		}
	case 1:
		m.scale += delta
	case 2:
		m.quality += delta * 5
	}
	return m.clamped()
}

// options converts the menu state into export options.
func (m exportMenu) options() export.Options {
	opts := export.DefaultOptions()
	opts.Format = m.format
	opts.Scale = m.scale
	opts.Quality = m.quality
	return opts
}

func (m exportMenu) view(theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.OverlayTitle.Render("Export"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
		muted bool
	}{
		{"format ", m.format, false},
		{"scale  ", fmt.Sprintf("%dx", m.scale), false},
		{"quality", fmt.Sprintf("%d", m.quality), m.format != export.FormatJPEG},
	}
	for i, row := range rows {
		prefix := "  "
		style := theme.MenuItemNormal
		if i == m.field {
			prefix = "> "
			style = theme.MenuItemActive
		}
		if row.muted {
			style = theme.MenuItemMuted
		}
		b.WriteString(prefix + style.Render(fmt.Sprintf("%s  < %s >", row.label, row.value)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Controls.Render("left/right: change  enter: export  esc: close"))
	return theme.OverlayBorder.Render(b.String())
}
