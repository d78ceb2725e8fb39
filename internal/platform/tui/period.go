package tui

import (
	"strings"
)

// periodItem is one entry in the period selector. The dataset ships exactly
// one period; the alternative is displayed but stays disabled.
type periodItem struct {
	label   string
	enabled bool
}

// periodMenu is the inert period toggle.
type periodMenu struct {
	items  []periodItem
	cursor int
}

// disabledPeriodLabel is the second, unavailable toggle entry.
const disabledPeriodLabel = "180d"

func newPeriodMenu(current string) periodMenu {
	items := []periodItem{
		{label: current, enabled: true},
	}
	if current != disabledPeriodLabel {
		items = append(items, periodItem{label: disabledPeriodLabel, enabled: false})
	}
	return periodMenu{items: items}
}

func (m periodMenu) moveUp() periodMenu {
	if m.cursor > 0 {
		m.cursor--
	}
	return m
}

func (m periodMenu) moveDown() periodMenu {
	if m.cursor < len(m.items)-1 {
		m.cursor++
	}
	return m
}

// selected returns the chosen period and true only when the cursor is on an
// enabled entry. Selecting a disabled entry is a no-op.
func (m periodMenu) selected() (string, bool) {
	item := m.items[m.cursor]
	if !item.enabled {
		return "", false
	}
	return item.label, true
}

func (m periodMenu) view(theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.OverlayTitle.Render("Period"))
	b.WriteString("\n\n")
	for i, item := range m.items {
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		style := theme.MenuItemNormal
		label := item.label
		if i == m.cursor {
			style = theme.MenuItemActive
		}
		if !item.enabled {
			style = theme.MenuItemMuted
			label += " (unavailable)"
		}
		b.WriteString(prefix + style.Render(label) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Controls.Render("enter: select  esc: close"))
	return theme.OverlayBorder.Render(b.String())
}
