package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme contains all configurable visual styles for the viewer.
type Theme struct {
	// Chrome
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Status    lipgloss.Style
	StatusErr lipgloss.Style
	Controls  lipgloss.Style

	// Grid
	RowLabel    lipgloss.Style
	ColLabel    lipgloss.Style
	EmptyCell   lipgloss.Style
	CursorFrame lipgloss.Style

	// Inspector panel
	InspectorBorder lipgloss.Style
	InspectorTitle  lipgloss.Style
	InspectorValue  lipgloss.Style

	// Legend
	LegendLabel lipgloss.Style

	// Overlays
	OverlayBorder   lipgloss.Style
	OverlayTitle    lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuItemMuted   lipgloss.Style
	FieldLabel      lipgloss.Style
	FieldLabelFocus lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Subtitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		StatusErr: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Controls:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		RowLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ColLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		EmptyCell:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		CursorFrame: lipgloss.NewStyle().Bold(true),

		InspectorBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		InspectorTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		InspectorValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),

		LegendLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		OverlayBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("255")).
			Padding(1, 2),
		OverlayTitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuItemMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		FieldLabel:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		FieldLabelFocus: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	}
}

// cellStyle builds a style for a heatmap cell: the given hex background with
// a readable foreground picked by background luminance.
func cellStyle(hex string) lipgloss.Style {
	fg := "#1a1a1a"
	if c, err := colorful.Hex(hex); err == nil {
		if _, _, l := c.Hsl(); l < 0.5 {
			fg = "#f2f2f2"
		}
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg))
}
