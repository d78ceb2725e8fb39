package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/vovakirdan/tui-corrview/internal/colormap"
)

// colorEdit is the endpoint color editor overlay: two hex inputs for the
// high and low colors.
type colorEdit struct {
	high    textinput.Model
	low     textinput.Model
	focused int // 0 = high, 1 = low
	errText string
}

func newColorEdit(scheme colormap.Scheme) colorEdit {
	high := textinput.New()
	high.Placeholder = colormap.DefaultHigh
	high.SetValue(scheme.High)
	high.CharLimit = 7
	high.Width = 9
	high.Focus()

	low := textinput.New()
	low.Placeholder = colormap.DefaultLow
	low.SetValue(scheme.Low)
	low.CharLimit = 7
	low.Width = 9

	return colorEdit{high: high, low: low}
}

// toggleFocus moves between the two inputs.
func (e colorEdit) toggleFocus() colorEdit {
	e.focused = 1 - e.focused
	if e.focused == 0 {
		e.high.Focus()
		e.low.Blur()
	} else {
		e.low.Focus()
		e.high.Blur()
	}
	return e
}

// apply validates both inputs. On success it returns the new scheme; on
// failure the editor keeps an inline error and the old scheme stays active.
func (e colorEdit) apply() (colormap.Scheme, colorEdit, bool) {
	scheme, err := parseSchemeInput(e.high.Value(), e.low.Value())
	if err != nil {
		e.errText = err.Error()
		return colormap.Scheme{}, e, false
	}
	e.errText = ""
	return scheme, e, true
}

// setScheme replaces both input values, used by preset cycling and reset.
func (e colorEdit) setScheme(scheme colormap.Scheme) colorEdit {
	e.high.SetValue(scheme.High)
	e.low.SetValue(scheme.Low)
	e.errText = ""
	return e
}

// parseSchemeInput normalizes and validates a pair of hex fields.
func parseSchemeInput(high, low string) (colormap.Scheme, error) {
	h := strings.TrimSpace(high)
	l := strings.TrimSpace(low)
	ch, ok := colormap.ParseHex(h)
	if !ok {
		return colormap.Scheme{}, fmt.Errorf("high color %q is not 6-digit hex", h)
	}
	cl, ok := colormap.ParseHex(l)
	if !ok {
		return colormap.Scheme{}, fmt.Errorf("low color %q is not 6-digit hex", l)
	}
	// Canonical lowercase form so downstream comparisons are stable.
	return colormap.Scheme{High: ch.Hex(), Low: cl.Hex()}, nil
}

func (e colorEdit) view(theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.OverlayTitle.Render("Colors"))
	b.WriteString("\n\n")

	highLabel := theme.FieldLabel
	lowLabel := theme.FieldLabel
	if e.focused == 0 {
		highLabel = theme.FieldLabelFocus
	} else {
		lowLabel = theme.FieldLabelFocus
	}

	highSwatch := ""
	if c, ok := colormap.ParseHex(e.high.Value()); ok {
		highSwatch = " " + cellStyle(c.Hex()).Render("  ")
	}
	lowSwatch := ""
	if c, ok := colormap.ParseHex(e.low.Value()); ok {
		lowSwatch = " " + cellStyle(c.Hex()).Render("  ")
	}

	b.WriteString(highLabel.Render("high (+1) ") + e.high.View() + highSwatch + "\n")
	b.WriteString(lowLabel.Render("low  (-1) ") + e.low.View() + lowSwatch + "\n")

	if e.errText != "" {
		b.WriteString("\n" + theme.StatusErr.Render(e.errText) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Controls.Render("tab: switch  enter: apply  p: preset  r: defaults  esc: cancel"))
	return theme.OverlayBorder.Render(b.String())
}
