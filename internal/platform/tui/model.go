package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-corrview/internal/colormap"
	"github.com/vovakirdan/tui-corrview/internal/config"
	"github.com/vovakirdan/tui-corrview/internal/dataset"
	"github.com/vovakirdan/tui-corrview/internal/export"
)

// focus enumerates the mutually exclusive UI modes. Exactly one region owns
// input at any time; overlays are never stacked.
type focus int

const (
	focusGrid focus = iota
	focusPeriodMenu
	focusExportMenu
	focusColorEdit
)

// exportDoneMsg reports the outcome of an async export.
type exportDoneMsg struct {
	path string
	err  error
}

// Model is the Bubble Tea model for the heatmap viewer.
type Model struct {
	ds            *dataset.Dataset
	scheme        colormap.Scheme
	defaultScheme colormap.Scheme // reset target, from config
	period        string

	focus     focus
	cur       cursor
	periods   periodMenu
	colors    colorEdit
	exporter  exportMenu
	exportDir string
	presetIdx int

	status    string
	statusErr bool
	exporting bool

	theme  Theme
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	width    int
	height   int
	quitting bool
}

// NewModel creates a viewer model for the given dataset and configuration.
func NewModel(ds *dataset.Dataset, cfg config.Config, logger *log.Logger) Model {
	scheme := cfg.Colors.Scheme()
	if !scheme.Valid() {
		scheme = colormap.DefaultScheme()
	}
	return Model{
		ds:            ds,
		scheme:        scheme,
		defaultScheme: scheme,
		period:        ds.Period,
		periods:       newPeriodMenu(ds.Period),
		colors:        newColorEdit(scheme),
		exporter:      newExportMenu(cfg.Export.Format, cfg.Export.Scale, cfg.Export.Quality),
		exportDir:     cfg.Export.Dir,
		theme:         DefaultTheme(),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		logger:        logger,
		width:         80,
		height:        24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.status = fmt.Sprintf("export failed: %v", msg.err)
			m.statusErr = true
			if m.logger != nil {
				m.logger.Error("export failed", "err", msg.err)
			}
		} else {
			m.status = "saved " + msg.path
			m.statusErr = false
			if m.logger != nil {
				m.logger.Info("export complete", "path", msg.path)
			}
		}
		return m, nil
	}

	return m, nil
}

// handleKey routes input to whichever region has focus.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C quits from any mode; plain q only outside text entry.
	if msg.String() == "ctrl+c" || (msg.String() == "q" && m.focus != focusColorEdit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.focus {
	case focusGrid:
		return m.handleGridKey(msg)
	case focusPeriodMenu:
		return m.handlePeriodKey(msg)
	case focusExportMenu:
		return m.handleExportKey(msg)
	case focusColorEdit:
		return m.handleColorKey(msg)
	}
	return m, nil
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cur = moveCursor(m.cur, -1, 0, m.ds.Size())
	case key.Matches(msg, m.keys.Down):
		m.cur = moveCursor(m.cur, 1, 0, m.ds.Size())
	case key.Matches(msg, m.keys.Left):
		m.cur = moveCursor(m.cur, 0, -1, m.ds.Size())
	case key.Matches(msg, m.keys.Right):
		m.cur = moveCursor(m.cur, 0, 1, m.ds.Size())
	case key.Matches(msg, m.keys.Period):
		m.focus = focusPeriodMenu
	case key.Matches(msg, m.keys.Export):
		m.focus = focusExportMenu
	case key.Matches(msg, m.keys.Colors):
		m.colors = newColorEdit(m.scheme)
		m.focus = focusColorEdit
	case key.Matches(msg, m.keys.Preset):
		m = m.cyclePreset()
	case key.Matches(msg, m.keys.Reset):
		m.scheme = m.defaultScheme
		m.status = "colors reset"
		m.statusErr = false
	}
	return m, nil
}

func (m Model) handlePeriodKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.periods = m.periods.moveUp()
	case key.Matches(msg, m.keys.Down):
		m.periods = m.periods.moveDown()
	case key.Matches(msg, m.keys.Confirm):
		if p, ok := m.periods.selected(); ok {
			m.period = p
			m.focus = focusGrid
		}
		// Disabled entries swallow the keypress; the menu stays open.
	case key.Matches(msg, m.keys.Back):
		m.focus = focusGrid
	}
	return m, nil
}

func (m Model) handleExportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.exporter = m.exporter.moveUp()
	case key.Matches(msg, m.keys.Down):
		m.exporter = m.exporter.moveDown()
	case key.Matches(msg, m.keys.Left):
		m.exporter = m.exporter.adjust(-1)
	case key.Matches(msg, m.keys.Right):
		m.exporter = m.exporter.adjust(1)
	case key.Matches(msg, m.keys.Confirm):
		if m.exporting {
			return m, nil
		}
		m.focus = focusGrid
		m.exporting = true
		m.status = "exporting..."
		m.statusErr = false
		return m, exportCmd(m.ds, m.scheme, m.exportDir, m.exporter.options())
	case key.Matches(msg, m.keys.Back):
		m.focus = focusGrid
	}
	return m, nil
}

func (m Model) handleColorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.colors = m.colors.toggleFocus()
		return m, nil
	case "enter":
		scheme, edit, ok := m.colors.apply()
		m.colors = edit
		if ok {
			m.scheme = scheme
			m.focus = focusGrid
			m.status = "colors applied"
			m.statusErr = false
		}
		return m, nil
	case "esc":
		m.focus = focusGrid
		return m, nil
	case "p":
		m = m.cyclePreset()
		m.colors = m.colors.setScheme(m.scheme)
		return m, nil
	case "r":
		m.colors = m.colors.setScheme(m.defaultScheme)
		return m, nil
	}

	// Everything else edits the focused hex field.
	var cmd tea.Cmd
	if m.colors.focused == 0 {
		m.colors.high, cmd = m.colors.high.Update(msg)
	} else {
		m.colors.low, cmd = m.colors.low.Update(msg)
	}
	return m, cmd
}

// cyclePreset advances to the next named scheme preset.
func (m Model) cyclePreset() Model {
	presets := config.Presets()
	m.presetIdx = (m.presetIdx + 1) % len(presets)
	scheme, err := config.SchemeForPreset(presets[m.presetIdx])
	if err != nil {
		return m
	}
	m.scheme = scheme
	m.status = "preset: " + string(presets[m.presetIdx])
	m.statusErr = false
	return m
}

// exportCmd renders and saves the heatmap off the update loop.
func exportCmd(ds *dataset.Dataset, scheme colormap.Scheme, dir string, opts export.Options) tea.Cmd {
	return func() tea.Msg {
		path, err := export.Save(dir, ds, scheme, opts)
		return exportDoneMsg{path: path, err: err}
	}
}

// View renders the viewer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.focus != focusGrid {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.overlayView())
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Correlation Matrix"))
	b.WriteString("  ")
	b.WriteString(m.theme.Subtitle.Render("period " + m.period))
	b.WriteString("\n\n")

	grid := renderGrid(m.ds, m.scheme, m.cur, m.theme)
	inspector := renderInspector(m.ds, m.scheme, m.cur, m.theme)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, grid, "  ", inspector))
	b.WriteString("\n")
	b.WriteString(renderLegend(m.scheme, m.width, m.theme))
	b.WriteString("\n\n")

	if m.status != "" {
		style := m.theme.Status
		if m.statusErr {
			style = m.theme.StatusErr
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) overlayView() string {
	switch m.focus {
	case focusPeriodMenu:
		return m.periods.view(m.theme)
	case focusExportMenu:
		return m.exporter.view(m.theme)
	case focusColorEdit:
		return m.colors.view(m.theme)
	}
	return ""
}

// Run starts the viewer and blocks until the user quits.
func Run(ds *dataset.Dataset, cfg config.Config, logger *log.Logger) error {
	model := NewModel(ds, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
