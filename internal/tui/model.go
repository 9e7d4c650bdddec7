// Package tui is an interactive palette picker. The model owns the current
// base colour text and style; every edit recomputes the whole palette
// through the colour and harmony packages.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/realh/palette/pkg/colour"
	"github.com/realh/palette/pkg/harmony"
	"github.com/realh/palette/pkg/render"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleNames = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

// Model is the bubbletea model for the picker.
type Model struct {
	input    textinput.Model
	style    harmony.Style
	palette  harmony.Palette
	err      error
	renderer *render.Renderer
	logger   *log.Logger
}

// New creates a picker showing initial in the given style. If initial
// doesn't parse the palette starts from black and the error is shown.
func New(initial string, style harmony.Style, r *render.Renderer,
	logger *log.Logger,
) Model {
	ti := textinput.New()
	ti.Prompt = "colour> "
	ti.Placeholder = "#E83285 or rgb(232, 50, 133)"
	ti.CharLimit = 32
	ti.SetValue(initial)
	ti.Focus()

	m := Model{
		input:    ti,
		style:    style,
		renderer: r,
		logger:   logger,
	}
	m.recompute()
	return m
}

// Palette returns the palette currently on screen.
func (m Model) Palette() harmony.Palette {
	return m.palette
}

// Style returns the selected style.
func (m Model) Style() harmony.Style {
	return m.style
}

// Err returns the error from the last edit, if it didn't parse.
func (m Model) Err() error {
	return m.err
}

// recompute derives a fresh palette. A colour that doesn't parse leaves
// the last good base in place, though a style change still applies to it.
func (m *Model) recompute() {
	base, err := colour.HSLFromString(m.input.Value())
	if err != nil {
		m.err = err
		m.palette = harmony.Derive(m.palette.Base, m.style)
		m.logger.Debug("colour rejected", "input", m.input.Value(), "err", err)
		return
	}
	m.err = nil
	m.palette = harmony.Derive(base, m.style)
	m.logger.Debug("palette derived", "input", m.input.Value(),
		"style", m.style, "base", render.FormatHSL(base))
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.style = m.style.Next()
			m.recompute()
			return m, nil
		case tea.KeyShiftTab:
			m.style = m.style.Prev()
			m.recompute()
			return m, nil
		}
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		m.recompute()
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderer.Palette(m.palette))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	names := make([]string, 0, len(harmony.Styles()))
	for _, s := range harmony.Styles() {
		if s == m.style {
			names = append(names, styleNames.Render("["+string(s)+"]"))
		} else {
			names = append(names, string(s))
		}
	}
	b.WriteString(strings.Join(names, " "))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/shift+tab: style • esc: quit"))
	b.WriteString("\n")
	return b.String()
}
