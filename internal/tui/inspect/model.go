// ============================================================================
// textkit - Text Runtime Toolkit
// ============================================================================
//
// Package:     inspect
// Description: Bubbletea model for the interactive code point inspector
// Author:      Mike Stoffels
// Created:     2026-09-21
// License:     MIT
// ============================================================================

package inspect

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/textkit/foundation/text/str"
	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
)

// Filter tracks which kinds of rows are shown
type Filter struct {
	ASCII     bool
	NonASCII  bool
	Malformed bool
}

// allRows shows every row
var allRows = Filter{ASCII: true, NonASCII: true, Malformed: true}

func (f Filter) accepts(r Row) bool {
	switch {
	case r.Malformed():
		return f.Malformed
	case r.Rune < 0x80:
		return f.ASCII
	default:
		return f.NonASCII
	}
}

// Config holds inspector configuration
type Config struct {
	Title   string
	Version string
	// Load returns the text to inspect. It runs outside the update loop.
	Load func() (str.String, error)
}

// Model is the Bubbletea model of the inspector
type Model struct {
	width   int
	height  int
	ready   bool
	loading bool
	err     error

	viewport viewport.Model
	spinner  spinner.Model

	rows     []Row
	filtered []Row
	filter   Filter
	summary  Summary

	title   string
	version string
	load    func() (str.String, error)
}

// New creates an inspector model
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return Model{
		spinner: sp,
		loading: true,
		filter:  allRows,
		title:   cfg.Title,
		version: cfg.Version,
		load:    cfg.Load,
	}
}

// Init starts loading the input
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadRows)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4
		footerHeight := 4
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case rowsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.rows = msg.rows
			m.summary = Summarize(msg.rows)
			m.applyFilter()
			m.updateViewportContent()
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit
		case "1":
			m.filter.ASCII = !m.filter.ASCII
		case "2":
			m.filter.NonASCII = !m.filter.NonASCII
		case "3":
			m.filter.Malformed = !m.filter.Malformed
		case "0":
			m.filter = allRows
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		default:
			return m, nil
		}
		m.applyFilter()
		m.updateViewportContent()
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
	case tea.KeyPgDown:
		m.viewport.ViewDown()
	case tea.KeyUp:
		m.viewport.LineUp(1)
	case tea.KeyDown:
		m.viewport.LineDown(1)
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading inspector..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")
	b.WriteString(RowPanelStyle.Width(m.width - 2).Height(m.viewport.Height + 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

func (m Model) renderHeader() string {
	header := LogoStyle.Render(Logo)
	if m.title != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Center, header, "   ", HelpDescStyle.Render(m.title))
	}
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

func (m Model) renderFilterBar() string {
	filters := []string{
		"1:" + RenderFilterStatus("ASCII", m.filter.ASCII),
		"2:" + RenderFilterStatus("NON-ASCII", m.filter.NonASCII),
		"3:" + RenderFilterStatus("MALFORMED", m.filter.Malformed),
	}
	count := HelpDescStyle.Render(fmt.Sprintf("[%d/%d code points]", len(m.filtered), len(m.rows)))
	return FilterBarStyle.Width(m.width - 2).Render(strings.Join(filters, "  ") + "  " + count)
}

func (m Model) renderStatusBar() string {
	var left string
	switch {
	case m.loading:
		left = m.spinner.View() + " Analyzing..."
	case m.err != nil:
		left = MalformedStyle.Render("Error: " + m.err.Error())
	default:
		left = HelpDescStyle.Render(fmt.Sprintf("%d bytes  %d code points  %d cells",
			m.summary.Bytes, m.summary.Runes, m.summary.Width))
		if m.summary.Malformed > 0 {
			left += "  " + WarningStyle.Render(fmt.Sprintf("%d malformed", m.summary.Malformed))
		}
	}

	right := ""
	if m.version != "" {
		right = HelpDescStyle.Render("v" + m.version)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 2 {
		gap = 2
	}
	return StatusBarStyle.Width(m.width - 2).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("1-3", "Filter"),
		RenderKeyHint("0", "All"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("q", "Quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// renderRow formats one row for the viewport
func renderRow(r Row) string {
	glyph := r.Glyph()
	pad := 3 - mdwstringx.Width(str.ViewString(glyph))
	if pad < 1 {
		pad = 1
	}
	line := fmt.Sprintf("%s %s%s%s %s",
		OffsetStyle.Render(fmt.Sprintf("%6d", r.Offset)),
		glyph,
		strings.Repeat(" ", pad),
		CodePointStyle.Render(fmt.Sprintf("%-9s", r.CodePoint())),
		BytesStyle.Render(fmt.Sprintf("%-12s", r.HexBytes())),
	)
	if r.Malformed() {
		return line + MalformedStyle.Render(r.Description())
	}
	return line + NameStyle.Render(strings.ToLower(r.Name))
}

func (m *Model) updateViewportContent() {
	var content strings.Builder
	for _, r := range m.filtered {
		content.WriteString(renderRow(r))
		content.WriteString("\n")
	}
	m.viewport.SetContent(content.String())
}

func (m *Model) applyFilter() {
	m.filtered = make([]Row, 0, len(m.rows))
	for _, r := range m.rows {
		if m.filter.accepts(r) {
			m.filtered = append(m.filtered, r)
		}
	}
}

func (m Model) loadRows() tea.Msg {
	if m.load == nil {
		return rowsLoadedMsg{}
	}
	s, err := m.load()
	if err != nil {
		return rowsLoadedMsg{err: err}
	}
	return rowsLoadedMsg{rows: Analyze(s)}
}

// Run starts the inspector TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
