// ============================================================================
// argspect - Argument-Analyse für die Kommandozeile
// ============================================================================
//
// Package:     tui
// Description: Bubbletea model for the interactive token inspector
// Created:     2026-08-14
// License:     MIT
// ============================================================================

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/argspect/internal/analyzer"
)

// Config holds inspector configuration
type Config struct {
	Tokens  []string
	Version string
}

// Model is the Bubbletea model for the token inspector
type Model struct {
	// State
	width  int
	height int
	ready  bool
	cursor int

	// Data
	tokens  []string
	infos   []analyzer.TokenInfo
	version string

	// Components
	viewport viewport.Model
}

// New creates a new inspector model. Every token is described up front;
// the list is small and fully in memory.
func New(cfg Config) Model {
	infos := make([]analyzer.TokenInfo, len(cfg.Tokens))
	for i, token := range cfg.Tokens {
		infos[i] = analyzer.Describe(token)
	}

	return Model{
		tokens:  cfg.Tokens,
		infos:   infos,
		version: cfg.Version,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4  // Title panel
		detailHeight := 9  // Detail panel
		footerHeight := 3  // Status bar + help
		listHeight := msg.Height - headerHeight - detailHeight - footerHeight
		if listHeight < 3 {
			listHeight = 3
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, listHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = listHeight
		}
		m.updateViewportContent()
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyUp:
		m.moveCursor(-1)
		return m, nil

	case tea.KeyDown:
		m.moveCursor(1)
		return m, nil

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit
		case "k":
			m.moveCursor(-1)
			return m, nil
		case "j":
			m.moveCursor(1)
			return m, nil
		case "g":
			m.cursor = 0
			m.updateViewportContent()
			m.viewport.GotoTop()
			return m, nil
		case "G":
			if len(m.tokens) > 0 {
				m.cursor = len(m.tokens) - 1
			}
			m.updateViewportContent()
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	return m, nil
}

// moveCursor moves the selection and keeps it visible in the viewport
func (m *Model) moveCursor(delta int) {
	if len(m.tokens) == 0 {
		return
	}

	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.tokens) {
		m.cursor = len(m.tokens) - 1
	}
	m.updateViewportContent()

	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	}
	if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade Inspektor..."
	}

	if len(m.tokens) == 0 {
		return TitlePanelStyle.Render(LogoStyle.Render(Logo)) + "\n" +
			HelpDescStyle.Render("Keine Tokens übergeben.") + "\n" +
			m.renderHelpBar()
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(ListPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderDetail())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title panel
func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		HelpDescStyle.Render(fmt.Sprintf("%d Tokens", len(m.tokens))),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// updateViewportContent rebuilds the token list inside the viewport
func (m *Model) updateViewportContent() {
	var content strings.Builder

	for i, info := range m.infos {
		badge := KindBadgeStyle.Render(padRight("("+info.Kind.String()+")", 13))
		line := fmt.Sprintf("[%d] %s %s", i+1, badge, info.Token)

		if i == m.cursor {
			content.WriteString(SelectedTokenStyle.Render("> " + line))
		} else {
			content.WriteString(TokenStyle.Render(line))
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// renderDetail renders the detail panel for the selected token
func (m Model) renderDetail() string {
	info := m.infos[m.cursor]

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n",
		DetailLabelStyle.Render("Token:"),
		DetailValueStyle.Render(info.Token))
	fmt.Fprintf(&b, "%s %s    %s %d Zeichen\n",
		DetailLabelStyle.Render("Art:"),
		DetailValueStyle.Render(info.Kind.String()),
		DetailLabelStyle.Render("Länge:"),
		info.Length)

	checks := []string{
		RenderCheck("E-Mail", info.IsEmail),
		RenderCheck("URL", info.IsURL),
		RenderCheck("Zahl", info.IsNumber),
	}
	b.WriteString(strings.Join(checks, "  "))
	b.WriteString("\n")

	if info.DataType != analyzer.TypeNone {
		fmt.Fprintf(&b, "%s %s\n",
			DetailLabelStyle.Render("Datentyp:"),
			DetailValueStyle.Render(string(info.DataType)))
	} else {
		b.WriteString(HelpDescStyle.Render("Datentyp: übersprungen (Flag)"))
		b.WriteString("\n")
	}

	if info.Extension != "" {
		fmt.Fprintf(&b, "%s %s\n",
			DetailLabelStyle.Render("Endung:"),
			DetailValueStyle.Render(info.Extension))
	}

	return DetailPanelStyle.Width(m.width - 2).Render(b.String())
}

// renderStatusBar renders the status bar
func (m Model) renderStatusBar() string {
	left := fmt.Sprintf("Token %d/%d", m.cursor+1, len(m.tokens))
	right := "v" + m.version

	padding := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if padding < 1 {
		padding = 1
	}

	return StatusBarStyle.Width(m.width - 2).Render(left + strings.Repeat(" ", padding) + right)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("j/k", "Auswahl"),
		RenderKeyHint("g/G", "Anfang/Ende"),
		RenderKeyHint("q", "Beenden"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}

// Run starts the inspector TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
