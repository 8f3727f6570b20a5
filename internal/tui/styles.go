// ============================================================================
// argspect - Argument-Analyse für die Kommandozeile
// ============================================================================
//
// Package:     tui
// Description: Styles for the interactive token inspector
// Created:     2026-08-14
// License:     MIT
// ============================================================================

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorBgPanel   = lipgloss.Color("#1E293B") // Slate 800
)

// Header styles
var (
	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2).
			MarginBottom(1)

	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)

// Token list styles
var (
	TokenStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			PaddingLeft(2)

	SelectedTokenStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	KindBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Panel styles
var (
	ListPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	DetailPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	DetailLabelStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	DetailValueStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true)

	CheckOKStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	CheckFailStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Status and help bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Logo
const Logo = "argspect Inspektor"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderCheck renders a yes/no check result
func RenderCheck(label string, ok bool) string {
	if ok {
		return CheckOKStyle.Render("[x] " + label)
	}
	return CheckFailStyle.Render("[ ] " + label)
}
