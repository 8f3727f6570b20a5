package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/argspect/internal/argument"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorMuted     = lipgloss.Color("#6B7280")
	colorValue     = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorValue)

	MutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	kindOptionStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	kindFlagStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	kindPositionalStyle = lipgloss.NewStyle().
				Foreground(colorSecondary)
)

// RenderKindBadge renders a fixed-width classification badge for a token
func RenderKindBadge(kind argument.Kind) string {
	badge := padRight("("+kind.String()+")", 13)

	switch kind {
	case argument.KindLongOption:
		return kindOptionStyle.Render(badge)
	case argument.KindLongFlag, argument.KindShortFlag:
		return kindFlagStyle.Render(badge)
	default:
		return kindPositionalStyle.Render(badge)
	}
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
