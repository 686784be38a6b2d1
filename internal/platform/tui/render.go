package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/golden-fly/internal/core"
)

// Theme maps palette slots to lipgloss styles.
type Theme struct {
	Name   string
	styles map[core.Color]lipgloss.Style
	Help   lipgloss.Style
}

// Style returns the style for a palette slot.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.styles[c]; ok {
		return s
	}
	return t.styles[core.ColorDefault]
}

// DarkTheme is the default theme: gold on the terminal's own background.
func DarkTheme() Theme {
	return Theme{
		Name: "dark",
		styles: map[core.Color]lipgloss.Style{
			core.ColorDefault:   lipgloss.NewStyle(),
			core.ColorPlayer:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // Gold
			core.ColorPlayerEye: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220")),
			core.ColorGround:    lipgloss.NewStyle().Foreground(lipgloss.Color("94")), // Brown
			core.ColorObstacle:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
			core.ColorBanner:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
			core.ColorMuted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// LightTheme paints a pale sky behind every cell.
func LightTheme() Theme {
	sky := lipgloss.Color("195")
	return Theme{
		Name: "light",
		styles: map[core.Color]lipgloss.Style{
			core.ColorDefault:   lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(sky),
			core.ColorPlayer:    lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Background(sky),
			core.ColorPlayerEye: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("178")),
			core.ColorGround:    lipgloss.NewStyle().Foreground(lipgloss.Color("130")).Background(sky),
			core.ColorObstacle:  lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Background(sky),
			core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(sky).Bold(true),
			core.ColorBanner:    lipgloss.NewStyle().Foreground(lipgloss.Color("166")).Background(sky).Bold(true),
			core.ColorMuted:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(sky),
		},
		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t.Name == "light" {
		return DarkTheme()
	}
	return LightTheme()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(theme.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
