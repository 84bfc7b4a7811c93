package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/forest-run/internal/core"
)

// colorStyles maps palette slots to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorSky:           lipgloss.NewStyle().Foreground(lipgloss.Color("17")),
	core.ColorGround:        lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorPlayer:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorPlayerPowered: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	core.ColorBed:           lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	core.ColorGiant:         lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorMiniboss:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	core.ColorMushroom:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorTree:          lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	core.ColorBranch:        lipgloss.NewStyle().Foreground(lipgloss.Color("58")),
	core.ColorFog:           lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	core.ColorHUD:           lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorWarning:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorBanner:        lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
