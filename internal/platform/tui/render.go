package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// palette maps core.Color to lipgloss styles for one renderer.
type palette map[core.Color]lipgloss.Style

// newPalette builds styles bound to r, so SSH sessions detect their own
// client's color support.
func newPalette(r *lipgloss.Renderer) palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return palette{
		core.ColorDefault: r.NewStyle(),
		core.ColorRed:     r.NewStyle().Foreground(lipgloss.Color("9")),
		core.ColorGreen:   r.NewStyle().Foreground(lipgloss.Color("10")),
		core.ColorYellow:  r.NewStyle().Foreground(lipgloss.Color("11")),
		core.ColorWhite:   r.NewStyle().Foreground(lipgloss.Color("15")),
		core.ColorOrange:  r.NewStyle().Foreground(lipgloss.Color("208")),
		core.ColorPink:    r.NewStyle().Foreground(lipgloss.Color("213")),
		core.ColorGray:    r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
