package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-runner/internal/core"
)

// palette maps core.Color to ANSI 256-color codes. ColorDefault has no entry
// and keeps the terminal's foreground.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var (
	plainStyle = lipgloss.NewStyle()
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

func styleFor(c core.Color) lipgloss.Style {
	if fg, ok := palette[c]; ok {
		return lipgloss.NewStyle().Foreground(fg)
	}
	return plainStyle
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing a color are written as one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		run.Reset()
		color := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				sb.WriteString(styleFor(color).Render(run.String()))
				run.Reset()
				color = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
