package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

// palette holds the lipgloss style of each core.Color.
var palette = [...]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           fg("1"),
	core.ColorGreen:         fg("2"),
	core.ColorYellow:        fg("3"),
	core.ColorBlue:          fg("4"),
	core.ColorMagenta:       fg("5"),
	core.ColorCyan:          fg("6"),
	core.ColorWhite:         fg("7"),
	core.ColorBrightRed:     fg("9"),
	core.ColorBrightGreen:   fg("10"),
	core.ColorBrightYellow:  fg("11"),
	core.ColorBrightBlue:    fg("12"),
	core.ColorBrightMagenta: fg("13"),
	core.ColorBrightCyan:    fg("14"),
	core.ColorBrightWhite:   fg("15"),
	core.ColorOrange:        fg("208"),
	core.ColorGray:          fg("240").Faint(true), // Spent or fading sprites
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[core.ColorDefault]
}

// RenderScreen converts the cell buffer to styled terminal lines.
// Each run of same-coloured cells is styled once.
func RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	var line, run strings.Builder

	for y := range lines {
		line.Reset()
		color := core.ColorDefault
		flush := func() {
			if run.Len() > 0 {
				line.WriteString(styleFor(color).Render(run.String()))
				run.Reset()
			}
		}

		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				flush()
				color = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
