package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-collide/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// span is a stretch of one screen row drawn in a single colour.
type span struct {
	color core.Color
	text  string
}

// rowSpans splits row y into maximal same-colour spans, left to right.
func rowSpans(s *core.Screen, y int) []span {
	var spans []span
	var runes []rune
	color := s.GetCell(0, y).Color

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != color {
			spans = append(spans, span{color: color, text: string(runes)})
			runes, color = runes[:0], cell.Color
		}
		runes = append(runes, cell.Rune)
	}
	if len(runes) > 0 {
		spans = append(spans, span{color: color, text: string(runes)})
	}
	return spans
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each colour span gets one styled segment; uncoloured spans are written
// as is, which keeps empty floor space free of escape codes.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		var sb strings.Builder
		for _, sp := range rowSpans(s, y) {
			style, ok := colorStyles[sp.color]
			if !ok || sp.color == core.ColorDefault {
				sb.WriteString(sp.text)
				continue
			}
			sb.WriteString(style.Render(sp.text))
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}

// centerText pads text on the left to center it in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
