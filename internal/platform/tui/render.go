package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/entity-arcade/internal/core"
)

// ansi256 is the terminal code of every palette color. Colors left empty
// use the terminal's default foreground.
var ansi256 = [...]string{
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
	core.ColorDarkGray:      "238",
}

var cellStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansi256))
	for c, code := range ansi256 {
		styles[c] = lipgloss.NewStyle()
		if code != "" {
			styles[c] = styles[c].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}()

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return lipgloss.NewStyle()
}

// run is a stretch of one row drawn in a single color.
type run struct {
	color core.Color
	text  string
}

// rowRuns splits row y into color runs. Blanks look the same in any color,
// so they extend the run they follow, and trailing blanks are dropped.
func rowRuns(s *core.Screen, y int) []run {
	end := s.Width()
	for end > 0 && s.Get(end-1, y) == ' ' {
		end--
	}

	var runs []run
	var text []rune
	color := core.ColorDefault
	for x := range end {
		cell := s.GetCell(x, y)
		if cell.Rune != ' ' && cell.Color != color {
			if len(text) > 0 {
				runs = append(runs, run{color, string(text)})
				text = text[:0]
			}
			color = cell.Color
		}
		text = append(text, cell.Rune)
	}
	if len(text) > 0 {
		runs = append(runs, run{color, string(text)})
	}
	return runs
}

// RenderScreen converts a Screen to styled terminal text, one line per row.
func RenderScreen(s *core.Screen) string {
	var b strings.Builder
	for y := range s.Height() {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, r := range rowRuns(s, y) {
			b.WriteString(styleFor(r.color).Render(r.text))
		}
	}
	return b.String()
}
