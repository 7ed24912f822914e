package tui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/entity-arcade/internal/core"
)

func TestRowRuns(t *testing.T) {
	tests := []struct {
		name     string
		draw     func(s *core.Screen)
		expected []run
	}{
		{"blank row", func(*core.Screen) {}, nil},
		{
			"one color",
			func(s *core.Screen) { s.DrawText(0, 0, "ab", core.ColorRed) },
			[]run{{core.ColorRed, "ab"}},
		},
		{
			"leading blanks stay default",
			func(s *core.Screen) { s.DrawText(2, 0, "x", core.ColorGreen) },
			[]run{{core.ColorDefault, "  "}, {core.ColorGreen, "x"}},
		},
		{
			"blanks join the run before them",
			func(s *core.Screen) {
				s.Set(0, 0, '#', core.ColorRed)
				s.Set(3, 0, '#', core.ColorRed)
			},
			[]run{{core.ColorRed, "#  #"}},
		},
		{
			"color change",
			func(s *core.Screen) {
				s.DrawText(0, 0, "ab", core.ColorRed)
				s.DrawText(2, 0, "cd", core.ColorBlue)
			},
			[]run{{core.ColorRed, "ab"}, {core.ColorBlue, "cd"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := core.NewScreen(8, 1)
			tt.draw(s)
			if got := rowRuns(s, 0); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("rowRuns() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawText(1, 0, "hi", core.ColorYellow)
	s.Set(5, 2, '@', core.ColorCyan)

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}
	// Styling aside, rows keep their text up to the last mark
	expected := []string{" hi", "", "     @"}
	for i, line := range lines {
		if got := stripANSI(line); got != expected[i] {
			t.Errorf("line %d = %q, expected %q", i, got, expected[i])
		}
	}
}

func TestStyleFor(t *testing.T) {
	if fg := styleFor(core.ColorOrange).GetForeground(); fg != lipgloss.Color("208") {
		t.Errorf("orange foreground = %v", fg)
	}
	if fg := styleFor(core.ColorDefault).GetForeground(); fg != (lipgloss.NoColor{}) {
		t.Errorf("default foreground = %v", fg)
	}
	if fg := styleFor(core.Color(200)).GetForeground(); fg != (lipgloss.NoColor{}) {
		t.Errorf("unknown color foreground = %v", fg)
	}
}

// stripANSI drops CSI escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
