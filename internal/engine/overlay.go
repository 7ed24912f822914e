package engine

import (
	"fmt"

	"github.com/vovakirdan/entity-arcade/internal/core"
)

// message is the transient text set through Hooks.SetMessage. Visibility
// is computed from start and ticks on every render; it is never cleared.
type message struct {
	text  string
	start int
	ticks int
}

// shade returns the message intensity (0-255) at clock, or false once the
// fade window has passed.
func (m message) shade(clock, fade int) (int, bool) {
	if m.text == "" {
		return 0, false
	}
	elapsed := clock - m.start
	if elapsed <= m.ticks {
		return 255, true
	}
	k := elapsed - m.ticks
	if k >= fade {
		return 0, false
	}
	return 255 - 250*k/fade, true
}

// overlay is the score and message state copied out of the lock.
type overlay struct {
	score   int
	msg     message
	clock   int
	pointer bool
	px, py  int
}

func (o overlay) draw(dst *core.Screen, fade int) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", o.score), core.ColorBrightWhite)

	shade, ok := o.msg.shade(o.clock, fade)
	if !ok {
		return
	}
	c := core.Grayscale(shade)
	if !o.pointer {
		dst.DrawTextCentered(2, o.msg.text, c)
		return
	}
	n := len([]rune(o.msg.text))
	x := core.ClampInt(o.px-n/2, 0, max(dst.Width()-n, 0))
	y := core.ClampInt(o.py, 0, max(dst.Height()-1, 0))
	dst.DrawText(x, y, o.msg.text, c)
}
