package editor

import (
	"github.com/lixenwraith/kilo/terminal"
)

// Version is reported in the welcome banner.
const Version = "0.0.1"

var welcomeMessage = "Kilo editor -- version " + Version

// frameCapacity sizes the frame buffer for a full paint: every cell
// plus an erase and separator per row and the cursor bracketing.
func frameCapacity(rows, cols int) int {
	return rows*(cols+8) + 32
}

// refreshScreen composes a complete frame and writes it in one call.
func (e *Editor) refreshScreen() error {
	return e.term.WriteFrame(e.renderFrame())
}

// renderFrame rebuilds the frame buffer: hide cursor, home, every
// screen row, cursor placement, show cursor. The hide/show bracket
// keeps the cursor from flashing across the paint.
func (e *Editor) renderFrame() *terminal.FrameBuffer {
	f := e.frame
	f.Reset()
	f.HideCursor()
	f.Home()
	e.drawRows(f)
	f.MoveCursor(e.cursorX, e.cursorY)
	f.ShowCursor()
	return f
}

// drawRows emits one line per screen row: the file row truncated to
// the viewport width, a tilde past the end of the file, or the welcome
// banner one third down when nothing is loaded. Each line ends with an
// erase-to-end so stale content from the previous frame never needs a
// full-screen clear.
func (e *Editor) drawRows(f *terminal.FrameBuffer) {
	for y := 0; y < e.screenRows; y++ {
		switch {
		case y < len(e.rows):
			line := e.rows[y].bytes
			if len(line) > e.screenCols {
				line = line[:e.screenCols]
			}
			f.Append(line)
		case len(e.rows) == 0 && y == e.screenRows/3:
			e.drawWelcome(f)
		default:
			f.AppendByte('~')
		}
		f.EraseLine()
		if y < e.screenRows-1 {
			f.AppendString("\r\n")
		}
	}
}

// drawWelcome centers the version banner, truncated to the viewport
// width. The first padding cell is a tilde so the gutter stays
// unbroken.
func (e *Editor) drawWelcome(f *terminal.FrameBuffer) {
	msg := welcomeMessage
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	padding := (e.screenCols - len(msg)) / 2
	if padding > 0 {
		f.AppendByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		f.AppendByte(' ')
	}
	f.AppendString(msg)
}
