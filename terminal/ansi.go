// @focus: #terminal { ansi }
package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csiClear     = []byte("\x1b[2J")
	csiHome      = []byte("\x1b[H")
	csiEraseLine = []byte("\x1b[K")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiCursorPos  = []byte("\x1b[") // followed by row;colH

	// Window-size fallback: park the cursor past any real bottom-right
	// corner, then ask where it stopped
	csiCursorFarCorner = []byte("\x1b[999C\x1b[999B")
	csiCursorReport    = []byte("\x1b[6n")
)

// writeInt appends an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(f *FrameBuffer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		f.AppendByte(byte(n) + '0')
		return
	}
	if n < 100 {
		f.AppendByte(byte(n/10) + '0')
		f.AppendByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		f.AppendByte(byte(n/100) + '0')
		f.AppendByte(byte(n/10%10) + '0')
		f.AppendByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [10]byte
	i := 9
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	f.Append(buf[i+1:])
}

// writeCursorPos appends the cursor positioning sequence (0-indexed input)
func writeCursorPos(f *FrameBuffer, x, y int) {
	f.Append(csiCursorPos)
	writeInt(f, y+1)
	f.AppendByte(';')
	writeInt(f, x+1)
	f.AppendByte('H')
}
