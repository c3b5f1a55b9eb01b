package terminal

// FrameBuffer accumulates one complete screen frame so it reaches the
// terminal in a single write. Content grows by appending only; Reset keeps
// the backing storage for the next frame.
type FrameBuffer struct {
	buf []byte
}

// NewFrameBuffer creates a buffer with the given capacity hint
func NewFrameBuffer(capacity int) *FrameBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &FrameBuffer{buf: make([]byte, 0, capacity)}
}

// Append adds raw bytes to the frame
func (f *FrameBuffer) Append(p []byte) {
	f.buf = append(f.buf, p...)
}

// AppendString adds a string to the frame
func (f *FrameBuffer) AppendString(s string) {
	f.buf = append(f.buf, s...)
}

// AppendByte adds a single byte to the frame
func (f *FrameBuffer) AppendByte(b byte) {
	f.buf = append(f.buf, b)
}

// Bytes returns the assembled frame content
func (f *FrameBuffer) Bytes() []byte {
	return f.buf
}

// Len returns the current frame length in bytes
func (f *FrameBuffer) Len() int {
	return len(f.buf)
}

// Reset empties the frame, retaining capacity
func (f *FrameBuffer) Reset() {
	f.buf = f.buf[:0]
}

// HideCursor appends the cursor-hide sequence
func (f *FrameBuffer) HideCursor() {
	f.Append(csiCursorHide)
}

// ShowCursor appends the cursor-show sequence
func (f *FrameBuffer) ShowCursor() {
	f.Append(csiCursorShow)
}

// Home appends the cursor-home sequence
func (f *FrameBuffer) Home() {
	f.Append(csiHome)
}

// EraseLine appends the erase-to-end-of-line sequence
func (f *FrameBuffer) EraseLine() {
	f.Append(csiEraseLine)
}

// MoveCursor appends a cursor positioning sequence (0-indexed input)
func (f *FrameBuffer) MoveCursor(x, y int) {
	writeCursorPos(f, x, y)
}
