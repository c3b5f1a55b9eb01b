package terminal

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// OpError records a failed terminal or file operation and its cause. Op
// names the system call family, so the fatal diagnostic reads like
// "tcgetattr: inappropriate ioctl for device".
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// termGetSize is swappable for tests
var termGetSize = term.GetSize

// Terminal owns the raw-mode lifecycle of one terminal device. All reads
// observe the 100ms input timeout configured at Open; all frame output
// goes through single writes.
type Terminal struct {
	in  *os.File
	out *os.File

	inFd  int
	outFd int

	mu    sync.Mutex
	raw   bool
	saved *termios
}

// Open snapshots the input terminal's attributes and switches it to raw
// mode: no echo, no canonical buffering, no signal or flow-control bytes,
// 8-bit characters, reads returning after 100ms when idle. The returned
// Terminal must be closed to restore the snapshot.
func Open(in, out *os.File) (*Terminal, error) {
	t := &Terminal{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}

	if err := t.makeRaw(); err != nil {
		return nil, err
	}
	t.raw = true
	return t, nil
}

// Close restores the saved terminal attributes. Safe to call multiple times.
func (t *Terminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.raw {
		return nil
	}
	t.raw = false
	return t.restore()
}

// Size returns the terminal dimensions in character cells. The ioctl
// result is preferred; terminals that fail it or report zero columns are
// measured by cursor placement instead.
func (t *Terminal) Size() (rows, cols int, err error) {
	w, h, err := termGetSize(t.outFd)
	if err == nil && w > 0 {
		return h, w, nil
	}
	return t.cursorPositionSize()
}

// cursorPositionSize discovers the window size by parking the cursor at
// the bottom-right corner and asking the terminal where it ended up
func (t *Terminal) cursorPositionSize() (int, int, error) {
	if _, err := t.out.Write(csiCursorFarCorner); err != nil {
		return 0, 0, &OpError{Op: "getWindowSize", Err: err}
	}
	return t.cursorPosition()
}

// cursorPosition issues a Device Status Report and parses the ESC[r;cR reply
func (t *Terminal) cursorPosition() (int, int, error) {
	if _, err := t.out.Write(csiCursorReport); err != nil {
		return 0, 0, &OpError{Op: "getWindowSize", Err: err}
	}

	var reply [32]byte
	n := 0
	for n < len(reply) {
		b, ok, err := t.readByte()
		if err != nil || !ok {
			break
		}
		if b == 'R' {
			break
		}
		reply[n] = b
		n++
	}

	rows, cols, ok := parseCursorReport(reply[:n])
	if !ok {
		return 0, 0, &OpError{Op: "getWindowSize", Err: errBadCursorReport}
	}
	return rows, cols, nil
}

// ReadByte returns one input byte. ok is false when the 100ms read window
// expired with nothing pending; transient interruptions report the same
// way so callers simply retry.
func (t *Terminal) ReadByte() (byte, bool, error) {
	return t.readByte()
}

// WriteFrame flushes one assembled frame to the terminal in a single
// write. Short writes are not retried; the next frame repaints fully.
func (t *Terminal) WriteFrame(f *FrameBuffer) error {
	if _, err := t.out.Write(f.Bytes()); err != nil {
		return &OpError{Op: "write", Err: err}
	}
	return nil
}

// Clear erases the display and homes the cursor outside the frame cycle.
// Used on orderly quit so the shell prompt returns to a clean screen.
func (t *Terminal) Clear() error {
	if err := ClearScreen(t.out); err != nil {
		return &OpError{Op: "write", Err: err}
	}
	return nil
}

// ClearScreen erases the display and homes the cursor on w
func ClearScreen(w io.Writer) error {
	if _, err := w.Write(csiClear); err != nil {
		return err
	}
	_, err := w.Write(csiHome)
	return err
}

// EmergencyReset attempts to restore the terminal to a sane state.
// Call this from panic recovery when Close cannot run normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't undo termios; best-effort in crash context
	resetTerminalMode()
}
