//go:build unix

package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// termios is the saved attribute snapshot type
type termios = unix.Termios

var errBadCursorReport = errors.New("bad cursor position report")

// makeRaw captures the attribute snapshot and derives raw mode from it:
// break, CR translation, parity checking, bit stripping and flow control
// off on input; post-processing off on output; echo, canonical mode,
// extended input and signals off locally; 8-bit characters; reads return
// on the first byte or after a 100ms timeout.
func (t *Terminal) makeRaw() error {
	saved, err := unix.IoctlGetTermios(t.inFd, ioctlReadTermios)
	if err != nil {
		return &OpError{Op: "tcgetattr", Err: err}
	}
	t.saved = saved

	raw := *saved
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	// Committed after draining output and discarding pending input
	if err := unix.IoctlSetTermios(t.inFd, ioctlWriteTermios, &raw); err != nil {
		return &OpError{Op: "tcsetattr", Err: err}
	}
	return nil
}

// restore reinstates the snapshot with the same drain-and-discard discipline
func (t *Terminal) restore() error {
	if err := unix.IoctlSetTermios(t.inFd, ioctlWriteTermios, t.saved); err != nil {
		return &OpError{Op: "tcsetattr", Err: err}
	}
	return nil
}

// readByte performs one raw read. VMIN=0/VTIME=1 makes an idle read return
// zero bytes after 100ms. EINTR and EAGAIN report like a timeout: the
// runtime's preemption signals routinely interrupt terminal reads.
func (t *Terminal) readByte() (byte, bool, error) {
	var buf [1]byte
	n, err := unix.Read(t.inFd, buf[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, false, nil
		}
		return 0, false, &OpError{Op: "read", Err: err}
	}
	if n != 1 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

// parseCursorReport extracts rows and cols from a Device Status Report
// reply of the form ESC [ rows ; cols, the trailing R already consumed.
// Replies not introduced by ESC [ are rejected.
func parseCursorReport(reply []byte) (rows, cols int, ok bool) {
	if len(reply) < 2 || reply[0] != escByte || reply[1] != '[' {
		return 0, 0, false
	}
	if _, err := fmt.Sscanf(string(reply[2:]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, false
	}
	return rows, cols, true
}

// resetTerminalMode attempts to put the terminal back into cooked mode
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	// Go through /dev/tty, which works even if stdin was redirected
	if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		defer tty.Close()
		fd := int(tty.Fd())
		if attrs, err := unix.IoctlGetTermios(fd, ioctlReadTermios); err == nil {
			attrs.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
			attrs.Iflag |= unix.ICRNL
			attrs.Oflag |= unix.OPOST
			unix.IoctlSetTermios(fd, ioctlWriteTermios, attrs)
		}
	}
}
