//go:build unix

package editor

import (
	"bytes"
	"os"
	"testing"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"

	"github.com/lixenwraith/kilo/terminal"
)

// drainMaster collects everything buffered on the master side without
// blocking once the slave has gone quiet
func drainMaster(t *testing.T, ptm *os.File) []byte {
	t.Helper()
	// Capture the fd once: on go1.21 every os.File.Fd call flips the
	// descriptor back to blocking mode, which would undo SetNonblock
	fd := int(ptm.Fd())
	if err := unix.SetNonblock(fd, true); err != nil {
		t.Fatalf("Failed to set master nonblocking: %v", err)
	}
	var out []byte
	buf := make([]byte, 4096)
	for {
		n, err := unix.Read(fd, buf)
		if n <= 0 || err != nil {
			return out
		}
		out = append(out, buf[:n]...)
	}
}

func TestRunQuitSession(t *testing.T) {
	ptm, pts, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptm.Close()
	defer pts.Close()

	if err := pty.Setsize(ptm, &pty.Winsize{Rows: 24, Cols: 80}); err != nil {
		t.Skipf("Setsize unavailable: %v", err)
	}

	term, err := terminal.Open(pts, pts)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer term.Close()

	e, err := New(term)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Queue the quit keystroke after raw mode is in force; entering raw
	// mode discards unread input
	if _, err := ptm.Write([]byte{terminal.Ctrl('q')}); err != nil {
		t.Fatalf("Failed to queue keystroke: %v", err)
	}

	if err := e.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out := drainMaster(t, ptm)
	if !bytes.HasPrefix(out, []byte("\x1b[?25l\x1b[H")) {
		t.Errorf("Expected frame to open with hide+home, got %q", out)
	}
	if !bytes.Contains(out, []byte("Kilo editor -- version 0.0.1")) {
		t.Error("Expected the welcome banner in the painted frame")
	}
	if n := bytes.Count(out, []byte("\r\n")); n != 23 {
		t.Errorf("Expected 23 row separators on the wire, got %d", n)
	}
	if !bytes.HasSuffix(out, []byte("\x1b[2J\x1b[H")) {
		t.Errorf("Expected quit to clear and home, got tail %q", out)
	}
}

func TestRunShowsLoadedFile(t *testing.T) {
	ptm, pts, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptm.Close()
	defer pts.Close()

	if err := pty.Setsize(ptm, &pty.Winsize{Rows: 24, Cols: 80}); err != nil {
		t.Skipf("Setsize unavailable: %v", err)
	}

	dir := t.TempDir()
	path := dir + "/hello.txt"
	if err := os.WriteFile(path, []byte("hello\n"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	term, err := terminal.Open(pts, pts)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer term.Close()

	e, err := New(term)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := e.OpenFile(path); err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}

	if _, err := ptm.Write([]byte{terminal.Ctrl('q')}); err != nil {
		t.Fatalf("Failed to queue keystroke: %v", err)
	}
	if err := e.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out := drainMaster(t, ptm)
	if !bytes.Contains(out, []byte("\x1b[Hhello\x1b[K\r\n~\x1b[K")) {
		t.Errorf("Expected file row at the top of the frame, got %q", out)
	}
	if bytes.Contains(out, []byte("Kilo editor")) {
		t.Error("Banner must not appear when a file is loaded")
	}
}
