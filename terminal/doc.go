// @focus: #sys { term }
// Package terminal provides direct VT100 terminal control for a raw-mode
// full-screen viewer.
//
// Features:
//   - Raw mode entry/exit with full termios snapshot restoration
//   - Window size via ioctl with a cursor-report fallback
//   - CSI/SS3 escape sequence decoding as a byte-driven state machine
//   - Single-write frame output assembled in an append buffer
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
