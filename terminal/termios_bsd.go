//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

// TIOCSETAF applies attributes after draining output and flushing input,
// matching tcsetattr(fd, TCSAFLUSH, ...)
const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETAF
)
