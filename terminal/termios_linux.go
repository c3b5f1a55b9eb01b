//go:build linux

package terminal

import "golang.org/x/sys/unix"

// TCSETSF applies attributes after draining output and flushing input,
// matching tcsetattr(fd, TCSAFLUSH, ...)
const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETSF
)
