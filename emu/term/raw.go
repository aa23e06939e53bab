//go:build linux || darwin
// +build linux darwin

package term

import (
	"os"

	"golang.org/x/sys/unix"
)

// RawMode is a terminal switched out of canonical mode, restorable with Restore.
type RawMode struct {
	fd      int
	restore unix.Termios
}

// EnterRaw disables echo and line buffering on f. Reads return after at most 100ms.
func EnterRaw(f *os.File) (*RawMode, error) {
	fd := int(f.Fd())
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}

	raw := &RawMode{fd: fd, restore: *termios}
	termstate := *termios

	termstate.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.INLCR
	termstate.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN
	termstate.Cflag &^= unix.CSIZE | unix.PARENB
	termstate.Cflag |= unix.CS8

	termstate.Cc[unix.VMIN] = 0
	termstate.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &termstate); err != nil {
		return nil, err
	}
	return raw, nil
}

func (r *RawMode) Restore() error {
	return unix.IoctlSetTermios(r.fd, ioctlSetTermios, &r.restore)
}
