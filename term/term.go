// Package term abstracts terminal size queries and raw-mode control so
// the renderer and demo harness don't depend directly on a file
// descriptor or OS-specific syscalls.
package term

import (
	"os"

	xterm "github.com/charmbracelet/x/term"
)

// SizeProvider reports the current terminal size in columns and rows.
type SizeProvider interface {
	Size() (cols, rows int, err error)
}

// Stdout is a SizeProvider backed by os.Stdout via
// github.com/charmbracelet/x/term.
type Stdout struct{}

// Size implements SizeProvider.
func (Stdout) Size() (cols, rows int, err error) {
	return xterm.GetSize(os.Stdout.Fd())
}

// RawMode puts fd into raw mode and returns a restore function that
// must be called to return the terminal to its previous state.
func RawMode(fd uintptr) (restore func() error, err error) {
	state, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error { return xterm.Restore(fd, state) }, nil
}
