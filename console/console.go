// Package console implements the differential ANSI console writer: a
// byte buffer, last-emitted-cell state tracking so repeated colours are
// not re-sent, and cursor positioning. Console emits a cursor position
// on every SetCursor call; skipping it across contiguous runs is left
// to the caller.
package console

import (
	"fmt"
	stdcolor "image/color"

	"ansirender/cell"
	"ansirender/color"

	"github.com/charmbracelet/x/ansi"
)

// Console buffers ANSI output for a single frame and tracks the last
// cell it printed so unchanged colour state is never re-emitted.
type Console struct {
	buf      []byte
	lastCell cell.Cell
}

// New returns an empty Console with no prior cell state.
func New() *Console {
	return &Console{lastCell: cell.Empty}
}

// Print appends c to the buffer, emitting SGR truecolor sequences only
// when the background or foreground differs from the last printed
// cell. NUL glyphs are rendered as the package default cell, matching
// the original renderer's substitution. Cells with an invalid
// background or foreground, or a glyph below ' ', are skipped.
func (con *Console) Print(c cell.Cell) {
	if c.Value == 0 {
		c = cell.Default
	}
	if c.Value < ' ' || !c.Background.Valid || !c.Foreground.Valid {
		return
	}

	if con.lastCell.Background != c.Background {
		con.buf = fmt.Appendf(con.buf, "\x1b[48;2;%d;%d;%dm", c.Background.Red, c.Background.Green, c.Background.Blue)
	}
	if con.lastCell.Foreground != c.Foreground {
		con.buf = fmt.Appendf(con.buf, "\x1b[38;2;%d;%d;%dm", c.Foreground.Red, c.Foreground.Green, c.Foreground.Blue)
	}
	con.buf = append(con.buf, []byte(string(c.Value))...)
	con.lastCell = c
}

// SetCursor appends a cursor-position sequence. x, y are zero-based.
func (con *Console) SetCursor(x, y int) {
	con.buf = append(con.buf, ansi.CursorPosition(x+1, y+1)...)
}

// Flush resets the terminal's default colours, writes the buffer to w,
// and clears it.
func (con *Console) Flush(w writer) error {
	con.buf = append(con.buf, "\x1b[39m\x1b[49m"...)
	_, err := w.Write(con.buf)
	con.buf = con.buf[:0]
	return err
}

// Clear discards the buffer without writing it, for disableOutput mode.
func (con *Console) Clear() {
	con.buf = con.buf[:0]
}

// HideCursor and ShowCursor return the immediate (unbuffered) sequences
// a caller writes directly to the output, independent of the per-frame
// buffer.
func HideCursor() []byte { return []byte(ansi.HideCursor) }
func ShowCursor() []byte { return []byte(ansi.ShowCursor) }

type writer interface {
	Write(p []byte) (n int, err error)
}

func toStdColor(c color.Color) stdcolor.Color {
	return stdcolor.RGBA{R: c.Red, G: c.Green, B: c.Blue, A: 255}
}
