// Package diagram renders bitboards as SVG images.
package diagram

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/iudwgerte/Lighthouse/internal/board"
)

// Options controls the rendered image.
type Options struct {
	// Square is the side of one square in pixels.
	Square int
	// Title is drawn above the board when set.
	Title string
	// Flip draws the board from Black's side.
	Flip bool
}

// DefaultOptions returns options for a 48px board.
func DefaultOptions() Options {
	return Options{Square: 48}
}

const (
	lightFill = "fill:#f0d9b5"
	darkFill  = "fill:#b58863"
	markFill  = "fill:#1f6feb;fill-opacity:0.75"
	labelText = "font-family:sans-serif;font-size:%dpx;fill:#333;text-anchor:middle"
)

// errWriter remembers the first write error, since svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// Render draws b as an 8x8 board with file and rank labels, marking each set
// square with a dot.
func Render(w io.Writer, b board.Bitboard, opts Options) error {
	if opts.Square <= 0 {
		return fmt.Errorf("diagram: square size must be positive, got %d", opts.Square)
	}

	sq := opts.Square
	margin := sq / 2
	top := margin
	if opts.Title != "" {
		top += sq / 2
	}
	width := 8*sq + 2*margin
	height := 8*sq + top + margin

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)

	label := fmt.Sprintf(labelText, sq/3)
	if opts.Title != "" {
		canvas.Text(width/2, top-margin/2-sq/8, opts.Title, label)
	}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			s := squareAt(row, col, opts.Flip)
			x := margin + col*sq
			y := top + row*sq

			fill := lightFill
			if (int(s.File())+int(s.Rank()))%2 == 0 {
				fill = darkFill
			}
			canvas.Rect(x, y, sq, sq, fill)

			if b.Has(s) {
				canvas.Circle(x+sq/2, y+sq/2, sq/4, markFill)
			}
		}
	}

	for i := 0; i < 8; i++ {
		s := squareAt(i, i, opts.Flip)
		canvas.Text(margin+i*sq+sq/2, top+8*sq+margin*3/4, string(s.File().Char()), label)
		canvas.Text(margin/2, top+i*sq+sq/2+sq/8, string(s.Rank().Char()), label)
	}

	canvas.End()
	return ew.err
}

// squareAt returns the square drawn at a screen row and column.
func squareAt(row, col int, flip bool) board.Square {
	f := board.File(col)
	r := board.Rank(7 - row)
	if flip {
		f = board.FileH - f
		r = board.Rank8 - r
	}
	return board.NewSquare(f, r)
}
