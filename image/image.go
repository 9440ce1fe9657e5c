/*
Package image renders board positions as SVG documents.

Example usage:

	f, _ := os.Create("board.svg")
	defer f.Close()
	err := image.SVG(f, pos, image.WithTheme(image.Gruvbox), image.Perspective(chess.Black))
*/
package image

import (
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/fennecviewer/chess"
)

const defaultSquareSize = 45

type board struct {
	pos         chess.Position
	theme       Theme
	squareSize  int
	perspective chess.Color
	marks       map[chess.Square]color.Color
}

// An Option configures SVG.
type Option func(*board)

// squareAt returns the square drawn at the given screen row and column.
func (b *board) squareAt(row, col int) chess.Square {
	if b.perspective == chess.Black {
		return chess.NewSquare(7-row, 7-col)
	}
	return chess.NewSquare(row, col)
}

// SVG writes pos to w as an SVG document. Options control the theme, the
// square size, the side shown at the bottom and highlighted squares.
func SVG(w io.Writer, pos chess.Position, options ...Option) error {
	b := &board{
		pos:         pos,
		theme:       Classic,
		squareSize:  defaultSquareSize,
		perspective: chess.White,
		marks:       make(map[chess.Square]color.Color),
	}
	for _, f := range options {
		if f != nil {
			f(b)
		}
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	side := b.squareSize * 8
	canvas.Start(side, side)
	b.theme.draw(canvas, b)
	canvas.End()
	return ew.err
}

// WithTheme sets the theme. Nil keeps the default, Classic.
func WithTheme(t Theme) Option {
	return func(b *board) {
		if t != nil {
			b.theme = t
		}
	}
}

// SquareSize sets the side length of a square in pixels.
func SquareSize(px int) Option {
	return func(b *board) {
		if px > 0 {
			b.squareSize = px
		}
	}
}

// Perspective sets the side shown at the bottom of the board.
func Perspective(c chess.Color) Option {
	return func(b *board) {
		if c == chess.White || c == chess.Black {
			b.perspective = c
		}
	}
}

// MarkSquares fills the given squares with c, for example to show the last
// move.
func MarkSquares(c color.Color, sqs ...chess.Square) Option {
	return func(b *board) {
		for _, sq := range sqs {
			if sq != chess.NoSquare {
				b.marks[sq] = c
			}
		}
	}
}

// errWriter keeps the first write error, since svgo does not report them.
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
