package image

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/fennecviewer/chess"
)

// ErrUnknownTheme is returned by ThemeByName for names it does not know.
var ErrUnknownTheme = errors.New("image: unknown theme")

// A Theme decides how squares, pieces and coordinates look. The set of
// themes is closed; use one of the package variables.
type Theme interface {
	Name() string
	draw(c *svg.SVG, b *board)
}

type boardTheme struct {
	name        string
	light, dark color.RGBA
	text        color.RGBA
	letters     bool // FEN letters instead of piece glyphs
	coordinates bool
}

// The available themes. Lettering draws FEN letters instead of piece glyphs
// and Minimalist leaves out the coordinates.
var (
	Classic Theme = &boardTheme{
		name:  "classic",
		light: color.RGBA{240, 217, 181, 255}, dark: color.RGBA{181, 136, 99, 255},
		text: color.RGBA{0, 0, 0, 255}, coordinates: true,
	}
	Retro Theme = &boardTheme{
		name:  "retro",
		light: color.RGBA{78, 231, 0, 255}, dark: color.RGBA{20, 20, 20, 255},
		text: color.RGBA{255, 255, 255, 255}, coordinates: true,
	}
	Catppuccin Theme = &boardTheme{
		name:  "catppuccin",
		light: color.RGBA{138, 66, 69, 255}, dark: color.RGBA{66, 69, 138, 255},
		text: color.RGBA{205, 214, 244, 255}, coordinates: true,
	}
	Gruvbox Theme = &boardTheme{
		name:  "gruvbox",
		light: color.RGBA{235, 219, 178, 255}, dark: color.RGBA{102, 92, 84, 255},
		text: color.RGBA{40, 40, 40, 255}, coordinates: true,
	}
	Grayscale Theme = &boardTheme{
		name:  "grayscale",
		light: color.RGBA{200, 200, 200, 255}, dark: color.RGBA{110, 110, 110, 255},
		text: color.RGBA{0, 0, 0, 255}, coordinates: true,
	}
	Lettering Theme = &boardTheme{
		name:  "lettering",
		light: color.RGBA{240, 217, 181, 255}, dark: color.RGBA{181, 136, 99, 255},
		text: color.RGBA{0, 0, 0, 255}, letters: true, coordinates: true,
	}
	Minimalist Theme = &boardTheme{
		name:  "minimalist",
		light: color.RGBA{238, 238, 210, 255}, dark: color.RGBA{118, 150, 86, 255},
		text: color.RGBA{0, 0, 0, 255},
	}
)

var themes = []Theme{Classic, Retro, Catppuccin, Gruvbox, Grayscale, Lettering, Minimalist}

// Themes returns every available theme.
func Themes() []Theme {
	return append([]Theme(nil), themes...)
}

// ThemeByName looks a theme up by name, ignoring case.
func ThemeByName(name string) (Theme, error) {
	for _, t := range themes {
		if strings.EqualFold(t.Name(), name) {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

func (t *boardTheme) Name() string {
	return t.name
}

var glyphs = map[chess.Piece]string{
	chess.WhiteKing: "♔", chess.WhiteQueen: "♕", chess.WhiteRook: "♖",
	chess.WhiteBishop: "♗", chess.WhiteKnight: "♘", chess.WhitePawn: "♙",
	chess.BlackKing: "♚", chess.BlackQueen: "♛", chess.BlackRook: "♜",
	chess.BlackBishop: "♝", chess.BlackKnight: "♞", chess.BlackPawn: "♟",
}

func (t *boardTheme) draw(c *svg.SVG, b *board) {
	size := b.squareSize
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := b.squareAt(row, col)
			x, y := col*size, row*size

			fill := t.dark
			if (sq.Row()+sq.Col())%2 == 0 {
				fill = t.light
			}
			style := "fill:" + hex(fill)
			if mark, ok := b.marks[sq]; ok {
				style = "fill:" + hex(mark)
			}
			c.Rect(x, y, size, size, style)

			if p := b.pos.Piece(sq); p != chess.NoPiece {
				t.drawPiece(c, x, y, size, p)
			}
			if t.coordinates {
				t.drawCoordinates(c, x, y, size, row, col, sq)
			}
		}
	}
}

func (t *boardTheme) drawPiece(c *svg.SVG, x, y, size int, p chess.Piece) {
	label := glyphs[p]
	style := fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central", size*3/4)
	if t.letters {
		label = p.String()
		style += ";font-family:monospace;font-weight:bold;fill:" + hex(t.text)
	}
	c.Text(x+size/2, y+size/2, label, style)
}

func (t *boardTheme) drawCoordinates(c *svg.SVG, x, y, size, row, col int, sq chess.Square) {
	style := fmt.Sprintf("font-size:%dpx;fill:%s", size/5, hex(t.text))
	if col == 0 {
		c.Text(x+2, y+size/5+1, sq.Rank().String(), style)
	}
	if row == 7 {
		c.Text(x+size-size/5, y+size-3, sq.File().String(), style)
	}
}

func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
