package image

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennecviewer/chess"
)

func TestSVGStartingPosition(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, chess.StartingPosition()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Equal(t, 64, strings.Count(out, "<rect"))
	assert.Equal(t, 8, strings.Count(out, "♙"))
	assert.Equal(t, 8, strings.Count(out, "♟"))
	assert.Equal(t, 1, strings.Count(out, "♔"))
	assert.Contains(t, out, `width="360"`)
	assert.Contains(t, out, "fill:#f0d9b5")
	assert.Contains(t, out, "fill:#b58863")
}

func TestSVGThemes(t *testing.T) {
	pos := chess.NewPosition(map[chess.Square]chess.Piece{chess.E1: chess.WhiteKing, chess.E8: chess.BlackKing})
	for _, theme := range Themes() {
		t.Run(theme.Name(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, SVG(&buf, pos, WithTheme(theme), SquareSize(20)))
			out := buf.String()
			assert.Equal(t, 64, strings.Count(out, "<rect"))
			assert.Contains(t, out, `width="160"`)
		})
	}
}

func TestSVGLetteringAndMinimalist(t *testing.T) {
	pos := chess.NewPosition(map[chess.Square]chess.Piece{chess.D1: chess.WhiteQueen})

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, pos, WithTheme(Lettering)))
	assert.Contains(t, buf.String(), ">Q</text>")
	assert.NotContains(t, buf.String(), "♕")

	buf.Reset()
	require.NoError(t, SVG(&buf, pos, WithTheme(Minimalist)))
	assert.Equal(t, 1, strings.Count(buf.String(), "<text"), "only the piece, no coordinates")
}

func TestSVGPerspective(t *testing.T) {
	pos := chess.NewPosition(map[chess.Square]chess.Piece{chess.A8: chess.BlackRook})

	var white, black bytes.Buffer
	require.NoError(t, SVG(&white, pos, WithTheme(Minimalist), SquareSize(10)))
	require.NoError(t, SVG(&black, pos, WithTheme(Minimalist), SquareSize(10), Perspective(chess.Black)))

	// a8 is the top left square for white and the bottom right for black.
	assert.Contains(t, white.String(), `<text x="5" y="5"`)
	assert.Contains(t, black.String(), `<text x="75" y="75"`)
}

func TestSVGMarkSquares(t *testing.T) {
	var buf bytes.Buffer
	mark := color.RGBA{255, 0, 0, 255}
	require.NoError(t, SVG(&buf, chess.StartingPosition(), MarkSquares(mark, chess.E2, chess.E4)))
	assert.Equal(t, 2, strings.Count(buf.String(), "fill:#ff0000"))
}

func TestThemeByName(t *testing.T) {
	theme, err := ThemeByName("GruvBox")
	require.NoError(t, err)
	assert.Equal(t, Gruvbox, theme)

	_, err = ThemeByName("neon")
	assert.True(t, errors.Is(err, ErrUnknownTheme))
	assert.Len(t, Themes(), 7)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVGReportsWriteErrors(t *testing.T) {
	err := SVG(failingWriter{}, chess.StartingPosition())
	assert.EqualError(t, err, "disk full")
}
