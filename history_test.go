package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorNavigation(t *testing.T) {
	h := Replay([]string{"e4", "e5", "Nf3"}, StartingPosition())
	require.Equal(t, 3, h.Len())

	c := h.Cursor()
	assert.Equal(t, -1, c.Index())
	assert.Equal(t, StartingPosition(), c.Position())
	assert.Equal(t, "(0/3)", c.Label())
	assert.False(t, c.Prev(), "cannot go before the initial position")

	assert.True(t, c.Next())
	assert.Equal(t, h.At(0), c.Position())
	assert.Equal(t, "(1/3)", c.Label())

	assert.True(t, c.Last())
	assert.Equal(t, 2, c.Index())
	assert.False(t, c.Next(), "cannot go past the last position")
	assert.Equal(t, "(3/3)", c.Label())

	assert.True(t, c.Prev())
	assert.Equal(t, h.At(1), c.Position())

	c.Reset()
	assert.Equal(t, -1, c.Index())

	assert.True(t, c.Seek(1))
	assert.Equal(t, 1, c.Index())
	assert.False(t, c.Seek(3))
	assert.False(t, c.Seek(-2))
	assert.Equal(t, 1, c.Index(), "a failed seek leaves the cursor alone")
}

func TestCursorsAreIndependent(t *testing.T) {
	h := Replay([]string{"d4", "d5"}, StartingPosition())
	a, b := h.Cursor(), h.Cursor()
	a.Last()
	assert.Equal(t, 1, a.Index())
	assert.Equal(t, -1, b.Index())
}

func TestHistoryTurnAt(t *testing.T) {
	h := Replay([]string{"e4", "e5"}, StartingPosition())
	assert.Equal(t, White, h.TurnAt(-1))
	assert.Equal(t, Black, h.TurnAt(0))
	assert.Equal(t, White, h.TurnAt(1))
}

func TestHistoryCopiesAreDetached(t *testing.T) {
	h := Replay([]string{"e4"}, StartingPosition())
	positions := h.Positions()
	positions[0] = Position{}
	assert.Equal(t, 32, h.At(0).Len(), "history must not share its backing array")
}
