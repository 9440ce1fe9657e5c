package chess

import (
	"fmt"
	"slices"
)

// History is the ordered list of positions produced by one replay, one per
// applied move. It is never modified after Replay returns, so it may be read
// from several goroutines at once.
type History struct {
	initial   Position
	startTurn Color
	positions []Position
	moves     []Move
	tokens    []string
	err       *MoveError
}

// Len returns the number of applied moves.
func (h *History) Len() int {
	return len(h.positions)
}

// At returns the position after the move with index i. At(-1) is the
// initial position. It panics if i is out of range, like a slice index.
func (h *History) At(i int) Position {
	if i == -1 {
		return h.initial
	}
	return h.positions[i]
}

// Initial returns the position the replay started from.
func (h *History) Initial() Position {
	return h.initial
}

// StartTurn returns the side that moved first.
func (h *History) StartTurn() Color {
	return h.startTurn
}

// TurnAt returns the side to move in the position At(i).
func (h *History) TurnAt(i int) Color {
	if (i+1)%2 == 0 {
		return h.startTurn
	}
	return h.startTurn.Other()
}

// Last returns the final position, or the initial one if no move was applied.
func (h *History) Last() Position {
	return h.At(h.Len() - 1)
}

// Positions returns a copy of the recorded positions.
func (h *History) Positions() []Position {
	return slices.Clone(h.positions)
}

// Moves returns a copy of the resolved moves.
func (h *History) Moves() []Move {
	return slices.Clone(h.moves)
}

// UCI returns the applied moves in coordinate notation, parallel to
// Positions, ready to be sent to a UCI engine.
func (h *History) UCI() []string {
	out := make([]string, len(h.moves))
	for i, m := range h.moves {
		out[i] = m.String()
	}
	return out
}

// Tokens returns the SAN tokens that were applied.
func (h *History) Tokens() []string {
	return slices.Clone(h.tokens)
}

// Completed reports whether every token was applied.
func (h *History) Completed() bool {
	return h.err == nil
}

// Err returns the reason the replay stopped early, or nil if it completed.
func (h *History) Err() error {
	if h.err == nil {
		return nil
	}
	return h.err
}

// Cursor returns a new navigation cursor positioned before the first move.
func (h *History) Cursor() *Cursor {
	return &Cursor{history: h, index: -1}
}

// Cursor walks a History. Index -1 is the initial position and Len()-1 the
// last one. A Cursor is not safe for concurrent use, but any number of
// cursors may share the same History.
type Cursor struct {
	history *History
	index   int
}

// Next moves forward one move. It returns false at the end of the history.
func (c *Cursor) Next() bool {
	if c.index < c.history.Len()-1 {
		c.index++
		return true
	}
	return false
}

// Prev moves back one move. It returns false at the initial position.
func (c *Cursor) Prev() bool {
	if c.index >= 0 {
		c.index--
		return true
	}
	return false
}

// Last jumps to the final position.
func (c *Cursor) Last() bool {
	c.index = c.history.Len() - 1
	return true
}

// Reset returns to the initial position.
func (c *Cursor) Reset() {
	c.index = -1
}

// Seek moves to index i. It returns false, leaving the cursor unchanged,
// when i is outside [-1, Len()-1].
func (c *Cursor) Seek(i int) bool {
	if i < -1 || i >= c.history.Len() {
		return false
	}
	c.index = i
	return true
}

// Index returns the current move index.
func (c *Cursor) Index() int {
	return c.index
}

// Position returns the position at the cursor.
func (c *Cursor) Position() Position {
	return c.history.At(c.index)
}

// Label returns the move counter shown next to a board, e.g. "(3/10)".
func (c *Cursor) Label() string {
	return fmt.Sprintf("(%d/%d)", c.index+1, c.history.Len())
}
