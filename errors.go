package chess

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSAN is matched by every SAN syntax failure.
	ErrInvalidSAN = errors.New("chess: invalid SAN")
	// ErrUnresolvedSource means no piece of the side to move can reach the
	// target square of a move.
	ErrUnresolvedSource = errors.New("chess: no source square for move")
	// ErrInvalidFEN is returned when a FEN string fails structural validation.
	ErrInvalidFEN = errors.New("chess: invalid FEN")
	// ErrNoGameFound is returned when PGN input holds no recognisable game.
	ErrNoGameFound = errors.New("chess: no game found")
)

// ParserError reports a malformed SAN token.
type ParserError struct {
	Message  string
	Token    string
	Position int // byte offset in Token where parsing gave up, -1 if unknown
}

func (e *ParserError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("parser error: %s (token %q at %d)", e.Message, e.Token, e.Position)
	}
	return fmt.Sprintf("parser error: %s (token %q)", e.Message, e.Token)
}

// Unwrap lets errors.Is match ErrInvalidSAN.
func (e *ParserError) Unwrap() error {
	return ErrInvalidSAN
}

// MoveError describes the token that stopped a replay.
type MoveError struct {
	Ply   int // zero-based index of the token in the move stream
	Token string
	Err   error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %d (%s): %v", e.Ply+1, e.Token, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
