package chess

import (
	"iter"
	"strconv"
	"strings"
)

// Position is a snapshot of piece placement. It is a value: copying a
// Position copies the board, and every method that changes placement
// returns a new Position instead of modifying the receiver. Two positions
// with the same placement compare equal with ==.
//
// No material invariant is enforced; any placement, including one decoded
// from FEN, is a valid Position.
type Position struct {
	board [numOfSquaresInBoard]Piece
}

var backRow = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StartingPosition returns the standard start-of-game arrangement.
func StartingPosition() Position {
	var pos Position
	for col := 0; col < 8; col++ {
		pos.board[NewSquare(0, col)] = NewPiece(Black, backRow[col])
		pos.board[NewSquare(1, col)] = BlackPawn
		pos.board[NewSquare(6, col)] = WhitePawn
		pos.board[NewSquare(7, col)] = NewPiece(White, backRow[col])
	}
	return pos
}

// NewPosition builds a position from a square to piece mapping.
// Entries holding NoPiece or an invalid square are ignored.
func NewPosition(m map[Square]Piece) Position {
	var pos Position
	for sq, p := range m {
		if sq < 0 || sq >= numOfSquaresInBoard {
			continue
		}
		pos.board[sq] = p
	}
	return pos
}

// Piece returns the piece on the square, or NoPiece.
func (pos Position) Piece(sq Square) Piece {
	if sq < 0 || sq >= numOfSquaresInBoard {
		return NoPiece
	}
	return pos.board[sq]
}

// Occupied reports whether a piece stands on the square.
func (pos Position) Occupied(sq Square) bool {
	return pos.Piece(sq) != NoPiece
}

// Len returns the number of pieces on the board.
func (pos Position) Len() int {
	n := 0
	for _, p := range pos.board {
		if p != NoPiece {
			n++
		}
	}
	return n
}

// All iterates over the occupied squares in ascending square order
// (a8, b8, ... h1). The order is stable, so any search over it is
// deterministic.
func (pos Position) All() iter.Seq2[Square, Piece] {
	return func(yield func(Square, Piece) bool) {
		for i, p := range pos.board {
			if p == NoPiece {
				continue
			}
			if !yield(Square(i), p) {
				return
			}
		}
	}
}

// SquareMap returns a mapping of squares to pieces. A square is only added
// to the map if it is occupied.
func (pos Position) SquareMap() map[Square]Piece {
	m := make(map[Square]Piece, pos.Len())
	for sq, p := range pos.All() {
		m[sq] = p
	}
	return m
}

// with returns a copy of the position with p placed on sq. Placing NoPiece
// empties the square.
func (pos Position) with(sq Square, p Piece) Position {
	pos.board[sq] = p
	return pos
}

// String implements the fmt.Stringer interface and returns the FEN
// piece-placement field of the position.
func (pos Position) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			p := pos.board[NewSquare(row, col)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// Draw returns a visual ASCII representation of the position with rank 8
// at the top.
func (pos Position) Draw() string {
	var sb strings.Builder
	sb.WriteString("\n A B C D E F G H\n")
	for row := 0; row < 8; row++ {
		sb.WriteString(Rank(7 - row).String())
		for col := 0; col < 8; col++ {
			p := pos.board[NewSquare(row, col)]
			if p == NoPiece {
				sb.WriteString("-")
			} else {
				sb.WriteString(p.String())
			}
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
