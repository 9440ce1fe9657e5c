package chess

// Apply plays a resolved non-castling move on pos and returns the resulting
// position. Whatever stands on the destination is removed, the piece on from
// is moved there, and a promotion replaces its kind while keeping the
// mover's color. pos itself is not modified.
func Apply(pos Position, m SANMove, from Square, turn Color) Position {
	if m.Castle != NoCastle {
		return Castling(pos, m.Castle, turn)
	}
	piece := pos.Piece(from)
	next := pos.with(m.To, NoPiece).with(from, NoPiece)
	if m.Promotion != NoPieceType {
		piece = NewPiece(turn, m.Promotion)
	}
	return next.with(m.To, piece)
}

// castlingSquares lists king and rook origin and destination squares.
type castlingSquares struct {
	kingFrom, kingTo, rookFrom, rookTo Square
}

func castlingSquaresFor(side Castle, turn Color) castlingSquares {
	row := 7
	if turn == Black {
		row = 0
	}
	if side == QueenSide {
		return castlingSquares{
			kingFrom: NewSquare(row, 4), kingTo: NewSquare(row, 2),
			rookFrom: NewSquare(row, 0), rookTo: NewSquare(row, 3),
		}
	}
	return castlingSquares{
		kingFrom: NewSquare(row, 4), kingTo: NewSquare(row, 6),
		rookFrom: NewSquare(row, 7), rookTo: NewSquare(row, 5),
	}
}

// Castling relocates the king and rook of turn to their post-castling
// squares on the home row. The token is trusted: nothing checks that the
// path is clear or that castling is still allowed. When the king or the rook
// is missing from its home square the position is returned unchanged.
func Castling(pos Position, side Castle, turn Color) Position {
	if side == NoCastle {
		return pos
	}
	sq := castlingSquaresFor(side, turn)
	king, rook := pos.Piece(sq.kingFrom), pos.Piece(sq.rookFrom)
	if king != NewPiece(turn, King) || rook != NewPiece(turn, Rook) {
		return pos
	}
	return pos.
		with(sq.kingFrom, NoPiece).
		with(sq.rookFrom, NoPiece).
		with(sq.kingTo, king).
		with(sq.rookTo, rook)
}

// castlingMove returns the king move a castling token stands for.
func castlingMove(side Castle, turn Color) Move {
	sq := castlingSquaresFor(side, turn)
	return Move{From: sq.kingFrom, To: sq.kingTo, Promotion: NoPieceType, Castle: side}
}
