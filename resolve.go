package chess

import "fmt"

// pawnRules holds the board geometry that depends on the pawn's color.
type pawnRules struct {
	forward       int // row delta of a pawn step
	startRow      int
	doubleMoveRow int
}

func pawnRulesFor(c Color) pawnRules {
	if c == Black {
		return pawnRules{forward: 1, startRow: 1, doubleMoveRow: 3}
	}
	return pawnRules{forward: -1, startRow: 6, doubleMoveRow: 4}
}

// ResolveSource finds the square the moving piece of a SAN move starts from.
// Only geometry and occupancy are considered; checks and pins are not. When
// several pieces qualify, the first one in Position.All order is returned,
// so the result is deterministic but not necessarily the legal move.
//
// A pawn capturing onto an empty square (en passant) is not resolved.
// ErrUnresolvedSource is returned when no piece qualifies.
func ResolveSource(m SANMove, pos Position, turn Color) (Square, error) {
	if m.Castle != NoCastle {
		return NoSquare, fmt.Errorf("%w: castling has no single source square", ErrUnresolvedSource)
	}
	if m.To == NoSquare {
		return NoSquare, fmt.Errorf("%w: missing destination", ErrUnresolvedSource)
	}

	if m.Piece == Pawn {
		if sq := pawnSource(m, pos, turn); sq != NoSquare {
			return sq, nil
		}
	}

	want := NewPiece(turn, m.Piece)
	for sq, p := range pos.All() {
		if p != want {
			continue
		}
		if m.FromFile != NoFile && sq.File() != m.FromFile {
			continue
		}
		if m.FromRank != NoRank && sq.Rank() != m.FromRank {
			continue
		}
		if canReach(m, sq, pos, turn) {
			return sq, nil
		}
	}
	return NoSquare, fmt.Errorf("%w: %s for %s", ErrUnresolvedSource, m, turn.Name())
}

// pawnSource applies the pawn shortcuts: single and double pushes, and
// captures with an explicit source file.
func pawnSource(m SANMove, pos Position, turn Color) Square {
	rules := pawnRulesFor(turn)
	pawn := NewPiece(turn, Pawn)
	row, col := m.To.Row(), m.To.Col()

	if !m.Capture {
		if sq := NewSquare(row-rules.forward, col); pos.Piece(sq) == pawn {
			return sq
		}
		if row == rules.doubleMoveRow {
			if sq := NewSquare(rules.startRow, col); pos.Piece(sq) == pawn {
				return sq
			}
		}
		return NoSquare
	}

	if m.FromFile != NoFile && pos.Occupied(m.To) {
		if sq := NewSquare(row-rules.forward, int(m.FromFile)); pos.Piece(sq) == pawn {
			return sq
		}
	}
	return NoSquare
}

// canReach reports whether a piece of the move's kind on from can reach the
// move's destination given the occupancy of pos.
func canReach(m SANMove, from Square, pos Position, turn Color) bool {
	to := m.To
	dr, dc := to.Row()-from.Row(), to.Col()-from.Col()
	adr, adc := abs(dr), abs(dc)
	if adr == 0 && adc == 0 {
		return false
	}

	switch m.Piece {
	case Knight:
		return (adr == 1 && adc == 2) || (adr == 2 && adc == 1)
	case Bishop:
		return adr == adc && pathClear(pos, from, to)
	case Rook:
		return (dr == 0 || dc == 0) && pathClear(pos, from, to)
	case Queen:
		return (adr == adc || dr == 0 || dc == 0) && pathClear(pos, from, to)
	case King:
		return adr <= 1 && adc <= 1
	case Pawn:
		// Any pawn behind the target qualifies, however far back.
		if sign(dr) != pawnRulesFor(turn).forward {
			return false
		}
		if m.Capture {
			return adc == 1 && pos.Occupied(to)
		}
		return dc == 0 && !pos.Occupied(to)
	}
	return false
}

// pathClear reports whether every square strictly between from and to is
// empty. from and to must share a row, a column or a diagonal.
func pathClear(pos Position, from, to Square) bool {
	rowStep, colStep := sign(to.Row()-from.Row()), sign(to.Col()-from.Col())
	row, col := from.Row()+rowStep, from.Col()+colStep
	for row != to.Row() || col != to.Col() {
		if pos.Occupied(NewSquare(row, col)) {
			return false
		}
		row += rowStep
		col += colStep
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
