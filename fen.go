package chess

import (
	"fmt"
	"strings"
)

const (
	minFENLength = 28
	maxFENLength = 106
	// StartFEN is the FEN of the standard starting position.
	StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// ValidFEN reports whether s is a structurally valid FEN string: six
// fields, eight ranks of exactly eight squares each, a w/b side to move,
// castling rights drawn from KQkq in that order without repeats (or "-"),
// and an en passant square on rank 3 or 6 (or "-"). Clocks are not checked
// and no chess legality is implied.
func ValidFEN(s string) bool {
	if len(s) < minFENLength || len(s) > maxFENLength {
		return false
	}
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return false
	}
	placement, active, castling, enPassant := fields[0], fields[1], fields[2], fields[3]

	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return false
	}
	for _, rank := range ranks {
		count := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			switch {
			case c >= '0' && c <= '9':
				count += int(c - '0')
			case strings.IndexByte("KQRBNPkqrbnp", c) >= 0:
				count++
			default:
				return false
			}
		}
		if count != 8 {
			return false
		}
	}

	if active != "w" && active != "b" {
		return false
	}

	if castling != "-" {
		order := ""
		for _, c := range "KQkq" {
			if strings.ContainsRune(castling, c) {
				order += string(c)
			}
		}
		// Equality with the filtered "KQkq" rules out foreign letters,
		// repeats and wrong ordering at once.
		if castling != order {
			return false
		}
	}

	if enPassant != "-" {
		if len(enPassant) != 2 || !isFile(enPassant[0]) || (enPassant[1] != '3' && enPassant[1] != '6') {
			return false
		}
	}
	return true
}

// DecodeFEN validates s and returns its piece placement and side to move.
// Castling rights, en passant square and clocks are validated but not kept:
// the replay engine has no use for them.
func DecodeFEN(s string) (Position, Color, error) {
	if !ValidFEN(s) {
		return Position{}, NoColor, fmt.Errorf("%w: %q", ErrInvalidFEN, s)
	}
	fields := strings.Fields(s)
	var pos Position
	for row, rank := range strings.Split(fields[0], "/") {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '0' && c <= '9' {
				col += int(c - '0')
				continue
			}
			pos.board[NewSquare(row, col)] = pieceFromFENByte(c)
			col++
		}
	}
	turn := White
	if fields[1] == "b" {
		turn = Black
	}
	return pos, turn, nil
}

// EncodeFEN writes a full FEN for pos with turn to move. Castling rights and
// the en passant square are not tracked by Position and are written as "-";
// the clocks are written as "0 1".
func EncodeFEN(pos Position, turn Color) string {
	if turn != Black {
		turn = White
	}
	return fmt.Sprintf("%s %s - - 0 1", pos, turn)
}
