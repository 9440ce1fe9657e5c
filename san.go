package chess

import (
	"strings"
)

// Castle identifies which side, if any, a castling move goes to.
type Castle uint8

const (
	// NoCastle marks a move that is not castling.
	NoCastle Castle = iota
	// KingSide is O-O.
	KingSide
	// QueenSide is O-O-O.
	QueenSide
)

func (c Castle) String() string {
	switch c {
	case KingSide:
		return "O-O"
	case QueenSide:
		return "O-O-O"
	}
	return ""
}

// SANMove is a parsed SAN token. It describes what the notation says about a
// move and nothing more: the source square is only known once the move has
// been resolved against a position.
type SANMove struct {
	Piece     PieceType // Pawn unless the token names a piece
	FromFile  File      // file disambiguator, NoFile when absent
	FromRank  Rank      // rank disambiguator, NoRank when absent
	To        Square    // destination square, NoSquare for castling
	Capture   bool
	Promotion PieceType // NoPieceType when the move does not promote
	Castle    Castle
}

// String returns a canonical SAN rendering of the descriptor.
func (m SANMove) String() string {
	if m.Castle != NoCastle {
		return m.Castle.String()
	}
	var sb strings.Builder
	if m.Piece != Pawn {
		sb.WriteString(m.Piece.String())
	}
	sb.WriteString(m.FromFile.String())
	sb.WriteString(m.FromRank.String())
	if m.Capture {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	if m.Promotion != NoPieceType {
		sb.WriteByte('=')
		sb.WriteString(m.Promotion.String())
	}
	return sb.String()
}

// ParseSAN converts one SAN token into a move descriptor. Check and mate
// suffixes are ignored. Castling tokens are recognised but not otherwise
// parsed; their squares depend only on the side to move.
//
// Example:
//
//	m, err := ParseSAN("Nbxd7+")
//	// m.Piece == Knight, m.FromFile == FileB, m.Capture, m.To == D7
func ParseSAN(token string) (SANMove, error) {
	s := strings.TrimRight(token, "+#")
	switch s {
	case "O-O":
		return SANMove{Piece: King, FromFile: NoFile, FromRank: NoRank, To: NoSquare, Castle: KingSide}, nil
	case "O-O-O":
		return SANMove{Piece: King, FromFile: NoFile, FromRank: NoRank, To: NoSquare, Castle: QueenSide}, nil
	}

	m := SANMove{
		Piece:     Pawn,
		FromFile:  NoFile,
		FromRank:  NoRank,
		To:        NoSquare,
		Capture:   strings.Contains(s, "x"),
		Promotion: NoPieceType,
	}

	if before, after, found := strings.Cut(s, "="); found {
		promo := NoPieceType
		if len(after) == 1 {
			promo = PieceTypeFromByte(after[0])
		}
		switch promo {
		case Queen, Rook, Bishop, Knight:
			m.Promotion = promo
		default:
			return SANMove{}, &ParserError{Message: "invalid promotion piece", Token: token, Position: len(before) + 1}
		}
		s = before
	}

	if len(s) > 0 {
		if pt := PieceTypeFromByte(s[0]); pt != NoPieceType {
			m.Piece = pt
			s = s[1:]
		}
	}

	const squareLen = 2
	if len(s) < squareLen {
		return SANMove{}, &ParserError{Message: "token too short", Token: token, Position: -1}
	}
	m.To = parseSquare(s[len(s)-squareLen:])
	if m.To == NoSquare {
		return SANMove{}, &ParserError{Message: "invalid destination square", Token: token, Position: len(s) - squareLen}
	}

	mid := strings.ReplaceAll(s[:len(s)-squareLen], "x", "")
	if len(mid) > 0 && isFile(mid[0]) {
		m.FromFile = File(mid[0] - 'a')
	}
	if len(mid) > 0 && isRank(mid[len(mid)-1]) {
		m.FromRank = Rank(mid[len(mid)-1] - '1')
	}
	return m, nil
}

// ValidateSAN checks if a string is valid Standard Algebraic Notation (SAN) syntax.
// This function only validates the syntax, not whether the move can be played in any position.
// Examples of valid SAN: "e4", "Nf3", "O-O", "Qxd2+", "e8=Q#"
func ValidateSAN(s string) error {
	_, err := ParseSAN(s)
	return err
}

// Move is a move resolved against a position: its source square is known.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
	Castle    Castle
}

// String returns the move in coordinate notation as understood by UCI
// engines: source square, destination square and, for promotions, the
// lower case piece letter (e.g. "e2e4", "e1g1", "e7e8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += strings.ToLower(m.Promotion.String())
	}
	return s
}
