package chess

// Color represents the color of a chess piece or the side to move.
type Color int8

const (
	// NoColor represents no color.
	NoColor Color = iota
	// White represents the color white.
	White
	// Black represents the color black.
	Black
)

// Other returns the opposite color of the receiver.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// String implements the fmt.Stringer interface and returns
// the color's FEN compatible notation.
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	}
	return "-"
}

// Name returns a display name for the color.
func (c Color) Name() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "No Color"
}

// PieceType is the kind of a piece regardless of color.
type PieceType int8

const (
	// NoPieceType is the absence of a piece type.
	NoPieceType PieceType = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// PieceTypes returns a slice of all piece types.
func PieceTypes() [6]PieceType {
	return [6]PieceType{King, Queen, Rook, Bishop, Knight, Pawn}
}

// PieceTypeFromByte returns the piece type for an upper case SAN letter
// (K, Q, R, B, N or P) and NoPieceType otherwise.
func PieceTypeFromByte(b byte) PieceType {
	switch b {
	case 'K':
		return King
	case 'Q':
		return Queen
	case 'R':
		return Rook
	case 'B':
		return Bishop
	case 'N':
		return Knight
	case 'P':
		return Pawn
	}
	return NoPieceType
}

// String returns the upper case SAN letter of the piece type.
func (p PieceType) String() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return ""
}

// Piece is a piece type with a color.
type Piece int8

const (
	// NoPiece represents no piece.
	NoPiece Piece = iota
	WhiteKing
	WhiteQueen
	WhiteRook
	WhiteBishop
	WhiteKnight
	WhitePawn
	BlackKing
	BlackQueen
	BlackRook
	BlackBishop
	BlackKnight
	BlackPawn
)

// NewPiece returns the piece matching the color and type, or NoPiece if
// either is absent.
func NewPiece(c Color, t PieceType) Piece {
	if t == NoPieceType {
		return NoPiece
	}
	switch c {
	case White:
		return Piece(t)
	case Black:
		return Piece(int8(t) + 6)
	}
	return NoPiece
}

// Type returns the type of the piece.
func (p Piece) Type() PieceType {
	switch {
	case p == NoPiece:
		return NoPieceType
	case p <= WhitePawn:
		return PieceType(p)
	}
	return PieceType(p - 6)
}

// Color returns the color of the piece.
func (p Piece) Color() Color {
	switch {
	case p == NoPiece:
		return NoColor
	case p <= WhitePawn:
		return White
	}
	return Black
}

// String implements the fmt.Stringer interface and returns the piece's
// FEN letter: upper case for white, lower case for black.
func (p Piece) String() string {
	s := p.Type().String()
	if p.Color() == Black {
		return string(s[0] + ('a' - 'A'))
	}
	return s
}

// pieceFromFENByte maps a FEN placement letter to a piece.
func pieceFromFENByte(b byte) Piece {
	if b >= 'a' && b <= 'z' {
		return NewPiece(Black, PieceTypeFromByte(b-('a'-'A')))
	}
	return NewPiece(White, PieceTypeFromByte(b))
}
