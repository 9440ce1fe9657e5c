package chess

// A Square is one of the 64 squares on a chess board. Squares are numbered
// row by row from the top of the board as white sees it, so A8 is 0 and H1
// is 63. Row 0 is rank 8 and column 0 is file a.
type Square int8

// NoSquare represents the absence of a square.
const NoSquare Square = -1

const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const numOfSquaresInBoard = 64

// NewSquare returns the square at the given row and column, or NoSquare if
// either coordinate is outside [0,7].
func NewSquare(row, col int) Square {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return NoSquare
	}
	return Square(row*8 + col)
}

// Row returns the zero-based row, where row 0 is rank 8.
func (sq Square) Row() int {
	return int(sq) / 8
}

// Col returns the zero-based column, where column 0 is file a.
func (sq Square) Col() int {
	return int(sq) % 8
}

// File returns the square's file.
func (sq Square) File() File {
	return File(sq.Col())
}

// Rank returns the square's rank.
func (sq Square) Rank() Rank {
	return Rank(7 - sq.Row())
}

// String implements the fmt.Stringer interface and returns
// the square's algebraic name (e.g. "e4").
func (sq Square) String() string {
	if sq < 0 || sq >= numOfSquaresInBoard {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

// A File is a column of the board, 0 for file a through 7 for file h.
type File int8

// NoFile marks an absent file, for example a SAN move without a file disambiguator.
const NoFile File = -1

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const fileChars = "abcdefgh"

func (f File) String() string {
	if f < FileA || f > FileH {
		return ""
	}
	return fileChars[f : f+1]
}

// A Rank is a row of the board counted from white's side, 0 for rank 1
// through 7 for rank 8.
type Rank int8

// NoRank marks an absent rank.
const NoRank Rank = -1

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const rankChars = "12345678"

func (r Rank) String() string {
	if r < Rank1 || r > Rank8 {
		return ""
	}
	return rankChars[r : r+1]
}

// Row returns the board row of the rank.
func (r Rank) Row() int {
	return 7 - int(r)
}

func isFile(b byte) bool {
	return b >= 'a' && b <= 'h'
}

func isRank(b byte) bool {
	return b >= '1' && b <= '8'
}

// parseSquare converts a square name (e.g., "e4") into a Square.
func parseSquare(s string) Square {
	const squareLen = 2
	if len(s) != squareLen {
		return NoSquare
	}
	if !isFile(s[0]) || !isRank(s[1]) {
		return NoSquare
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	return NewSquare(7-rank, file)
}
