// Package board implements the coordinate system, bitboard algebra and move
// encoding that the rest of the engine is built on.
package board

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// SquareNB is the number of board squares.
const SquareNB = 64

// File is a board column, 0=a through 7=h.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNB = 8
)

// Rank is a board row, 0=1st through 7=8th.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNB = 8
)

// Direction is a signed offset between square indices.
type Direction int

const (
	North Direction = 8
	East  Direction = 1
	South Direction = -North
	West  Direction = -East

	NorthEast Direction = North + East
	SouthEast Direction = South + East
	SouthWest Direction = South + West
	NorthWest Direction = North + West
)

// Times scales the direction by n steps.
func (d Direction) Times(n int) Direction {
	return d * Direction(n)
}

// PawnPush returns the direction pawns of color c advance in.
func PawnPush(c Color) Direction {
	if c == White {
		return North
	}
	return South
}

// NewSquare creates a square from file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(r)<<3 + Square(f)
}

// File returns the file (column) of the square.
func (sq Square) File() File {
	return File(sq & 7)
}

// Rank returns the rank (row) of the square.
func (sq Square) Rank() Rank {
	return Rank(sq >> 3)
}

// Add steps the square by d. The result is not bounds checked.
func (sq Square) Add(d Direction) Square {
	return Square(int(sq) + int(d))
}

// Sub steps the square by -d. The result is not bounds checked.
func (sq Square) Sub(d Direction) Square {
	return Square(int(sq) - int(d))
}

// Flip returns the square mirrored vertically (for black's perspective).
func (sq Square) Flip() Square {
	return sq ^ A8
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// RelativeRank returns the rank from a given color's perspective.
// For White, rank 0 is the 1st rank; for Black, rank 0 is the 8th rank.
func (sq Square) RelativeRank(c Color) Rank {
	if c == White {
		return sq.Rank()
	}
	return Rank8 - sq.Rank()
}

// String returns the algebraic name of the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return string([]byte{sq.File().Char(), sq.Rank().Char()})
}

// Char returns the file letter.
func (f File) Char() byte {
	return 'a' + byte(f)
}

// Char returns the rank digit.
func (r Rank) Char() byte {
	return '1' + byte(r)
}
