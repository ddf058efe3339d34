package board

import (
	"math/bits"
	"strings"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit 0 = A1, Bit 7 = H1, Bit 56 = A8, Bit 63 = H8 (Little-Endian Rank-File Mapping).
type Bitboard uint64

// File masks
const (
	FileABB Bitboard = 0x0101010101010101
	FileBBB Bitboard = FileABB << 1
	FileCBB Bitboard = FileABB << 2
	FileDBB Bitboard = FileABB << 3
	FileEBB Bitboard = FileABB << 4
	FileFBB Bitboard = FileABB << 5
	FileGBB Bitboard = FileABB << 6
	FileHBB Bitboard = FileABB << 7
)

// Rank masks
const (
	Rank1BB Bitboard = 0xFF
	Rank2BB Bitboard = Rank1BB << (8 * 1)
	Rank3BB Bitboard = Rank1BB << (8 * 2)
	Rank4BB Bitboard = Rank1BB << (8 * 3)
	Rank5BB Bitboard = Rank1BB << (8 * 4)
	Rank6BB Bitboard = Rank1BB << (8 * 5)
	Rank7BB Bitboard = Rank1BB << (8 * 6)
	Rank8BB Bitboard = Rank1BB << (8 * 7)
)

// Special masks
const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF

	NotFileA Bitboard = ^FileABB
	NotFileH Bitboard = ^FileHBB
)

// FileMask holds the mask of every file, indexed by File.
var FileMask = [FileNB]Bitboard{FileABB, FileBBB, FileCBB, FileDBB, FileEBB, FileFBB, FileGBB, FileHBB}

// RankMask holds the mask of every rank, indexed by Rank.
var RankMask = [RankNB]Bitboard{Rank1BB, Rank2BB, Rank3BB, Rank4BB, Rank5BB, Rank6BB, Rank7BB, Rank8BB}

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// Squares returns a bitboard with both squares set.
func Squares(a, b Square) Bitboard {
	return SquareBB(a) | SquareBB(b)
}

// FileBB returns the mask of file f.
func FileBB(f File) Bitboard {
	return FileMask[f]
}

// RankBB returns the mask of rank r.
func RankBB(r Rank) Bitboard {
	return RankMask[r]
}

// FileOf returns the mask of the file containing sq.
func FileOf(sq Square) Bitboard {
	return FileMask[sq.File()]
}

// RankOf returns the mask of the rank containing sq.
func RankOf(sq Square) Bitboard {
	return RankMask[sq.Rank()]
}

// MoreThanOne returns true if at least two bits are set.
func MoreThanOne(b Bitboard) bool {
	return b&(b-1) != 0
}

// Has returns true if the bit at the given square is set.
func (b Bitboard) Has(sq Square) bool {
	return b&SquareBB(sq) != 0
}

// With returns b with the given square added.
func (b Bitboard) With(sq Square) Bitboard {
	return b | SquareBB(sq)
}

// Without returns b with the given square removed.
func (b Bitboard) Without(sq Square) Bitboard {
	return b &^ SquareBB(sq)
}

// Toggle flips the bit at the given square.
func (b Bitboard) Toggle(sq Square) Bitboard {
	return b ^ SquareBB(sq)
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the least significant bit (lowest square index).
// b must be nonempty; release builds return NoSquare for an empty board.
func (b Bitboard) LSB() Square {
	assert(b != 0, "LSB of empty bitboard")
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the most significant bit (highest square index).
// b must be nonempty; release builds return NoSquare for an empty board.
func (b Bitboard) MSB() Square {
	assert(b != 0, "MSB of empty bitboard")
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// IsEmpty returns true if no bits are set.
func (b Bitboard) IsEmpty() bool {
	return b == 0
}

// String returns a visual representation of the bitboard, rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		sb.WriteByte(r.Char())
		sb.WriteByte(' ')
		for f := FileA; f <= FileH; f++ {
			if b.Has(NewSquare(f, r)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// ForEach calls the function for each set square in ascending order.
func (b Bitboard) ForEach(f func(Square)) {
	for b != 0 {
		f(b.PopLSB())
	}
}

// List returns a slice of all squares that are set.
func (b Bitboard) List() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}
