package board

// shiftSpec describes one supported translation: the source squares that may
// move without leaving the board, and the signed bit-shift to apply.
type shiftSpec struct {
	keep   Bitboard
	amount int
	ok     bool
}

// shiftTable is indexed by Direction+16.
var shiftTable [33]shiftSpec

func init() {
	for _, s := range []struct {
		d    Direction
		keep Bitboard
	}{
		{North, Universe},
		{South, Universe},
		{North + North, Universe},
		{South + South, Universe},
		{East, NotFileH},
		{West, NotFileA},
		{NorthEast, NotFileH},
		{NorthWest, NotFileA},
		{SouthEast, NotFileH},
		{SouthWest, NotFileA},
	} {
		shiftTable[s.d+16] = shiftSpec{keep: s.keep, amount: int(s.d), ok: true}
	}
}

// Shift translates every square of b one step in direction d (two steps for
// North+North and South+South). Squares that would cross the a- or h-file
// edge are cleared before the shift; squares pushed past rank 1 or rank 8
// fall off the word. Unsupported directions return b unchanged.
func Shift(b Bitboard, d Direction) Bitboard {
	if d < -16 || d > 16 {
		return b
	}
	s := shiftTable[d+16]
	if !s.ok {
		return b
	}
	if s.amount > 0 {
		return (b & s.keep) << s.amount
	}
	return (b & s.keep) >> -s.amount
}

// North shifts the bitboard one rank up (toward rank 8).
func (b Bitboard) North() Bitboard {
	return b << 8
}

// South shifts the bitboard one rank down (toward rank 1).
func (b Bitboard) South() Bitboard {
	return b >> 8
}

// East shifts the bitboard one file right (toward file h).
func (b Bitboard) East() Bitboard {
	return (b & NotFileH) << 1
}

// West shifts the bitboard one file left (toward file a).
func (b Bitboard) West() Bitboard {
	return (b & NotFileA) >> 1
}

// NorthEast shifts the bitboard one square toward the h8 corner.
func (b Bitboard) NorthEast() Bitboard {
	return (b & NotFileH) << 9
}

// NorthWest shifts the bitboard one square toward the a8 corner.
func (b Bitboard) NorthWest() Bitboard {
	return (b & NotFileA) << 7
}

// SouthEast shifts the bitboard one square toward the h1 corner.
func (b Bitboard) SouthEast() Bitboard {
	return (b & NotFileH) >> 7
}

// SouthWest shifts the bitboard one square toward the a1 corner.
func (b Bitboard) SouthWest() Bitboard {
	return (b & NotFileA) >> 9
}

// PawnPushes returns b advanced one rank in c's pushing direction.
func PawnPushes(b Bitboard, c Color) Bitboard {
	return Shift(b, PawnPush(c))
}
