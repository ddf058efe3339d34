package board

// Limits shared with search.
const (
	MaxPly   = 128
	MaxMoves = 256
)

// Depth is a search depth in plies.
type Depth int

// Value is a score in centipawns, or a mate score near ValueMate.
type Value int

const (
	ValueZero     Value = 0
	ValueDraw     Value = 0
	ValueMate     Value = 32000
	ValueInfinite Value = 32001
	ValueNone     Value = 32002

	ValueMateInMaxPly  Value = ValueMate - MaxPly
	ValueMatedInMaxPly Value = -ValueMateInMaxPly
)

// MateIn returns the score for delivering mate at ply.
func MateIn(ply int) Value {
	return ValueMate - Value(ply)
}

// MatedIn returns the score for being mated at ply.
func MatedIn(ply int) Value {
	return -ValueMate + Value(ply)
}

// Bound classifies a stored score relative to the search window.
type Bound uint8

const (
	BoundNone  Bound = 0
	BoundUpper Bound = 1
	BoundLower Bound = 2
	BoundExact       = BoundUpper | BoundLower
)
