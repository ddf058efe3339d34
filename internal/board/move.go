package board

// Move encodes a chess move in 16 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-13: promotion piece (0=Knight, 1=Bishop, 2=Rook, 3=Queen)
// bits 14-15: move type (0=normal, 1=promotion, 2=en passant, 3=castling)
type Move uint16

// MoveType is the tag stored in the top two bits of a Move.
type MoveType uint16

const (
	Normal    MoveType = 0 << 14
	Promotion MoveType = 1 << 14
	EnPassant MoveType = 2 << 14
	Castling  MoveType = 3 << 14
)

const (
	// NoMove is the zero move.
	NoMove Move = 0
	// NullMove passes the turn. Its origin and destination are both b1.
	NullMove Move = 65
)

// NewMove creates a normal move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

// MakeMove creates a move of type t. The promotion piece is only packed for
// promotions.
func MakeMove(t MoveType, from, to Square, promo PieceType) Move {
	m := NewMove(from, to) | Move(t)
	if t == Promotion {
		assert(promo >= Knight && promo <= Queen, "invalid promotion piece %d", promo)
		m |= Move(promo-Knight) << 12
	}
	return m
}

// NewPromotion creates a promotion move.
func NewPromotion(from, to Square, promo PieceType) Move {
	return MakeMove(Promotion, from, to, promo)
}

// NewEnPassant creates an en passant capture move.
func NewEnPassant(from, to Square) Move {
	return MakeMove(EnPassant, from, to, Knight)
}

// NewCastling creates a castling move (king's movement).
func NewCastling(from, to Square) Move {
	return MakeMove(Castling, from, to, Knight)
}

// MoveFromRaw decodes a move that was stored as a raw value, for example in
// a transposition table entry.
func MoveFromRaw(v uint16) Move {
	m := Move(v)
	assert(m.IsValid(), "malformed raw move %#04x", v)
	return m
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// FromTo returns origin and destination as a 12-bit index, suitable for
// history tables.
func (m Move) FromTo() int {
	return int(m & 0xFFF)
}

// Type returns the move type.
func (m Move) Type() MoveType {
	return MoveType(m & 0xC000)
}

// Promotion returns the promotion piece type (only valid if IsPromotion() is true).
func (m Move) Promotion() PieceType {
	return PieceType((m>>12)&3) + Knight
}

// Raw returns the packed value.
func (m Move) Raw() uint16 {
	return uint16(m)
}

// IsOk returns true for a move whose origin and destination differ. The zero
// and null moves are not ok.
func (m Move) IsOk() bool {
	return m.From() != m.To()
}

// IsValid reports whether the promotion field is clear on non-promotions.
func (m Move) IsValid() bool {
	return m.Type() == Promotion || m&0x3000 == 0
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return m.Type() == Promotion
}

// IsCastling returns true if this is a castling move.
func (m Move) IsCastling() bool {
	return m.Type() == Castling
}

// IsEnPassant returns true if this is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Type() == EnPassant
}

// Key hashes the move for move-keyed tables. Equal moves give equal keys.
func (m Move) Key() Key {
	return MakeKey(uint64(m))
}

// String returns the coordinate form of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if !m.IsOk() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(m.Promotion().Char())
	}
	return s
}

// MoveList is a fixed-size list of moves to avoid allocations.
// Adding more than MaxMoves moves is a caller error.
type MoveList struct {
	moves [MaxMoves]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Empty returns true if the list holds no moves.
func (ml *MoveList) Empty() bool {
	return ml.count == 0
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Set sets the move at index i.
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Back returns the last move added.
func (ml *MoveList) Back() Move {
	return ml.moves[ml.count-1]
}

// PopBack drops the last move.
func (ml *MoveList) PopBack() {
	ml.count--
}

// Swap swaps two moves in the list.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Clear clears the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice backed by the list.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}
