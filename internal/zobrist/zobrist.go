// Package zobrist builds the key tables used to hash chess positions.
//
// A position's key is the XOR of the piece key of every occupied square, the
// castling key of the current rights, the en passant key of the en passant
// file when there is one, and the turn key when Black is to move. Because the
// combination is XOR, a move updates the key by toggling only the keys that
// changed.
package zobrist

import (
	"encoding/binary"

	"github.com/iudwgerte/Lighthouse/internal/board"
)

// ReferenceSeed seeds the standard key space. Changing it changes every
// position key and invalidates anything persisted under the old keys.
const ReferenceSeed uint64 = 1070372

// EntryCount is the number of keys in a key space.
const EntryCount = board.PieceNB*board.SquareNB + board.FileNB + board.CastlingRightsNB + 1

// Keys is an immutable Zobrist key space. Build it once with New and share the
// pointer; it is safe for concurrent readers.
type Keys struct {
	seed      uint64
	piece     [board.PieceNB][board.SquareNB]board.Key
	enPassant [board.FileNB]board.Key
	castling  [board.CastlingRightsNB]board.Key
	turn      board.Key
}

// New builds the key space from ReferenceSeed.
func New() *Keys {
	return NewWithSeed(ReferenceSeed)
}

// NewWithSeed builds a key space from seed, which must be nonzero.
func NewWithSeed(seed uint64) *Keys {
	rng := newPRNG(seed)
	k := &Keys{seed: seed}

	for c := board.White; c <= board.Black; c++ {
		for pt := board.Pawn; pt <= board.King; pt++ {
			p := board.NewPiece(pt, c)
			for sq := board.A1; sq <= board.H8; sq++ {
				k.piece[p][sq] = board.Key(rng.next())
			}
		}
	}

	for f := board.FileA; f <= board.FileH; f++ {
		k.enPassant[f] = board.Key(rng.next())
	}

	for cr := board.NoCastling; cr <= board.AnyCastling; cr++ {
		k.castling[cr] = board.Key(rng.next())
	}

	k.turn = board.Key(rng.next())
	return k
}

// Seed returns the seed the key space was built from.
func (k *Keys) Seed() uint64 {
	return k.seed
}

// Piece returns the key for piece p on square sq.
func (k *Keys) Piece(p board.Piece, sq board.Square) board.Key {
	return k.piece[p][sq]
}

// EnPassant returns the key for an en passant file.
func (k *Keys) EnPassant(f board.File) board.Key {
	return k.enPassant[f]
}

// Castling returns the key for a castling rights mask.
func (k *Keys) Castling(cr board.CastlingRights) board.Key {
	return k.castling[cr&board.AnyCastling]
}

// Turn returns the key XORed in when Black is to move.
func (k *Keys) Turn() board.Key {
	return k.turn
}

// Placement is a piece standing on a square.
type Placement struct {
	Piece  board.Piece
	Square board.Square
}

// Compute returns the key of a position from scratch. ep is the en passant
// target square, or NoSquare.
func (k *Keys) Compute(placements []Placement, cr board.CastlingRights, ep board.Square, side board.Color) board.Key {
	var key board.Key
	for _, pl := range placements {
		key ^= k.piece[pl.Piece][pl.Square]
	}
	key ^= k.Castling(cr)
	if ep != board.NoSquare {
		key ^= k.enPassant[ep.File()]
	}
	if side == board.Black {
		key ^= k.turn
	}
	return key
}

// MarshalBinary encodes every key little-endian, in the order the keys were
// drawn.
func (k *Keys) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, EntryCount*8)
	for p := range k.piece {
		for sq := range k.piece[p] {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(k.piece[p][sq]))
		}
	}
	for _, v := range k.enPassant {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v))
	}
	for _, v := range k.castling {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v))
	}
	buf = binary.LittleEndian.AppendUint64(buf, uint64(k.turn))
	return buf, nil
}
