package zobrist

import (
	"encoding/binary"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/iudwgerte/Lighthouse/internal/board"
	"github.com/iudwgerte/Lighthouse/internal/testutil"
)

func TestPRNGSequence(t *testing.T) {
	rng := newPRNG(ReferenceSeed)
	want := []uint64{0x083610fb1cd7c6a5, 0xa37f944be9dfc323, 0xf6abbe2515a93cbb}
	for i, w := range want {
		if got := rng.next(); got != w {
			t.Errorf("draw %d = %#x, want %#x", i, got, w)
		}
	}
}

func TestPRNGZeroSeedPanics(t *testing.T) {
	testutil.AssertPanics(t, func() { newPRNG(0) }, "zero seed")
	testutil.AssertPanics(t, func() { NewWithSeed(0) }, "zero seed key space")
}

func TestReferenceKeys(t *testing.T) {
	k := New()

	tests := []struct {
		name string
		got  board.Key
		want board.Key
	}{
		{"white pawn a1", k.Piece(board.WhitePawn, board.A1), 0x083610fb1cd7c6a5},
		{"white pawn b1", k.Piece(board.WhitePawn, board.B1), 0xa37f944be9dfc323},
		{"black king h8", k.Piece(board.BlackKing, board.H8), 0x2fe9a4d5aa8d43f6},
		{"en passant a", k.EnPassant(board.FileA), 0x7d56d658294a9988},
		{"en passant h", k.EnPassant(board.FileH), 0x586cdac18fc14df7},
		{"no castling", k.Castling(board.NoCastling), 0x67e85e44a0c80f99},
		{"all castling", k.Castling(board.AnyCastling), 0x6cef81b4350535c6},
		{"turn", k.Turn(), 0xa0f520a4c9fa5bcc},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s = %#x, want %#x", tc.name, uint64(tc.got), uint64(tc.want))
		}
	}
	if k.Seed() != ReferenceSeed {
		t.Errorf("Seed() = %d", k.Seed())
	}
}

func TestComputeReferencePosition(t *testing.T) {
	k := New()
	got := k.Compute([]Placement{{board.WhitePawn, board.A1}}, board.NoCastling, board.NoSquare, board.White)
	if got != 0x6fde4ebfbc1fc93c {
		t.Errorf("white pawn on a1 key = %#x, want 0x6fde4ebfbc1fc93c", uint64(got))
	}
}

func TestComputeIsIncremental(t *testing.T) {
	k := New()
	before := []Placement{
		{board.WhiteKing, board.E1},
		{board.WhitePawn, board.E2},
		{board.BlackKing, board.E8},
		{board.BlackPawn, board.D4},
	}
	after := []Placement{
		{board.WhiteKing, board.E1},
		{board.WhitePawn, board.E4},
		{board.BlackKing, board.E8},
		{board.BlackPawn, board.D4},
	}

	h := k.Compute(before, board.WhiteCastling, board.NoSquare, board.White)

	// e2e4: move the pawn, set the en passant file, drop white's rights, flip the turn.
	h ^= k.Piece(board.WhitePawn, board.E2) ^ k.Piece(board.WhitePawn, board.E4)
	h ^= k.EnPassant(board.FileE)
	h ^= k.Castling(board.WhiteCastling) ^ k.Castling(board.NoCastling)
	h ^= k.Turn()

	want := k.Compute(after, board.NoCastling, board.E3, board.Black)
	if h != want {
		t.Errorf("incremental key %#x, recomputed %#x", uint64(h), uint64(want))
	}
}

func TestKeysAreDistinct(t *testing.T) {
	data, err := New().MarshalBinary()
	testutil.AssertNoError(t, err)
	if len(data) != EntryCount*8 {
		t.Fatalf("snapshot is %d bytes, want %d", len(data), EntryCount*8)
	}

	seen := make(map[uint64]int, EntryCount)
	for i := 0; i < EntryCount; i++ {
		v := binary.LittleEndian.Uint64(data[i*8:])
		if v == 0 {
			t.Errorf("key %d is zero", i)
		}
		if j, ok := seen[v]; ok {
			t.Errorf("keys %d and %d collide", j, i)
		}
		seen[v] = i
	}
}

func TestSnapshotOrder(t *testing.T) {
	k := New()
	data, err := k.MarshalBinary()
	testutil.AssertNoError(t, err)

	at := func(i int) board.Key { return board.Key(binary.LittleEndian.Uint64(data[i*8:])) }
	pieceKeys := board.PieceNB * board.SquareNB

	testutil.AssertEqual(t, at(0), k.Piece(board.WhitePawn, board.A1))
	testutil.AssertEqual(t, at(6*64+63), k.Piece(board.BlackPawn, board.H8))
	testutil.AssertEqual(t, at(pieceKeys), k.EnPassant(board.FileA))
	testutil.AssertEqual(t, at(pieceKeys+8), k.Castling(board.NoCastling))
	testutil.AssertEqual(t, at(EntryCount-1), k.Turn())
}

func TestInitializationIsDeterministic(t *testing.T) {
	a, err := New().MarshalBinary()
	testutil.AssertNoError(t, err)
	b, err := New().MarshalBinary()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, b, a, "two key spaces from the reference seed")

	c, err := NewWithSeed(42).MarshalBinary()
	testutil.AssertNoError(t, err)
	if string(a) == string(c) {
		t.Errorf("different seeds produced identical key spaces")
	}
}

func TestCastlingKeyIgnoresHighBits(t *testing.T) {
	k := New()
	if k.Castling(board.CastlingRights(0x10)|board.WhiteOO) != k.Castling(board.WhiteOO) {
		t.Errorf("castling key depends on bits outside the rights mask")
	}
}

func TestConcurrentReaders(t *testing.T) {
	k := New()
	want := k.Compute([]Placement{{board.WhiteKing, board.G1}, {board.BlackKing, board.G8}}, board.NoCastling, board.NoSquare, board.Black)

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 1000; j++ {
				got := k.Compute([]Placement{{board.WhiteKing, board.G1}, {board.BlackKing, board.G8}}, board.NoCastling, board.NoSquare, board.Black)
				if got != want {
					t.Errorf("reader saw %#x, want %#x", uint64(got), uint64(want))
					return nil
				}
			}
			return nil
		})
	}
	testutil.AssertNoError(t, g.Wait())
}
