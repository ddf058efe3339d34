package board

import "testing"

var allShifts = []struct {
	name string
	d    Direction
	fn   func(Bitboard) Bitboard
}{
	{"north", North, Bitboard.North},
	{"south", South, Bitboard.South},
	{"east", East, Bitboard.East},
	{"west", West, Bitboard.West},
	{"northeast", NorthEast, Bitboard.NorthEast},
	{"northwest", NorthWest, Bitboard.NorthWest},
	{"southeast", SouthEast, Bitboard.SouthEast},
	{"southwest", SouthWest, Bitboard.SouthWest},
	{"north2", North + North, func(b Bitboard) Bitboard { return b.North().North() }},
	{"south2", South + South, func(b Bitboard) Bitboard { return b.South().South() }},
}

func TestShiftMatchesMethods(t *testing.T) {
	for _, s := range allShifts {
		t.Run(s.name, func(t *testing.T) {
			for _, b := range samples {
				if got, want := Shift(b, s.d), s.fn(b); got != want {
					t.Errorf("Shift(%#x, %d) = %#x, want %#x", uint64(b), s.d, uint64(got), uint64(want))
				}
			}
		})
	}
}

func TestShiftRoundTrips(t *testing.T) {
	for _, b := range samples {
		if got, want := Shift(Shift(b, North), South), b&^Rank8BB; got != want {
			t.Errorf("north then south of %#x = %#x, want %#x", uint64(b), uint64(got), uint64(want))
		}
		if got, want := Shift(Shift(b, South), North), b&^Rank1BB; got != want {
			t.Errorf("south then north of %#x = %#x, want %#x", uint64(b), uint64(got), uint64(want))
		}
		if got, want := Shift(Shift(b, East), West), b&^FileHBB; got != want {
			t.Errorf("east then west of %#x = %#x, want %#x", uint64(b), uint64(got), uint64(want))
		}
		if got, want := Shift(Shift(b, West), East), b&^FileABB; got != want {
			t.Errorf("west then east of %#x = %#x, want %#x", uint64(b), uint64(got), uint64(want))
		}
	}
}

func TestShiftNeverWraps(t *testing.T) {
	for _, s := range allShifts {
		for sq := A1; sq <= H8; sq++ {
			got := Shift(SquareBB(sq), s.d)
			if got == Empty {
				continue
			}
			if got.PopCount() != 1 {
				t.Fatalf("%s of %s produced %d squares", s.name, sq, got.PopCount())
			}
			to := got.LSB()
			if to != sq.Add(s.d) {
				t.Errorf("%s of %s landed on %s, want %s", s.name, sq, to, sq.Add(s.d))
			}
			df := int(to.File()) - int(sq.File())
			if df < -1 || df > 1 {
				t.Errorf("%s of %s wrapped to %s", s.name, sq, to)
			}
		}
	}
}

func TestShiftFullBoardEastTwice(t *testing.T) {
	got := Shift(Shift(Universe, East), East)
	if got&(FileABB|FileBBB) != 0 {
		t.Errorf("files a and b not empty: %#x", uint64(got))
	}
	if want := Universe &^ (FileABB | FileBBB); got != want {
		t.Errorf("east twice = %#x, want %#x", uint64(got), uint64(want))
	}
	if got.PopCount() != 48 {
		t.Errorf("east twice kept %d squares, want 48", got.PopCount())
	}
}

func TestShiftEdges(t *testing.T) {
	if got := Shift(FileHBB, East); got != Empty {
		t.Errorf("file h east = %#x", uint64(got))
	}
	if got := Shift(FileABB, West); got != Empty {
		t.Errorf("file a west = %#x", uint64(got))
	}
	if got := Shift(Rank8BB, North); got != Empty {
		t.Errorf("rank 8 north = %#x", uint64(got))
	}
	if got := Shift(Rank1BB, South); got != Empty {
		t.Errorf("rank 1 south = %#x", uint64(got))
	}
	if got := Shift(Rank2BB, North+North); got != Rank4BB {
		t.Errorf("double push of rank 2 = %#x", uint64(got))
	}
	if got := PawnPushes(Rank7BB, Black); got != Rank6BB {
		t.Errorf("black pawn push of rank 7 = %#x", uint64(got))
	}
}

func TestShiftUnsupportedDirection(t *testing.T) {
	b := Bitboard(0x0123456789ABCDEF)
	for _, d := range []Direction{0, 2, -3, 15, North.Times(3), 100, -100} {
		if got := Shift(b, d); got != b {
			t.Errorf("Shift(b, %d) = %#x, want b unchanged", d, uint64(got))
		}
	}
}
