package board

// CastlingRights represents the available castling options as a 4-bit mask.
type CastlingRights uint8

const (
	WhiteOO  CastlingRights = 1 << iota // K
	WhiteOOO                            // Q
	BlackOO                             // k
	BlackOOO                            // q

	NoCastling     CastlingRights = 0
	KingSide                      = WhiteOO | BlackOO
	QueenSide                     = WhiteOOO | BlackOOO
	WhiteCastling                 = WhiteOO | WhiteOOO
	BlackCastling                 = BlackOO | BlackOOO
	AnyCastling                   = WhiteCastling | BlackCastling

	CastlingRightsNB = 16
)

// Of returns the subset of cr belonging to color c.
func (cr CastlingRights) Of(c Color) CastlingRights {
	if c == White {
		return cr & WhiteCastling
	}
	return cr & BlackCastling
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if kingSide {
		return cr.Of(c)&KingSide != 0
	}
	return cr.Of(c)&QueenSide != 0
}

// String returns the castling rights in "KQkq" form.
func (cr CastlingRights) String() string {
	if cr&AnyCastling == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteOO != 0 {
		s += "K"
	}
	if cr&WhiteOOO != 0 {
		s += "Q"
	}
	if cr&BlackOO != 0 {
		s += "k"
	}
	if cr&BlackOOO != 0 {
		s += "q"
	}
	return s
}
