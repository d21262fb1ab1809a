package chess

// Piece is a piece kind with its colour. The zero value is an empty square.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether the value represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight", or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// PieceFromLetter converts a FEN letter into a piece.
func PieceFromLetter(c byte) (Piece, bool) {
	kind := KindFromLetter(c)
	if kind == NoKind {
		return NoPiece, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return Piece{Kind: kind, Colour: colour}, true
}

// Material values in centipawns. The king is priceless: its loss is
// represented by checkmate, not by score.
var pieceValues = [...]int{
	NoKind: 0,
	Pawn:   100,
	Knight: 300,
	Bishop: 300,
	Rook:   500,
	Queen:  900,
	King:   0,
}

// Value returns the static material value of the piece kind.
func (k PieceKind) Value() int {
	if k < 0 || int(k) >= len(pieceValues) {
		return 0
	}
	return pieceValues[k]
}

// Piece-square tables, written from White's point of view with rank 8 in
// the first row so they read like a diagram.
var positionalTables = [...][NumSquares]int{
	Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	Rook: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
	Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	King: {
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}

// PositionalBonus returns the piece-square bonus for a piece standing on sq.
// Tables are mirrored for Black so both sides read them in their own
// forward direction.
func PositionalBonus(p Piece, sq Square) int {
	if p.IsEmpty() || !sq.IsValid() || int(p.Kind) >= len(positionalTables) {
		return 0
	}
	// Row 0 of a table is rank 8 from White's side.
	row := BoardSize - 1 - sq.Rank()
	if p.Colour == Black {
		row = sq.Rank()
	}
	return positionalTables[p.Kind][row*BoardSize+sq.File()]
}
