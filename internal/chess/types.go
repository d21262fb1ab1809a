// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoKind PieceKind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts an uppercase or lowercase piece letter to its kind.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	}
	return NoKind
}

// PromotionKinds lists the kinds a pawn may promote to, in generation order.
var PromotionKinds = [...]PieceKind{Queen, Rook, Bishop, Knight}

// CastleSide distinguishes the two castling directions.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// String returns the SAN token for the castling side.
func (s CastleSide) String() string {
	if s == Queenside {
		return "O-O-O"
	}
	return "O-O"
}

// CastlingRights records which castling moves a side may still make.
type CastlingRights struct {
	Kingside  bool
	Queenside bool
}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank index (0-7) of the colour's back rank.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return 7
}

// PawnRank returns the rank index pawns of the colour start on.
func PawnRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return 6
}

// PromotionRank returns the rank index on which pawns of the colour promote.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}
