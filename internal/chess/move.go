package chess

// MoveKind categorizes different types of chess moves.
type MoveKind int

const (
	NormalMove MoveKind = iota
	CaptureMove
	EnPassantMove
	CastleMove
	PromotionMove
)

// String returns the name of the move kind.
func (k MoveKind) String() string {
	switch k {
	case NormalMove:
		return "Normal"
	case CaptureMove:
		return "Capture"
	case EnPassantMove:
		return "EnPassant"
	case CastleMove:
		return "Castle"
	case PromotionMove:
		return "Promotion"
	}
	return "Unknown"
}

// Move represents a single chess move.
//
// Castle moves carry the king's from/to squares as well as the side, and
// promotions carry the new piece kind; all other fields are zero, so two
// moves describing the same action compare equal with ==.
type Move struct {
	Kind MoveKind

	// Source and destination squares.
	From Square
	To   Square

	// The piece promoted to (NoKind if not a promotion).
	Promotion PieceKind

	// Castling direction (Castle moves only).
	Side CastleSide
}

// Normal creates a quiet move.
func Normal(from, to Square) Move {
	return Move{Kind: NormalMove, From: from, To: to}
}

// Capture creates a move that takes the piece on the destination.
func Capture(from, to Square) Move {
	return Move{Kind: CaptureMove, From: from, To: to}
}

// EnPassant creates an en passant pawn capture onto the target square.
func EnPassant(from, to Square) Move {
	return Move{Kind: EnPassantMove, From: from, To: to}
}

// Promotion creates a pawn move to the last rank, with or without capture.
func Promotion(from, to Square, kind PieceKind) Move {
	return Move{Kind: PromotionMove, From: from, To: to, Promotion: kind}
}

// Castle creates a castling move for the given colour and side.
func Castle(colour Colour, side CastleSide) Move {
	rank := HomeRank(colour)
	to := SquareAt(6, rank)
	if side == Queenside {
		to = SquareAt(2, rank)
	}
	return Move{Kind: CastleMove, From: SquareAt(4, rank), To: to, Side: side}
}

// CastleRookSquares returns the rook's start and end squares for a castling move.
func CastleRookSquares(colour Colour, side CastleSide) (from, to Square) {
	rank := HomeRank(colour)
	if side == Queenside {
		return SquareAt(0, rank), SquareAt(3, rank)
	}
	return SquareAt(7, rank), SquareAt(5, rank)
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Kind == PromotionMove
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Kind == CastleMove
}

// String renders the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Kind == PromotionMove {
		s += string(Piece{Kind: m.Promotion, Colour: Black}.Letter())
	}
	return s
}
