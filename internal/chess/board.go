package chess

// Board represents a chess board with all state needed for move generation.
// Board is a plain value: assigning it copies the whole position, which is
// what search relies on to keep sibling branches isolated.
type Board struct {
	// The board squares indexed by Square (a1 = 0, h8 = 63).
	Squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// Remaining castling rights, indexed by Colour.
	Castling [2]CastlingRights

	// Target square of a possible en passant capture, or NoSquare.
	EnPassant Square

	// Keep track of where the two kings are for check detection,
	// indexed by Colour. NoSquare when the king is absent.
	Kings [2]Square
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:    White,
		EnPassant: NoSquare,
		Kings:     [2]Square{NoSquare, NoSquare},
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = *NewBoard()

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Set(SquareAt(file, 0), W(backRank[file]))
		b.Set(SquareAt(file, 1), W(Pawn))
		b.Set(SquareAt(file, 6), B(Pawn))
		b.Set(SquareAt(file, 7), B(backRank[file]))
	}

	b.Castling[White] = CastlingRights{Kingside: true, Queenside: true}
	b.Castling[Black] = CastlingRights{Kingside: true, Queenside: true}
}

// Get returns the piece on the given square (NoPiece when empty or off board).
func (b *Board) Get(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return b.Squares[sq]
}

// Set places a piece on the given square, keeping the king squares current.
func (b *Board) Set(sq Square, piece Piece) {
	if !sq.IsValid() {
		return
	}
	if old := b.Squares[sq]; old.Kind == King && b.Kings[old.Colour] == sq {
		b.Kings[old.Colour] = NoSquare
	}
	b.Squares[sq] = piece
	if piece.Kind == King {
		b.Kings[piece.Colour] = sq
	}
}

// IsEmpty reports whether the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// KingSquare returns where the colour's king stands, or NoSquare.
func (b *Board) KingSquare(colour Colour) Square {
	return b.Kings[colour]
}

// HasEnPassant reports whether an en passant capture target is set.
func (b *Board) HasEnPassant() bool {
	return b.EnPassant.IsValid()
}

// CanCastle reports whether the colour still holds the castling right.
func (b *Board) CanCastle(colour Colour, side CastleSide) bool {
	if side == Queenside {
		return b.Castling[colour].Queenside
	}
	return b.Castling[colour].Kingside
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// CountPieces returns the number of pieces of the given kind and colour.
func (b *Board) CountPieces(piece Piece) int {
	n := 0
	for _, p := range b.Squares {
		if p == piece {
			n++
		}
	}
	return n
}
