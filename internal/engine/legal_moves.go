package engine

import (
	"slices"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// GenerateLegalMoves returns every legal move of colour. The order is
// deterministic: by source square, then destination square, then promotion
// kind (queen, rook, bishop, knight).
func GenerateLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var legal []chess.Move
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Get(sq)
		if piece.IsEmpty() || piece.Colour != colour {
			continue
		}
		for _, move := range pseudoLegalMoves(board, sq) {
			if leavesKingSafe(board, move, colour) {
				legal = append(legal, move)
			}
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Get(sq)
		if piece.IsEmpty() || piece.Colour != colour {
			continue
		}
		for _, move := range pseudoLegalMoves(board, sq) {
			if leavesKingSafe(board, move, colour) {
				return true
			}
		}
	}
	return false
}

// IsLegalMove reports whether move is pseudo-legal for the piece of the side
// to move standing on move.From, and does not leave that side's king attacked.
func IsLegalMove(board *chess.Board, move chess.Move) bool {
	piece := board.Get(move.From)
	if piece.IsEmpty() || piece.Colour != board.ToMove {
		return false
	}
	for _, candidate := range pseudoLegalMoves(board, move.From) {
		if candidate == move {
			return leavesKingSafe(board, move, piece.Colour)
		}
	}
	return false
}

// LegalMovesFrom returns the legal moves of the piece on from, in
// generation order.
func LegalMovesFrom(board *chess.Board, from chess.Square) []chess.Move {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return nil
	}
	var legal []chess.Move
	for _, move := range pseudoLegalMoves(board, from) {
		if leavesKingSafe(board, move, piece.Colour) {
			legal = append(legal, move)
		}
	}
	return legal
}

// pseudoLegalMoves returns the moves of the piece on from ignoring check
// safety, sorted by destination and promotion kind.
func pseudoLegalMoves(board *chess.Board, from chess.Square) []chess.Move {
	piece := board.Get(from)
	var moves []chess.Move

	switch piece.Kind {
	case chess.NoKind:
		return nil
	case chess.Pawn:
		moves = appendPawnMoves(moves, board, from, piece.Colour)
	default:
		for _, to := range Destinations(board, from) {
			if board.IsEmpty(to) {
				moves = append(moves, chess.Normal(from, to))
			} else {
				moves = append(moves, chess.Capture(from, to))
			}
		}
		if piece.Kind == chess.King {
			moves = appendCastlingMoves(moves, board, from, piece.Colour)
		}
	}

	slices.SortFunc(moves, compareMoves)
	return moves
}

// compareMoves orders moves from the same square.
func compareMoves(a, b chess.Move) int {
	if a.To != b.To {
		return int(a.To) - int(b.To)
	}
	return promotionOrder(a.Promotion) - promotionOrder(b.Promotion)
}

func promotionOrder(kind chess.PieceKind) int {
	for i, k := range chess.PromotionKinds {
		if k == kind {
			return i
		}
	}
	return -1
}

// leavesKingSafe plays the move on a scratch copy of the board and checks
// whether the mover's king is attacked afterwards.
func leavesKingSafe(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	scratch := *board
	PlayMove(&scratch, move)
	return !IsInCheck(&scratch, colour)
}
