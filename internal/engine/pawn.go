package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// appendPawnMoves converts pawn destinations into moves, expanding
// promotions and adding an en passant capture when one is available.
func appendPawnMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	for _, to := range pawnDestinations(board, from, colour) {
		switch {
		case to.Rank() == chess.PromotionRank(colour):
			for _, kind := range chess.PromotionKinds {
				moves = append(moves, chess.Promotion(from, to, kind))
			}
		case !board.IsEmpty(to):
			moves = append(moves, chess.Capture(from, to))
		default:
			moves = append(moves, chess.Normal(from, to))
		}
	}

	if to, ok := enPassantTarget(board, from, colour); ok {
		moves = append(moves, chess.EnPassant(from, to))
	}
	return moves
}

// enPassantTarget reports whether the pawn on from may capture en passant.
// Only the side to move can, and the pawn that just advanced two squares
// must stand beside it.
func enPassantTarget(board *chess.Board, from chess.Square, colour chess.Colour) (chess.Square, bool) {
	ep := board.EnPassant
	if !ep.IsValid() || colour != board.ToMove {
		return chess.NoSquare, false
	}
	dir := chess.ColourOffset(colour)
	if ep.Rank() != from.Rank()+dir || abs(ep.File()-from.File()) != 1 {
		return chess.NoSquare, false
	}
	victim := chess.SquareAt(ep.File(), from.Rank())
	if board.Get(victim) != (chess.Piece{Kind: chess.Pawn, Colour: colour.Opposite()}) || !board.IsEmpty(ep) {
		return chess.NoSquare, false
	}
	return ep, true
}

// enPassantVictim returns the square of the pawn removed by an en passant capture.
func enPassantVictim(move chess.Move) chess.Square {
	return chess.SquareAt(move.To.File(), move.From.Rank())
}
