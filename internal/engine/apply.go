// Package engine provides chess move generation, validation and board manipulation.
package engine

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// MakeMove checks that move is legal for the side to move and plays it.
func MakeMove(board *chess.Board, move chess.Move) error {
	if !IsLegalMove(board, move) {
		return fmt.Errorf("%s: %w", move, errors.ErrInvalidMove)
	}
	PlayMove(board, move)
	return nil
}

// PlayMove applies an already-legal move and returns the captured piece
// (NoPiece for quiet moves). The result of playing an illegal move is
// undefined; use MakeMove or IsLegalMove when the move is untrusted.
func PlayMove(board *chess.Board, move chess.Move) chess.Piece {
	piece := board.Get(move.From)
	colour := piece.Colour
	captured := board.Get(move.To)

	switch move.Kind {
	case chess.CastleMove:
		applyCastle(board, colour, move)
	case chess.EnPassantMove:
		victim := enPassantVictim(move)
		captured = board.Get(victim)
		board.Set(victim, chess.NoPiece)
		board.Set(move.From, chess.NoPiece)
		board.Set(move.To, piece)
	case chess.PromotionMove:
		board.Set(move.From, chess.NoPiece)
		board.Set(move.To, chess.Piece{Kind: move.Promotion, Colour: colour})
	default:
		board.Set(move.From, chess.NoPiece)
		board.Set(move.To, piece)
	}

	// Set en passant square only after a double pawn push
	board.EnPassant = chess.NoSquare
	if piece.Kind == chess.Pawn && abs(move.To.Rank()-move.From.Rank()) == 2 {
		board.EnPassant = chess.SquareAt(move.From.File(), (move.From.Rank()+move.To.Rank())/2)
	}

	// Update castling rights if king or rook moved, or a rook was captured
	if piece.Kind == chess.King {
		board.Castling[colour] = chess.CastlingRights{}
	}
	updateCastlingRightsForSquare(board, move.From)
	updateCastlingRightsForSquare(board, move.To)

	board.ToMove = colour.Opposite()
	return captured
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
