package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// appendCastlingMoves adds the castling moves available to the king on from.
// The king must be on its home square and not in check, the rook on its
// corner, every square between them empty, and the squares the king crosses
// unattacked.
func appendCastlingMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	home := chess.SquareAt(4, chess.HomeRank(colour))
	if from != home {
		return moves
	}
	rook := chess.Piece{Kind: chess.Rook, Colour: colour}
	enemy := colour.Opposite()
	checked := false

	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if !board.CanCastle(colour, side) {
			continue
		}
		rookFrom, _ := chess.CastleRookSquares(colour, side)
		if board.Get(rookFrom) != rook || !pathEmpty(board, from, rookFrom) {
			continue
		}
		if !checked {
			if IsSquareAttacked(board, from, enemy) {
				return moves
			}
			checked = true
		}

		castle := chess.Castle(colour, side)
		step := sign(castle.To.File() - from.File())
		crossing, _ := from.Offset(step, 0)
		if IsSquareAttacked(board, crossing, enemy) || IsSquareAttacked(board, castle.To, enemy) {
			continue
		}
		moves = append(moves, castle)
	}
	return moves
}

// pathEmpty reports whether every square strictly between a and b on the
// same rank is empty.
func pathEmpty(board *chess.Board, a, b chess.Square) bool {
	step := sign(b.File() - a.File())
	sq, ok := a.Offset(step, 0)
	for ok && sq != b {
		if !board.IsEmpty(sq) {
			return false
		}
		sq, ok = sq.Offset(step, 0)
	}
	return true
}

// applyCastle moves the king and rook for a castling move.
func applyCastle(board *chess.Board, colour chess.Colour, move chess.Move) {
	king := board.Get(move.From)
	board.Set(move.From, chess.NoPiece)
	board.Set(move.To, king)

	rookFrom, rookTo := chess.CastleRookSquares(colour, move.Side)
	rook := board.Get(rookFrom)
	board.Set(rookFrom, chess.NoPiece)
	board.Set(rookTo, rook)
}

// updateCastlingRightsForSquare removes castling rights when a piece leaves
// or lands on a rook's starting corner.
func updateCastlingRightsForSquare(board *chess.Board, sq chess.Square) {
	switch sq {
	case chess.A1:
		board.Castling[chess.White].Queenside = false
	case chess.H1:
		board.Castling[chess.White].Kingside = false
	case chess.A8:
		board.Castling[chess.Black].Queenside = false
	case chess.H8:
		board.Castling[chess.Black].Kingside = false
	}
}
