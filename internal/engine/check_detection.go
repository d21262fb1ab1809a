package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king (a test-only position) is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.KingSquare(colour)
	if !king.IsValid() {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour has sq among its
// pseudo-legal capture destinations.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks: a pawn of byColour attacks from one rank behind.
	pawn := chess.Piece{Kind: chess.Pawn, Colour: byColour}
	pawnDir := -chess.ColourOffset(byColour)
	for _, df := range []int{-1, 1} {
		if from, ok := sq.Offset(df, pawnDir); ok && board.Get(from) == pawn {
			return true
		}
	}

	// Check knight and king attacks
	if attackedByStep(board, sq, chess.Piece{Kind: chess.Knight, Colour: byColour}, knightOffsets) {
		return true
	}
	if attackedByStep(board, sq, chess.Piece{Kind: chess.King, Colour: byColour}, kingOffsets) {
		return true
	}

	// Check sliding pieces along diagonals and straight lines
	queen := chess.Piece{Kind: chess.Queen, Colour: byColour}
	bishop := chess.Piece{Kind: chess.Bishop, Colour: byColour}
	rook := chess.Piece{Kind: chess.Rook, Colour: byColour}
	if attackedBySlider(board, sq, diagonalDirs, bishop, queen) {
		return true
	}
	return attackedBySlider(board, sq, straightDirs, rook, queen)
}

func attackedByStep(board *chess.Board, sq chess.Square, attacker chess.Piece, offsets [][2]int) bool {
	for _, offset := range offsets {
		if from, ok := sq.Offset(offset[0], offset[1]); ok && board.Get(from) == attacker {
			return true
		}
	}
	return false
}

func attackedBySlider(board *chess.Board, sq chess.Square, dirs [][2]int, slider, queen chess.Piece) bool {
	for _, dir := range dirs {
		from, ok := sq.Offset(dir[0], dir[1])
		for ok {
			piece := board.Get(from)
			if !piece.IsEmpty() {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			from, ok = from.Offset(dir[0], dir[1])
		}
	}
	return false
}
