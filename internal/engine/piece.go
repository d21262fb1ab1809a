package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Movement templates as (file delta, rank delta) pairs.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs     = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// Destinations returns the pseudo-legal destination squares of the piece
// standing on from. Only occupancy is considered: sliding pieces stop at the
// first blocker (including it when it is hostile), and pawns may advance two
// squares only from their second rank. Check safety, en passant and castling
// are the board's concern.
func Destinations(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.Get(from)

	switch piece.Kind {
	case chess.Pawn:
		return pawnDestinations(board, from, piece.Colour)
	case chess.Knight:
		return stepDestinations(board, from, piece.Colour, knightOffsets)
	case chess.King:
		return stepDestinations(board, from, piece.Colour, kingOffsets)
	case chess.Bishop:
		return slidingDestinations(board, from, piece.Colour, diagonalDirs)
	case chess.Rook:
		return slidingDestinations(board, from, piece.Colour, straightDirs)
	case chess.Queen:
		return slidingDestinations(board, from, piece.Colour, queenDirs)
	}
	return nil
}

// stepDestinations handles knights and kings.
func stepDestinations(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var targets []chess.Square
	for _, offset := range offsets {
		to, ok := from.Offset(offset[0], offset[1])
		if !ok {
			continue
		}
		target := board.Get(to)
		if target.IsEmpty() || target.Colour != colour {
			targets = append(targets, to)
		}
	}
	return targets
}

// slidingDestinations handles bishops, rooks and queens.
func slidingDestinations(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var targets []chess.Square
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					targets = append(targets, to)
				}
				break // Blocked
			}
			targets = append(targets, to)
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return targets
}

// pawnDestinations returns pushes and ordinary diagonal captures.
func pawnDestinations(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	var targets []chess.Square
	dir := chess.ColourOffset(colour)

	if one, ok := from.Offset(0, dir); ok && board.IsEmpty(one) {
		targets = append(targets, one)
		if from.Rank() == chess.PawnRank(colour) {
			if two, ok := from.Offset(0, 2*dir); ok && board.IsEmpty(two) {
				targets = append(targets, two)
			}
		}
	}

	for _, df := range []int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		if target := board.Get(to); !target.IsEmpty() && target.Colour != colour {
			targets = append(targets, to)
		}
	}
	return targets
}
