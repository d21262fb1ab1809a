package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// MoveCount pairs a root move with the number of leaf positions below it.
type MoveCount struct {
	Move  chess.Move
	Nodes uint64
}

// Perft counts the leaf positions reachable from board in exactly depth plies.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := GenerateLegalMoves(board, board.ToMove)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		next := *board
		PlayMove(&next, move)
		nodes += Perft(&next, depth-1)
	}
	return nodes
}

// Divide reports the perft count below each legal root move, in generation order.
func Divide(board *chess.Board, depth int) []MoveCount {
	moves := GenerateLegalMoves(board, board.ToMove)
	counts := make([]MoveCount, 0, len(moves))
	for _, move := range moves {
		next := *board
		PlayMove(&next, move)
		counts = append(counts, MoveCount{Move: move, Nodes: Perft(&next, depth-1)})
	}
	return counts
}
