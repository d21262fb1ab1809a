package search

import (
	"math"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// MateScore is the magnitude of a checkmate score before the remaining
// depth is added, so quicker mates score further from zero.
const MateScore = 1_000_000

const (
	minScore = math.MinInt
	maxScore = math.MaxInt
)

// Minimax searches depth plies below e and returns the score from
// maximize's side together with the best move found at this node.
// ok is false when the node is terminal and no move was searched.
//
// Moves are tried in generation order and only a strictly better score
// replaces the current best, so ties keep the earliest move.
func Minimax(e Evaluator, depth int, maximize chess.Colour, alpha, beta int) (score int, best chess.Move, ok bool) {
	turn := e.Turn()
	moves := e.LegalMoves(turn)
	if len(moves) == 0 {
		if !e.InCheck() {
			return 0, chess.Move{}, false
		}
		mate := MateScore + depth
		if turn == maximize {
			return -mate, chess.Move{}, false
		}
		return mate, chess.Move{}, false
	}
	if depth <= 0 {
		return e.ValueFor(maximize), chess.Move{}, false
	}

	if turn == maximize {
		score = minScore
		for _, move := range moves {
			child, _, _ := Minimax(e.ApplyEvalMove(move), depth-1, maximize, alpha, beta)
			if child > score {
				score, best = child, move
			}
			alpha = max(alpha, score)
			if alpha >= beta {
				break
			}
		}
		return score, best, true
	}

	score = maxScore
	for _, move := range moves {
		child, _, _ := Minimax(e.ApplyEvalMove(move), depth-1, maximize, alpha, beta)
		if child < score {
			score, best = child, move
		}
		beta = min(beta, score)
		if alpha >= beta {
			break
		}
	}
	return score, best, true
}

// Analyse runs a full-window search for the side to move and returns its
// score and chosen move. Depths below one are searched at one ply.
func Analyse(e Evaluator, depth int) (int, chess.Move, bool) {
	return Minimax(e, max(depth, 1), e.Turn(), minScore, maxScore)
}

// BestNextMove returns the move minimax prefers for the side to move.
// ok is false when the side to move has no legal moves.
func BestNextMove(e Evaluator, depth int) (chess.Move, bool) {
	_, move, ok := Analyse(e, depth)
	return move, ok
}

// WorstNextMove returns the move that leaves the opponent best off,
// assuming both sides play their best afterwards.
func WorstNextMove(e Evaluator, depth int) (chess.Move, bool) {
	opponent := e.Turn().Opposite()
	var worst chess.Move
	found := false
	score := minScore
	for _, move := range e.LegalMoves(e.Turn()) {
		child, _, _ := Minimax(e.ApplyEvalMove(move), max(depth, 1)-1, opponent, minScore, maxScore)
		if !found || child > score {
			score, worst, found = child, move, true
		}
	}
	return worst, found
}

// ScoreMove returns the minimax score of playing move from e, from the
// mover's side, searching the reply tree to depth-1 plies.
func ScoreMove(e Evaluator, move chess.Move, depth int) int {
	score, _, _ := Minimax(e.ApplyEvalMove(move), max(depth, 1)-1, e.Turn(), minScore, maxScore)
	return score
}
