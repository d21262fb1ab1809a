package worker

import (
	"math/rand"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/notation"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// Analyzer chooses a move for each submitted position.
type Analyzer struct {
	Policy search.Policy
	Depth  int

	// Seed makes the random policy repeatable; each item uses Seed+Index.
	// Zero seeds from the clock.
	Seed int64
}

// Process is a ProcessFunc that parses the item's FEN and applies the
// analyzer's policy to it.
func (a Analyzer) Process(item WorkItem) ProcessResult {
	result := ProcessResult{Index: item.Index, FEN: item.FEN}

	board, err := engine.NewBoardFromFEN(item.FEN)
	if err != nil {
		result.Error = err
		return result
	}

	switch {
	case engine.IsCheckmate(board, board.ToMove):
		result.Outcome = "checkmate"
		return result
	case engine.IsStalemate(board, board.ToMove):
		result.Outcome = "stalemate"
		return result
	}

	pos := search.NewPosition(board)
	move, ok := a.Policy.Choose(pos, a.Depth, a.rng(item.Index))
	if !ok {
		return result
	}

	result.Move = move
	result.Found = true
	result.SAN = notation.EncodeSAN(board, move)
	result.Score = search.ScoreMove(pos, move, a.Depth)
	return result
}

func (a Analyzer) rng(index int) *rand.Rand {
	seed := a.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed + int64(index)))
}
