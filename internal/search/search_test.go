package search

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

const (
	foolsMateFEN = "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2"
	backRankFEN  = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
	hangingFEN   = "4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1"
	matedFEN     = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	stalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
)

func position(t *testing.T, fen string) *Position {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	require.NoError(t, err)
	return NewPosition(board)
}

// fullMinimax is minimax without pruning, used to check that pruning never
// changes the result.
func fullMinimax(e Evaluator, depth int, maximize chess.Colour) (int, chess.Move) {
	turn := e.Turn()
	moves := e.LegalMoves(turn)
	if len(moves) == 0 {
		if !e.InCheck() {
			return 0, chess.Move{}
		}
		if turn == maximize {
			return -(MateScore + depth), chess.Move{}
		}
		return MateScore + depth, chess.Move{}
	}
	if depth == 0 {
		return e.ValueFor(maximize), chess.Move{}
	}

	var best chess.Move
	bestScore := 0
	for i, move := range moves {
		score, _ := fullMinimax(e.ApplyEvalMove(move), depth-1, maximize)
		better := score > bestScore
		if turn != maximize {
			better = score < bestScore
		}
		if i == 0 || better {
			bestScore, best = score, move
		}
	}
	return bestScore, best
}

func TestBestNextMove(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  chess.Move
	}{
		{"mate in one for black", foolsMateFEN, 1, chess.Normal(chess.D8, chess.H4)},
		{"mate in one at depth two", foolsMateFEN, 2, chess.Normal(chess.D8, chess.H4)},
		{"back rank mate", backRankFEN, 1, chess.Normal(chess.A1, chess.A8)},
		{"back rank mate preferred over slower wins", backRankFEN, 3, chess.Normal(chess.A1, chess.A8)},
		{"win the queen", hangingFEN, 1, chess.Capture(chess.D2, chess.D5)},
		{"win the queen at depth two", hangingFEN, 2, chess.Capture(chess.D2, chess.D5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move, ok := BestNextMove(position(t, tt.fen), tt.depth)
			require.True(t, ok)
			assert.Equal(t, tt.want, move)
		})
	}
}

func TestAnalyse_MateScore(t *testing.T) {
	score, move, ok := Analyse(position(t, backRankFEN), 3)
	require.True(t, ok)
	assert.Equal(t, chess.Normal(chess.A1, chess.A8), move)
	// Mate is found with two plies of depth left unused.
	assert.Equal(t, MateScore+2, score)
}

func TestTerminalPositions(t *testing.T) {
	t.Run("checkmated side has no move", func(t *testing.T) {
		pos := position(t, matedFEN)
		_, ok := BestNextMove(pos, 2)
		assert.False(t, ok)

		score, _, ok := Minimax(pos, 2, chess.White, minScore, maxScore)
		assert.False(t, ok)
		assert.Equal(t, -(MateScore + 2), score)

		score, _, _ = Minimax(pos, 2, chess.Black, minScore, maxScore)
		assert.Equal(t, MateScore+2, score)
	})

	t.Run("stalemate scores zero", func(t *testing.T) {
		pos := position(t, stalemateFEN)
		score, _, ok := Minimax(pos, 3, chess.White, minScore, maxScore)
		assert.False(t, ok)
		assert.Zero(t, score)

		_, ok = WorstNextMove(pos, 2)
		assert.False(t, ok)
		_, ok = RandomMove(pos, rand.New(rand.NewSource(1)))
		assert.False(t, ok)
	})
}

func TestPruningMatchesFullSearch(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
	}{
		{"initial", engine.InitialFEN, 3},
		{"kiwipete", kiwipeteFEN, 2},
		{"hanging queen", hangingFEN, 3},
		{"back rank", backRankFEN, 3},
		{"rook endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := position(t, tt.fen)
			wantScore, wantMove := fullMinimax(pos, tt.depth, pos.Turn())
			score, move, ok := Analyse(pos, tt.depth)
			require.True(t, ok)
			assert.Equal(t, wantScore, score)
			assert.Equal(t, wantMove, move)
		})
	}
}

func TestPosition_ValueFor(t *testing.T) {
	pos := position(t, engine.InitialFEN)
	assert.Zero(t, pos.ValueFor(chess.White))
	assert.Zero(t, pos.ValueFor(chess.Black))

	up := position(t, hangingFEN)
	assert.Equal(t, -up.ValueFor(chess.White), up.ValueFor(chess.Black))
	assert.Less(t, up.ValueFor(chess.White), 0, "white is a queen for a rook down")
}

func TestPosition_ApplyEvalMoveKeepsOriginal(t *testing.T) {
	pos := position(t, engine.InitialFEN)
	before := pos.Board()

	next := pos.ApplyEvalMove(chess.Normal(chess.E2, chess.E4))

	assert.Equal(t, before, pos.Board())
	assert.Equal(t, chess.White, pos.Turn())
	assert.Equal(t, chess.Black, next.Turn())

	nextBoard := next.(*Position).Board()
	assert.Equal(t, chess.W(chess.Pawn), nextBoard.Get(chess.E4))
}

func TestNewPosition_PanicsWithoutKing(t *testing.T) {
	board := chess.NewBoard()
	board.Set(chess.E1, chess.W(chess.King))
	assert.Panics(t, func() { NewPosition(board) })
}

func TestWorstNextMove(t *testing.T) {
	pos := position(t, hangingFEN)
	move, ok := WorstNextMove(pos, 2)
	require.True(t, ok)
	assert.NotEqual(t, chess.Capture(chess.D2, chess.D5), move)
	assert.Contains(t, pos.LegalMoves(chess.White), move)

	// The chosen move must leave black at least as well off as the best move does.
	best, _ := BestNextMove(pos, 2)
	worstScore, _, _ := Minimax(pos.ApplyEvalMove(move), 1, chess.Black, minScore, maxScore)
	bestScore, _, _ := Minimax(pos.ApplyEvalMove(best), 1, chess.Black, minScore, maxScore)
	assert.GreaterOrEqual(t, worstScore, bestScore)
}

func TestRandomMove(t *testing.T) {
	pos := position(t, engine.InitialFEN)
	legal := pos.LegalMoves(chess.White)

	first, ok := RandomMove(pos, rand.New(rand.NewSource(42)))
	require.True(t, ok)
	assert.Contains(t, legal, first)

	again, _ := RandomMove(pos, rand.New(rand.NewSource(42)))
	assert.Equal(t, first, again, "same seed gives the same move")
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		name    string
		want    Policy
		wantErr bool
	}{
		{name: "best", want: PolicyBest},
		{name: "worst", want: PolicyWorst},
		{name: "Random", want: PolicyRandom},
		{name: " best ", want: PolicyBest},
		{name: "greedy", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePolicy(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, name string) Policy {
	t.Helper()
	p, err := ParsePolicy(name)
	require.NoError(t, err)
	return p
}

func TestPolicy_Choose(t *testing.T) {
	pos := position(t, hangingFEN)
	rng := rand.New(rand.NewSource(7))

	move, ok := PolicyBest.Choose(pos, 1, nil)
	require.True(t, ok)
	assert.Equal(t, chess.Capture(chess.D2, chess.D5), move)

	move, ok = PolicyWorst.Choose(pos, 1, nil)
	require.True(t, ok)
	assert.NotEqual(t, chess.Capture(chess.D2, chess.D5), move)

	move, ok = PolicyRandom.Choose(pos, 1, rng)
	require.True(t, ok)
	assert.Contains(t, pos.LegalMoves(chess.White), move)
}

func TestScoreMove_MatchesAnalyse(t *testing.T) {
	for _, fen := range []string{engine.InitialFEN, hangingFEN, backRankFEN} {
		pos := position(t, fen)
		score, move, ok := Analyse(pos, 2)
		require.True(t, ok)
		assert.Equal(t, score, ScoreMove(pos, move, 2), fen)
	}
}
