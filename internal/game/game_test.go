package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

func play(t *testing.T, g *Game, moves ...string) Status {
	t.Helper()
	var status Status
	for _, san := range moves {
		var err error
		status, err = g.MakeMove(MakeMove(san))
		require.NoError(t, err, "move %s", san)
	}
	return status
}

func TestNewGame(t *testing.T) {
	g := NewGame()
	assert.Equal(t, Ongoing, g.Status())
	assert.Equal(t, chess.White, g.TurnColour())
	assert.Equal(t, engine.InitialFEN, g.FEN())
	assert.Empty(t, g.History())
	assert.False(t, g.DrawOffered())
}

func TestMakeMove_Checkmates(t *testing.T) {
	tests := []struct {
		name   string
		moves  []string
		want   Status
		result string
	}{
		{"fool's mate", []string{"f3", "e5", "g4", "Qh4#"}, BlackCheckmates, "0-1"},
		{"scholar's mate", []string{"e4", "e5", "Bc4", "Nc6", "Qh5", "Nf6", "Qxf7#"}, WhiteCheckmates, "1-0"},
		{"mate without suffix", []string{"f3", "e5", "g4", "Qh4"}, BlackCheckmates, "0-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame()
			status := play(t, g, tt.moves...)
			assert.Equal(t, tt.want, status)
			assert.Equal(t, tt.want, g.Status())
			assert.Equal(t, tt.result, status.Result())
			assert.True(t, status.IsOver())
		})
	}
}

func TestMakeMove_AfterGameOver(t *testing.T) {
	g := NewGame()
	play(t, g, "f3", "e5", "g4", "Qh4#")
	fen := g.FEN()

	for _, action := range []Action{MakeMove("e4"), OfferDraw("e4"), AcceptDraw(), Resign()} {
		status, err := g.MakeMove(action)
		assert.ErrorIs(t, err, errors.ErrGameAlreadyOver, action.String())
		assert.Equal(t, BlackCheckmates, status)
	}
	assert.Equal(t, fen, g.FEN(), "board must not change after the game ends")
}

func TestMakeMove_Stalemate(t *testing.T) {
	g, err := NewGameFromFEN("7k/8/4Q1K1/8/8/8/8/8 w - - 10 60")
	require.NoError(t, err)

	status := play(t, g, "Qf7")
	assert.Equal(t, Stalemate, status)
	assert.Equal(t, "1/2-1/2", status.Result())
	assert.Equal(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 11 60", g.FEN())
}

func TestMakeMove_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		san  string
		want error
	}{
		{"illegal move", engine.InitialFEN, "e5", errors.ErrInvalidMove},
		{"not SAN", engine.InitialFEN, "hello", errors.ErrInvalidMove},
		{"ambiguous rook move", "4k3/8/8/8/8/8/4K3/R6R w - - 0 1", "Rd1", errors.ErrAmbiguousMove},
		{"ambiguous knight move", "4k3/8/8/1N6/8/8/4K3/1N6 w - - 0 1", "Nc3", errors.ErrAmbiguousMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGameFromFEN(tt.fen)
			require.NoError(t, err)
			before := g.FEN()

			status, err := g.MakeMove(MakeMove(tt.san))
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, Ongoing, status)
			assert.Equal(t, before, g.FEN())

			var gameErr *errors.GameError
			require.ErrorAs(t, err, &gameErr)
			assert.Equal(t, tt.san, gameErr.MoveText)
			assert.Equal(t, 1, gameErr.PlyNum)
		})
	}
}

func TestDrawOffers(t *testing.T) {
	t.Run("offer accepted", func(t *testing.T) {
		g := NewGame()
		status, err := g.MakeMove(OfferDraw("e4"))
		require.NoError(t, err)
		assert.Equal(t, Ongoing, status)
		assert.True(t, g.DrawOffered())
		assert.Equal(t, chess.Black, g.TurnColour())

		status, err = g.MakeMove(AcceptDraw())
		require.NoError(t, err)
		assert.Equal(t, DrawAccepted, status)
		assert.Equal(t, "1/2-1/2", status.Result())
	})

	t.Run("offer withdrawn by the next move", func(t *testing.T) {
		g := NewGame()
		_, err := g.MakeMove(OfferDraw("e4"))
		require.NoError(t, err)
		play(t, g, "e5")
		assert.False(t, g.DrawOffered())

		_, err = g.MakeMove(AcceptDraw())
		assert.ErrorIs(t, err, errors.ErrInvalidMove)
		assert.Equal(t, Ongoing, g.Status())
	})

	t.Run("accept without offer", func(t *testing.T) {
		g := NewGame()
		status, err := g.MakeMove(AcceptDraw())
		assert.ErrorIs(t, err, errors.ErrInvalidMove)
		assert.Equal(t, Ongoing, status)
	})

	t.Run("offer with an illegal move", func(t *testing.T) {
		g := NewGame()
		_, err := g.MakeMove(OfferDraw("e5"))
		assert.ErrorIs(t, err, errors.ErrInvalidMove)
		assert.False(t, g.DrawOffered())
		assert.Equal(t, chess.White, g.TurnColour())
	})

	t.Run("counter offer", func(t *testing.T) {
		g := NewGame()
		_, err := g.MakeMove(OfferDraw("e4"))
		require.NoError(t, err)
		_, err = g.MakeMove(OfferDraw("e5"))
		require.NoError(t, err)
		assert.True(t, g.DrawOffered())

		status, err := g.MakeMove(AcceptDraw())
		require.NoError(t, err)
		assert.Equal(t, DrawAccepted, status)
	})
}

func TestResign(t *testing.T) {
	g := NewGame()
	status, err := g.MakeMove(Resign())
	require.NoError(t, err)
	assert.Equal(t, WhiteResigns, status)
	assert.Equal(t, "0-1", status.Result())

	g = NewGame()
	play(t, g, "e4")
	status, err = g.MakeMove(Resign())
	require.NoError(t, err)
	assert.Equal(t, BlackResigns, status)
	assert.Equal(t, "1-0", status.Result())
}

func TestCountersAndHistory(t *testing.T) {
	g := NewGame()
	play(t, g, "e4", "e5", "Nf3")

	assert.Equal(t, 1, g.HalfmoveClock())
	assert.Equal(t, 2, g.FullmoveNumber())
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2", g.FEN())
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 7 30", g.ToFEN(7, 30))

	play(t, g, "Nc6", "Bb5", "Nf6", "O-O")
	assert.Equal(t, []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "Nf6", "O-O"}, g.History())
	assert.Equal(t, 5, g.HalfmoveClock())
	assert.Equal(t, 4, g.FullmoveNumber())

	// History hands out a copy.
	h := g.History()
	h[0] = "d4"
	assert.Equal(t, "e4", g.History()[0])
}

func TestPromotionAndCapture(t *testing.T) {
	g, err := NewGameFromFEN("1r5k/P7/8/8/8/8/8/7K w - - 3 40")
	require.NoError(t, err)

	play(t, g, "axb8=Q+")
	board := g.Board()
	assert.Equal(t, chess.W(chess.Queen), board.Get(chess.B8))
	assert.True(t, board.IsEmpty(chess.A7))
	assert.Equal(t, 0, g.HalfmoveClock())
	assert.Equal(t, []string{"axb8=Q+"}, g.History())
}

func TestBoardIsACopy(t *testing.T) {
	g := NewGame()
	board := g.Board()
	board.Set(chess.E2, chess.NoPiece)
	assert.Equal(t, engine.InitialFEN, g.FEN())
}

func TestNewGameFromFEN(t *testing.T) {
	t.Run("invalid", func(t *testing.T) {
		_, err := NewGameFromFEN("not a fen")
		assert.ErrorIs(t, err, errors.ErrInvalidPosition)
	})

	t.Run("already mated", func(t *testing.T) {
		g, err := NewGameFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
		require.NoError(t, err)
		assert.Equal(t, BlackCheckmates, g.Status())

		_, err = g.MakeMove(Resign())
		assert.ErrorIs(t, err, errors.ErrGameAlreadyOver)
	})

	t.Run("keeps counters", func(t *testing.T) {
		fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
		g, err := NewGameFromFEN(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, g.FEN())

		play(t, g, "O-O-O")
		assert.Equal(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/2KR3R b kq - 1 1", g.FEN())
	})
}

func TestActionAndStatusStrings(t *testing.T) {
	assert.Equal(t, "move e4", MakeMove("e4").String())
	assert.Equal(t, "offer draw Nf3", OfferDraw("Nf3").String())
	assert.Equal(t, "accept draw", AcceptDraw().String())
	assert.Equal(t, "resign", Resign().String())
	assert.Equal(t, "ongoing", Ongoing.String())
	assert.Equal(t, "*", Ongoing.Result())
	assert.Equal(t, "white checkmates", WhiteCheckmates.String())
}
