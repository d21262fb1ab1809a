// Package game runs a single chess match: it resolves SAN moves, tracks
// draw offers and move counters, and reports when the game is over.
// A Game is not safe for concurrent use.
package game

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/notation"
)

// Game owns one board and the match state around it.
type Game struct {
	board  chess.Board
	status Status

	drawOffered   bool
	drawOfferedBy chess.Colour

	halfmoveClock  int
	fullmoveNumber int
	history        []string
}

// NewGame starts a game from the standard initial position.
func NewGame() *Game {
	return &Game{
		board:          *engine.NewInitialBoard(),
		fullmoveNumber: 1,
	}
}

// NewGameFromFEN starts a game from a FEN position, keeping its move
// counters. A position that is already mate or stalemate starts over.
func NewGameFromFEN(fen string) (*Game, error) {
	snap, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, &errors.GameError{Err: err, Action: "load FEN"}
	}
	g := &Game{
		board:          snap.Board,
		halfmoveClock:  snap.HalfmoveClock,
		fullmoveNumber: snap.FullmoveNumber,
	}
	g.updateStatus()
	return g, nil
}

// MakeMove applies action and returns the resulting status. Failures are
// *errors.GameError values wrapping ErrInvalidMove, ErrAmbiguousMove or
// ErrGameAlreadyOver, and leave the game unchanged.
func (g *Game) MakeMove(action Action) (Status, error) {
	if g.status.IsOver() {
		return g.status, g.fail(action, errors.ErrGameAlreadyOver)
	}

	switch action.Kind {
	case MoveAction, OfferDrawAction:
		if err := g.playSAN(action.SAN); err != nil {
			return g.status, g.fail(action, err)
		}
		g.drawOffered = action.Kind == OfferDrawAction
		g.drawOfferedBy = g.board.ToMove.Opposite()
		g.updateStatus()

	case AcceptDrawAction:
		if !g.drawOffered || g.drawOfferedBy == g.board.ToMove {
			return g.status, g.fail(action, errors.Wrap(errors.ErrInvalidMove, "no draw offered"))
		}
		g.status = DrawAccepted

	case ResignAction:
		g.drawOffered = false
		if g.board.ToMove == chess.White {
			g.status = WhiteResigns
		} else {
			g.status = BlackResigns
		}

	default:
		return g.status, g.fail(action, errors.Wrapf(errors.ErrInvalidMove, "unknown action %d", action.Kind))
	}
	return g.status, nil
}

// playSAN resolves san on the current board and plays it.
func (g *Game) playSAN(san string) error {
	move, err := notation.ParseSAN(&g.board, san)
	if err != nil {
		return err
	}

	text := notation.EncodeSAN(&g.board, move)
	mover := g.board.Get(move.From)
	captured := engine.PlayMove(&g.board, move)

	if mover.Kind == chess.Pawn || !captured.IsEmpty() {
		g.halfmoveClock = 0
	} else {
		g.halfmoveClock++
	}
	if mover.Colour == chess.Black {
		g.fullmoveNumber++
	}
	g.history = append(g.history, text)
	return nil
}

// updateStatus ends the game when the side to move is mated or stalemated.
func (g *Game) updateStatus() {
	turn := g.board.ToMove
	if engine.HasLegalMoves(&g.board, turn) {
		return
	}
	switch {
	case !engine.IsInCheck(&g.board, turn):
		g.status = Stalemate
	case turn == chess.White:
		g.status = BlackCheckmates
	default:
		g.status = WhiteCheckmates
	}
	g.drawOffered = false
}

func (g *Game) fail(action Action, err error) error {
	return &errors.GameError{
		Err:      err,
		PlyNum:   len(g.history) + 1,
		Action:   action.Kind.String(),
		MoveText: action.SAN,
	}
}

// TurnColour returns the side expected to act next.
func (g *Game) TurnColour() chess.Colour {
	return g.board.ToMove
}

// Status returns the current game status.
func (g *Game) Status() Status {
	return g.status
}

// Board returns a copy of the current board.
func (g *Game) Board() chess.Board {
	return g.board
}

// DrawOffered reports whether the side to move may accept a draw.
func (g *Game) DrawOffered() bool {
	return g.drawOffered && g.drawOfferedBy != g.board.ToMove
}

// History returns the SAN of every move played so far.
func (g *Game) History() []string {
	return append([]string(nil), g.history...)
}

// HalfmoveClock returns the plies since the last capture or pawn move.
func (g *Game) HalfmoveClock() int {
	return g.halfmoveClock
}

// FullmoveNumber returns the number of the move in progress.
func (g *Game) FullmoveNumber() int {
	return g.fullmoveNumber
}

// ToFEN renders the board with caller-supplied move counters.
func (g *Game) ToFEN(halfmoveClock, fullmoveNumber int) string {
	return engine.BoardToFEN(&g.board, halfmoveClock, fullmoveNumber)
}

// FEN renders the board with the counters the game has tracked.
func (g *Game) FEN() string {
	return g.ToFEN(g.halfmoveClock, g.fullmoveNumber)
}
