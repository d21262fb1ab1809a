// Package search chooses moves by minimax with alpha-beta pruning over any
// position that implements Evaluator.
package search

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Evaluator is the capability a position needs to be searched.
// ApplyEvalMove must return a new state and leave the receiver untouched,
// so sibling branches never observe each other's moves.
type Evaluator interface {
	Turn() chess.Colour
	InCheck() bool
	ValueFor(colour chess.Colour) int
	LegalMoves(colour chess.Colour) []chess.Move
	ApplyEvalMove(move chess.Move) Evaluator
}

// Position is a board-backed Evaluator scored by material plus
// piece-square bonuses.
type Position struct {
	board chess.Board
}

// NewPosition copies board into a searchable position. Both kings must be
// present; a board without them is a programming error and panics.
func NewPosition(board *chess.Board) *Position {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if board.KingSquare(colour) == chess.NoSquare {
			panic(fmt.Sprintf("search: position has no %v king", colour))
		}
	}
	return &Position{board: *board}
}

// Board returns a copy of the underlying board.
func (p *Position) Board() chess.Board {
	return p.board
}

func (p *Position) Turn() chess.Colour {
	return p.board.ToMove
}

func (p *Position) InCheck() bool {
	return engine.IsInCheck(&p.board, p.board.ToMove)
}

// ValueFor returns the material and positional balance from colour's side:
// positive favours colour. Kings carry no material value.
func (p *Position) ValueFor(colour chess.Colour) int {
	score := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := p.board.Get(sq)
		if piece.IsEmpty() {
			continue
		}
		value := piece.Kind.Value() + chess.PositionalBonus(piece, sq)
		if piece.Colour == colour {
			score += value
		} else {
			score -= value
		}
	}
	return score
}

func (p *Position) LegalMoves(colour chess.Colour) []chess.Move {
	return engine.GenerateLegalMoves(&p.board, colour)
}

func (p *Position) ApplyEvalMove(move chess.Move) Evaluator {
	next := &Position{board: p.board}
	engine.PlayMove(&next.board, move)
	return next
}
