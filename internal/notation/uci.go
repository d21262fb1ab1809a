package notation

import (
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// ParseUCI resolves long algebraic text such as "e2e4" or "e7e8q" to the
// legal move it names. Castling is written as the king's two squares.
func ParseUCI(board *chess.Board, text string) (chess.Move, error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, errors.Wrapf(errors.ErrInvalidMove, "%q is not UCI", text)
	}

	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return chess.Move{}, errors.Wrapf(errors.ErrInvalidMove, "%q: %v", text, err)
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return chess.Move{}, errors.Wrapf(errors.ErrInvalidMove, "%q: %v", text, err)
	}
	promotion := chess.NoKind
	if len(text) == 5 {
		promotion = chess.KindFromLetter(text[4])
		if promotion == chess.NoKind || promotion == chess.Pawn || promotion == chess.King {
			return chess.Move{}, errors.Wrapf(errors.ErrInvalidMove, "%q: bad promotion", text)
		}
	}

	for _, move := range engine.LegalMovesFrom(board, from) {
		if move.To == to && move.Promotion == promotion && board.Get(from).Colour == board.ToMove {
			return move, nil
		}
	}
	return chess.Move{}, errors.Wrapf(errors.ErrInvalidMove, "%q", text)
}

// EncodeUCI renders move as long algebraic text.
func EncodeUCI(move chess.Move) string {
	return move.String()
}
