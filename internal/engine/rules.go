package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var minors [2][]chess.PieceKind
	var bishopOnLight [2]bool

	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Get(sq)
		switch piece.Kind {
		case chess.NoKind, chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			// Any pawn, rook, or queen means sufficient material
			return false
		case chess.Bishop:
			bishopOnLight[piece.Colour] = sq.IsLight()
		}
		minors[piece.Colour] = append(minors[piece.Colour], piece.Kind)
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1, len(black) == 0 && len(white) == 1:
		// A lone bishop or knight cannot mate
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0] == chess.Bishop && black[0] == chess.Bishop &&
			bishopOnLight[chess.White] == bishopOnLight[chess.Black]
	}
	return false
}
