package engine

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.E1) == chess.W(chess.King) &&
					b.Get(chess.E8) == chess.B(chess.King) &&
					b.Get(chess.E2) == chess.W(chess.Pawn) &&
					b.Get(chess.E7) == chess.B(chess.Pawn) &&
					b.ToMove == chess.White &&
					b.CanCastle(chess.White, chess.Kingside) &&
					b.CanCastle(chess.Black, chess.Queenside)
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.E4) == chess.W(chess.Pawn) &&
					b.IsEmpty(chess.E2) &&
					b.ToMove == chess.Black &&
					b.EnPassant == chess.E3
			},
		},
		{
			name: "sicilian defence",
			fen:  "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.C5) == chess.B(chess.Pawn) &&
					b.Get(chess.E4) == chess.W(chess.Pawn) &&
					b.EnPassant == chess.C6
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Castling == [2]chess.CastlingRights{}
			},
		},
		{
			name: "kings tracked",
			fen:  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.KingSquare(chess.White) == chess.A5 &&
					b.KingSquare(chess.Black) == chess.H4
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN() board check failed")
			}
		})
	}
}

func TestParseFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/8/8/8/8/4K3 b - - 49 120",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			snap, err := ParseFEN(fen)
			if err != nil {
				t.Fatalf("ParseFEN() error = %v", err)
			}
			testutil.AssertEqual(t, snap.FEN(), fen, "round trip")
		})
	}
}

func TestParseFEN_Counters(t *testing.T) {
	snap, err := ParseFEN("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")
	if err != nil {
		t.Fatalf("ParseFEN() error = %v", err)
	}
	if snap.HalfmoveClock != 1 || snap.FullmoveNumber != 8 {
		t.Errorf("counters = %d %d, want 1 8", snap.HalfmoveClock, snap.FullmoveNumber)
	}
}

func TestParseFEN_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		field string
	}{
		{"empty string", "", "FEN"},
		{"five fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", "FEN"},
		{"seven fields", InitialFEN + " extra", "FEN"},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "piece placement"},
		{"bad piece letter", "rnbqkbnr/ppppXppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "piece placement"},
		{"rank too long", "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "piece placement"},
		{"rank too short", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "piece placement"},
		{"digit overflow", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "piece placement"},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", "side to move"},
		{"bad castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkz - 0 1", "castling"},
		{"duplicate castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KK - 0 1", "castling"},
		{"en passant not a square", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", "en passant"},
		{"en passant wrong rank", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e4 0 1", "en passant"},
		{"en passant without pawn", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e6 0 1", "en passant"},
		{"negative halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1", "halfmove clock"},
		{"zero fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0", "fullmove number"},
		{"text fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 one", "fullmove number"},
		{"missing white king", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQ1BNR w kq - 0 1", "position"},
		{"two black kings", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNk w KQkq - 0 1", "position"},
		{"pawn on back rank", "Pnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "position"},
		{"side not to move in check", "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1", "position"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFEN(tt.fen)
			if !errors.Is(err, errors.ErrInvalidPosition) {
				t.Fatalf("ParseFEN() error = %v, want ErrInvalidPosition", err)
			}
			var fenErr *errors.FENError
			if !errors.As(err, &fenErr) {
				t.Fatalf("ParseFEN() error %T is not a *FENError", err)
			}
			if fenErr.Field != tt.field {
				t.Errorf("FENError.Field = %q, want %q", fenErr.Field, tt.field)
			}
		})
	}
}

func TestBoardToFEN(t *testing.T) {
	board := NewInitialBoard()
	got := BoardToFEN(board, 3, 7)
	if !strings.HasSuffix(got, "w KQkq - 3 7") {
		t.Errorf("BoardToFEN() = %q, want counters 3 7", got)
	}

	PlayMove(board, chess.Normal(chess.E2, chess.E4))
	testutil.AssertEqual(t, BoardToFEN(board, 0, 1),
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
}
