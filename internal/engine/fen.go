package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Snapshot is a position read from FEN: the board plus the move counters
// that the board itself does not own.
type Snapshot struct {
	Board          chess.Board
	HalfmoveClock  int
	FullmoveNumber int
}

// FEN renders the snapshot back to a FEN string.
func (s Snapshot) FEN() string {
	return BoardToFEN(&s.Board, s.HalfmoveClock, s.FullmoveNumber)
}

// fenError builds an ErrInvalidPosition failure for one FEN field.
func fenError(field, got, format string, args ...interface{}) error {
	return &errors.FENError{
		Err:   errors.ErrInvalidPosition,
		Field: field,
		Got:   got,
		Msg:   fmt.Sprintf(format, args...),
	}
}

// ParseFEN parses all six FEN fields and validates the resulting position.
func ParseFEN(fen string) (Snapshot, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return Snapshot{}, fenError("FEN", fen, "expected 6 fields, got %d", len(parts))
	}

	snap := Snapshot{Board: *chess.NewBoard()}
	board := &snap.Board

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return Snapshot{}, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return Snapshot{}, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return Snapshot{}, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return Snapshot{}, err
	}

	var err error
	if snap.HalfmoveClock, err = parseCounter("halfmove clock", parts[4], 0); err != nil {
		return Snapshot{}, err
	}
	if snap.FullmoveNumber, err = parseCounter("fullmove number", parts[5], 1); err != nil {
		return Snapshot{}, err
	}

	if err := validatePosition(board); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// NewBoardFromFEN creates a board from a FEN string, discarding the counters.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	snap, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &snap.Board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	const field = "piece placement"

	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fenError(field, positions, "expected 8 ranks, got %d", len(ranks))
	}

	for i, text := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(text); j++ {
			c := text[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromLetter(c)
			if !ok {
				return fenError(field, positions, "invalid piece character %q", c)
			}
			if file >= chess.BoardSize {
				return fenError(field, positions, "rank %d is longer than 8 squares", rank+1)
			}
			board.Set(chess.SquareAt(file, rank), piece)
			file++
		}
		if file != chess.BoardSize {
			return fenError(field, positions, "rank %d covers %d squares, want 8", rank+1, file)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, side string) error {
	switch side {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fenError("side to move", side, "expected w or b")
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, castling string) error {
	const field = "castling"

	board.Castling = [2]chess.CastlingRights{}
	if castling == "-" {
		return nil
	}

	for i := 0; i < len(castling); i++ {
		var right *bool
		switch castling[i] {
		case 'K':
			right = &board.Castling[chess.White].Kingside
		case 'Q':
			right = &board.Castling[chess.White].Queenside
		case 'k':
			right = &board.Castling[chess.Black].Kingside
		case 'q':
			right = &board.Castling[chess.Black].Queenside
		default:
			return fenError(field, castling, "invalid castling character %q", castling[i])
		}
		if *right {
			return fenError(field, castling, "duplicate castling character %q", castling[i])
		}
		*right = true
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The target
// must sit behind a pawn of the side that just moved.
func parseEnPassant(board *chess.Board, text string) error {
	const field = "en passant"

	board.EnPassant = chess.NoSquare
	if text == "-" {
		return nil
	}

	sq, err := chess.ParseSquare(text)
	if err != nil {
		return fenError(field, text, "not a square")
	}

	mover := board.ToMove.Opposite()
	wantRank := chess.PawnRank(mover) + chess.ColourOffset(mover)
	if sq.Rank() != wantRank {
		return fenError(field, text, "target must be on rank %d", wantRank+1)
	}
	pawnSq, _ := sq.Offset(0, chess.ColourOffset(mover))
	if board.Get(pawnSq) != (chess.Piece{Kind: chess.Pawn, Colour: mover}) || !board.IsEmpty(sq) {
		return fenError(field, text, "no pawn has just advanced past it")
	}

	board.EnPassant = sq
	return nil
}

// parseCounter parses a move counter that must be at least least.
func parseCounter(field, text string, least int) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil || n < least {
		return 0, fenError(field, text, "expected an integer >= %d", least)
	}
	return n, nil
}

// validatePosition rejects boards that cannot arise in play.
func validatePosition(board *chess.Board) error {
	const field = "position"

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king := chess.Piece{Kind: chess.King, Colour: colour}
		if n := board.CountPieces(king); n != 1 {
			return fenError(field, "", "%v has %d kings, want 1", colour, n)
		}
	}

	for file := 0; file < chess.BoardSize; file++ {
		for _, rank := range []int{0, chess.BoardSize - 1} {
			sq := chess.SquareAt(file, rank)
			if board.Get(sq).Kind == chess.Pawn {
				return fenError(field, "", "pawn on %v", sq)
			}
		}
	}

	if IsInCheck(board, board.ToMove.Opposite()) {
		return fenError(field, "", "%v is in check but not to move", board.ToMove.Opposite())
	}
	return nil
}

// BoardToFEN converts a board to a FEN string. The move counters are not
// part of the board and must be supplied by the caller.
func BoardToFEN(board *chess.Board, halfmoveClock, fullmoveNumber int) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(board.EnPassant.String())
	fmt.Fprintf(&sb, " %d %d", halfmoveClock, fullmoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.SquareAt(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	start := sb.Len()
	if board.Castling[chess.White].Kingside {
		sb.WriteByte('K')
	}
	if board.Castling[chess.White].Queenside {
		sb.WriteByte('Q')
	}
	if board.Castling[chess.Black].Kingside {
		sb.WriteByte('k')
	}
	if board.Castling[chess.Black].Queenside {
		sb.WriteByte('q')
	}
	if sb.Len() == start {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
