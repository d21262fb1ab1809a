// Package notation converts between move text and structured moves.
// SAN (standard algebraic notation) is resolved against the legal moves of
// the board it is read on, so every move it returns is legal.
package notation

import (
	"regexp"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// sanPattern matches the non-castling SAN forms once decorations are removed.
// Groups: piece, from-file, from-rank, capture, destination, promotion.
var sanPattern = regexp.MustCompile(`^([KQRBN])?([a-h])?([1-8])?(x)?([a-h][1-8])(?:=?([QRBN]))?$`)

// sanToken is the parsed form of a SAN string.
type sanToken struct {
	kind      chess.PieceKind
	fromFile  int // -1 when absent
	fromRank  int // -1 when absent
	capture   bool
	to        chess.Square
	promotion chess.PieceKind
}

// ParseSAN resolves text to the single legal move it names for the side to
// move. Text matching no legal move yields ErrInvalidMove, text matching
// several yields ErrAmbiguousMove.
func ParseSAN(board *chess.Board, text string) (chess.Move, error) {
	san := strings.TrimRight(strings.TrimSpace(text), "+#!?")

	if side, ok := castleSide(san); ok {
		move := chess.Castle(board.ToMove, side)
		if !engine.IsLegalMove(board, move) {
			return chess.Move{}, errors.Wrapf(errors.ErrInvalidMove, "%q", text)
		}
		return move, nil
	}

	token, ok := parseToken(san)
	if !ok {
		return chess.Move{}, errors.Wrapf(errors.ErrInvalidMove, "%q is not SAN", text)
	}

	var matches []chess.Move
	for _, move := range engine.GenerateLegalMoves(board, board.ToMove) {
		if token.matches(board, move) {
			matches = append(matches, move)
		}
	}

	switch len(matches) {
	case 0:
		return chess.Move{}, errors.Wrapf(errors.ErrInvalidMove, "%q", text)
	case 1:
		return matches[0], nil
	default:
		return chess.Move{}, errors.Wrapf(errors.ErrAmbiguousMove, "%q matches %d moves", text, len(matches))
	}
}

// castleSide recognises O-O and O-O-O, also written with zeros.
func castleSide(san string) (chess.CastleSide, bool) {
	switch strings.ReplaceAll(san, "0", "O") {
	case "O-O":
		return chess.Kingside, true
	case "O-O-O":
		return chess.Queenside, true
	}
	return chess.Kingside, false
}

func parseToken(san string) (sanToken, bool) {
	m := sanPattern.FindStringSubmatch(san)
	if m == nil {
		return sanToken{}, false
	}

	token := sanToken{kind: chess.Pawn, fromFile: -1, fromRank: -1, capture: m[4] != ""}
	if m[1] != "" {
		token.kind = chess.KindFromLetter(m[1][0])
	}
	if m[2] != "" {
		token.fromFile = int(m[2][0] - chess.FileBase)
	}
	if m[3] != "" {
		token.fromRank = int(m[3][0] - chess.RankBase)
	}
	token.to, _ = chess.ParseSquare(m[5])
	if m[6] != "" {
		token.promotion = chess.KindFromLetter(m[6][0])
		if token.kind != chess.Pawn {
			return sanToken{}, false
		}
	}
	return token, true
}

// matches reports whether move satisfies every constraint in the token.
func (t sanToken) matches(board *chess.Board, move chess.Move) bool {
	if move.IsCastle() || move.To != t.to || move.Promotion != t.promotion {
		return false
	}
	if board.Get(move.From).Kind != t.kind {
		return false
	}
	if t.fromFile >= 0 && move.From.File() != t.fromFile {
		return false
	}
	if t.fromRank >= 0 && move.From.Rank() != t.fromRank {
		return false
	}
	if t.capture && !isCapture(board, move) {
		return false
	}
	return true
}

func isCapture(board *chess.Board, move chess.Move) bool {
	switch move.Kind {
	case chess.CaptureMove, chess.EnPassantMove:
		return true
	case chess.PromotionMove:
		return !board.IsEmpty(move.To)
	}
	return false
}

// EncodeSAN renders a legal move as SAN, adding only the disambiguation
// needed to tell it apart from other legal moves and a check or mate suffix.
func EncodeSAN(board *chess.Board, move chess.Move) string {
	var sb strings.Builder

	if move.IsCastle() {
		sb.WriteString(move.Side.String())
	} else {
		piece := board.Get(move.From)
		capture := isCapture(board, move)

		if piece.Kind == chess.Pawn {
			if capture {
				sb.WriteByte(move.From.FileLetter())
			}
		} else {
			sb.WriteByte(piece.Kind.Letter())
			sb.WriteString(disambiguation(board, move))
		}
		if capture {
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.String())
		if move.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(move.Promotion.Letter())
		}
	}

	next := *board
	engine.PlayMove(&next, move)
	if engine.IsInCheck(&next, next.ToMove) {
		if engine.HasLegalMoves(&next, next.ToMove) {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('#')
		}
	}
	return sb.String()
}

// disambiguation returns the file, rank, or square of move.From needed to
// separate it from other pieces of the same kind reaching the same square.
func disambiguation(board *chess.Board, move chess.Move) string {
	kind := board.Get(move.From).Kind
	var rivals []chess.Square
	for _, other := range engine.GenerateLegalMoves(board, board.ToMove) {
		if other.From == move.From || other.To != move.To || other.IsCastle() {
			continue
		}
		if board.Get(other.From).Kind == kind {
			rivals = append(rivals, other.From)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		sameFile = sameFile || sq.File() == move.From.File()
		sameRank = sameRank || sq.Rank() == move.From.Rank()
	}
	switch {
	case !sameFile:
		return string(move.From.FileLetter())
	case !sameRank:
		return string(move.From.RankDigit())
	default:
		return move.From.String()
	}
}
