package chess

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Square identifies one of the 64 squares as rank*8 + file (a1 = 0, h8 = 63).
type Square int8

// NoSquare marks an absent square, e.g. no en passant target.
const NoSquare Square = -1

const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 0, 1, 2, 3, 4, 5, 6, 7
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 8, 9, 10, 11, 12, 13, 14, 15
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 16, 17, 18, 19, 20, 21, 22, 23
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 24, 25, 26, 27, 28, 29, 30, 31
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 32, 33, 34, 35, 36, 37, 38, 39
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 40, 41, 42, 43, 44, 45, 46, 47
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 48, 49, 50, 51, 52, 53, 54, 55
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 56, 57, 58, 59, 60, 61, 62, 63
)

func onBoard(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

// SquareAt returns the square for an in-range file and rank.
// The caller guarantees both are in [0,7].
func SquareAt(file, rank int) Square {
	return Square(rank*BoardSize + file)
}

// NewSquare creates a square from a file and rank in [0,7].
func NewSquare(file, rank int) (Square, error) {
	if !onBoard(file, rank) {
		return NoSquare, fmt.Errorf("file %d, rank %d: %w", file, rank, errors.ErrInvalidSquare)
	}
	return SquareAt(file, rank), nil
}

// ParseSquare parses algebraic square text such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	file := int(text[0]) - FileBase
	rank := int(text[1]) - RankBase
	if !onBoard(file, rank) {
		return NoSquare, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	return SquareAt(file, rank), nil
}

// File returns the file index, 0 for the a-file.
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the rank index, 0 for the first rank.
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// IsValid reports whether s is one of the 64 board squares.
func (s Square) IsValid() bool {
	return s >= 0 && s < NumSquares
}

// Offset moves the square by a file and rank delta.
// The second result is false when the target leaves the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	file, rank := s.File()+df, s.Rank()+dr
	if !s.IsValid() || !onBoard(file, rank) {
		return NoSquare, false
	}
	return SquareAt(file, rank), true
}

// FileLetter returns the file as 'a'-'h'.
func (s Square) FileLetter() byte {
	return byte(FileBase + s.File())
}

// RankDigit returns the rank as '1'-'8'.
func (s Square) RankDigit() byte {
	return byte(RankBase + s.Rank())
}

// String renders the square in algebraic notation, or "-" for NoSquare.
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{s.FileLetter(), s.RankDigit()})
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (s.File()+s.Rank())%2 == 1
}

// Mirror reflects the square across the middle of the board (a1 <-> a8).
func (s Square) Mirror() Square {
	return SquareAt(s.File(), BoardSize-1-s.Rank())
}
