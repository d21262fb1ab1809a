// Package errors provides sentinel errors and error types for the chess engine.
// It defines the caller-facing failure conditions and structured error types
// that preserve context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidPosition indicates a malformed or impossible FEN position.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidMove indicates move text matching no legal move, or an
	// action that is not valid in the current game state.
	ErrInvalidMove = errors.New("invalid move")

	// ErrAmbiguousMove indicates move text matching more than one legal move.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrGameAlreadyOver indicates an action after the game has ended.
	ErrGameAlreadyOver = errors.New("game already over")

	// ErrInvalidSquare indicates a coordinate outside the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Is reports whether any error in err's tree matches target.
// It re-exports the standard library function so callers importing this
// package under the name errors keep access to it.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GameError wraps errors with game context, including the ply and move
// text of the rejected action. It supports unwrapping via errors.Is()
// and errors.As().
type GameError struct {
	Err      error  // The underlying error
	PlyNum   int    // Ply number the action was attempted at (1-based)
	Action   string // The action kind, e.g. "move" or "accept draw"
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.Action != "" {
		parts = append(parts, e.Action)
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("%q", e.MoveText))
	}

	context := strings.Join(parts, " ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "game error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// FENError describes which field of a FEN string was rejected.
type FENError struct {
	Err   error  // The underlying error, normally ErrInvalidPosition
	Field string // Field name, e.g. "piece placement"
	Got   string // The offending text
	Msg   string // What was wrong with it
}

// Error returns a formatted error message with the field context.
func (e *FENError) Error() string {
	var sb strings.Builder
	if e.Field != "" {
		sb.WriteString(e.Field)
	}
	if e.Got != "" {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%q", e.Got)
	}
	if e.Msg != "" {
		if sb.Len() > 0 {
			sb.WriteString(": ")
		}
		sb.WriteString(e.Msg)
	}
	if e.Err != nil {
		if sb.Len() > 0 {
			return fmt.Sprintf("%s: %v", sb.String(), e.Err)
		}
		return e.Err.Error()
	}
	if sb.Len() > 0 {
		return sb.String()
	}
	return "FEN error"
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
