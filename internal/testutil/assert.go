// Package testutil provides shared test utilities for the chess engine.
// These utilities reduce code duplication across test files and provide
// consistent comparisons and reference positions.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		reportf(t, formatMessage(msgAndArgs...), "mismatch (-want +got):\n%s", diff)
	}
}

// AssertSameMoves compares two move lists ignoring order.
func AssertSameMoves(t testing.TB, got, want []chess.Move, msgAndArgs ...interface{}) {
	t.Helper()
	less := func(a, b chess.Move) bool { return a.String() < b.String() }
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		reportf(t, formatMessage(msgAndArgs...), "move sets differ (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		reportf(t, formatMessage(msgAndArgs...), "unexpected error: %v", err)
	}
}

// AssertErrorIs fails unless err matches target with errors.Is.
func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		reportf(t, formatMessage(msgAndArgs...), "error %v does not match %v", err, target)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		reportf(t, formatMessage(msgAndArgs...), "%q does not contain %q", got, substr)
	}
}

// reportf reports a failure, prefixed with msg when there is one.
func reportf(t testing.TB, msg, format string, args ...interface{}) {
	t.Helper()
	text := fmt.Sprintf(format, args...)
	if msg != "" {
		t.Errorf("%s: %s", msg, text)
	} else {
		t.Error(text)
	}
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
