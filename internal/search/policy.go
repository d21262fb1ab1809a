package search

import (
	"math/rand"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// RandomMove picks one legal move for the side to move uniformly at random.
func RandomMove(e Evaluator, rng *rand.Rand) (chess.Move, bool) {
	moves := e.LegalMoves(e.Turn())
	if len(moves) == 0 {
		return chess.Move{}, false
	}
	return moves[rng.Intn(len(moves))], true
}

// Policy selects how a move is chosen for the side to move.
type Policy int

const (
	PolicyBest Policy = iota
	PolicyWorst
	PolicyRandom
)

var policyNames = [...]string{
	PolicyBest:   "best",
	PolicyWorst:  "worst",
	PolicyRandom: "random",
}

func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return "unknown"
	}
	return policyNames[p]
}

// ParsePolicy converts a policy name such as "best" to a Policy.
func ParsePolicy(name string) (Policy, error) {
	for i, n := range policyNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Policy(i), nil
		}
	}
	return PolicyBest, errors.Wrapf(errors.ErrInvalidConfig, "unknown move policy %q", name)
}

// Choose returns the policy's move for the side to move. rng is only used
// by PolicyRandom and may be nil otherwise.
func (p Policy) Choose(e Evaluator, depth int, rng *rand.Rand) (chess.Move, bool) {
	switch p {
	case PolicyWorst:
		return WorstNextMove(e, depth)
	case PolicyRandom:
		return RandomMove(e, rng)
	default:
		return BestNextMove(e, depth)
	}
}
