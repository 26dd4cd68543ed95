package searcher

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"solver/game"
)

var (
	ErrPolicyMissingLabel = errors.New("policy is missing a move label")
	ErrPolicyUnknownLabel = errors.New("policy has a label outside the move alphabet")
	ErrPolicyBadValue     = errors.New("policy value is negative, NaN or Inf")
	ErrPolicySum          = errors.New("policy does not sum to 1")
)

// Policy is a probability distribution over the move labels of a game,
// keyed by the label string ("0", "1", ...).
type Policy map[string]float64

// Degenerate puts probability 1 on best and 0 on every other label.
func Degenerate(labels int, best game.Move) Policy {
	p := make(Policy, labels)
	for m := 0; m < labels; m++ {
		p[strconv.Itoa(m)] = 0
	}
	p[strconv.Itoa(int(best))] = 1
	return p
}

// Validate checks that p covers exactly the labels 0..labels-1 with
// non-negative values summing to 1.
func (p Policy) Validate(labels int) error {
	values := make([]float64, 0, len(p))
	for m := 0; m < labels; m++ {
		label := strconv.Itoa(m)
		v, ok := p[label]
		if !ok {
			return fmt.Errorf("%w: %s", ErrPolicyMissingLabel, label)
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: label=%s value=%v", ErrPolicyBadValue, label, v)
		}
		values = append(values, v)
	}
	if len(p) != labels {
		return fmt.Errorf("%w: %d labels, want %d", ErrPolicyUnknownLabel, len(p), labels)
	}
	if sum := floats.Sum(values); sum != 1 {
		return fmt.Errorf("%w: sum=%v", ErrPolicySum, sum)
	}
	return nil
}

// Best returns the label with the highest probability, lowest label first.
func (p Policy) Best() (game.Move, bool) {
	best, bestP := game.Move(-1), math.Inf(-1)
	for label, v := range p {
		m, err := strconv.Atoi(label)
		if err != nil {
			continue
		}
		if v > bestP || (v == bestP && game.Move(m) < best) {
			best, bestP = game.Move(m), v
		}
	}
	return best, best >= 0
}

// PolicyTable maps history keys to the policy of the player moving there.
// Every policy the solver writes is degenerate, so only the chosen move is
// stored and the distribution is built on demand.
type PolicyTable struct {
	labels int
	best   map[string]game.Move
}

func NewPolicyTable(labels int) *PolicyTable {
	return &PolicyTable{labels: labels, best: map[string]game.Move{}}
}

// Record stores move as the choice at history. Recording a different move
// for a history that already has one is an error.
func (t *PolicyTable) Record(history game.History, move game.Move) error {
	if move < 0 || int(move) >= t.labels {
		return fmt.Errorf("%w: move %d, %d labels", ErrPolicyUnknownLabel, move, t.labels)
	}
	key := history.Key()
	if prev, ok := t.best[key]; ok && prev != move {
		return fmt.Errorf("%w: history=%q recorded=%d new=%d", ErrPolicyOverwrite, key, prev, move)
	}
	t.best[key] = move
	return nil
}

// Move returns the move chosen at the history key.
func (t *PolicyTable) Move(key string) (game.Move, bool) {
	m, ok := t.best[key]
	return m, ok
}

func (t *PolicyTable) Policy(key string) (Policy, bool) {
	m, ok := t.best[key]
	if !ok {
		return nil, false
	}
	return Degenerate(t.labels, m), true
}

func (t *PolicyTable) Len() int {
	return len(t.best)
}

func (t *PolicyTable) Labels() int {
	return t.labels
}

// Keys in lexical order
func (t *PolicyTable) Keys() []string {
	keys := make([]string, 0, len(t.best))
	for k := range t.best {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Distributions materializes every policy, the shape of the persisted
// artifact.
func (t *PolicyTable) Distributions() map[string]Policy {
	out := make(map[string]Policy, len(t.best))
	for k, m := range t.best {
		out[k] = Degenerate(t.labels, m)
	}
	return out
}

// PolicyTableFrom rebuilds a table from materialized policies. Every policy
// must be valid and degenerate.
func PolicyTableFrom(labels int, policies map[string]Policy) (*PolicyTable, error) {
	t := NewPolicyTable(labels)
	for key, p := range policies {
		if err := p.Validate(labels); err != nil {
			return nil, fmt.Errorf("history %q: %w", key, err)
		}
		best, _ := p.Best()
		if p[strconv.Itoa(int(best))] != 1 {
			return nil, fmt.Errorf("history %q: %w: policy is not deterministic", key, ErrPolicyBadValue)
		}
		t.best[key] = best
	}
	return t, nil
}
