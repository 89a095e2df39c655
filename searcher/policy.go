package searcher

import (
	"strings"

	"hexapawn/game"

	"golang.org/x/exp/slices"
)

// Policy groups the legal actions of one state by the outcome each action
// leads to under optimal play. Actions keep the order they were generated in.
type Policy map[game.Outcome][]game.Action

// add records that action evaluates to outcome
func (p Policy) add(outcome game.Outcome, action game.Action) {
	p[outcome] = append(p[outcome], action)
}

// Outcomes returns the outcomes present in the policy, best for White first.
func (p Policy) Outcomes() []game.Outcome {
	outcomes := make([]game.Outcome, 0, len(p))
	for outcome := range p {
		outcomes = append(outcomes, outcome)
	}
	slices.SortFunc(outcomes, func(a, b game.Outcome) int {
		return int(b) - int(a)
	})
	return outcomes
}

// Actions returns every action in the policy, grouped by Outcomes order.
func (p Policy) Actions() []game.Action {
	actions := []game.Action{}
	for _, outcome := range p.Outcomes() {
		actions = append(actions, p[outcome]...)
	}
	return actions
}

// Best returns the first action reaching the outcome the side is playing for,
// or the first action of the other outcome when none does.
func (p Policy) Best(side game.Cell) (game.Action, bool) {
	if actions := p[game.Preferred(side)]; len(actions) > 0 {
		return actions[0], true
	}
	if actions := p[game.Preferred(side.Opponent())]; len(actions) > 0 {
		return actions[0], true
	}
	return game.Action{}, false
}

// Table maps every state expanded by one search to its policy. A table belongs
// to a single search and is not safe for concurrent use.
type Table struct {
	entries map[game.GameState]Policy
}

func NewTable() *Table {
	return &Table{entries: map[game.GameState]Policy{}}
}

// Commit stores the policy of state and reports whether it replaced an entry
// written earlier for the same state reached by another move order.
// The last write wins.
func (t *Table) Commit(state game.GameState, policy Policy) (overwritten bool) {
	_, overwritten = t.entries[state]
	t.entries[state] = policy
	return overwritten
}

// Lookup returns the policy recorded for state
func (t *Table) Lookup(state game.GameState) (Policy, bool) {
	policy, ok := t.entries[state]
	return policy, ok
}

func (t *Table) Len() int {
	return len(t.entries)
}

// States returns the recorded states ordered by key.
func (t *Table) States() []game.GameState {
	states := make([]game.GameState, 0, len(t.entries))
	for state := range t.entries {
		states = append(states, state)
	}
	slices.SortFunc(states, func(a, b game.GameState) int {
		return strings.Compare(a.Key(), b.Key())
	})
	return states
}
