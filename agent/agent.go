package agent

import (
	"fmt"

	"hexapawn/game"
	"hexapawn/searcher"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns the action to play in state. state is never terminal.
	FindMove(state game.GameState) game.Action
}

type policyAgent struct {
	table *searcher.Table
}

// NewPolicyAgent returns an agent that plays from a solved policy table,
// preferring an action that wins for the side to move.
func NewPolicyAgent(table *searcher.Table) Agent {
	return policyAgent{table: table}
}

func (a policyAgent) FindMove(state game.GameState) game.Action {
	policy, ok := a.table.Lookup(state)
	if !ok {
		panic(fmt.Sprintf("state %s is not in the policy table", state.Key()))
	}
	action, ok := policy.Best(state.ToMove)
	if !ok {
		panic(fmt.Sprintf("state %s has an empty policy", state.Key()))
	}
	return action
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.GameState) game.Action {
	moves := state.LegalActions()
	if len(moves) == 0 {
		panic(fmt.Sprintf("state %s has no legal moves", state.Key()))
	}
	return moves[a.rng.Intn(len(moves))]
}
