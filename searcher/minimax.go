package searcher

import (
	"math"

	"hexapawn/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// WithMetrics makes Solve collect node counts and timing.
func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewMetricsCollector()
	}
}

// Result is the outcome of one full search
type Result struct {
	Root    game.GameState
	Value   game.Outcome
	Best    *game.Action // nil when the root is terminal
	Table   *Table
	Metrics SearchMetric
}

// Minimax exhaustively searches the game tree, without pruning or
// transposition reuse, recording the policy of every expanded state.
//
// Outcomes are absolute (+1 means White wins), so White's plies maximize and
// Black's plies minimize. The ply type alternates with depth and is never read
// back from the state, which is why a search must start with White to move.
type Minimax struct {
	table   *Table
	metrics MetricsCollector
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Solve searches the whole tree below state into a fresh table.
// It panics if Black is to move at the root.
func (m *Minimax) Solve(state game.GameState) Result {
	if state.ToMove != game.White {
		panic("search must start from a position with White to move")
	}

	m.table = NewTable()
	m.metrics.Start()
	value, best := m.maximize(state, 0)
	metric := m.metrics.Complete()

	log.Debug().
		Str("root", state.Key()).
		Stringer("value", value).
		Int("states", m.table.Len()).
		Msg("search complete")

	return Result{
		Root:    state,
		Value:   value,
		Best:    best,
		Table:   m.table,
		Metrics: metric,
	}
}

// Solve searches the game from the starting position.
func Solve(options ...Option) Result {
	return NewMinimax(options...).Solve(game.NewGameState())
}

func (m *Minimax) maximize(state game.GameState, depth int) (game.Outcome, *game.Action) {
	if state.IsTerminal() {
		m.metrics.AddTerminal(depth)
		return state.Utility(), nil
	}
	m.metrics.AddNode(depth)

	value := game.Outcome(math.MinInt)
	var best *game.Action
	policy := Policy{}
	for _, action := range state.LegalActions() {
		childValue, _ := m.minimize(state.Play(action), depth+1)
		policy.add(childValue, action)
		if childValue > value {
			value = childValue
			best = &action
		}
	}

	m.commit(state, policy)
	return value, best
}

func (m *Minimax) minimize(state game.GameState, depth int) (game.Outcome, *game.Action) {
	if state.IsTerminal() {
		m.metrics.AddTerminal(depth)
		return state.Utility(), nil
	}
	m.metrics.AddNode(depth)

	value := game.Outcome(math.MaxInt)
	var best *game.Action
	policy := Policy{}
	for _, action := range state.LegalActions() {
		childValue, _ := m.maximize(state.Play(action), depth+1)
		policy.add(childValue, action)
		if childValue < value {
			value = childValue
			best = &action
		}
	}

	m.commit(state, policy)
	return value, best
}

func (m *Minimax) commit(state game.GameState, policy Policy) {
	if m.table.Commit(state, policy) {
		m.metrics.AddOverwrite()
	}
	if e := log.Trace(); e.Enabled() {
		e.Str("state", state.Key()).Int("outcomes", len(policy)).Msg("policy committed")
	}
}
