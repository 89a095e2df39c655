package searcher

import (
	"testing"

	"hexapawn/game"
	"hexapawn/utils"

	"github.com/stretchr/testify/require"
)

/*
- single node: forced win in one for the side to move -> winning value, first winning action
- full solve from the starting position:
	- root value, root best action and root policy
	- every expanded state has a policy covering exactly its legal actions
	- revisited states overwrite their entry (last write wins), counted by metrics
	- repeated solves give equal tables
- contract: solving with Black to move panics
*/

func at(row, col int) game.Coord {
	return game.Coord{Row: row, Col: col}
}

// newSearch returns a minimax ready to evaluate single nodes
func newSearch(options ...Option) *Minimax {
	m := NewMinimax(options...)
	m.table = NewTable()
	m.metrics.Start()
	return m
}

func TestMaximize(t *testing.T) {
	t.Run("white wins in one", func(t *testing.T) {
		state := game.MustParseKey("W:.b./w../..w")
		m := newSearch()

		value, best := m.maximize(state, 0)

		require.Equal(t, game.WhiteWins, value)
		require.NotNil(t, best)
		require.Equal(t, game.Action{Kind: game.Forward, From: at(1, 0), To: at(0, 0)}, *best,
			"First action reaching the maximum should be kept")
		require.True(t, state.Play(*best).IsTerminal(), "Best action should win immediately")

		policy, ok := m.table.Lookup(state)
		require.True(t, ok, "Expanded state should be recorded")
		require.Equal(t, []game.Action{
			{Kind: game.Forward, From: at(1, 0), To: at(0, 0)},
			{Kind: game.DiagonalRight, From: at(1, 0), To: at(0, 1)},
		}, policy[game.WhiteWins][:2])
	})

	t.Run("terminal state has no action and no entry", func(t *testing.T) {
		state := game.MustParseKey("W:.../b../w..")
		m := newSearch()

		value, best := m.maximize(state, 0)

		require.Equal(t, game.BlackWins, value)
		require.Nil(t, best)
		require.Equal(t, 0, m.table.Len())
	})

	t.Run("keeps the first action when every move loses", func(t *testing.T) {
		state := game.NewGameState()
		m := newSearch()

		value, best := m.maximize(state, 0)

		require.Equal(t, game.BlackWins, value)
		require.Equal(t, state.LegalActions()[0], *best)
	})
}

func TestMinimize(t *testing.T) {
	t.Run("black wins in one", func(t *testing.T) {
		state := game.MustParseKey("B:.../b../.w.")
		m := newSearch()

		value, best := m.minimize(state, 0)

		require.Equal(t, game.BlackWins, value)
		require.NotNil(t, best)
		require.Equal(t, game.Action{Kind: game.Forward, From: at(1, 0), To: at(2, 0)}, *best)
		require.Equal(t, game.BlackWins, state.Play(*best).Utility(), "Best action should win immediately")

		policy, ok := m.table.Lookup(state)
		require.True(t, ok)
		require.Equal(t, Policy{game.BlackWins: state.LegalActions()}, policy,
			"Both moves win, so both land in the Black bucket in generation order")
	})
}

func TestSolve(t *testing.T) {
	result := Solve(WithMetrics())
	root := game.NewGameState()

	t.Run("black wins the starting position", func(t *testing.T) {
		require.Equal(t, root, result.Root)
		require.Equal(t, game.BlackWins, result.Value)
		require.NotNil(t, result.Best)
		require.Equal(t, game.Action{Kind: game.Forward, From: at(2, 0), To: at(1, 0)}, *result.Best)
	})

	t.Run("every opening loses for white", func(t *testing.T) {
		policy, ok := result.Table.Lookup(root)

		require.True(t, ok, "Root should be recorded")
		require.Equal(t, Policy{game.BlackWins: root.LegalActions()}, policy)
		require.Empty(t, policy[game.WhiteWins])
	})

	t.Run("policies cover exactly the legal actions", func(t *testing.T) {
		for _, state := range result.Table.States() {
			policy, _ := result.Table.Lookup(state)
			legal := state.LegalActions()

			require.False(t, state.IsTerminal(), "Terminal state %s should not be recorded", state)
			require.ElementsMatch(t, legal, policy.Actions(), "State %s", state)
			for outcome, actions := range policy {
				require.Contains(t, []game.Outcome{game.WhiteWins, game.BlackWins}, outcome)
				require.NotEmpty(t, actions)

				// Buckets keep generation order
				last := -1
				for _, action := range actions {
					index := utils.FindIndex(legal, action)
					require.Greater(t, index, last, "State %s bucket %s out of order", state, outcome)
					last = index
				}
			}
		}
	})

	t.Run("records every reachable non-terminal state", func(t *testing.T) {
		expanded := map[game.GameState]bool{}
		var walk func(game.GameState)
		walk = func(state game.GameState) {
			if state.IsTerminal() {
				return
			}
			expanded[state] = true
			for _, action := range state.LegalActions() {
				walk(state.Play(action))
			}
		}
		walk(root)

		require.Equal(t, 70, result.Table.Len())
		require.Len(t, expanded, result.Table.Len())
		for state := range expanded {
			_, ok := result.Table.Lookup(state)
			require.True(t, ok, "State %s should be recorded", state)
		}
	})

	t.Run("metrics count the full tree", func(t *testing.T) {
		metric := result.Metrics

		require.Equal(t, 118, metric.Nodes, "Every path is expanded without reuse")
		require.Equal(t, 134, metric.Terminals)
		require.Equal(t, metric.Nodes-result.Table.Len(), metric.Overwrites,
			"Each revisit should replace an existing entry")
		require.Equal(t, 7, metric.MaxDepth)
		require.False(t, metric.StartTime.IsZero())
	})

	t.Run("is deterministic", func(t *testing.T) {
		again := Solve()

		require.NotSame(t, result.Table, again.Table, "Each search should own its table")
		require.Equal(t, result.Table, again.Table)
		require.Equal(t, result.Value, again.Value)
		require.Equal(t, result.Best, again.Best)
		require.Equal(t, SearchMetric{}, again.Metrics, "Metrics are off by default")
	})

	t.Run("panics with black to move", func(t *testing.T) {
		state := game.MustParseKey("B:bbb/w../.ww")

		require.Panics(t, func() {
			NewMinimax().Solve(state)
		}, "Should panic when the root is not a maximizing ply")
	})
}
