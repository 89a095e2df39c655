package report

import (
	"fmt"
	"io"
	"strings"

	"hexapawn/game"
	"hexapawn/searcher"

	"github.com/muesli/termenv"
)

// Dump prints every state of the table with its board and the actions
// grouped by outcome, in key order.
func Dump(w io.Writer, table *searcher.Table, profile termenv.Profile) error {
	for _, state := range table.States() {
		policy, _ := table.Lookup(state)

		var sb strings.Builder
		sb.WriteString(state.Key())
		sb.WriteByte('\n')
		sb.WriteString(game.Render(state, profile))
		for _, outcome := range policy.Outcomes() {
			fmt.Fprintf(&sb, "  %s: %s\n", outcome, strings.Join(actionNames(policy[outcome]), ", "))
		}
		sb.WriteByte('\n')

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return fmt.Errorf("failed to dump state %s: %w", state.Key(), err)
		}
	}
	return nil
}

func actionNames(actions []game.Action) []string {
	names := make([]string, len(actions))
	for i, action := range actions {
		names[i] = action.String()
	}
	return names
}
