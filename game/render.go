package game

import (
	"strings"

	"github.com/muesli/termenv"
)

// Render draws the board with rank numbers and file letters, White at the
// bottom. Pawns are coloured according to the terminal profile; pass
// termenv.Ascii for plain text.
func Render(gs GameState, profile termenv.Profile) string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		sb.WriteString(Coord{Row: row}.String()[1:])
		sb.WriteByte(' ')
		for col := 0; col < Size; col++ {
			sb.WriteString(renderCell(gs.Board[row][col], profile))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for col := 0; col < Size; col++ {
		sb.WriteByte(byte('a' + col))
	}
	sb.WriteString("  ")
	sb.WriteString(gs.Player())
	sb.WriteString(" to move\n")
	return sb.String()
}

func renderCell(c Cell, profile termenv.Profile) string {
	switch c {
	case White:
		return profile.String("W").Foreground(profile.Color("11")).String()
	case Black:
		return profile.String("B").Foreground(profile.Color("9")).String()
	default:
		return "."
	}
}
