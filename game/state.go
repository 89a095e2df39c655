package game

import (
	"fmt"
	"strings"

	"hexapawn/utils"
)

// Board is the 3x3 grid indexed [row][col]
type Board [Size][Size]Cell

// GameState is the side to move and the board. It is a plain value: Play
// returns a new state and never touches the receiver.
type GameState struct {
	ToMove Cell
	Board  Board
}

// NewGameState returns the starting position: White pawns on row 2, Black
// pawns on row 0 and White to move.
func NewGameState() GameState {
	gs := GameState{ToMove: White}
	for col := 0; col < Size; col++ {
		gs.Board[0][col] = Black
		gs.Board[Size-1][col] = White
	}
	return gs
}

// Player returns the name of the side to move
func (gs GameState) Player() string {
	return gs.ToMove.String()
}

func (gs GameState) At(c Coord) Cell {
	return gs.Board[c.Row][c.Col]
}

// LegalActions lists the moves of the side to move. Pawns are scanned in
// row-major order and each pawn yields forward, then left capture, then right
// capture. Callers rely on this order.
func (gs GameState) LegalActions() []Action {
	side := gs.ToMove
	actions := []Action{}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if gs.Board[row][col] != side {
				continue
			}
			from := Coord{Row: row, Col: col}
			for _, kind := range []ActionKind{Forward, DiagonalLeft, DiagonalRight} {
				to := Coord{Row: row + side.forward(), Col: col + kind.colDelta()}
				if !to.onBoard() {
					continue
				}
				target := gs.At(to)
				if kind == Forward && target != Empty {
					continue
				}
				if kind != Forward && target != side.Opponent() {
					continue
				}
				actions = append(actions, Action{Kind: kind, From: from, To: to})
			}
		}
	}
	return actions
}

// Play returns the state after the side to move plays the action.
// Playing an action that is not legal here panics.
func (gs GameState) Play(action Action) GameState {
	if utils.FindIndex(gs.LegalActions(), action) == -1 {
		panic(fmt.Sprintf("illegal action %s for %s in state %s", action, gs.Player(), gs.Key()))
	}

	next := gs // Board is an array, so this is a full copy
	next.Board[action.To.Row][action.To.Col] = gs.ToMove
	next.Board[action.From.Row][action.From.Col] = Empty
	next.ToMove = gs.ToMove.Opponent()
	return next
}

// reachedGoal reports whether a pawn of side stands on its goal row
func (gs GameState) reachedGoal(side Cell) bool {
	for _, cell := range gs.Board[side.goalRow()] {
		if cell == side {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the game is decided: a pawn reached the far row
// or the side to move is blocked.
func (gs GameState) IsTerminal() bool {
	return gs.reachedGoal(White) || gs.reachedGoal(Black) || len(gs.LegalActions()) == 0
}

// Utility returns the outcome of a terminal state. A blocked side loses.
// Calling it on a non-terminal state panics.
func (gs GameState) Utility() Outcome {
	if gs.reachedGoal(White) {
		return WhiteWins
	}
	if gs.reachedGoal(Black) {
		return BlackWins
	}
	if len(gs.LegalActions()) != 0 {
		panic(fmt.Sprintf("utility of non-terminal state %s", gs.Key()))
	}
	return Preferred(gs.ToMove.Opponent())
}

// Winner returns the winning side of a terminal state, or Empty while the game
// is still running.
func (gs GameState) Winner() Cell {
	if !gs.IsTerminal() {
		return Empty
	}
	return gs.Utility().Winner()
}

// Key is the canonical serialization of the state: the side to move, then the
// rows from top to bottom, e.g. "W:bbb/.../www".
func (gs GameState) Key() string {
	var sb strings.Builder
	if gs.ToMove == White {
		sb.WriteString("W:")
	} else {
		sb.WriteString("B:")
	}
	for row := 0; row < Size; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := 0; col < Size; col++ {
			sb.WriteByte(gs.Board[row][col].symbol())
		}
	}
	return sb.String()
}

func (gs GameState) String() string {
	return gs.Key()
}

// ParseKey is the inverse of Key.
func ParseKey(key string) (GameState, error) {
	var gs GameState
	if len(key) != 2+Size*Size+Size-1 || key[1] != ':' {
		return gs, fmt.Errorf("malformed state key %q", key)
	}
	switch key[0] {
	case 'W':
		gs.ToMove = White
	case 'B':
		gs.ToMove = Black
	default:
		return gs, fmt.Errorf("malformed side to move in state key %q", key)
	}

	rows := strings.Split(key[2:], "/")
	if len(rows) != Size {
		return gs, fmt.Errorf("malformed rows in state key %q", key)
	}
	for row, line := range rows {
		if len(line) != Size {
			return gs, fmt.Errorf("malformed row %d in state key %q", row, key)
		}
		for col := 0; col < Size; col++ {
			switch line[col] {
			case 'w':
				gs.Board[row][col] = White
			case 'b':
				gs.Board[row][col] = Black
			case '.':
				gs.Board[row][col] = Empty
			default:
				return gs, fmt.Errorf("unknown cell %q in state key %q", line[col], key)
			}
		}
	}
	return gs, nil
}

// MustParseKey is ParseKey for literals; it panics on malformed keys.
func MustParseKey(key string) GameState {
	gs, err := ParseKey(key)
	if err != nil {
		panic(err)
	}
	return gs
}
