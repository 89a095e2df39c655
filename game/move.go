package game

import "fmt"

// ActionKind is how a pawn moves.
type ActionKind int

const (
	Forward ActionKind = iota
	DiagonalLeft
	DiagonalRight
)

func (k ActionKind) String() string {
	switch k {
	case Forward:
		return "forward"
	case DiagonalLeft:
		return "capture-left"
	case DiagonalRight:
		return "capture-right"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// colDelta is the column change for the kind
func (k ActionKind) colDelta() int {
	switch k {
	case DiagonalLeft:
		return -1
	case DiagonalRight:
		return 1
	default:
		return 0
	}
}

// Coord addresses a square. Row 0 is Black's home row.
type Coord struct {
	Row int
	Col int
}

func (c Coord) onBoard() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// String uses file letters a-c and ranks 1-3, rank 1 being White's home row.
func (c Coord) String() string {
	return fmt.Sprintf("%c%d", 'a'+c.Col, Size-c.Row)
}

// Action moves one pawn one row toward the opponent's home row.
type Action struct {
	Kind ActionKind
	From Coord
	To   Coord
}

func (a Action) String() string {
	return fmt.Sprintf("%s %s-%s", a.Kind, a.From, a.To)
}

// IsCapture reports whether the action removes an opposing pawn
func (a Action) IsCapture() bool {
	return a.Kind != Forward
}
