package game

// Size is the number of rows and columns on the board
const Size = 3

// Cell is the content of one square: no pawn, or a pawn of one side.
// White and Black double as the side to move.
type Cell int8

const (
	Empty Cell = 0
	White Cell = 1
	Black Cell = -1
)

// Opponent returns the other side. Empty has no opponent.
func (c Cell) Opponent() Cell {
	return -c
}

// forward is the row delta a pawn of this side moves by
func (c Cell) forward() int {
	if c == White {
		return -1
	}
	return 1
}

// goalRow is the opponent's home row, reaching it wins the game
func (c Cell) goalRow() int {
	if c == White {
		return 0
	}
	return Size - 1
}

func (c Cell) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Empty"
	}
}

// symbol is the single character used in state keys
func (c Cell) symbol() byte {
	switch c {
	case White:
		return 'w'
	case Black:
		return 'b'
	default:
		return '.'
	}
}

// Outcome is the game-theoretic value of a state, always from White's point
// of view. There are no draws.
type Outcome int

const (
	WhiteWins Outcome = 1
	BlackWins Outcome = -1
)

// Preferred returns the outcome the given side is playing for.
func Preferred(side Cell) Outcome {
	if side == White {
		return WhiteWins
	}
	return BlackWins
}

// Winner returns the side that wins with this outcome
func (o Outcome) Winner() Cell {
	if o == WhiteWins {
		return White
	}
	return Black
}

func (o Outcome) String() string {
	if o == WhiteWins {
		return "+1"
	}
	return "-1"
}
