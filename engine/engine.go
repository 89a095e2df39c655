package engine

import "hexapawn/game"

// MaxMoves bounds a game; every hexapawn game ends well before it
const MaxMoves = 16

type Engine interface {
	// Run plays a game from the starting position until it is decided
	Run() (winner game.Cell, updates []Update)
}
