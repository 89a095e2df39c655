package engine

import (
	"fmt"

	"hexapawn/agent"
	"hexapawn/game"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	State  game.GameState
	Agents map[game.Cell]agent.Agent
}

type Update struct {
	Move  game.Action
	State game.GameState
}

// NewLocalEngine pairs a White and a Black agent on the starting position.
func NewLocalEngine(white, black agent.Agent) *LocalEngine {
	if white == nil || black == nil {
		panic("need an agent for each side")
	}

	return &LocalEngine{
		State: game.NewGameState(),
		Agents: map[game.Cell]agent.Agent{
			game.White: white,
			game.Black: black,
		},
	}
}

// Run executes the entire game loop until one side wins.
func (e *LocalEngine) Run() (game.Cell, []Update) {
	updates := []Update{}

	log.Debug().Msgf("%s is starting", e.State.Player())

	for !e.State.IsTerminal() {
		if len(updates) >= MaxMoves {
			panic(fmt.Sprintf("game exceeded %d moves", MaxMoves))
		}

		move := e.Agents[e.State.ToMove].FindMove(e.State)
		log.Debug().Msgf("move %d: %s plays %s", len(updates)+1, e.State.Player(), move)

		// Play panics on a move the agent made up
		e.State = e.State.Play(move)
		updates = append(updates, Update{Move: move, State: e.State})
	}

	winner := e.State.Winner()
	log.Debug().Msgf("game over after %d moves, winner: %s", len(updates), winner)
	return winner, updates
}
