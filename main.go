package main

import (
	"flag"
	"fmt"
	"os"

	"hexapawn/agent"
	"hexapawn/engine"
	"hexapawn/game"
	"hexapawn/meta"
	"hexapawn/report"
	"hexapawn/searcher"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logLevel := flag.String("log-level", meta.LOG_LEVEL, "Log level (trace, debug, info, warn, error)")
	outputDir := flag.String("out", meta.OUTPUT_DIR, "Directory for run reports, empty to skip")
	numGames := flag.Int("games", meta.GAMES, "Number of games between the solved policy (Black) and a random White")
	seed := flag.Uint64("seed", meta.SEED, "Seed of the random White player")
	color := flag.Bool("color", true, "Colour pawns in the table dump")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	log.Info().Msg("solving hexapawn from the starting position...")
	result := searcher.Solve(searcher.WithMetrics())
	log.Info().
		Stringer("value", result.Value).
		Str("winner", result.Value.Winner().String()).
		Int("states", result.Table.Len()).
		Int("nodes", result.Metrics.Nodes).
		Int("terminals", result.Metrics.Terminals).
		Int("overwrites", result.Metrics.Overwrites).
		Dur("duration", result.Metrics.Duration).
		Msg("search complete")

	profile := termenv.Ascii
	if *color {
		profile = termenv.ColorProfile()
	}
	if err := report.Dump(os.Stdout, result.Table, profile); err != nil {
		log.Fatal().Err(err).Msg("failed to print policy table")
	}

	records := playGames(result.Table, *numGames, *seed)

	if *outputDir == "" {
		return
	}
	writeReport(*outputDir, result, records)
}

// playGames pits the solved policy as Black against a random White
func playGames(table *searcher.Table, numGames int, seed uint64) []report.GameRecord {
	records := []report.GameRecord{}
	wins := 0
	for i := 0; i < numGames; i++ {
		var e engine.Engine = engine.NewLocalEngine(agent.NewRandomAgent(seed+uint64(i)), agent.NewPolicyAgent(table))
		winner, updates := e.Run()

		moves := make([]game.Action, len(updates))
		for j, update := range updates {
			moves[j] = update.Move
		}
		records = append(records, report.GameRecord{
			ID:     i + 1,
			White:  fmt.Sprintf("random(seed=%d)", seed+uint64(i)),
			Black:  "policy",
			Winner: winner,
			Moves:  moves,
		})
		if winner == game.Black {
			wins++
		}
		log.Info().Msgf("game %d of %d over after %d moves, winner: %s", i+1, numGames, len(updates), winner)
	}

	if numGames > 0 {
		log.Info().Msgf("solved policy won %d of %d games as Black", wins, numGames)
	}
	if wins != numGames {
		log.Warn().Msgf("solved policy lost %d games", numGames-wins)
	}
	return records
}

func writeReport(dir string, result searcher.Result, records []report.GameRecord) {
	writer, err := report.NewWriter(dir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create report writer")
	}

	if err := writer.WriteSetup(result); err != nil {
		log.Fatal().Err(err).Msg("failed to store run setup")
	}
	log.Info().Msg("stored run setup")

	if err := writer.WritePolicyTable(result.Table); err != nil {
		log.Fatal().Err(err).Msg("failed to store policy table")
	}
	log.Info().Msg("stored policy table")

	if len(records) > 0 {
		if err := writer.WriteGameRecords(records); err != nil {
			log.Fatal().Err(err).Msg("failed to store game records")
		}
		log.Info().Msg("stored game records")
	}

	log.Info().Str("run", writer.RunID()).Msgf("report written to %s", writer.Dir())
}
