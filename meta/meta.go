// meta/meta.go
package meta

// LOG_LEVEL is the default zerolog level.
const LOG_LEVEL = "info"

// OUTPUT_DIR is where run reports go; empty disables writing them.
const OUTPUT_DIR = ""

// GAMES is the default number of demonstration games after solving.
const GAMES = 0

// SEED seeds the random opponent of the demonstration games.
const SEED = 1
