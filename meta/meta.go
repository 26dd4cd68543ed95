// meta/meta.go
package meta

// GAME is the game solved when no -game flag is given.
const GAME = "tictactoe"

// NUM_BOARDS is the default number of Notakto boards.
const NUM_BOARDS = 2

// ARENA_GAMES defines the number of arena games per matchup.
const ARENA_GAMES = 0

// SEED seeds the random arena agents.
const SEED = 1

const OUT_DIR = "out"
