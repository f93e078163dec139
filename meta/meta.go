// meta/meta.go
package meta

// MAX_TURNS caps the number of moves in a single game.
const MAX_TURNS = 300

// NUM_GAMES defines the number of games per experiment match-up.
const NUM_GAMES = 20

// DEFAULT_SEED seeds the agents' random sources in experiments.
const DEFAULT_SEED = 1

// RESULTS_DIR is where experiment results are stored.
const RESULTS_DIR = "results"
