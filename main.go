package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"quoridor/experiments"
	"quoridor/experiments/metrics"
	"quoridor/meta"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "match", "One of match, difficulty, heuristic, throughput")
	player0 := flag.String("p0", "hard", "Difficulty of player 0 in a match")
	player1 := flag.String("p1", "normal", "Difficulty of player 1 in a match")
	evaluate := flag.String("evaluate", "", "Heuristic for both players in a match (position or distance)")
	seed := flag.Uint64("seed", meta.DEFAULT_SEED, "Seed of the first agent, the second uses seed+1")
	duration := flag.Duration("duration", 0, "Search deadline per move, 0 for none")
	games := flag.Int("games", 1, "Number of games in a match or per throughput match-up")
	results := flag.String("results", meta.RESULTS_DIR, "Directory for experiment results")
	debug := flag.Bool("debug", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch *mode {
	case "match":
		config1 := metrics.AgentConfig{ID: 0, Difficulty: *player0, Seed: *seed, Duration: *duration, Evaluate: *evaluate}
		config2 := metrics.AgentConfig{ID: 1, Difficulty: *player1, Seed: *seed + 1, Duration: *duration, Evaluate: *evaluate}
		err = runMatch(ctx, config1, config2, *games)
	case "difficulty":
		_, err = experiments.RunDifficultyExperiment(ctx, *results)
	case "heuristic":
		_, err = experiments.RunHeuristicExperiment(ctx, *results)
	case "throughput":
		_, err = experiments.RunThroughputExperiment(ctx, *results, *games)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func runMatch(ctx context.Context, config1, config2 metrics.AgentConfig, games int) error {
	records, _, err := experiments.RunMatch(ctx, config1, config2, games, 0)
	if err != nil {
		return err
	}

	wins := experiments.Results{Games: records}.Wins()
	fmt.Printf("%s (agent %d): %d wins\n", config1.Difficulty, config1.ID, wins[config1.ID])
	fmt.Printf("%s (agent %d): %d wins\n", config2.Difficulty, config2.ID, wins[config2.ID])
	fmt.Printf("draws by turn cap: %d\n", len(records)-wins[config1.ID]-wins[config2.ID])
	return nil
}
