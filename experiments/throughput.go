package experiments

import (
	"context"
	"quoridor/experiments/metrics"
	"quoridor/meta"
	"quoridor/searcher"

	"github.com/rs/zerolog/log"
)

// Throughput summarizes search speed for one difficulty.
type Throughput struct {
	Moves         int
	Nodes         int
	Seconds       float64
	NodesPerMove  float64
	NodesPerSec   float64
	TimedOutMoves int
}

// RunThroughputExperiment plays each searching difficulty against itself and
// reports how many nodes per second the search visits.
func RunThroughputExperiment(ctx context.Context, root string, numGames int) (map[string]Throughput, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Difficulty: searcher.Normal.String(), Seed: meta.DEFAULT_SEED},
		{ID: 2, Difficulty: searcher.Hard.String(), Seed: meta.DEFAULT_SEED},
		{ID: 3, Difficulty: searcher.Hell.String(), Seed: meta.DEFAULT_SEED, Duration: HellBudget},
	}
	// Same config for both players in each game
	// for the same playing strength and similar game length
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	results, err := Run(ctx, root, Experiment{
		Name:     "throughput",
		Configs:  configs,
		Matchups: matchUps,
		NumGames: numGames,
	})
	if err != nil {
		return nil, err
	}

	summary := SummarizeThroughput(results.Moves)
	for difficulty, tp := range summary {
		log.Info().
			Str("difficulty", difficulty).
			Int("moves", tp.Moves).
			Float64("nodes_per_move", tp.NodesPerMove).
			Float64("nodes_per_sec", tp.NodesPerSec).
			Int("timed_out", tp.TimedOutMoves).
			Msg("throughput")
	}
	return summary, nil
}

// SummarizeThroughput aggregates move records by difficulty. Records without
// search metrics are skipped.
func SummarizeThroughput(records []metrics.MoveRecord) map[string]Throughput {
	summary := make(map[string]Throughput)
	for _, record := range records {
		if record.Difficulty == "" {
			continue
		}
		tp := summary[record.Difficulty]
		tp.Moves++
		tp.Nodes += record.Nodes
		tp.Seconds += record.Duration.Seconds()
		if record.TimedOut {
			tp.TimedOutMoves++
		}
		summary[record.Difficulty] = tp
	}

	for difficulty, tp := range summary {
		tp.NodesPerMove = float64(tp.Nodes) / float64(tp.Moves)
		if tp.Seconds > 0 {
			tp.NodesPerSec = float64(tp.Nodes) / tp.Seconds
		}
		summary[difficulty] = tp
	}
	return summary
}
