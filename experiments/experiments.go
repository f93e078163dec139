package experiments

import (
	"context"
	"fmt"
	"quoridor/engine"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/meta"
	"quoridor/searcher"
	"quoridor/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

// Heuristics selectable by AgentConfig.Evaluate.
var Heuristics = map[string]game.Evaluate{
	"position": game.EvaluatePosition,
	"distance": game.EvaluateDistance,
}

// HellBudget bounds Hell searches so experiments finish in reasonable time.
const HellBudget = 2 * time.Second

// Experiment describes a set of match-ups, each played NumGames times.
type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	Matchups [][]metrics.AgentConfig
	NumGames int
}

// Results holds the records of a finished experiment.
type Results struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// Wins counts the games won by each agent config ID.
func (r Results) Wins() map[int]int {
	wins := make(map[int]int)
	for _, record := range r.Games {
		switch record.Winner {
		case 0:
			wins[record.Agent1]++
		case 1:
			wins[record.Agent2]++
		}
	}
	return wins
}

// RunDifficultyExperiment pits the Normal baseline against every other difficulty.
func RunDifficultyExperiment(ctx context.Context, root string) (Results, error) {
	baseline := metrics.AgentConfig{ID: 0, Difficulty: searcher.Normal.String(), Seed: meta.DEFAULT_SEED}
	configs := []metrics.AgentConfig{
		{ID: 1, Difficulty: searcher.Easy.String(), Seed: meta.DEFAULT_SEED + 1},
		{ID: 2, Difficulty: searcher.Hard.String(), Seed: meta.DEFAULT_SEED + 2},
		{ID: 3, Difficulty: searcher.Hell.String(), Seed: meta.DEFAULT_SEED + 3, Duration: HellBudget},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return Run(ctx, root, Experiment{
		Name:     "difficulty",
		Configs:  append(configs, baseline),
		Matchups: matchUps,
		NumGames: meta.NUM_GAMES,
	})
}

// RunHeuristicExperiment compares the full position heuristic with the plain
// distance heuristic at the same difficulty.
func RunHeuristicExperiment(ctx context.Context, root string) (Results, error) {
	configs := []metrics.AgentConfig{
		{ID: 0, Difficulty: searcher.Hard.String(), Seed: meta.DEFAULT_SEED, Evaluate: "position"},
		{ID: 1, Difficulty: searcher.Hard.String(), Seed: meta.DEFAULT_SEED + 1, Evaluate: "distance"},
	}

	return Run(ctx, root, Experiment{
		Name:     "heuristic",
		Configs:  configs,
		Matchups: [][]metrics.AgentConfig{{configs[0], configs[1]}},
		NumGames: meta.NUM_GAMES,
	})
}

// Run plays every match-up of the experiment and stores the results under root.
func Run(ctx context.Context, root string, experiment Experiment) (Results, error) {
	start := time.Now()
	results := Results{}

	log.Info().Msgf("starting %s experiment...", experiment.Name)

	for mi, matchup := range experiment.Matchups {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(experiment.Matchups), config1, config2)

		games, moves, err := RunMatch(ctx, config1, config2, experiment.NumGames, len(results.Games))
		results.Games = append(results.Games, games...)
		results.Moves = append(results.Moves, moves...)
		if err != nil {
			return results, fmt.Errorf("matchup %d: %w", mi+1, err)
		}

		log.Info().Msgf("completed matchup %d of %d", mi+1, len(experiment.Matchups))
	}

	log.Info().Msgf("completed %s experiment", experiment.Name)

	if err := store(root, experiment, start, results); err != nil {
		return results, err
	}
	return results, nil
}

// RunMatch plays numGames between two configs, swapping seats every game so
// each config starts half of them. Game IDs continue from firstID.
func RunMatch(ctx context.Context, config1, config2 metrics.AgentConfig, numGames, firstID int) ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	for i := 0; i < numGames; i++ {
		seats := [2]metrics.AgentConfig{config1, config2}
		if i%2 == 1 {
			seats = [2]metrics.AgentConfig{config2, config1}
		}

		log.Info().Msgf("starting game %d of %d...", i+1, numGames)

		gameMetric, moveMetrics, err := runGame(ctx, seats[0], seats[1])
		if err != nil {
			return gameRecords, moveRecords, fmt.Errorf("game %d: %w", i+1, err)
		}

		id := firstID + i + 1
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			Agent1:     seats[0].ID,
			Agent2:     seats[1].ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d with winner: %d", i+1, gameMetric.Winner)
	}

	return gameRecords, moveRecords, nil
}

// runGame executes a single game, config1 playing as player 0.
func runGame(ctx context.Context, config1, config2 metrics.AgentConfig) (metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := make([]agent.Agent, 0, game.NumPlayers)
	for _, config := range []metrics.AgentConfig{config1, config2} {
		a, err := createAgent(config)
		if err != nil {
			return metrics.GameMetric{}, nil, err
		}
		agents = append(agents, a)
	}

	return engine.New(agents).Run(ctx)
}

func createAgent(config metrics.AgentConfig) (agent.Agent, error) {
	difficulty, err := searcher.ParseDifficulty(config.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", config.ID, err)
	}

	options := []searcher.Option{searcher.WithSeed(config.Seed), searcher.WithMetrics()}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Evaluate != "" {
		evaluate, ok := Heuristics[config.Evaluate]
		if !ok {
			return nil, fmt.Errorf("agent %d: unknown heuristic %q", config.ID, config.Evaluate)
		}
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}

	return agent.NewEvaluationAgent(searcher.NewAI(options...), difficulty), nil
}

func store(root string, experiment Experiment, start time.Time, results Results) error {
	writer, err := metrics.NewWriter(root, experiment.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteSetup(experiment.Name, start, time.Now(), experiment.Matchups, experiment.NumGames)
	if err != nil {
		return fmt.Errorf("failed to store setup: %w", err)
	}
	err = writer.WriteAgentConfigs(experiment.Configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(results.Games)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(results.Moves)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("run", writer.RunID()).Str("dir", writer.Dir()).Msg("stored move records")

	return nil
}
