package agent

import (
	"context"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher"
)

type evaluationAgent struct {
	ai         *searcher.AI
	difficulty searcher.Difficulty
}

// NewEvaluationAgent returns an agent that always plays at the given difficulty.
func NewEvaluationAgent(ai *searcher.AI, difficulty searcher.Difficulty) Agent {
	return evaluationAgent{ai: ai, difficulty: difficulty}
}

func (a evaluationAgent) FindMove(ctx context.Context, board *game.Board, state *game.State) (game.Move, metrics.SearchMetric, error) {
	return a.ai.BestMove(ctx, board, state, a.difficulty)
}
