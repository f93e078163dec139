package agent

import (
	"context"
	"quoridor/experiments/metrics"
	"quoridor/game"
)

type Agent interface {
	// FindMove returns a move for the current player of state and the search metrics (if collected)
	FindMove(ctx context.Context, board *game.Board, state *game.State) (game.Move, metrics.SearchMetric, error)
}
