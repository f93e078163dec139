package searcher

import (
	"context"
	"math"
	"quoridor/experiments/metrics"
	"quoridor/game"

	"golang.org/x/exp/rand"
)

// search holds what stays fixed while one root move is explored. Scores are
// always from player's perspective.
type search struct {
	player   int
	opponent int
	noise    int
	evaluate game.Evaluate
	rng      *rand.Rand
	metrics  metrics.Collector
}

// minimax scores board with alpha-beta pruning. maximizing is true when the
// searching player is to act and ply counts the moves made since the root.
// Every child gets its own copy of the board.
func (s *search) minimax(ctx context.Context, board *game.Board, depth, ply, alpha, beta int, maximizing bool) int {
	s.metrics.AddNode()

	if game.CheckVictory(board, s.player) {
		s.metrics.AddLeaf()
		return game.WinScore - ply
	}
	if game.CheckVictory(board, s.opponent) {
		s.metrics.AddLeaf()
		return game.LossScore + ply
	}
	if depth <= 0 {
		return s.leaf(board)
	}
	if ctx.Err() != nil {
		s.metrics.SetTimedOut()
		return s.leaf(board)
	}

	toAct := s.opponent
	if maximizing {
		toAct = s.player
	}
	moves := allValidMoves(board, toAct)
	if len(moves) == 0 {
		return s.leaf(board)
	}

	if maximizing {
		value := math.MinInt
		for _, move := range moves {
			child := board.Copy()
			if move.Apply(child, toAct) != nil {
				continue
			}
			value = max(value, s.minimax(ctx, child, depth-1, ply+1, alpha, beta, false))
			alpha = max(alpha, value)
			if beta <= alpha {
				s.metrics.AddCutoff()
				break
			}
		}
		return value
	}

	value := math.MaxInt
	for _, move := range moves {
		child := board.Copy()
		if move.Apply(child, toAct) != nil {
			continue
		}
		value = min(value, s.minimax(ctx, child, depth-1, ply+1, alpha, beta, true))
		beta = min(beta, value)
		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}
	return value
}

func (s *search) leaf(board *game.Board) int {
	s.metrics.AddLeaf()
	return evaluateWithNoise(board, s.player, s.evaluate, s.noise, s.rng)
}

// evaluateWithNoise adds uniform noise in [-noise, noise] to the score unless
// it is a decided win or loss.
func evaluateWithNoise(board *game.Board, player int, evaluate game.Evaluate, noise int, rng *rand.Rand) int {
	score := evaluate(board, player)
	if noise <= 0 || game.IsDecided(score) {
		return score
	}
	return score + rng.Intn(2*noise+1) - noise
}
