package searcher

import (
	"context"
	"math"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(ai *AI)

// AI picks moves for the player to act. It owns its random source, so an AI
// must not be shared between goroutines.
type AI struct {
	rng      *rand.Rand
	duration time.Duration
	evaluate game.Evaluate
	metrics  metrics.Collector
}

// WithSeed makes noise and Easy play reproducible.
func WithSeed(seed uint64) Option {
	return func(ai *AI) {
		ai.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(ai *AI) {
		if rng != nil {
			ai.rng = rng
		}
	}
}

// WithDuration bounds every search. When the deadline passes the remaining
// nodes are scored as leaves and the best move found so far is returned.
func WithDuration(duration time.Duration) Option {
	return func(ai *AI) {
		if duration > 0 {
			ai.duration = duration
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(ai *AI) {
		if evaluate != nil {
			ai.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(ai *AI) {
		ai.metrics = metrics.NewCollector()
	}
}

func NewAI(options ...Option) *AI {
	ai := &AI{ // Default values
		evaluate: game.EvaluatePosition,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(ai)
	}
	if ai.rng == nil {
		ai.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return ai
}

// BestMove chooses a move for the current player of state. The board is never
// modified. An error is returned only when the player has no legal move at all.
func (ai *AI) BestMove(ctx context.Context, board *game.Board, state *game.State, difficulty Difficulty) (game.Move, metrics.SearchMetric, error) {
	player := state.CurrentPlayer()
	depth, noise := difficulty.Params()
	ai.metrics.Start(difficulty.String(), depth, noise)

	if ai.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ai.duration)
		defer cancel()
	}

	var move game.Move
	var err error
	if difficulty == Easy {
		move, err = ai.randomMove(board, player)
	} else {
		move, err = ai.searchRoot(ctx, board, player, depth, noise)
	}
	metric := ai.metrics.Complete()
	if err != nil {
		return game.Move{}, metric, err
	}

	log.Debug().
		Str("difficulty", difficulty.String()).
		Int("player", player).
		Stringer("move", move).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Dur("duration", metric.Duration).
		Msg("found move")
	return move, metric, nil
}

// searchRoot runs minimax below every root move with a full window and keeps the
// first move with the highest score. Wins score by distance, so an immediate win
// beats a slower one.
func (ai *AI) searchRoot(ctx context.Context, board *game.Board, player, depth, noise int) (game.Move, error) {
	moves := allValidMoves(board, player)
	if len(moves) == 0 {
		return game.Move{}, ErrNoLegalMove
	}
	ai.metrics.SetCandidates(len(moves))

	s := &search{
		player:   player,
		opponent: game.Opponent(player),
		noise:    noise,
		evaluate: ai.evaluate,
		rng:      ai.rng,
		metrics:  ai.metrics,
	}

	best := moves[0]
	bestScore := math.MinInt
	for _, move := range moves {
		child := board.Copy()
		if err := move.Apply(child, player); err != nil {
			log.Warn().Err(err).Stringer("move", move).Msg("skipping candidate that failed to apply")
			continue
		}
		score := s.minimax(ctx, child, depth-1, 1, math.MinInt, math.MaxInt, false)
		if score > bestScore {
			bestScore = score
			best = move
		}
	}

	if ctx.Err() != nil {
		log.Warn().Int("player", player).Int("depth", depth).Msg("search deadline reached, returning best move so far")
	}
	return best, nil
}
