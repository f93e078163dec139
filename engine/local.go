package engine

import (
	"context"
	"fmt"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/meta"
	"quoridor/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// Engine plays a local game between two agents, agent i controlling player i.
type Engine struct {
	Board    *game.Board
	State    *game.State
	agents   []agent.Agent
	maxTurns int
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func New(agents []agent.Agent, options ...Option) *Engine {
	if len(agents) != game.NumPlayers {
		panic(fmt.Sprintf("need exactly %d agents, got %d", game.NumPlayers, len(agents)))
	}

	e := &Engine{
		Board:    game.NewBoard(),
		State:    game.NewState(),
		agents:   agents,
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Play validates and applies a move for the current player, then either ends
// the game or passes the turn.
func (e *Engine) Play(move game.Move) error {
	if e.State.Status() != game.Playing {
		return ErrGameOver
	}

	player := e.State.CurrentPlayer()
	if !game.IsLegal(e.Board, player, move) {
		return fmt.Errorf("%w: %s by player %d", ErrIllegalMove, move, player)
	}
	if err := move.Apply(e.Board, player); err != nil {
		return fmt.Errorf("failed to apply %s: %w", move, err)
	}

	if game.CheckVictory(e.Board, player) {
		e.State.SetStatus(game.WonBy(player))
		return nil
	}
	e.State.SwitchPlayer()
	return nil
}

// Run executes the game loop until a winner is found, the turn cap is reached
// or ctx is done. Winner is -1 in the metric when nobody won.
func (e *Engine) Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.CurrentPlayer(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %d is starting", e.State.CurrentPlayer())

	var runErr error
	for turn := 1; e.State.Status() == game.Playing && turn <= e.maxTurns; turn++ {
		if runErr = ctx.Err(); runErr != nil {
			break
		}

		// Agents work on snapshots, only Play changes the game
		player := e.State.CurrentPlayer()
		state := *e.State
		move, searchMetric, err := e.agents[player].FindMove(ctx, e.Board.Copy(), &state)
		if err == nil {
			err = e.Play(move)
		}
		if err != nil {
			log.Warn().Err(err).Int("player", player).Msg("replacing agent move with fallback")
			if move, runErr = e.fallback(player); runErr != nil {
				break
			}
			gameMetric.IllegalMoves++
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
	}

	gameMetric.Winner = e.State.Winner()
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	if gameMetric.Winner == -1 && runErr == nil {
		log.Info().Msgf("stopped after %d turns without a winner", e.maxTurns)
	}
	return gameMetric, moveMetrics, runErr
}

// fallback plays the first legal pawn move for player, or the first legal wall
// when the pawn cannot move.
func (e *Engine) fallback(player int) (game.Move, error) {
	for _, dest := range game.ValidPawnMoves(e.Board, player) {
		move := game.NewPawnMove(dest)
		if err := e.Play(move); err == nil {
			return move, nil
		}
	}
	for _, wall := range game.ValidWallPlacements(e.Board, player) {
		move := game.NewWallMove(wall)
		if err := e.Play(move); err == nil {
			return move, nil
		}
	}
	return game.Move{}, fmt.Errorf("player %d: %w", player, ErrStuck)
}
