package searcher

import (
	"context"
	"math"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func hWall(x, y int) game.Wall {
	return game.Wall{Pos: game.Position{X: x, Y: y}, Orientation: game.Horizontal}
}

func vWall(x, y int) game.Wall {
	return game.Wall{Pos: game.Position{X: x, Y: y}, Orientation: game.Vertical}
}

func placeWalls(t *testing.T, board *game.Board, player int, walls ...game.Wall) {
	for _, wall := range walls {
		require.NoError(t, board.PlaceWall(wall, player))
	}
}

func setPawns(t *testing.T, board *game.Board, p0, p1 game.Position) {
	require.NoError(t, board.MovePawn(0, p0))
	require.NoError(t, board.MovePawn(1, p1))
}

// stateFor returns a state with player to act.
func stateFor(player int) *game.State {
	state := game.NewState()
	if player == 1 {
		state.SwitchPlayer()
	}
	return state
}

// spendWalls uses up both inventories on vertical walls in columns 0-2 and 6-7,
// leaving columns 3-6 open between them.
func spendWalls(t *testing.T, board *game.Board) {
	placeWalls(t, board, 0,
		vWall(0, 0), vWall(0, 2), vWall(0, 4), vWall(0, 6),
		vWall(1, 0), vWall(1, 2), vWall(1, 4), vWall(1, 6),
		vWall(2, 0), vWall(2, 2),
	)
	placeWalls(t, board, 1,
		vWall(2, 4), vWall(2, 6),
		vWall(6, 0), vWall(6, 2), vWall(6, 4), vWall(6, 6),
		vWall(7, 0), vWall(7, 2), vWall(7, 4), vWall(7, 6),
	)
}

func requireLegal(t *testing.T, board *game.Board, player int, move game.Move) {
	require.True(t, game.IsLegal(board, player, move), "Move %s should be legal for player %d", move, player)
}

func TestBestMoveIsLegal(t *testing.T) {
	midgame := func() *game.Board {
		board := game.NewBoard()
		setPawns(t, board, game.Position{X: 3, Y: 4}, game.Position{X: 4, Y: 4})
		placeWalls(t, board, 0, hWall(3, 5), vWall(5, 2))
		placeWalls(t, board, 1, hWall(3, 3), vWall(1, 6))
		return board
	}

	for _, difficulty := range Difficulties {
		for player := 0; player < game.NumPlayers; player++ {
			t.Run(difficulty.String(), func(t *testing.T) {
				ai := NewAI(WithSeed(42))
				for _, board := range []*game.Board{game.NewBoard(), midgame()} {
					move, _, err := ai.BestMove(context.Background(), board, stateFor(player), difficulty)
					require.NoError(t, err)
					requireLegal(t, board, player, move)
				}
			})
		}
	}
}

func TestBestMoveDoesNotModifyBoard(t *testing.T) {
	board := game.NewBoard()
	placeWalls(t, board, 1, hWall(2, 2))
	before := board.Copy()

	_, _, err := NewAI(WithSeed(1)).BestMove(context.Background(), board, stateFor(0), Hard)
	require.NoError(t, err)

	require.Equal(t, before, board)
}

func TestBestMoveTakesImmediateWin(t *testing.T) {
	t.Run("opponent can still block", func(t *testing.T) {
		board := game.NewBoard()
		setPawns(t, board, game.Position{X: 4, Y: 7}, game.Position{X: 0, Y: 8})

		for _, difficulty := range []Difficulty{Normal, Hard, Hell} {
			move, _, err := NewAI(WithSeed(3)).BestMove(context.Background(), board, stateFor(0), difficulty)
			require.NoError(t, err)
			require.Equal(t, game.NewPawnMove(game.Position{X: 4, Y: 8}), move, difficulty.String())
		}
	})

	t.Run("no walls left on either side", func(t *testing.T) {
		// Sideways steps still win a few plies later, the direct step must be preferred
		board := game.NewBoard()
		spendWalls(t, board)
		setPawns(t, board, game.Position{X: 4, Y: 7}, game.Position{X: 8, Y: 8})

		for _, difficulty := range []Difficulty{Normal, Hard, Hell} {
			move, _, err := NewAI(WithSeed(3)).BestMove(context.Background(), board, stateFor(0), difficulty)
			require.NoError(t, err)
			require.Equal(t, game.NewPawnMove(game.Position{X: 4, Y: 8}), move, difficulty.String())
		}
	})
}

func TestMinimaxScoresWinsByDistance(t *testing.T) {
	s := &search{
		player:   0,
		opponent: 1,
		evaluate: game.EvaluatePosition,
		rng:      rand.New(rand.NewSource(1)),
		metrics:  metrics.NewDummyCollector(),
	}

	won := game.NewBoard()
	require.NoError(t, won.MovePawn(0, game.Position{X: 3, Y: 8}))
	lost := game.NewBoard()
	require.NoError(t, lost.MovePawn(1, game.Position{X: 3, Y: 0}))

	for ply := 1; ply <= 4; ply++ {
		win := s.minimax(context.Background(), won, 4-ply, ply, math.MinInt, math.MaxInt, false)
		require.Equal(t, game.WinScore-ply, win)
		require.True(t, game.IsDecided(win))

		loss := s.minimax(context.Background(), lost, 4-ply, ply, math.MinInt, math.MaxInt, true)
		require.Equal(t, game.LossScore+ply, loss)
		require.True(t, game.IsDecided(loss))
	}

	faster := s.minimax(context.Background(), won, 3, 1, math.MinInt, math.MaxInt, false)
	slower := s.minimax(context.Background(), won, 1, 3, math.MinInt, math.MaxInt, false)
	require.Greater(t, faster, slower)
}

func TestBestMoveBlocksImmediateLoss(t *testing.T) {
	// Player 1 is one step from row 0 and player 0 is far from winning
	board := game.NewBoard()
	setPawns(t, board, game.Position{X: 0, Y: 0}, game.Position{X: 4, Y: 1})

	move, _, err := NewAI(WithSeed(5)).BestMove(context.Background(), board, stateFor(0), Hard)
	require.NoError(t, err)
	require.True(t, move.IsWallPlacement(), "Only a wall stops the opponent, got %s", move)

	child := board.Copy()
	require.NoError(t, move.Apply(child, 0))
	for _, dest := range game.ValidPawnMoves(child, 1) {
		require.NotEqual(t, game.GoalRow(1), dest.Y, "Opponent can still win with %s", dest)
	}
}

func TestBestMoveHellFindsForcedWin(t *testing.T) {
	// All walls are spent away from column 4, so player 0 wins in three plies
	board := game.NewBoard()
	spendWalls(t, board)
	setPawns(t, board, game.Position{X: 4, Y: 6}, game.Position{X: 8, Y: 8})

	ai := NewAI(WithSeed(9), WithMetrics())
	move, metric, err := ai.BestMove(context.Background(), board, stateFor(0), Hell)
	require.NoError(t, err)
	require.Equal(t, game.NewPawnMove(game.Position{X: 4, Y: 7}), move)
	require.False(t, metric.TimedOut)
	require.Equal(t, 4, metric.Depth)
	require.Zero(t, metric.Noise)
}

func TestBestMoveDeadline(t *testing.T) {
	board := game.NewBoard()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ai := NewAI(WithSeed(11), WithMetrics())
	move, metric, err := ai.BestMove(ctx, board, stateFor(0), Hell)
	require.NoError(t, err)
	requireLegal(t, board, 0, move)

	// Every root child is scored as a leaf once the context is done
	require.True(t, metric.TimedOut)
	require.Equal(t, metric.Candidates, metric.Nodes)
	require.Equal(t, metric.Candidates, metric.Leaves)
}

func TestBestMoveWithDuration(t *testing.T) {
	ai := NewAI(WithSeed(13), WithDuration(1))
	board := game.NewBoard()

	move, _, err := ai.BestMove(context.Background(), board, stateFor(1), Hell)
	require.NoError(t, err)
	requireLegal(t, board, 1, move)
}

func TestBestMoveMetrics(t *testing.T) {
	ai := NewAI(WithSeed(17), WithMetrics())

	_, metric, err := ai.BestMove(context.Background(), game.NewBoard(), stateFor(0), Normal)
	require.NoError(t, err)

	// 3 pawn moves and 18 walls around the opponent's column
	require.Equal(t, "normal", metric.Difficulty)
	require.Equal(t, 1, metric.Depth)
	require.Equal(t, 25, metric.Noise)
	require.Equal(t, 21, metric.Candidates)
	require.Equal(t, 21, metric.Nodes)
	require.Equal(t, 21, metric.Leaves)
	require.Zero(t, metric.Cutoffs)
	require.False(t, metric.TimedOut)

	// Without WithMetrics nothing is collected
	_, metric, err = NewAI(WithSeed(17)).BestMove(context.Background(), game.NewBoard(), stateFor(0), Normal)
	require.NoError(t, err)
	require.Zero(t, metric.Nodes)
}

func TestBestMoveIsReproducible(t *testing.T) {
	board := game.NewBoard()
	placeWalls(t, board, 1, hWall(4, 2))

	for _, difficulty := range []Difficulty{Easy, Normal, Hard} {
		t.Run(difficulty.String(), func(t *testing.T) {
			first, second := NewAI(WithSeed(21)), NewAI(WithSeed(21))
			for i := 0; i < 5; i++ {
				a, _, err := first.BestMove(context.Background(), board, stateFor(0), difficulty)
				require.NoError(t, err)
				b, _, err := second.BestMove(context.Background(), board, stateFor(0), difficulty)
				require.NoError(t, err)
				require.Equal(t, a, b)
			}
		})
	}
}

func TestBestMoveWithEvaluationFn(t *testing.T) {
	calls := 0
	evaluate := func(board *game.Board, player int) int {
		calls++
		return game.EvaluateDistance(board, player)
	}

	ai := NewAI(WithSeed(23), WithEvaluationFn(evaluate))
	board := game.NewBoard()
	move, _, err := ai.BestMove(context.Background(), board, stateFor(0), Normal)
	require.NoError(t, err)
	requireLegal(t, board, 0, move)
	require.Equal(t, 21, calls, "One evaluation per root candidate at depth 1")
}

func TestBestMoveNoLegalMove(t *testing.T) {
	// Player 0 is sealed into a single cell
	board := game.NewBoard()
	require.NoError(t, board.MovePawn(0, game.Position{X: 4, Y: 4}))
	placeWalls(t, board, 1, vWall(3, 3), vWall(4, 4), hWall(4, 3), hWall(3, 4))

	for _, difficulty := range []Difficulty{Easy, Hard} {
		t.Run(difficulty.String(), func(t *testing.T) {
			_, _, err := NewAI(WithSeed(29)).BestMove(context.Background(), board, stateFor(0), difficulty)
			require.ErrorIs(t, err, ErrNoLegalMove)
		})
	}
}
