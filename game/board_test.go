package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	board := NewBoard()

	require.Equal(t, Position{X: 4, Y: 0}, board.PawnPosition(0))
	require.Equal(t, Position{X: 4, Y: 8}, board.PawnPosition(1))
	require.Equal(t, MaxWallsPerPlayer, board.WallsRemaining(0))
	require.Equal(t, MaxWallsPerPlayer, board.WallsRemaining(1))
	require.Empty(t, board.Walls())
}

func TestBoardMovePawn(t *testing.T) {
	t.Run("moves without rule checking", func(t *testing.T) {
		board := NewBoard()

		require.NoError(t, board.MovePawn(0, Position{X: 8, Y: 8}))
		require.Equal(t, Position{X: 8, Y: 8}, board.PawnPosition(0))
	})

	t.Run("rejects player index out of range", func(t *testing.T) {
		board := NewBoard()

		for _, player := range []int{-1, 2} {
			err := board.MovePawn(player, Position{X: 4, Y: 4})
			require.ErrorIs(t, err, ErrOutOfRange)
		}
	})

	t.Run("rejects every off-grid target", func(t *testing.T) {
		board := NewBoard()

		for x := -2; x <= BoardSize+1; x++ {
			for y := -2; y <= BoardSize+1; y++ {
				pos := Position{X: x, Y: y}
				err := board.MovePawn(0, pos)
				if x < 0 || x > 8 || y < 0 || y > 8 {
					require.ErrorIs(t, err, ErrInvalidPosition, "target %s", pos)
					continue
				}
				require.NoError(t, err, "target %s", pos)
			}
		}
	})

	t.Run("failed move leaves board unchanged", func(t *testing.T) {
		board := NewBoard()

		require.Error(t, board.MovePawn(1, Position{X: 9, Y: 0}))
		require.Equal(t, Position{X: 4, Y: 8}, board.PawnPosition(1))
	})

	t.Run("row-first setter", func(t *testing.T) {
		board := NewBoard()

		require.NoError(t, board.SetPawnPosition(0, 6, 2))
		require.Equal(t, Position{X: 2, Y: 6}, board.PawnPosition(0))
	})
}

func TestBoardPlaceWall(t *testing.T) {
	t.Run("places wall and spends inventory", func(t *testing.T) {
		board := NewBoard()
		wall := Wall{Pos: Position{X: 3, Y: 3}, Orientation: Horizontal}

		require.NoError(t, board.PlaceWall(wall, 1))
		require.Equal(t, []Wall{wall}, board.Walls())
		require.Equal(t, MaxWallsPerPlayer-1, board.WallsRemaining(1))
		require.Equal(t, MaxWallsPerPlayer, board.WallsRemaining(0))
		require.True(t, board.HasWallAt(wall.Pos, Horizontal))
		require.False(t, board.HasWallAt(wall.Pos, Vertical))
	})

	t.Run("rejects invalid placements with the matching error", func(t *testing.T) {
		board := NewBoard()
		require.NoError(t, board.PlaceWall(Wall{Pos: Position{X: 3, Y: 3}, Orientation: Horizontal}, 0))

		tests := []struct {
			name   string
			wall   Wall
			player int
			err    error
		}{
			{"player out of range", Wall{Pos: Position{X: 0, Y: 0}}, 2, ErrOutOfRange},
			{"slot x too large", Wall{Pos: Position{X: 8, Y: 0}}, 0, ErrOutOfBoundsWall},
			{"slot y negative", Wall{Pos: Position{X: 0, Y: -1}}, 0, ErrOutOfBoundsWall},
			{"exact duplicate", Wall{Pos: Position{X: 3, Y: 3}, Orientation: Horizontal}, 1, ErrOverlapViolation},
			{"crossing", Wall{Pos: Position{X: 3, Y: 3}, Orientation: Vertical}, 1, ErrOverlapViolation},
			{"partial left", Wall{Pos: Position{X: 2, Y: 3}, Orientation: Horizontal}, 1, ErrOverlapViolation},
			{"partial right", Wall{Pos: Position{X: 4, Y: 3}, Orientation: Horizontal}, 1, ErrOverlapViolation},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := board.PlaceWall(tt.wall, tt.player)
				require.ErrorIs(t, err, tt.err)
				require.Len(t, board.Walls(), 1, "Failed placement should not change the board")
			})
		}
	})

	t.Run("rejects when inventory is empty", func(t *testing.T) {
		board := NewBoard()
		for i := 0; i < MaxWallsPerPlayer; i++ {
			wall := Wall{Pos: Position{X: (i % 4) * 2, Y: (i / 4) * 2}, Orientation: Horizontal}
			require.NoError(t, board.PlaceWall(wall, 0))
		}

		err := board.PlaceWall(Wall{Pos: Position{X: 7, Y: 7}, Orientation: Horizontal}, 0)
		require.ErrorIs(t, err, ErrNoWallsRemaining)
		require.Equal(t, 0, board.WallsRemaining(0))
	})
}

func TestBoardReset(t *testing.T) {
	board := NewBoard()
	require.NoError(t, board.MovePawn(0, Position{X: 1, Y: 5}))
	require.NoError(t, board.PlaceWall(Wall{Pos: Position{X: 0, Y: 0}}, 1))

	board.Reset()

	require.Equal(t, NewBoard().PawnPosition(0), board.PawnPosition(0))
	require.Empty(t, board.Walls())
	require.Equal(t, MaxWallsPerPlayer, board.WallsRemaining(1))
}

func TestBoardCopy(t *testing.T) {
	board := NewBoard()
	require.NoError(t, board.PlaceWall(Wall{Pos: Position{X: 0, Y: 0}}, 0))

	clone := board.Copy()
	require.NoError(t, clone.PlaceWall(Wall{Pos: Position{X: 4, Y: 4}}, 0))
	require.NoError(t, clone.MovePawn(1, Position{X: 0, Y: 0}))

	require.Len(t, board.Walls(), 1, "Source board walls should not alias the clone")
	require.Equal(t, MaxWallsPerPlayer-1, board.WallsRemaining(0))
	require.Equal(t, Position{X: 4, Y: 8}, board.PawnPosition(1))
}

func TestBoardAccessorsPanicOnBadPlayer(t *testing.T) {
	board := NewBoard()

	require.Panics(t, func() { board.PawnPosition(2) })
	require.Panics(t, func() { board.WallsRemaining(-1) })
}
