package searcher

import (
	"quoridor/game"
)

// Easy play places a wall this many times out of ten when it can.
const wallChance = 2

// randomMove picks a uniformly random legal pawn move, or a uniformly random
// legal wall from the full scan with a 20% chance.
func (ai *AI) randomMove(board *game.Board, player int) (game.Move, error) {
	if ai.rng.Intn(10) < wallChance {
		if walls := game.ValidWallPlacements(board, player); len(walls) > 0 {
			ai.metrics.SetCandidates(len(walls))
			return game.NewWallMove(walls[ai.rng.Intn(len(walls))]), nil
		}
	}

	if pawnMoves := game.ValidPawnMoves(board, player); len(pawnMoves) > 0 {
		ai.metrics.SetCandidates(len(pawnMoves))
		return game.NewPawnMove(pawnMoves[ai.rng.Intn(len(pawnMoves))]), nil
	}

	// A boxed-in pawn can still place a wall
	if walls := game.ValidWallPlacements(board, player); len(walls) > 0 {
		ai.metrics.SetCandidates(len(walls))
		return game.NewWallMove(walls[ai.rng.Intn(len(walls))]), nil
	}
	return game.Move{}, ErrNoLegalMove
}

// allValidMoves returns every legal pawn move followed by the legal walls among
// a pruned candidate set: walls that cut the opponent's current shortest path
// and walls touching the opponent's pawn. Walls elsewhere are never considered.
func allValidMoves(board *game.Board, player int) []game.Move {
	var moves []game.Move
	for _, dest := range game.ValidPawnMoves(board, player) {
		moves = append(moves, game.NewPawnMove(dest))
	}
	for _, wall := range wallCandidates(board, player) {
		moves = append(moves, game.NewWallMove(wall))
	}
	return moves
}

func wallCandidates(board *game.Board, player int) []game.Wall {
	if board.WallsRemaining(player) == 0 {
		return nil
	}
	opponent := game.Opponent(player)

	var walls []game.Wall
	seen := make(map[game.Wall]bool)
	add := func(wall game.Wall) {
		if seen[wall] {
			return
		}
		seen[wall] = true
		if game.IsValidWallPlacement(board, wall, player) {
			walls = append(walls, wall)
		}
	}

	prev := board.PawnPosition(opponent)
	for _, step := range game.ShortestPath(board, opponent) {
		for _, wall := range blockingWalls(prev, step) {
			add(wall)
		}
		prev = step
	}

	pawn := board.PawnPosition(opponent)
	for dy := -1; dy <= 0; dy++ {
		for dx := -1; dx <= 0; dx++ {
			pos := game.Position{X: pawn.X + dx, Y: pawn.Y + dy}
			add(game.Wall{Pos: pos, Orientation: game.Horizontal})
			add(game.Wall{Pos: pos, Orientation: game.Vertical})
		}
	}
	return walls
}

// blockingWalls returns the two wall slots that would block the unit step
// between adjacent cells. Slots may lie off the lattice.
func blockingWalls(from, to game.Position) [2]game.Wall {
	if from.X == to.X {
		row := min(from.Y, to.Y)
		return [2]game.Wall{
			{Pos: game.Position{X: from.X, Y: row}, Orientation: game.Horizontal},
			{Pos: game.Position{X: from.X - 1, Y: row}, Orientation: game.Horizontal},
		}
	}
	col := min(from.X, to.X)
	return [2]game.Wall{
		{Pos: game.Position{X: col, Y: from.Y}, Orientation: game.Vertical},
		{Pos: game.Position{X: col, Y: from.Y - 1}, Orientation: game.Vertical},
	}
}
