package game

import (
	"container/heap"
	"slices"
)

// Unit steps: up, down, left, right as (row, col) deltas.
var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// HasPathToGoal reports whether the player's pawn can reach its goal row.
func HasPathToGoal(board *Board, player int) bool {
	return solveBFS(board, player, nil)
}

// HasPathToGoalWith is HasPathToGoal with wall hypothetically placed.
func HasPathToGoalWith(board *Board, player int, wall Wall) bool {
	return solveBFS(board, player, &wall)
}

// ShortestPathDistance returns the number of steps from the player's pawn to its
// goal row ignoring pawns, or -1 if the goal row is unreachable.
func ShortestPathDistance(board *Board, player int) int {
	return distance(board, player, nil)
}

// ShortestPathDistanceWith is ShortestPathDistance with wall hypothetically placed.
func ShortestPathDistanceWith(board *Board, player int, wall Wall) int {
	return distance(board, player, &wall)
}

// ShortestPath returns one shortest route to the goal row, excluding the start
// cell and including the goal cell. It is empty when the pawn is already on its
// goal row or cannot reach it. Which route is returned among equals is unspecified.
func ShortestPath(board *Board, player int) []Position {
	return solveAStar(board, player, nil)
}

func distance(board *Board, player int, extra *Wall) int {
	if !validPlayer(player) {
		return -1
	}
	if board.pawns[player].Y == GoalRow(player) {
		return 0
	}
	path := solveAStar(board, player, extra)
	if len(path) == 0 {
		return -1
	}
	return len(path)
}

// Just BFS. The goal row is tested when a neighbor is generated.
func solveBFS(board *Board, player int, extra *Wall) bool {
	if !validPlayer(player) {
		return false
	}
	start := board.pawns[player]
	goal := GoalRow(player)
	if start.Y == goal {
		return true
	}

	var visited [BoardSize][BoardSize]bool
	visited[start.Y][start.X] = true
	queue := []Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range directions {
			row, col := current.Y+d[0], current.X+d[1]
			if !InBounds(row, col) || visited[row][col] {
				continue
			}
			if board.isBlocked(current.Y, current.X, row, col, extra) {
				continue
			}
			if row == goal {
				return true
			}
			visited[row][col] = true
			queue = append(queue, Position{X: col, Y: row})
		}
	}
	return false
}

type node struct {
	pos Position
	g   int
	f   int
}

// openSet is a min-heap of nodes ordered by f score.
type openSet []node

func (s openSet) Len() int           { return len(s) }
func (s openSet) Less(i, j int) bool { return s[i].f < s[j].f }
func (s openSet) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s *openSet) Push(x any)        { *s = append(*s, x.(node)) }
func (s *openSet) Pop() any {
	old := *s
	n := old[len(old)-1]
	*s = old[:len(old)-1]
	return n
}

// A* towards the goal row. The heuristic is the row distance, which never
// overestimates since every step changes the row by at most one.
func solveAStar(board *Board, player int, extra *Wall) []Position {
	if !validPlayer(player) {
		return nil
	}
	start := board.pawns[player]
	goal := GoalRow(player)
	h := func(p Position) int { return abs(p.Y - goal) }

	var gScore [BoardSize][BoardSize]int
	var cameFrom [BoardSize][BoardSize]Position
	for row := range gScore {
		for col := range gScore[row] {
			gScore[row][col] = -1
			cameFrom[row][col] = Position{X: -1, Y: -1}
		}
	}
	gScore[start.Y][start.X] = 0

	open := &openSet{{pos: start, g: 0, f: h(start)}}
	for open.Len() > 0 {
		current := heap.Pop(open).(node)
		if current.pos.Y == goal {
			return reconstructPath(&cameFrom, current.pos)
		}
		if current.g > gScore[current.pos.Y][current.pos.X] { // Stale entry
			continue
		}

		for _, d := range directions {
			row, col := current.pos.Y+d[0], current.pos.X+d[1]
			if !InBounds(row, col) {
				continue
			}
			if board.isBlocked(current.pos.Y, current.pos.X, row, col, extra) {
				continue
			}
			g := current.g + 1
			if known := gScore[row][col]; known != -1 && g >= known {
				continue
			}
			next := Position{X: col, Y: row}
			gScore[row][col] = g
			cameFrom[row][col] = current.pos
			heap.Push(open, node{pos: next, g: g, f: g + h(next)})
		}
	}
	return nil
}

func reconstructPath(cameFrom *[BoardSize][BoardSize]Position, end Position) []Position {
	var path []Position
	for current := end; cameFrom[current.Y][current.X].X != -1; current = cameFrom[current.Y][current.X] {
		path = append(path, current)
	}
	// Walked backwards from the goal, the start cell is left out
	slices.Reverse(path)
	return path
}
