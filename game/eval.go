package game

import "math"

// Sentinel scores for decided positions. No weighted combination of the
// heuristic factors comes close to them.
const (
	WinScore  = math.MaxInt32
	LossScore = -WinScore
)

// Heuristic weights
const (
	DistanceWeight          = 10
	EndgameWeight           = 15
	EndgameThreshold        = 3
	WallAdvantageWeight     = 2
	MobilityWeight          = 3
	WallEffectivenessWeight = 5
)

// MaxPly bounds how far a search may shift a sentinel. A win found n plies
// down scores WinScore-n and a loss LossScore+n, so faster wins rank higher.
const MaxPly = 64

// IsDecided reports whether the score is a win or loss sentinel, including the
// near-sentinels given when a side has no path to its goal and sentinels
// shifted by search depth.
func IsDecided(score int) bool {
	return score >= WinScore-MaxPly || score <= LossScore+MaxPly
}

// EvaluatePosition combines path distance, endgame proximity, wall inventory,
// mobility and wall effectiveness into a score from player's perspective.
func EvaluatePosition(board *Board, player int) int {
	opponent := Opponent(player)
	myDist := ShortestPathDistance(board, player)
	oppDist := ShortestPathDistance(board, opponent)
	if score, decided := decidedScore(myDist, oppDist); decided {
		return score
	}

	score := (oppDist - myDist) * DistanceWeight
	score += endgameBonus(myDist) - endgameBonus(oppDist)
	score += (board.wallsRemaining[player] - board.wallsRemaining[opponent]) * WallAdvantageWeight
	score += (mobility(board, player) - mobility(board, opponent)) * MobilityWeight
	score += (detour(board, opponent, oppDist) - detour(board, player, myDist)) * WallEffectivenessWeight
	return score
}

// EvaluateDistance only weighs the path distance race and the wall inventory.
func EvaluateDistance(board *Board, player int) int {
	opponent := Opponent(player)
	myDist := ShortestPathDistance(board, player)
	oppDist := ShortestPathDistance(board, opponent)
	if score, decided := decidedScore(myDist, oppDist); decided {
		return score
	}

	score := (oppDist - myDist) * DistanceWeight
	score += board.wallsRemaining[player] - board.wallsRemaining[opponent]
	return score
}

func decidedScore(myDist, oppDist int) (int, bool) {
	switch {
	case myDist == 0:
		return WinScore, true
	case oppDist == 0:
		return LossScore, true
	case myDist == -1:
		return LossScore + 1, true
	case oppDist == -1:
		return WinScore - 1, true
	}
	return 0, false
}

// endgameBonus grows quadratically once a side is within reach of its goal.
func endgameBonus(dist int) int {
	if dist > EndgameThreshold {
		return 0
	}
	closeness := EndgameThreshold + 1 - dist
	return closeness * closeness * EndgameWeight
}

// mobility counts the legal single steps that do not retreat from the goal row.
func mobility(board *Board, player int) int {
	pos := board.pawns[player]
	goal := GoalRow(player)
	count := 0
	for _, d := range directions {
		row, col := pos.Y+d[0], pos.X+d[1]
		if abs(row-goal) > abs(pos.Y-goal) {
			continue
		}
		if IsValidMove(board, player, pos.Y, pos.X, row, col) {
			count++
		}
	}
	return count
}

// detour is how many steps walls add to the player's route over the straight
// run down their column.
func detour(board *Board, player int, dist int) int {
	return dist - abs(board.pawns[player].Y-GoalRow(player))
}
