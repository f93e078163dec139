package game

const (
	BoardSize         = 9
	NumPlayers        = 2
	MaxWallsPerPlayer = 10
)

// wallSlots is the side length of the lattice of wall slots, one less than the board.
const wallSlots = BoardSize - 1

// Evaluates the board from the given player's perspective. Higher is better for
// player, WinScore and LossScore mark decided positions.
type Evaluate func(board *Board, player int) int

// GoalRow returns the row the player must reach to win.
func GoalRow(player int) int {
	if player == 0 {
		return BoardSize - 1
	}
	return 0
}

// Opponent returns the index of the other player.
func Opponent(player int) int {
	return 1 - player
}

func validPlayer(player int) bool {
	return player >= 0 && player < NumPlayers
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
