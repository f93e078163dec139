package game

import "fmt"

type Status int

const (
	Playing Status = iota
	Player0Won
	Player1Won
)

func (s Status) String() string {
	switch s {
	case Player0Won:
		return "player 0 won"
	case Player1Won:
		return "player 1 won"
	default:
		return "playing"
	}
}

// State tracks whose turn it is and whether the game is over. The position
// itself lives in Board.
type State struct {
	currentPlayer int
	status        Status
}

// NewState returns a state with player 0 to act.
func NewState() *State {
	return &State{}
}

// Reset gives the turn back to player 0 and reopens the game.
func (s *State) Reset() {
	s.currentPlayer = 0
	s.status = Playing
}

func (s *State) CurrentPlayer() int {
	return s.currentPlayer
}

// SwitchPlayer passes the turn to the other player.
func (s *State) SwitchPlayer() {
	s.currentPlayer = Opponent(s.currentPlayer)
}

func (s *State) Status() Status {
	return s.status
}

func (s *State) SetStatus(status Status) {
	s.status = status
}

// Winner returns the index of the player who won, or -1 while the game is on.
func (s *State) Winner() int {
	switch s.status {
	case Player0Won:
		return 0
	case Player1Won:
		return 1
	default:
		return -1
	}
}

// WonBy returns the status recording a win for player.
func WonBy(player int) Status {
	if !validPlayer(player) {
		panic(fmt.Errorf("%w: %d", ErrOutOfRange, player))
	}
	if player == 0 {
		return Player0Won
	}
	return Player1Won
}
