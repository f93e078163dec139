package game

import "fmt"

type MoveType int

const (
	PawnMove MoveType = iota
	WallPlacement
)

// Move is either a pawn move to Dest or a wall placement. It is the unit the
// search produces; boards never store moves.
type Move struct {
	Type MoveType
	Dest Position // Valid if Type == PawnMove
	Wall Wall     // Valid if Type == WallPlacement
}

func NewPawnMove(dest Position) Move {
	return Move{Type: PawnMove, Dest: dest}
}

func NewWallMove(wall Wall) Move {
	return Move{Type: WallPlacement, Wall: wall}
}

func (m Move) IsPawnMove() bool {
	return m.Type == PawnMove
}

func (m Move) IsWallPlacement() bool {
	return m.Type == WallPlacement
}

func (m Move) String() string {
	if m.IsPawnMove() {
		return fmt.Sprintf("pawn->%s", m.Dest)
	}
	return fmt.Sprintf("wall %s", m.Wall)
}

// Apply performs the move for player on board. Movement rules are not checked,
// call IsLegal first for moves that have not been validated.
func (m Move) Apply(board *Board, player int) error {
	if m.IsPawnMove() {
		return board.MovePawn(player, m.Dest)
	}
	return board.PlaceWall(m.Wall, player)
}

// IsLegal reports whether player may make the move on board.
func IsLegal(board *Board, player int, m Move) bool {
	if !validPlayer(player) {
		return false
	}
	if m.IsPawnMove() {
		return IsValidPawnMove(board, player, board.pawns[player], m.Dest)
	}
	return IsValidWallPlacement(board, m.Wall, player)
}
