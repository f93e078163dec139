package game

import (
	"fmt"
	"slices"
)

// Position is a cell on the board. X is the column and Y is the row.
type Position struct {
	X int
	Y int
}

// InBounds reports whether the position lies on the 9x9 board.
func (p Position) InBounds() bool {
	return InBounds(p.Y, p.X)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// InBounds reports whether the row and column lie on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "H"
	}
	return "V"
}

// Wall spans two cells. Pos is the top-left cell of the 2x2 block around the
// intersection the wall is centered on, so valid slots are 0..7 on both axes.
// A horizontal wall separates rows Pos.Y and Pos.Y+1 for columns Pos.X and Pos.X+1;
// a vertical wall separates columns Pos.X and Pos.X+1 for rows Pos.Y and Pos.Y+1.
type Wall struct {
	Pos         Position
	Orientation Orientation
}

// InBounds reports whether the wall sits on the 8x8 slot lattice.
func (w Wall) InBounds() bool {
	return w.Pos.X >= 0 && w.Pos.X < wallSlots && w.Pos.Y >= 0 && w.Pos.Y < wallSlots
}

func (w Wall) String() string {
	return fmt.Sprintf("%s%s", w.Orientation, w.Pos)
}

// Board is the mutable game position: pawns, placed walls and wall inventories.
// It knows nothing of movement rules; see IsValidMove and IsValidWallPlacement.
type Board struct {
	pawns          [NumPlayers]Position
	walls          []Wall // Placement order
	wallsRemaining [NumPlayers]int
}

// NewBoard returns a board in the starting position.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset puts both pawns back on their home rows, refills wall inventories and
// removes all placed walls.
func (b *Board) Reset() {
	b.pawns[0] = Position{X: BoardSize / 2, Y: 0}
	b.pawns[1] = Position{X: BoardSize / 2, Y: BoardSize - 1}
	for i := range b.wallsRemaining {
		b.wallsRemaining[i] = MaxWallsPerPlayer
	}
	b.walls = b.walls[:0]
}

// Copy returns an independent clone of the board.
func (b *Board) Copy() *Board {
	return &Board{
		pawns:          b.pawns,
		walls:          slices.Clone(b.walls),
		wallsRemaining: b.wallsRemaining,
	}
}

// MovePawn puts the player's pawn on pos without any rule checking.
func (b *Board) MovePawn(player int, pos Position) error {
	if !validPlayer(player) {
		return fmt.Errorf("cannot move pawn: %w: %d", ErrOutOfRange, player)
	}
	if !pos.InBounds() {
		return fmt.Errorf("cannot move pawn: %w: %s", ErrInvalidPosition, pos)
	}
	b.pawns[player] = pos
	return nil
}

// SetPawnPosition is MovePawn with row-first coordinates.
func (b *Board) SetPawnPosition(player, row, col int) error {
	return b.MovePawn(player, Position{X: col, Y: row})
}

// PlaceWall adds a wall for player and spends one from their inventory. It checks
// inventory, slot bounds and overlaps but not whether the wall cuts a player off.
func (b *Board) PlaceWall(wall Wall, player int) error {
	if !validPlayer(player) {
		return fmt.Errorf("cannot place wall: %w: %d", ErrOutOfRange, player)
	}
	if b.wallsRemaining[player] <= 0 {
		return fmt.Errorf("cannot place wall: player %d: %w", player, ErrNoWallsRemaining)
	}
	if !wall.InBounds() {
		return fmt.Errorf("cannot place wall: %w: %s", ErrOutOfBoundsWall, wall)
	}
	if b.collides(wall) || b.overlapsPartially(wall) {
		return fmt.Errorf("cannot place wall: %w: %s", ErrOverlapViolation, wall)
	}
	b.walls = append(b.walls, wall)
	b.wallsRemaining[player]--
	return nil
}

// PawnPosition returns the player's pawn. Panics if player is not 0 or 1.
func (b *Board) PawnPosition(player int) Position {
	if !validPlayer(player) {
		panic(fmt.Errorf("%w: %d", ErrOutOfRange, player))
	}
	return b.pawns[player]
}

// WallsRemaining returns the player's wall inventory. Panics if player is not 0 or 1.
func (b *Board) WallsRemaining(player int) int {
	if !validPlayer(player) {
		panic(fmt.Errorf("%w: %d", ErrOutOfRange, player))
	}
	return b.wallsRemaining[player]
}

// Walls returns the placed walls in placement order.
func (b *Board) Walls() []Wall {
	return slices.Clone(b.walls)
}

// HasWallAt reports whether exactly this wall has been placed.
func (b *Board) HasWallAt(pos Position, orientation Orientation) bool {
	return slices.Contains(b.walls, Wall{Pos: pos, Orientation: orientation})
}

// occupant returns the player whose pawn stands on the cell, or -1.
func (b *Board) occupant(row, col int) int {
	for player, pos := range b.pawns {
		if pos.X == col && pos.Y == row {
			return player
		}
	}
	return -1
}

// collides reports whether a placed wall sits on the same slot, whatever its
// orientation. Same orientation is a duplicate, the other one would cross it.
func (b *Board) collides(wall Wall) bool {
	for _, existing := range b.walls {
		if existing.Pos == wall.Pos {
			return true
		}
	}
	return false
}

// overlapsPartially reports whether a placed wall of the same orientation is one
// slot away along the wall's own axis, which would cover a shared segment twice.
func (b *Board) overlapsPartially(wall Wall) bool {
	for _, existing := range b.walls {
		if existing.Orientation != wall.Orientation {
			continue
		}
		if wall.Orientation == Horizontal {
			if existing.Pos.Y == wall.Pos.Y && abs(existing.Pos.X-wall.Pos.X) == 1 {
				return true
			}
		} else {
			if existing.Pos.X == wall.Pos.X && abs(existing.Pos.Y-wall.Pos.Y) == 1 {
				return true
			}
		}
	}
	return false
}

// blocks reports whether the wall blocks the unit step between two adjacent cells.
func (w Wall) blocks(fromRow, fromCol, toRow, toCol int) bool {
	if fromCol == toCol { // Moving between rows
		if w.Orientation != Horizontal {
			return false
		}
		return w.Pos.Y == min(fromRow, toRow) && (w.Pos.X == fromCol || w.Pos.X == fromCol-1)
	}
	// Moving between columns
	if w.Orientation != Vertical {
		return false
	}
	return w.Pos.X == min(fromCol, toCol) && (w.Pos.Y == fromRow || w.Pos.Y == fromRow-1)
}

// isBlocked reports whether a placed wall, or extra if given, blocks the unit step.
func (b *Board) isBlocked(fromRow, fromCol, toRow, toCol int, extra *Wall) bool {
	for _, w := range b.walls {
		if w.blocks(fromRow, fromCol, toRow, toCol) {
			return true
		}
	}
	return extra != nil && extra.blocks(fromRow, fromCol, toRow, toCol)
}
