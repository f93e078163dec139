package game

import "errors"

var (
	ErrOutOfRange       = errors.New("player index out of range")
	ErrInvalidPosition  = errors.New("position is outside the board")
	ErrNoWallsRemaining = errors.New("no walls remaining")
	ErrOverlapViolation = errors.New("wall overlaps an existing wall")
	ErrOutOfBoundsWall  = errors.New("wall slot is outside the wall lattice")
)
