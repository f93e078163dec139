package engine

import "errors"

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
	ErrStuck       = errors.New("player has no legal move")
)
