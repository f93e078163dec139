package game

// IsValidMove checks a pawn move for player from (fromRow, fromCol) to (toRow, toCol).
// Note the row-first order, unlike Position. Legal moves are a single orthogonal
// step, a straight jump over the opponent, or a diagonal jump around the opponent
// when the straight jump is blocked by a wall or the board edge.
func IsValidMove(board *Board, player, fromRow, fromCol, toRow, toCol int) bool {
	if !validPlayer(player) {
		return false
	}
	if !InBounds(toRow, toCol) || board.occupant(toRow, toCol) != -1 {
		return false
	}

	dRow, dCol := toRow-fromRow, toCol-fromCol
	switch {
	case abs(dRow)+abs(dCol) == 1:
		return !board.isBlocked(fromRow, fromCol, toRow, toCol, nil)
	case (abs(dRow) == 2 && dCol == 0) || (abs(dCol) == 2 && dRow == 0):
		return isValidStraightJump(board, player, fromRow, fromCol, dRow/2, dCol/2)
	case abs(dRow) == 1 && abs(dCol) == 1:
		// Either bend point may license the diagonal
		return isValidDiagonalJump(board, player, fromRow, fromCol, fromRow+dRow, fromCol, toRow, toCol) ||
			isValidDiagonalJump(board, player, fromRow, fromCol, fromRow, fromCol+dCol, toRow, toCol)
	}
	return false
}

// IsValidPawnMove is IsValidMove with Position arguments.
func IsValidPawnMove(board *Board, player int, from, to Position) bool {
	return IsValidMove(board, player, from.Y, from.X, to.Y, to.X)
}

// isValidStraightJump checks a jump of two cells in direction (stepRow, stepCol)
// over an opponent on the middle cell.
func isValidStraightJump(board *Board, player, fromRow, fromCol, stepRow, stepCol int) bool {
	midRow, midCol := fromRow+stepRow, fromCol+stepCol
	toRow, toCol := midRow+stepRow, midCol+stepCol
	if board.occupant(midRow, midCol) != Opponent(player) {
		return false
	}
	return !board.isBlocked(fromRow, fromCol, midRow, midCol, nil) &&
		!board.isBlocked(midRow, midCol, toRow, toCol, nil)
}

// isValidDiagonalJump checks the diagonal move bending at (bendRow, bendCol).
func isValidDiagonalJump(board *Board, player, fromRow, fromCol, bendRow, bendCol, toRow, toCol int) bool {
	if board.occupant(bendRow, bendCol) != Opponent(player) {
		return false
	}
	if board.isBlocked(fromRow, fromCol, bendRow, bendCol, nil) {
		return false
	}
	// The straight jump past the opponent must be impossible
	beyondRow, beyondCol := 2*bendRow-fromRow, 2*bendCol-fromCol
	if InBounds(beyondRow, beyondCol) && !board.isBlocked(bendRow, bendCol, beyondRow, beyondCol, nil) {
		return false
	}
	return !board.isBlocked(bendRow, bendCol, toRow, toCol, nil)
}

// IsValidWallPlacement checks inventory, slot bounds, exact overlap, partial overlap
// and finally that both players keep a path to their goal row, in that order.
func IsValidWallPlacement(board *Board, wall Wall, player int) bool {
	if !validPlayer(player) || board.wallsRemaining[player] <= 0 {
		return false
	}
	if !wall.InBounds() {
		return false
	}
	if board.collides(wall) {
		return false
	}
	if board.overlapsPartially(wall) {
		return false
	}
	for p := 0; p < NumPlayers; p++ {
		if !HasPathToGoalWith(board, p, wall) {
			return false
		}
	}
	return true
}

// CheckVictory reports whether the player's pawn stands on their goal row.
func CheckVictory(board *Board, player int) bool {
	if !validPlayer(player) {
		return false
	}
	return board.pawns[player].Y == GoalRow(player)
}

// ValidPawnMoves returns every legal destination for the player's pawn. Jumps
// reach at most two cells away, so a 5x5 scan around the pawn covers them all.
func ValidPawnMoves(board *Board, player int) []Position {
	if !validPlayer(player) {
		return nil
	}
	current := board.pawns[player]
	var moves []Position
	for row := current.Y - 2; row <= current.Y+2; row++ {
		for col := current.X - 2; col <= current.X+2; col++ {
			if row == current.Y && col == current.X {
				continue
			}
			if IsValidMove(board, player, current.Y, current.X, row, col) {
				moves = append(moves, Position{X: col, Y: row})
			}
		}
	}
	return moves
}

// ValidWallPlacements scans every slot and orientation for legal walls.
func ValidWallPlacements(board *Board, player int) []Wall {
	if !validPlayer(player) || board.wallsRemaining[player] <= 0 {
		return nil
	}
	var walls []Wall
	for row := 0; row < wallSlots; row++ {
		for col := 0; col < wallSlots; col++ {
			for _, o := range []Orientation{Horizontal, Vertical} {
				w := Wall{Pos: Position{X: col, Y: row}, Orientation: o}
				if IsValidWallPlacement(board, w, player) {
					walls = append(walls, w)
				}
			}
		}
	}
	return walls
}
