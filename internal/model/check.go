package model

// IsInCheck reports whether the king of color is attacked. It panics if the
// board has no king of that color.
func IsInCheck(color Color, board *Board) bool {
	return isAttacked(board.kingSquare(color), color.Opponent(), board)
}

// isAttacked asks every piece of color by whether it can reach sq. sq must
// hold a defending piece, otherwise pawn pushes would count as attacks.
func isAttacked(sq Square, by Color, board *Board) bool {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			p := board[rank][file]
			if p.IsEmpty() || p.Color != by {
				continue
			}
			if CanReach(p, Square{Rank: rank, File: file}, sq, board) {
				return true
			}
		}
	}
	return false
}
