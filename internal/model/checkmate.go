package model

// IsCheckmate reports whether color is in check with no move that gets out of
// it. A side with no legal move that is not in check is not reported here.
func (gs *GameState) IsCheckmate(color Color) bool {
	if !IsInCheck(color, &gs.board) {
		return false
	}
	return !gs.hasLegalMove(color)
}

func (gs *GameState) hasLegalMove(color Color) bool {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			from := Square{Rank: rank, File: file}
			piece := gs.board.At(from)
			if piece.IsEmpty() || piece.Color != color {
				continue
			}
			for toRank := 0; toRank < 8; toRank++ {
				for toFile := 0; toFile < 8; toFile++ {
					if gs.validate(piece, from, Square{Rank: toRank, File: toFile}) == nil {
						return true
					}
				}
			}
		}
	}
	return false
}
