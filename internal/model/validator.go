package model

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// pawnDirection is the rank delta of a single pawn step.
func pawnDirection(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

func promotionRank(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

// IsLegalMove checks the movement rules of piece for from -> to, including the
// castling and en passant preconditions. It does not check whether the
// mover's own king ends up in check.
//
// Castling evaluation temporarily moves the king across the board to test the
// squares it passes; the board is restored before returning.
func IsLegalMove(piece Piece, from, to Square, board *Board, lastMove *MoveRecord) Legality {
	if !reachableTarget(piece, from, to, board) {
		return Legality{}
	}

	switch piece.Type {
	case Pawn:
		if canPawnReach(piece, from, to, board) {
			return Legality{Legal: true}
		}
		if isEnPassant(piece, from, to, board, lastMove) {
			return Legality{Legal: true, IsEnPassant: true}
		}
		return Legality{}
	case King:
		if isKingStep(from, to) {
			return Legality{Legal: true}
		}
		if canCastle(piece, from, to, board) {
			return Legality{Legal: true, IsCastling: true}
		}
		return Legality{}
	}
	return Legality{Legal: CanReach(piece, from, to, board)}
}

// CanReach is the attack query: plain movement geometry only. It never
// considers castling or en passant, so check detection built on it cannot
// re-enter castling evaluation.
func CanReach(piece Piece, from, to Square, board *Board) bool {
	if !reachableTarget(piece, from, to, board) {
		return false
	}

	switch piece.Type {
	case Pawn:
		return canPawnReach(piece, from, to, board)
	case Rook:
		return isStraightPathClear(from, to, board)
	case Bishop:
		return isDiagonalPathClear(from, to, board)
	case Queen:
		if from.Rank == to.Rank || from.File == to.File {
			return isStraightPathClear(from, to, board)
		}
		return isDiagonalPathClear(from, to, board)
	case Knight:
		dRank, dFile := abs(to.Rank-from.Rank), abs(to.File-from.File)
		return (dRank == 2 && dFile == 1) || (dRank == 1 && dFile == 2)
	case King:
		return isKingStep(from, to)
	}
	return false
}

func reachableTarget(piece Piece, from, to Square, board *Board) bool {
	if piece.IsEmpty() || !from.InBounds() || !to.InBounds() || from == to {
		return false
	}
	dest := board.At(to)
	return dest.IsEmpty() || dest.Color != piece.Color
}

func canPawnReach(piece Piece, from, to Square, board *Board) bool {
	dir := pawnDirection(piece.Color)
	dest := board.At(to)

	if from.File == to.File && dest.IsEmpty() {
		if to.Rank == from.Rank+dir {
			return true
		}
		if !piece.HasMoved && to.Rank == from.Rank+2*dir && board.At(from.offset(dir, 0)).IsEmpty() {
			return true
		}
		return false
	}
	return abs(to.File-from.File) == 1 && to.Rank == from.Rank+dir && !dest.IsEmpty() && dest.Color != piece.Color
}

// isEnPassant requires that the previous move was an enemy pawn's double step
// landing beside from, on the file being moved to.
func isEnPassant(piece Piece, from, to Square, board *Board, lastMove *MoveRecord) bool {
	if lastMove == nil {
		return false
	}
	if abs(to.File-from.File) != 1 || to.Rank != from.Rank+pawnDirection(piece.Color) || !board.At(to).IsEmpty() {
		return false
	}
	moved := lastMove.MovedPiece
	if moved.Type != Pawn || moved.Color == piece.Color {
		return false
	}
	if abs(lastMove.From.Rank-lastMove.To.Rank) != 2 || lastMove.To.Rank != from.Rank || lastMove.To.File != to.File {
		return false
	}
	victim := board.At(lastMove.To)
	return victim.Type == Pawn && victim.Color == moved.Color
}

func isStraightPathClear(from, to Square, board *Board) bool {
	if from.Rank != to.Rank && from.File != to.File {
		return false
	}
	return isPathClear(from, to, board)
}

func isDiagonalPathClear(from, to Square, board *Board) bool {
	if abs(to.Rank-from.Rank) != abs(to.File-from.File) {
		return false
	}
	return isPathClear(from, to, board)
}

// isPathClear reports whether every square strictly between from and to is
// empty. from and to must share a rank, file or diagonal.
func isPathClear(from, to Square, board *Board) bool {
	dRank, dFile := sign(to.Rank-from.Rank), sign(to.File-from.File)
	for sq := from.offset(dRank, dFile); sq != to; sq = sq.offset(dRank, dFile) {
		if !board.At(sq).IsEmpty() {
			return false
		}
	}
	return true
}

func isKingStep(from, to Square) bool {
	return abs(to.Rank-from.Rank) <= 1 && abs(to.File-from.File) <= 1
}

// castlingRookSquares returns where the rook starts and ends when a king on
// from castles towards to.
func castlingRookSquares(from, to Square) (rookFrom, rookTo Square) {
	step := sign(to.File - from.File)
	rookFile := 7
	if step < 0 {
		rookFile = 0
	}
	return Square{Rank: from.Rank, File: rookFile}, from.offset(0, step)
}

func canCastle(king Piece, from, to Square, board *Board) bool {
	if king.HasMoved || from.Rank != to.Rank || abs(to.File-from.File) != 2 {
		return false
	}

	rookFrom, _ := castlingRookSquares(from, to)
	rook := board.At(rookFrom)
	if rook.Type != Rook || rook.Color != king.Color || rook.HasMoved {
		return false
	}
	if !isPathClear(from, rookFrom, board) {
		return false
	}

	if IsInCheck(king.Color, board) {
		return false
	}
	step := sign(to.File - from.File)
	for sq := from.offset(0, step); ; sq = sq.offset(0, step) {
		if !isKingSafeOn(king, from, sq, board) {
			return false
		}
		if sq == to {
			break
		}
	}
	return true
}

// isKingSafeOn places king on sq, clearing from, runs the check detector and
// puts both squares back.
func isKingSafeOn(king Piece, from, sq Square, board *Board) bool {
	saved := board.At(sq)
	board.set(sq, king)
	board.clear(from)
	safe := !IsInCheck(king.Color, board)
	board.set(from, king)
	board.set(sq, saved)
	return safe
}
