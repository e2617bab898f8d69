package model

type StatusKind string

const (
	InProgress StatusKind = "inProgress"
	Check      StatusKind = "check"
	Checkmate  StatusKind = "checkmate"
)

// GameStatus describes the position for the side to move. Color is the side
// in check for Check and the winner for Checkmate, so a mated White reads
// Checkmate(Black).
type GameStatus struct {
	Kind  StatusKind `json:"kind"`
	Color Color      `json:"color,omitempty"`
}

// GameState owns one game: the board, the side to move, the move history and
// the promotion state machine. It is not safe for concurrent use; callers
// serialize access.
type GameState struct {
	board   Board
	turn    Color
	history History
	status  GameStatus

	// pending holds the partial record of a pawn move that reached the last
	// rank and awaits ChoosePromotion. The board already reflects the move.
	pending *MoveRecord
}

func NewGameState() *GameState {
	return NewGameStateFrom(StandardBoard(), White)
}

// NewGameStateFrom starts a game from an arbitrary board. The board must hold
// one king of each color.
func NewGameStateFrom(board Board, turn Color) *GameState {
	gs := &GameState{
		board: board,
		turn:  turn,
	}
	gs.refreshStatus()
	return gs
}

// Board returns a copy of the grid.
func (gs *GameState) Board() Board {
	return gs.board
}

func (gs *GameState) Turn() Color {
	return gs.turn
}

func (gs *GameState) Status() GameStatus {
	return gs.status
}

// LastMove returns a copy of the last committed move, or nil.
func (gs *GameState) LastMove() *MoveRecord {
	last := gs.history.Last()
	if last == nil {
		return nil
	}
	rec := *last
	return &rec
}

func (gs *GameState) History() []MoveRecord {
	return gs.history.Records()
}

// MoveCount is the number of committed moves.
func (gs *GameState) MoveCount() int {
	return gs.history.Len()
}

func (gs *GameState) Captured() []Piece {
	return gs.history.Captured()
}

// PendingPromotion returns the square of the pawn awaiting promotion.
func (gs *GameState) PendingPromotion() (Square, bool) {
	if gs.pending == nil {
		return Square{}, false
	}
	return gs.pending.To, true
}

// SelectPiece lists the legal destinations of the piece on sq in row-major
// order.
func (gs *GameState) SelectPiece(sq Square) ([]Square, error) {
	if !sq.InBounds() {
		return nil, ErrOutOfBounds
	}
	if gs.pending != nil {
		return nil, ErrPromotionRequired
	}
	piece := gs.board.At(sq)
	if piece.IsEmpty() {
		return nil, ErrNoPiece
	}
	if piece.Color != gs.turn {
		return nil, ErrWrongTurn
	}

	destinations := []Square{}
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			to := Square{Rank: rank, File: file}
			if gs.validate(piece, sq, to) == nil {
				destinations = append(destinations, to)
			}
		}
	}
	return destinations, nil
}

// AttemptMove moves the piece on from to to for the side to move.
func (gs *GameState) AttemptMove(from, to Square) (MoveResult, error) {
	if gs.pending != nil {
		return MoveResult{}, ErrPromotionRequired
	}
	if !from.InBounds() || !to.InBounds() {
		return MoveResult{}, ErrOutOfBounds
	}
	piece := gs.board.At(from)
	if piece.IsEmpty() {
		return MoveResult{}, ErrNoPiece
	}
	if piece.Color != gs.turn {
		return MoveResult{}, ErrWrongTurn
	}
	return gs.tryApplyMove(piece, from, to)
}

// ChoosePromotion completes a pending promotion with newType.
func (gs *GameState) ChoosePromotion(newType PieceType) (MoveResult, error) {
	if gs.pending == nil {
		return MoveResult{}, ErrNoPendingPromotion
	}
	if !newType.IsPromotionChoice() {
		return MoveResult{}, ErrInvalidPromotion
	}

	rec := *gs.pending
	gs.pending = nil
	rec.Promotion = &PromotionInfo{NewType: newType}
	promoted := gs.board.At(rec.To)
	promoted.Type = newType
	gs.board.set(rec.To, promoted)

	gs.commit(rec)
	return MoveResult{Kind: Applied, Record: rec}, nil
}

// Undo reverses the last committed move. A pending promotion is cancelled
// instead, restoring the board as it was before the pawn moved.
func (gs *GameState) Undo() (MoveRecord, error) {
	if gs.pending != nil {
		rec := *gs.pending
		gs.pending = nil
		gs.revert(rec)
		gs.refreshStatus()
		return rec, nil
	}

	rec, ok := gs.history.pop()
	if !ok {
		return MoveRecord{}, ErrEmptyHistory
	}
	gs.revert(rec)
	gs.turn = gs.turn.Opponent()
	gs.refreshStatus()
	return rec, nil
}

func (gs *GameState) tryApplyMove(piece Piece, from, to Square) (MoveResult, error) {
	legality := IsLegalMove(piece, from, to, &gs.board, gs.history.Last())
	if !legality.Legal {
		return MoveResult{}, ErrInvalidGeometry
	}

	rec := gs.simulate(piece, from, to, legality)
	if IsInCheck(piece.Color, &gs.board) {
		gs.revert(rec)
		return MoveResult{}, ErrSelfCheck
	}

	if piece.Type == Pawn && to.Rank == promotionRank(piece.Color) {
		gs.pending = &rec
		return MoveResult{Kind: PromotionPending, Record: rec}, nil
	}

	gs.commit(rec)
	return MoveResult{Kind: Applied, Record: rec}, nil
}

// validate runs the move validator and the self-check filter without
// touching history or the side to move.
func (gs *GameState) validate(piece Piece, from, to Square) error {
	legality := IsLegalMove(piece, from, to, &gs.board, gs.history.Last())
	if !legality.Legal {
		return ErrInvalidGeometry
	}
	rec := gs.simulate(piece, from, to, legality)
	exposed := IsInCheck(piece.Color, &gs.board)
	gs.revert(rec)
	if exposed {
		return ErrSelfCheck
	}
	return nil
}

// simulate applies the board side of a validated move and returns the record
// that reverses it.
func (gs *GameState) simulate(piece Piece, from, to Square, legality Legality) MoveRecord {
	rec := MoveRecord{
		From:          from,
		To:            to,
		MovedPiece:    piece,
		CapturedPiece: gs.board.At(to),
	}

	moved := piece
	moved.HasMoved = true
	gs.board.set(to, moved)
	gs.board.clear(from)

	if legality.IsCastling {
		rookFrom, rookTo := castlingRookSquares(from, to)
		rook := gs.board.At(rookFrom)
		rook.HasMoved = true
		gs.board.set(rookTo, rook)
		gs.board.clear(rookFrom)
		rec.Castling = &CastlingInfo{RookFrom: rookFrom, RookTo: rookTo}
	}

	if legality.IsEnPassant {
		victim := Square{Rank: from.Rank, File: to.File}
		rec.CapturedPiece = gs.board.At(victim)
		gs.board.clear(victim)
		rec.EnPassant = &EnPassantInfo{CapturedSquare: victim}
	}
	return rec
}

// revert restores the board to its state before rec was simulated. It does
// not touch history or the side to move.
func (gs *GameState) revert(rec MoveRecord) {
	// MovedPiece is the pre-move snapshot, so a promoted piece returns as a pawn.
	gs.board.set(rec.From, rec.MovedPiece)

	if rec.EnPassant != nil {
		gs.board.clear(rec.To)
		gs.board.set(rec.EnPassant.CapturedSquare, rec.CapturedPiece)
	} else {
		gs.board.set(rec.To, rec.CapturedPiece)
	}

	if rec.Castling != nil {
		rook := gs.board.At(rec.Castling.RookTo)
		rook.HasMoved = false
		gs.board.set(rec.Castling.RookFrom, rook)
		gs.board.clear(rec.Castling.RookTo)
	}
}

func (gs *GameState) commit(rec MoveRecord) {
	gs.history.push(rec)
	gs.turn = gs.turn.Opponent()
	gs.refreshStatus()
}

func (gs *GameState) refreshStatus() {
	switch {
	case gs.IsCheckmate(gs.turn):
		gs.status = GameStatus{Kind: Checkmate, Color: gs.turn.Opponent()}
	case IsInCheck(gs.turn, &gs.board):
		gs.status = GameStatus{Kind: Check, Color: gs.turn}
	default:
		gs.status = GameStatus{Kind: InProgress}
	}
}
