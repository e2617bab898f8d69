package model

type CastlingInfo struct {
	RookFrom Square `json:"rookFrom"`
	RookTo   Square `json:"rookTo"`
}

type EnPassantInfo struct {
	CapturedSquare Square `json:"capturedSquare"`
}

type PromotionInfo struct {
	NewType PieceType `json:"newType"`
}

// MoveRecord holds everything needed to reverse one committed move.
// MovedPiece is the snapshot taken before the move, so it keeps the
// original type and HasMoved flag.
type MoveRecord struct {
	From          Square         `json:"from"`
	To            Square         `json:"to"`
	MovedPiece    Piece          `json:"movedPiece"`
	CapturedPiece Piece          `json:"capturedPiece"`
	Castling      *CastlingInfo  `json:"castling,omitempty"`
	EnPassant     *EnPassantInfo `json:"enPassant,omitempty"`
	Promotion     *PromotionInfo `json:"promotion,omitempty"`
}

func (r MoveRecord) IsCapture() bool {
	return !r.CapturedPiece.IsEmpty()
}

type ResultKind string

const (
	Applied          ResultKind = "applied"
	PromotionPending ResultKind = "promotionPending"
)

// MoveResult is the outcome of a move attempt that was not rejected.
// For PromotionPending the record is partial: Promotion is still nil.
type MoveResult struct {
	Kind   ResultKind `json:"kind"`
	Record MoveRecord `json:"record"`
}

// Legality is what the move validator reports for a candidate move.
type Legality struct {
	Legal       bool
	IsCastling  bool
	IsEnPassant bool
}
