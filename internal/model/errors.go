package model

import "errors"

var (
	ErrOutOfBounds        = errors.New("square out of bounds")
	ErrInvalidGeometry    = errors.New("piece cannot move that way")
	ErrSelfCheck          = errors.New("move leaves own king in check")
	ErrWrongTurn          = errors.New("piece does not belong to the side to move")
	ErrNoPiece            = errors.New("no piece on square")
	ErrEmptyHistory       = errors.New("no move to undo")
	ErrPromotionRequired  = errors.New("a promotion choice is pending")
	ErrNoPendingPromotion = errors.New("no promotion pending")
	ErrInvalidPromotion   = errors.New("pawn can only promote to queen, rook, knight or bishop")
)
