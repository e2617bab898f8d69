package service

import "errors"

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
	ErrGameFull     = errors.New("game is full")
	ErrNotSeated    = errors.New("player not seated in this game")
	ErrNotYourTurn  = errors.New("not your turn")
)
