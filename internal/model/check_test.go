package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		color Color
		check bool
	}{
		{
			name:  "start position",
			rows:  []string{"rnbqkbnr", "pppppppp", "........", "........", "........", "........", "PPPPPPPP", "RNBQKBNR"},
			color: White,
		},
		{
			name:  "rook on open file",
			rows:  []string{"....r..k", "........", "........", "........", "........", "........", "........", "....K..."},
			color: White, check: true,
		},
		{
			name:  "rook blocked",
			rows:  []string{"....r..k", "........", "........", "........", "....N...", "........", "........", "....K..."},
			color: White,
		},
		{
			name:  "bishop diagonal",
			rows:  []string{".......k", "........", "........", "........", ".b......", "........", "........", "....K..."},
			color: White, check: true,
		},
		{
			name:  "knight",
			rows:  []string{".......k", "........", "........", "........", "........", "...n....", "........", "....K..."},
			color: White, check: true,
		},
		{
			name:  "pawn attacks diagonally",
			rows:  []string{".......k", "........", "........", "........", "........", "........", "...p....", "....K..."},
			color: White, check: true,
		},
		{
			name:  "pawn in front does not attack",
			rows:  []string{".......k", "........", "........", "........", "........", "........", "....p...", "....K..."},
			color: White,
		},
		{
			name:  "white pawn attacks black king",
			rows:  []string{"....k...", "...P....", "........", "........", "........", "........", "........", "....K..."},
			color: Black, check: true,
		},
		{
			name:  "queen along the rank",
			rows:  []string{"q......k", "........", "........", "........", "........", "........", "........", "....K..."},
			color: White,
		},
		{
			name:  "queen on the diagonal",
			rows:  []string{".......k", "........", "........", "........", "q.......", "........", "........", "....K..."},
			color: White, check: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			board := boardFrom(t, tt.rows...)
			assert.Equal(t, tt.check, IsInCheck(tt.color, &board))
		})
	}
}

func TestIsInCheckPanicsWithoutKing(t *testing.T) {
	board := boardFrom(t, ".......k", "........", "........", "........", "........", "........", "........", "........")
	assert.Panics(t, func() { IsInCheck(White, &board) })
}
