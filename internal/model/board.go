package model

import "fmt"

// Square addresses the grid. Rank 0 is Black's back rank, rank 7 is White's.
type Square struct {
	Rank int `json:"rank"`
	File int `json:"file"`
}

func (s Square) InBounds() bool {
	return s.Rank >= 0 && s.Rank < 8 && s.File >= 0 && s.File < 8
}

// String renders the square in algebraic form, e.g. rank 6 file 4 is "e2".
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Rank, s.File)
	}
	return fmt.Sprintf("%c%d", 'a'+s.File, 8-s.Rank)
}

func (s Square) offset(dRank, dFile int) Square {
	return Square{Rank: s.Rank + dRank, File: s.File + dFile}
}

// Board is the 8x8 grid and the only record of where pieces stand.
type Board [8][8]Piece

func (b *Board) At(sq Square) Piece {
	return b[sq.Rank][sq.File]
}

func (b *Board) set(sq Square, p Piece) {
	b[sq.Rank][sq.File] = p
}

func (b *Board) clear(sq Square) {
	b[sq.Rank][sq.File] = Piece{}
}

// kingSquare locates the king of color. A board without that king is a
// programming fault and panics.
func (b *Board) kingSquare(color Color) Square {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			p := b[rank][file]
			if p.Type == King && p.Color == color {
				return Square{Rank: rank, File: file}
			}
		}
	}
	panic(fmt.Sprintf("model: %s king missing from board", color))
}

// StandardBoard returns the opening arrangement.
func StandardBoard() Board {
	var board Board
	backRank := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, t := range backRank {
		board[0][file] = Piece{Type: t, Color: Black}
		board[7][file] = Piece{Type: t, Color: White}
	}
	for file := 0; file < 8; file++ {
		board[1][file] = Piece{Type: Pawn, Color: Black}
		board[6][file] = Piece{Type: Pawn, Color: White}
	}
	return board
}
