package model

import "testing"

var letterTypes = map[byte]PieceType{
	'k': King, 'q': Queen, 'r': Rook, 'b': Bishop, 'n': Knight, 'p': Pawn,
}

// boardFrom builds a board from eight rows, rank 0 (Black's back rank) first.
// Uppercase letters are white, lowercase black, '.' is empty. Pawns away from
// their starting rank are marked as moved.
func boardFrom(t *testing.T, rows ...string) Board {
	t.Helper()
	if len(rows) != 8 {
		t.Fatalf("need 8 rows, got %d", len(rows))
	}
	var board Board
	for rank, row := range rows {
		if len(row) != 8 {
			t.Fatalf("row %d has %d squares", rank, len(row))
		}
		for file := 0; file < 8; file++ {
			c := row[file]
			if c == '.' {
				continue
			}
			color := Black
			if c >= 'A' && c <= 'Z' {
				color = White
				c += 'a' - 'A'
			}
			pt, ok := letterTypes[c]
			if !ok {
				t.Fatalf("unknown piece %q at rank %d file %d", row[file], rank, file)
			}
			p := Piece{Type: pt, Color: color}
			if pt == Pawn {
				p.HasMoved = (color == White && rank != 6) || (color == Black && rank != 1)
			}
			board[rank][file] = p
		}
	}
	return board
}

// sq parses algebraic coordinates such as "e2".
func sq(t *testing.T, name string) Square {
	t.Helper()
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		t.Fatalf("bad square %q", name)
	}
	return Square{Rank: 8 - int(name[1]-'0'), File: int(name[0] - 'a')}
}

func play(t *testing.T, gs *GameState, moves ...string) {
	t.Helper()
	for _, m := range moves {
		res, err := gs.AttemptMove(sq(t, m[:2]), sq(t, m[2:4]))
		if err != nil {
			t.Fatalf("move %s: %v", m, err)
		}
		if res.Kind == PromotionPending {
			if _, err := gs.ChoosePromotion(Queen); err != nil {
				t.Fatalf("promote %s: %v", m, err)
			}
		}
	}
}

// snapshot is everything undo must restore.
type snapshot struct {
	board    Board
	turn     Color
	lastMove *MoveRecord
	captured []Piece
	history  int
}

func takeSnapshot(gs *GameState) snapshot {
	return snapshot{
		board:    gs.Board(),
		turn:     gs.Turn(),
		lastMove: gs.LastMove(),
		captured: gs.Captured(),
		history:  len(gs.History()),
	}
}
