package model

import "slices"

// History is the undo stack of committed moves plus the log of captured
// pieces. Both grow and shrink together: a capturing move pushes exactly one
// captured piece and undoing it pops that piece.
type History struct {
	records  []MoveRecord
	captured []Piece
}

func (h *History) push(rec MoveRecord) {
	h.records = append(h.records, rec)
	if rec.IsCapture() {
		h.captured = append(h.captured, rec.CapturedPiece)
	}
}

func (h *History) pop() (MoveRecord, bool) {
	if len(h.records) == 0 {
		return MoveRecord{}, false
	}
	rec := h.records[len(h.records)-1]
	h.records = h.records[:len(h.records)-1]
	if rec.IsCapture() {
		h.captured = h.captured[:len(h.captured)-1]
	}
	return rec, true
}

// Last returns the most recently committed move, or nil.
func (h *History) Last() *MoveRecord {
	if len(h.records) == 0 {
		return nil
	}
	return &h.records[len(h.records)-1]
}

func (h *History) Len() int {
	return len(h.records)
}

func (h *History) Records() []MoveRecord {
	if len(h.records) == 0 {
		return nil
	}
	return slices.Clone(h.records)
}

func (h *History) Captured() []Piece {
	if len(h.captured) == 0 {
		return nil
	}
	return slices.Clone(h.captured)
}
