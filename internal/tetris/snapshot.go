package tetris

import "strings"

// Snapshot is a read-only copy of a session for rendering.
type Snapshot struct {
	Board Board
	Piece Piece
	State State
	Lines int
}

// PieceAt reports whether the active piece covers (x, y).
func (s Snapshot) PieceAt(x, y int) bool {
	rx := x - s.Piece.X
	ry := y - s.Piece.Y
	if rx < 0 || rx >= 4 || ry < 0 || ry >= 4 {
		return false
	}
	return s.Piece.Shape[ry][rx] == 1
}

// Occupied reports whether (x, y) is filled by the board or the active
// piece.
func (s Snapshot) Occupied(x, y int) bool {
	return s.Board.Occupied(x, y) || s.PieceAt(x, y)
}

// String draws the board with the active piece overlaid, '#' for filled
// and '.' for empty, one line per row.
func (s Snapshot) String() string {
	var b strings.Builder
	b.Grow((Width + 1) * Height)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if s.Occupied(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
