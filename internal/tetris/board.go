package tetris

const (
	Width  = 10
	Height = 20
)

// Board holds locked cells, indexed [row][column]. A cell is 0 or 1.
type Board [Height][Width]uint8

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Occupied reports whether the cell at (x, y) is filled. Out-of-bounds
// coordinates are reported empty.
func (b *Board) Occupied(x, y int) bool {
	return inBounds(x, y) && b[y][x] == 1
}

// IsValidPosition reports whether every filled cell of p, anchored at
// (x, y), lands on an empty cell inside the board.
func (b *Board) IsValidPosition(p Piece, x, y int) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if p.Shape[i][j] == 0 {
				continue
			}
			bx := x + j
			by := y + i
			if !inBounds(bx, by) {
				return false
			}
			if b[by][bx] == 1 {
				return false
			}
		}
	}
	return true
}

// Lock copies the filled cells of p into the board. Cells outside the
// board are skipped.
func (b *Board) Lock(p Piece) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if p.Shape[i][j] != 1 {
				continue
			}
			bx := p.X + j
			by := p.Y + i
			if inBounds(bx, by) {
				b[by][bx] = 1
			}
		}
	}
}

// RowFull reports whether every cell of row y is filled.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= Height {
		return false
	}
	for x := 0; x < Width; x++ {
		if b[y][x] == 0 {
			return false
		}
	}
	return true
}

// ClearLines removes full rows, shifting everything above down, and
// returns how many rows were removed.
func (b *Board) ClearLines() int {
	cleared := 0
	for y := Height - 1; y >= 0; {
		if !b.RowFull(y) {
			y--
			continue
		}
		cleared++
		for row := y; row > 0; row-- {
			b[row] = b[row-1]
		}
		b[0] = [Width]uint8{}
		// the row that slid into y has not been examined yet
	}
	return cleared
}
