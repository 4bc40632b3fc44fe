package tetris

import "math/rand"

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of distinct tetrominoes.
const KindCount = 7

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "?"
	}
	return kindNames[k]
}

var kindNames = [KindCount]string{"I", "O", "T", "S", "Z", "J", "L"}

// Shape is a 4×4 occupancy grid indexed [row][column].
type Shape [4][4]uint8

var canonicalShapes = [KindCount]Shape{
	// I
	{
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	// O
	{
		{1, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	// T
	{
		{0, 1, 0, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	// S
	{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	// Z
	{
		{1, 1, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	// J
	{
		{1, 0, 0, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	// L
	{
		{0, 0, 1, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
}

type Point struct {
	X int
	Y int
}

// Piece is a tetromino shape anchored at (X, Y) in board coordinates.
// The anchor is the board position of the shape's top-left cell.
type Piece struct {
	Kind  Kind
	Shape Shape
	X     int
	Y     int
}

// NewPiece returns the canonical orientation of kind anchored at (0, 0).
func NewPiece(kind Kind) Piece {
	return Piece{Kind: kind, Shape: canonicalShapes[kind]}
}

// RandomPiece picks one of the seven kinds uniformly using rng.
func RandomPiece(rng *rand.Rand) Piece {
	return NewPiece(Kind(rng.Intn(KindCount)))
}

// Rotated returns the piece turned 90° clockwise inside its 4×4 box.
// The pivot is the box center, so non-square shapes shift visibly; the
// anchor is carried over unchanged.
func (p Piece) Rotated() Piece {
	var rotated Shape
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			rotated[j][3-i] = p.Shape[i][j]
		}
	}
	return Piece{Kind: p.Kind, Shape: rotated, X: p.X, Y: p.Y}
}

// Cells returns the board coordinates covered by the piece at its anchor.
func (p Piece) Cells() []Point {
	cells := make([]Point, 0, 4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if p.Shape[i][j] == 1 {
				cells = append(cells, Point{X: p.X + j, Y: p.Y + i})
			}
		}
	}
	return cells
}
