// Package tile defines the seven piece shapes, their rotation states and the
// per-rotation bounding insets used to keep rotated pieces inside the board.
package tile

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the panic value (wrapped) for lookups with an unknown
// type, rotation or coordinate. These are contract breaches by the caller.
var ErrInvalidArgument = errors.New("invalid argument")

// RotationCount is the number of rotation states every type defines.
const RotationCount = 4

// Type identifies a piece shape. The zero value None marks an empty board cell.
type Type uint8

const (
	None Type = iota
	I
	O
	T
	S
	Z
	J
	L
)

// Count is the number of playable types.
const Count = 7

// All lists the playable types in catalog order.
var All = [Count]Type{I, O, T, S, Z, J, L}

// Offset is an occupied cell position relative to a piece's top-left corner.
type Offset struct {
	Col, Row int
}

type insets struct {
	left, right, top, bottom int
}

type definition struct {
	name      string
	dimension int
	color     [3]uint8
	tiles     [RotationCount][][]bool
	cells     [RotationCount][]Offset
	insets    [RotationCount]insets
}

var catalog [Count + 1]*definition

func init() {
	define(I, "I", [3]uint8{64, 224, 240}, [RotationCount][]string{
		{"....", "XXXX", "....", "...."},
		{"..X.", "..X.", "..X.", "..X."},
		{"....", "....", "XXXX", "...."},
		{".X..", ".X..", ".X..", ".X.."},
	})
	define(O, "O", [3]uint8{240, 208, 64}, [RotationCount][]string{
		{"XX", "XX"},
		{"XX", "XX"},
		{"XX", "XX"},
		{"XX", "XX"},
	})
	define(T, "T", [3]uint8{168, 80, 224}, [RotationCount][]string{
		{".X.", "XXX", "..."},
		{".X.", ".XX", ".X."},
		{"...", "XXX", ".X."},
		{".X.", "XX.", ".X."},
	})
	define(S, "S", [3]uint8{96, 208, 80}, [RotationCount][]string{
		{".XX", "XX.", "..."},
		{".X.", ".XX", "..X"},
		{"...", ".XX", "XX."},
		{"X..", "XX.", ".X."},
	})
	define(Z, "Z", [3]uint8{232, 72, 72}, [RotationCount][]string{
		{"XX.", ".XX", "..."},
		{"..X", ".XX", ".X."},
		{"...", "XX.", ".XX"},
		{".X.", "XX.", "X.."},
	})
	define(J, "J", [3]uint8{64, 96, 232}, [RotationCount][]string{
		{"X..", "XXX", "..."},
		{".XX", ".X.", ".X."},
		{"...", "XXX", "..X"},
		{".X.", ".X.", "XX."},
	})
	define(L, "L", [3]uint8{240, 152, 48}, [RotationCount][]string{
		{"..X", "XXX", "..."},
		{".X.", ".X.", ".XX"},
		{"...", "XXX", "X.."},
		{"XX.", ".X.", ".X."},
	})
}

func define(t Type, name string, color [3]uint8, rotations [RotationCount][]string) {
	def := &definition{
		name:      name,
		dimension: len(rotations[0]),
		color:     color,
	}

	for r, rows := range rotations {
		if len(rows) != def.dimension {
			panic(fmt.Sprintf("tile %s rotation %d has %d rows, want %d", name, r, len(rows), def.dimension))
		}

		grid := make([][]bool, def.dimension)
		for row, line := range rows {
			if len(line) != def.dimension {
				panic(fmt.Sprintf("tile %s rotation %d row %d has %d columns, want %d", name, r, row, len(line), def.dimension))
			}
			grid[row] = make([]bool, def.dimension)
			for col, ch := range line {
				if ch == 'X' {
					grid[row][col] = true
					def.cells[r] = append(def.cells[r], Offset{Col: col, Row: row})
				}
			}
		}

		def.tiles[r] = grid
		def.insets[r] = measureInsets(grid)
	}

	catalog[t] = def
}

// measureInsets counts the empty border rows and columns of a rotation grid.
func measureInsets(grid [][]bool) insets {
	dim := len(grid)
	colUsed := func(col int) bool {
		for row := range dim {
			if grid[row][col] {
				return true
			}
		}
		return false
	}
	rowUsed := func(row int) bool {
		for col := range dim {
			if grid[row][col] {
				return true
			}
		}
		return false
	}

	var in insets
	for in.left < dim && !colUsed(in.left) {
		in.left++
	}
	for in.right < dim && !colUsed(dim-1-in.right) {
		in.right++
	}
	for in.top < dim && !rowUsed(in.top) {
		in.top++
	}
	for in.bottom < dim && !rowUsed(dim-1-in.bottom) {
		in.bottom++
	}
	return in
}

func (t Type) def() *definition {
	if !t.Valid() {
		panic(fmt.Errorf("%w: tile type %d", ErrInvalidArgument, uint8(t)))
	}
	return catalog[t]
}

func checkRotation(rotation int) {
	if rotation < 0 || rotation >= RotationCount {
		panic(fmt.Errorf("%w: rotation %d", ErrInvalidArgument, rotation))
	}
}

// Valid reports whether t is one of the seven playable types.
func (t Type) Valid() bool {
	return t >= I && t <= L
}

func (t Type) String() string {
	if t == None {
		return "None"
	}
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return catalog[t].name
}

// Dimension returns the side length of the type's square rotation grid.
func (t Type) Dimension() int {
	return t.def().dimension
}

// Color returns the RGB color renderers use for the type.
func (t Type) Color() [3]uint8 {
	return t.def().color
}

// IsTile reports whether the cell at (col, row) of the rotation grid is occupied.
func (t Type) IsTile(col, row, rotation int) bool {
	def := t.def()
	checkRotation(rotation)
	if col < 0 || col >= def.dimension || row < 0 || row >= def.dimension {
		panic(fmt.Errorf("%w: cell (%d,%d) outside %dx%d grid", ErrInvalidArgument, col, row, def.dimension, def.dimension))
	}
	return def.tiles[rotation][row][col]
}

// Cells returns the occupied offsets of a rotation. The slice is shared and
// must not be modified.
func (t Type) Cells(rotation int) []Offset {
	def := t.def()
	checkRotation(rotation)
	return def.cells[rotation]
}

func (t Type) LeftInset(rotation int) int {
	def := t.def()
	checkRotation(rotation)
	return def.insets[rotation].left
}

func (t Type) RightInset(rotation int) int {
	def := t.def()
	checkRotation(rotation)
	return def.insets[rotation].right
}

func (t Type) TopInset(rotation int) int {
	def := t.def()
	checkRotation(rotation)
	return def.insets[rotation].top
}

func (t Type) BottomInset(rotation int) int {
	def := t.def()
	checkRotation(rotation)
	return def.insets[rotation].bottom
}

// SpawnColumn returns the column a new piece of this type enters at, centered
// on a ten column board.
func (t Type) SpawnColumn() int {
	return 5 - t.Dimension()/2
}

// SpawnRow returns the row a new piece of this type enters at. Rotation 0's
// first occupied row lands on board row 0, the top hidden row.
func (t Type) SpawnRow() int {
	return -t.TopInset(0)
}
