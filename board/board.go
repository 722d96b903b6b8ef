// Package board implements the playfield grid: collision and bounds testing,
// locking pieces in place and clearing full lines.
package board

import (
	"fmt"

	"github.com/plus3/blockfall/tile"
)

const (
	ColCount        = 10
	VisibleRowCount = 20
	HiddenRowCount  = 2
	RowCount        = VisibleRowCount + HiddenRowCount
)

// Row is one horizontal line of cells. tile.None marks an empty cell.
type Row [ColCount]tile.Type

// Board holds only locked pieces. The falling piece lives with the controller.
type Board struct {
	cells [RowCount]Row
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

func checkCoord(col, row int) {
	if col < 0 || col >= ColCount || row < 0 || row >= RowCount {
		panic(fmt.Errorf("%w: cell (%d,%d) outside %dx%d board", tile.ErrInvalidArgument, col, row, ColCount, RowCount))
	}
}

// At returns the type locked at (col, row), or tile.None.
func (b *Board) At(col, row int) tile.Type {
	checkCoord(col, row)
	return b.cells[row][col]
}

// IsValidAndEmpty reports whether a piece fits at the given position. Every
// occupied cell must fall inside the board's columns, no lower than the last
// row, and on an empty cell. Cells above row 0 are allowed.
func (b *Board) IsValidAndEmpty(typ tile.Type, col, row, rotation int) bool {
	for _, off := range typ.Cells(rotation) {
		x := col + off.Col
		y := row + off.Row

		if x < 0 || x >= ColCount || y >= RowCount {
			return false
		}
		if y >= 0 && b.cells[y][x] != tile.None {
			return false
		}
	}
	return true
}

// AddPiece writes a piece's cells into the grid. The caller must have already
// validated the placement. Cells above row 0 are dropped.
func (b *Board) AddPiece(typ tile.Type, col, row, rotation int) {
	for _, off := range typ.Cells(rotation) {
		x := col + off.Col
		y := row + off.Row
		if y < 0 {
			continue
		}
		checkCoord(x, y)
		b.cells[y][x] = typ
	}
}

// CheckLines removes every full row at once, shifts the rows above them down
// and returns the number of rows removed.
func (b *Board) CheckLines() int {
	write := RowCount - 1
	for read := RowCount - 1; read >= 0; read-- {
		if b.isFull(read) {
			continue
		}
		if write != read {
			b.cells[write] = b.cells[read]
		}
		write--
	}

	cleared := write + 1
	for row := 0; row <= write; row++ {
		b.cells[row] = Row{}
	}
	return cleared
}

func (b *Board) isFull(row int) bool {
	for _, cell := range b.cells[row] {
		if cell == tile.None {
			return false
		}
	}
	return true
}

// Clear empties every cell.
func (b *Board) Clear() {
	b.cells = [RowCount]Row{}
}

// Rows returns a copy of the grid, top row first.
func (b *Board) Rows() [RowCount]Row {
	return b.cells
}

// Height returns the number of rows from the highest occupied cell down to
// the floor, or 0 for an empty board.
func (b *Board) Height() int {
	for row := range RowCount {
		for _, cell := range b.cells[row] {
			if cell != tile.None {
				return RowCount - row
			}
		}
	}
	return 0
}

// DropRow returns the lowest row the piece can reach by falling straight down
// from row. The starting position is assumed valid.
func (b *Board) DropRow(typ tile.Type, col, row, rotation int) int {
	for b.IsValidAndEmpty(typ, col, row+1, rotation) {
		row++
	}
	return row
}
