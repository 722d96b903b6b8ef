package board

import (
	"errors"
	"fmt"
	"testing"

	"github.com/plus3/blockfall/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow locks every column of row except the listed gaps.
func fillRow(b *Board, row int, typ tile.Type, gaps ...int) {
	for col := range ColCount {
		b.cells[row][col] = typ
	}
	for _, g := range gaps {
		b.cells[row][g] = tile.None
	}
}

func TestIsValidAndEmptyBounds(t *testing.T) {
	b := New()

	tests := []struct {
		name     string
		typ      tile.Type
		col, row int
		rotation int
		want     bool
	}{
		{"spawn", tile.T, tile.T.SpawnColumn(), tile.T.SpawnRow(), 0, true},
		{"left edge", tile.O, 0, 5, 0, true},
		{"past left edge", tile.O, -1, 5, 0, false},
		{"right edge", tile.O, ColCount - 2, 5, 0, true},
		{"past right edge", tile.O, ColCount - 1, 5, 0, false},
		{"floor", tile.O, 3, RowCount - 2, 0, true},
		{"below floor", tile.O, 3, RowCount - 1, 0, false},
		{"above top is allowed", tile.O, 3, -1, 0, true},
		{"fully above top", tile.I, 3, -4, 0, true},
		{"vertical I empty left column inset", tile.I, -2, 4, 1, true},
		{"vertical I past left", tile.I, -3, 4, 1, false},
		{"vertical I right inset", tile.I, ColCount - 3, 4, 1, true},
		{"vertical I past right", tile.I, ColCount - 2, 4, 1, false},
		{"horizontal I bottom inset", tile.I, 0, RowCount - 2, 0, true},
		{"horizontal I past floor", tile.I, 0, RowCount - 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsValidAndEmpty(tt.typ, tt.col, tt.row, tt.rotation))
		})
	}
}

func TestIsValidAndEmptyCollision(t *testing.T) {
	b := New()
	b.cells[10][4] = tile.Z

	assert.False(t, b.IsValidAndEmpty(tile.O, 3, 9, 0))
	assert.False(t, b.IsValidAndEmpty(tile.O, 4, 10, 0))
	assert.True(t, b.IsValidAndEmpty(tile.O, 5, 9, 0))
	assert.True(t, b.IsValidAndEmpty(tile.O, 3, 7, 0))

	// T rotation 2 leaves its top row empty, so the empty corner may overlap.
	assert.True(t, b.IsValidAndEmpty(tile.T, 4, 10, 2))
}

func TestIsValidAndEmptyExhaustive(t *testing.T) {
	b := New()
	b.cells[15][2] = tile.L
	b.cells[RowCount-1][7] = tile.J

	for _, typ := range tile.All {
		for rotation := range tile.RotationCount {
			for col := -4; col < ColCount+2; col++ {
				for row := -4; row < RowCount+2; row++ {
					want := true
					for _, off := range typ.Cells(rotation) {
						x, y := col+off.Col, row+off.Row
						switch {
						case x < 0 || x >= ColCount || y >= RowCount:
							want = false
						case y >= 0 && b.cells[y][x] != tile.None:
							want = false
						}
					}
					got := b.IsValidAndEmpty(typ, col, row, rotation)
					if got != want {
						t.Fatalf("%s rot %d at (%d,%d): got %v want %v", typ, rotation, col, row, got, want)
					}
				}
			}
		}
	}
}

func TestAddPiece(t *testing.T) {
	b := New()
	b.AddPiece(tile.T, 0, RowCount-2, 0)

	assert.Equal(t, tile.T, b.At(1, RowCount-2))
	assert.Equal(t, tile.T, b.At(0, RowCount-1))
	assert.Equal(t, tile.T, b.At(1, RowCount-1))
	assert.Equal(t, tile.T, b.At(2, RowCount-1))
	assert.Equal(t, tile.None, b.At(0, RowCount-2))
	assert.Equal(t, 2, b.Height())
	assert.False(t, b.IsValidAndEmpty(tile.O, 0, RowCount-3, 0))
}

func TestAddPieceDropsCellsAboveTop(t *testing.T) {
	b := New()
	b.AddPiece(tile.I, 0, -2, 1)

	assert.Equal(t, tile.I, b.At(2, 0))
	assert.Equal(t, tile.I, b.At(2, 1))
	assert.Equal(t, tile.None, b.At(2, 2))
}

func TestCheckLinesNone(t *testing.T) {
	b := New()
	fillRow(b, RowCount-1, tile.S, 4)
	before := b.Rows()

	assert.Equal(t, 0, b.CheckLines())
	assert.Equal(t, before, b.Rows())
}

func TestCheckLinesCompactsNonAdjacentRows(t *testing.T) {
	b := New()
	fillRow(b, RowCount-1, tile.I)
	fillRow(b, RowCount-2, tile.J, 0)
	fillRow(b, RowCount-3, tile.L)
	fillRow(b, RowCount-4, tile.S, 9)
	b.cells[RowCount-5][5] = tile.T

	keepLow := b.cells[RowCount-2]
	keepHigh := b.cells[RowCount-4]
	keepTop := b.cells[RowCount-5]

	cleared := b.CheckLines()
	require.Equal(t, 2, cleared)

	rows := b.Rows()
	assert.Equal(t, keepLow, rows[RowCount-1])
	assert.Equal(t, keepHigh, rows[RowCount-2])
	assert.Equal(t, keepTop, rows[RowCount-3])
	for row := 0; row < RowCount-3; row++ {
		assert.Equal(t, Row{}, rows[row], "row %d", row)
	}
}

func TestCheckLinesTetris(t *testing.T) {
	b := New()
	for i := 1; i <= 4; i++ {
		fillRow(b, RowCount-i, tile.I)
	}
	b.cells[RowCount-5][0] = tile.O

	assert.Equal(t, 4, b.CheckLines())
	assert.Equal(t, tile.O, b.At(0, RowCount-1))
	assert.Equal(t, 1, b.Height())
}

func TestCheckLinesPreservesOrderAbove(t *testing.T) {
	b := New()
	for row := 5; row < RowCount; row++ {
		if row%3 == 0 {
			fillRow(b, row, tile.Z)
			continue
		}
		b.cells[row][row%ColCount] = tile.Type(1 + row%tile.Count)
	}

	var survivors []Row
	for row := range RowCount {
		if !b.isFull(row) {
			survivors = append(survivors, b.cells[row])
		}
	}

	cleared := b.CheckLines()
	rows := b.Rows()
	for i := range cleared {
		assert.Equal(t, Row{}, rows[i])
	}
	assert.Equal(t, 6, cleared)
	assert.Equal(t, survivors, toSlice(rows)[cleared:])
}

func toSlice(rows [RowCount]Row) []Row {
	return rows[:]
}

func TestClear(t *testing.T) {
	b := New()
	fillRow(b, 3, tile.T)
	b.Clear()
	assert.Equal(t, 0, b.Height())
	assert.Equal(t, [RowCount]Row{}, b.Rows())
}

func TestDropRow(t *testing.T) {
	b := New()
	assert.Equal(t, RowCount-2, b.DropRow(tile.O, 4, 0, 0))

	fillRow(b, RowCount-1, tile.I, 9)
	assert.Equal(t, RowCount-3, b.DropRow(tile.O, 4, 0, 0))
	assert.Equal(t, RowCount-4, b.DropRow(tile.I, 7, 0, 1), "vertical I drops into the gap")
}

func TestOutOfRangePanics(t *testing.T) {
	for _, coord := range [][2]int{{-1, 0}, {ColCount, 0}, {0, -1}, {0, RowCount}} {
		t.Run(fmt.Sprint(coord), func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				assert.True(t, errors.Is(r.(error), tile.ErrInvalidArgument))
			}()
			b := New()
			b.At(coord[0], coord[1])
		})
	}
}
