package frontend

import (
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tile"
)

// Cell is one visible board square as it should be drawn.
type Cell struct {
	Type tile.Type
	// Ghost marks a square covered only by the drop preview.
	Ghost bool
}

// Grid is the visible part of the board, top row first.
type Grid [board.VisibleRowCount][board.ColCount]Cell

// Compose flattens the locked cells, the ghost and the active piece of snap
// into the visible rows. Hidden rows are left out.
func Compose(snap game.Snapshot) Grid {
	var grid Grid
	for row := board.HiddenRowCount; row < board.RowCount; row++ {
		for col := range board.ColCount {
			grid[row-board.HiddenRowCount][col].Type = snap.Board[row][col]
		}
	}

	if !snap.HasPiece {
		return grid
	}

	put := func(p game.Piece, ghost bool) {
		for _, c := range p.Cells() {
			col, row := c[0], c[1]-board.HiddenRowCount
			if row < 0 || row >= board.VisibleRowCount || col < 0 || col >= board.ColCount {
				continue
			}
			if ghost && grid[row][col].Type != tile.None {
				continue
			}
			grid[row][col] = Cell{Type: p.Type, Ghost: ghost}
		}
	}

	ghost := snap.Piece
	ghost.Row = snap.GhostRow
	put(ghost, true)
	put(snap.Piece, false)
	return grid
}

// Status is the banner shown next to the board, empty while playing.
func Status(snap game.Snapshot) string {
	switch snap.State {
	case game.Idle:
		return "PRESS ENTER"
	case game.Paused:
		return "PAUSED"
	case game.GameOver:
		return "GAME OVER"
	}
	return ""
}
