package game

import (
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/tile"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Board    [board.RowCount]board.Row
	Piece    Piece
	HasPiece bool
	GhostRow int
	Next     tile.Type

	State    State
	Score    int
	Level    int
	Lines    int
	Placed   int
	Speed    float64
	Cooldown int
	Paused   bool
	NewGame  bool
	GameOver bool
}

// Snapshot copies the current controller state.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Board:    c.board.Rows(),
		Next:     c.next,
		State:    c.State(),
		Score:    c.session.score,
		Level:    c.session.level,
		Lines:    c.session.lines,
		Placed:   c.session.placed,
		Speed:    c.session.speed,
		Cooldown: c.cooldown,
		Paused:   c.session.paused,
		NewGame:  c.session.newGame,
		GameOver: c.session.gameOver,
	}

	if !c.session.newGame && c.current.Type.Valid() {
		s.Piece = c.current
		s.HasPiece = true
		s.GhostRow = c.GhostRow()
	}
	return s
}

// Cells returns the board positions covered by the piece.
func (p Piece) Cells() [][2]int {
	offsets := p.Type.Cells(p.Rotation)
	cells := make([][2]int, 0, len(offsets))
	for _, off := range offsets {
		cells = append(cells, [2]int{p.Col + off.Col, p.Row + off.Row})
	}
	return cells
}
