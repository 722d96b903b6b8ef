package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/frontend"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tile"
)

const (
	// cellWidth is the number of terminal columns per board column, which
	// keeps cells roughly square.
	cellWidth = 2

	wellWidth  = board.ColCount*cellWidth + 2
	wellHeight = board.VisibleRowCount + 1
	panelX     = wellWidth + 2
	panelWidth = 24

	minWidth  = panelX + panelWidth
	minHeight = wellHeight

	blockRune = '█'
	ghostRune = '░'
)

var (
	defaultStyle = tcell.StyleDefault
	borderStyle  = defaultStyle.Foreground(tcell.NewRGBColor(140, 140, 140))
	labelStyle   = defaultStyle.Foreground(tcell.ColorYellow)
	statusStyle  = defaultStyle.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(200, 50, 50))
)

// Renderer draws snapshots onto a tcell screen: the well on the left and a
// side panel with the next piece, counters and key help on the right.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func (r *Renderer) Render(snap game.Snapshot) error {
	r.screen.Clear()

	width, height := r.screen.Size()
	if width < minWidth || height < minHeight {
		r.text(0, 0, fmt.Sprintf("terminal too small: need %dx%d", minWidth, minHeight), labelStyle)
		r.screen.Show()
		return nil
	}

	r.drawWell()
	r.drawGrid(frontend.Compose(snap))
	r.drawPanel(snap)

	r.screen.Show()
	return nil
}

func (r *Renderer) drawWell() {
	for y := range board.VisibleRowCount {
		r.screen.SetContent(0, y, '│', nil, borderStyle)
		r.screen.SetContent(wellWidth-1, y, '│', nil, borderStyle)
	}
	bottom := board.VisibleRowCount
	r.screen.SetContent(0, bottom, '└', nil, borderStyle)
	for x := 1; x < wellWidth-1; x++ {
		r.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	r.screen.SetContent(wellWidth-1, bottom, '┘', nil, borderStyle)
}

func (r *Renderer) drawGrid(grid frontend.Grid) {
	for y, row := range grid {
		for col, cell := range row {
			if cell.Type == tile.None {
				continue
			}
			ch := blockRune
			if cell.Ghost {
				ch = ghostRune
			}
			r.block(1+col*cellWidth, y, ch, tileStyle(cell.Type))
		}
	}
}

func (r *Renderer) drawPanel(snap game.Snapshot) {
	y := 0
	r.text(panelX, y, "NEXT", labelStyle)
	if snap.Next.Valid() {
		for _, off := range snap.Next.Cells(0) {
			r.block(panelX+off.Col*cellWidth, y+1+off.Row, blockRune, tileStyle(snap.Next))
		}
	}

	y = 6
	r.text(panelX, y, fmt.Sprintf("SCORE %d", snap.Score), defaultStyle)
	r.text(panelX, y+1, fmt.Sprintf("LEVEL %d", snap.Level), defaultStyle)
	r.text(panelX, y+2, fmt.Sprintf("LINES %d", snap.Lines), defaultStyle)

	if status := frontend.Status(snap); status != "" {
		r.text(panelX, y+4, " "+status+" ", statusStyle)
	}

	y += 6
	for i, line := range frontend.Help() {
		r.text(panelX, y+i, line, borderStyle)
	}
}

func (r *Renderer) block(x, y int, ch rune, style tcell.Style) {
	for i := range cellWidth {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func tileStyle(typ tile.Type) tcell.Style {
	c := typ.Color()
	return defaultStyle.Foreground(tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2])))
}
