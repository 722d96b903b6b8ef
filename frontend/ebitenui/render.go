package ebitenui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/frontend"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tile"
)

const (
	DefaultCellSize = 24

	// panelCells is the side panel width in cells.
	panelCells = 8
	// lineHeight matches ebitenutil's debug font.
	lineHeight = 16
)

var (
	backgroundColor = color.RGBA{24, 24, 32, 255}
	wellColor       = color.RGBA{12, 12, 16, 255}
	gridColor       = color.RGBA{36, 36, 48, 255}
)

// Renderer keeps the latest snapshot and paints it when ebiten calls Draw.
type Renderer struct {
	cellSize int
	snap     game.Snapshot
}

func NewRenderer(cellSize int) *Renderer {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Renderer{cellSize: cellSize}
}

func (r *Renderer) Render(snap game.Snapshot) error {
	r.snap = snap
	return nil
}

// Size is the logical screen size in pixels.
func (r *Renderer) Size() (width, height int) {
	return (board.ColCount + 2 + panelCells) * r.cellSize, (board.VisibleRowCount + 2) * r.cellSize
}

func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	cs := float32(r.cellSize)
	originX, originY := cs, cs
	vector.DrawFilledRect(screen, originX, originY, cs*board.ColCount, cs*board.VisibleRowCount, wellColor, false)

	for row, cells := range frontend.Compose(r.snap) {
		for col, cell := range cells {
			x := originX + float32(col)*cs
			y := originY + float32(row)*cs
			switch {
			case cell.Type == tile.None:
				vector.StrokeRect(screen, x, y, cs, cs, 1, gridColor, false)
			case cell.Ghost:
				vector.StrokeRect(screen, x+1, y+1, cs-2, cs-2, 2, tileColor(cell.Type, 0.6), false)
			default:
				vector.DrawFilledRect(screen, x+1, y+1, cs-2, cs-2, tileColor(cell.Type, 1), false)
			}
		}
	}

	r.drawPanel(screen, originX+cs*(board.ColCount+1), originY)
}

func (r *Renderer) drawPanel(screen *ebiten.Image, x, y float32) {
	snap := r.snap
	cs := float32(r.cellSize) * 0.75

	ebitenutil.DebugPrintAt(screen, "NEXT", int(x), int(y))
	if snap.Next.Valid() {
		for _, off := range snap.Next.Cells(0) {
			px := x + float32(off.Col)*cs
			py := y + lineHeight + float32(off.Row)*cs
			vector.DrawFilledRect(screen, px+1, py+1, cs-2, cs-2, tileColor(snap.Next, 1), false)
		}
	}

	textY := int(y) + lineHeight + 4*int(cs) + lineHeight
	ebitenutil.DebugPrintAt(screen, r.stats(), int(x), textY)
}

func (r *Renderer) stats() string {
	snap := r.snap
	lines := []string{
		fmt.Sprintf("SCORE %d", snap.Score),
		fmt.Sprintf("LEVEL %d", snap.Level),
		fmt.Sprintf("LINES %d", snap.Lines),
		"",
	}
	if status := frontend.Status(snap); status != "" {
		lines = append(lines, status, "")
	}
	lines = append(lines, frontend.Help()...)
	return strings.Join(lines, "\n")
}

// tileColor returns the type's colour with each channel scaled by shade.
func tileColor(typ tile.Type, shade float32) color.RGBA {
	c := typ.Color()
	return color.RGBA{
		R: uint8(float32(c[0]) * shade),
		G: uint8(float32(c[1]) * shade),
		B: uint8(float32(c[2]) * shade),
		A: 255,
	}
}
