package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tile"
)

// SessionInspector shows the live session, the falling piece and the gravity
// clock.
type SessionInspector struct {
	controller *game.Controller
	clock      *clock.Clock
	showHidden bool
}

func NewSessionInspector(controller *game.Controller, clk *clock.Clock) *SessionInspector {
	return &SessionInspector{controller: controller, clock: clk}
}

func (si *SessionInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 260), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 420), imgui.CondOnce)
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := si.controller.Snapshot()

	imgui.Text(fmt.Sprintf("State: %s", snap.State))
	imgui.Text(fmt.Sprintf("Score: %d  Level: %d", snap.Score, snap.Level))
	imgui.Text(fmt.Sprintf("Lines: %d  Placed: %d", snap.Lines, snap.Placed))
	imgui.Text(fmt.Sprintf("Speed: %.3f", snap.Speed))
	imgui.Text(fmt.Sprintf("Cooldown: %d", snap.Cooldown))

	imgui.Separator()
	if snap.HasPiece {
		p := snap.Piece
		imgui.Text(fmt.Sprintf("Piece: %s at (%d,%d) rot %d", p.Type, p.Col, p.Row, p.Rotation))
		imgui.Text(fmt.Sprintf("Ghost Row: %d", snap.GhostRow))
	} else {
		imgui.Text("Piece: none")
	}
	imgui.Text(fmt.Sprintf("Next: %s", snap.Next))

	if si.clock != nil {
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Clock: %.3f cps", si.clock.CyclesPerSecond()))
		imgui.Text(fmt.Sprintf("Paused: %t  Pending: %d", si.clock.IsPaused(), si.clock.Pending()))
	}

	if imgui.TreeNodeStr("Piece Counts") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PieceCountsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Type")
			imgui.TableSetupColumn("Spawned")
			imgui.TableHeadersRow()

			session := si.controller.Session()
			for _, typ := range tile.All {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(typ.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", session.Spawned(typ)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Board") {
		imgui.Text(fmt.Sprintf("Stack Height: %d", si.controller.Board().Height()))
		imgui.Checkbox("Hidden Rows", &si.showHidden)
		for _, line := range boardLines(snap, si.showHidden) {
			imgui.Text(line)
		}
		imgui.TreePop()
	}

	imgui.End()
}

// boardLines renders the locked cells and the active piece as text, one
// string per row. Locked cells use the type letter, the piece uses '@'.
func boardLines(snap game.Snapshot, hidden bool) []string {
	var piece [board.RowCount][board.ColCount]bool
	if snap.HasPiece {
		for _, c := range snap.Piece.Cells() {
			if c[1] >= 0 && c[1] < board.RowCount && c[0] >= 0 && c[0] < board.ColCount {
				piece[c[1]][c[0]] = true
			}
		}
	}

	first := board.HiddenRowCount
	if hidden {
		first = 0
	}

	lines := make([]string, 0, board.RowCount-first)
	for row := first; row < board.RowCount; row++ {
		var sb strings.Builder
		for col, typ := range snap.Board[row] {
			switch {
			case piece[row][col]:
				sb.WriteByte('@')
			case typ == tile.None:
				sb.WriteByte('.')
			default:
				sb.WriteString(typ.String())
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}
