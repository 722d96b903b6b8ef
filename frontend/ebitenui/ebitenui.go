// Package ebitenui is the windowed presentation adapter. ebiten drives the
// frame loop at the game's frame rate and each Update runs one scheduler
// frame; Draw paints the snapshot that frame produced.
package ebitenui

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/frontend"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
)

const (
	windowTitle = "Blockfall"

	// debugWidth is the extra window width given to the inspector panels.
	debugWidth  = 340
	statsFrames = 120
)

// Options configures the window adapter.
type Options struct {
	CellSize int
	// DebugUI enables the Dear ImGui inspector overlay.
	DebugUI bool
	// Clock, when set, is shown in the session inspector.
	Clock  *clock.Clock
	Logger *log.Logger
}

// Game implements ebiten.Game on top of a loop scheduler.
type Game struct {
	scheduler *loop.Scheduler
	renderer  *Renderer
	input     *Input
	overlay   *debugui.Overlay
	imgui     *debugui_ebiten.ImguiBackend
}

// NewGame wires controller into a scheduler with ebiten input and rendering.
// The debug overlay is attached separately by Run because it needs a window.
func NewGame(controller *game.Controller, opts Options) *Game {
	g := &Game{
		scheduler: loop.NewScheduler(),
		renderer:  NewRenderer(opts.CellSize),
		input:     NewInput(frontend.DefaultKeyMap()),
	}
	frontend.Register(g.scheduler, controller, g.input, g.renderer, opts.Logger)
	return g
}

func (g *Game) attachDebugUI(backend *debugui_ebiten.ImguiBackend, controller *game.Controller, clk *clock.Clock) {
	g.imgui = backend
	g.overlay = &debugui.Overlay{}
	g.overlay.Add(
		debugui.Panel{Render: debugui.NewPerformanceStats(g.scheduler, statsFrames).Render},
		debugui.Panel{Render: debugui.NewSessionInspector(controller, clk).Render},
	)
	g.scheduler.Register(g.overlay)
	g.input.Captured = g.overlay.CapturesKeyboard
}

func (g *Game) Update() error {
	if g.imgui != nil {
		g.imgui.BeginFrame()
	}

	g.scheduler.Once(1.0 / game.FrameRate)

	if g.imgui != nil {
		g.imgui.EndFrame()
	}

	if g.scheduler.Stopped() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.renderer.Size()
}

// Run opens the window and plays controller until the window closes or the
// player quits.
func Run(controller *game.Controller, opts Options) error {
	g := NewGame(controller, opts)
	width, height := g.renderer.Size()

	ebiten.SetTPS(game.FrameRate)
	if opts.DebugUI {
		backend := debugui_ebiten.NewImguiBackend(windowTitle, width+debugWidth, height)
		g.attachDebugUI(backend, controller, opts.Clock)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(windowTitle)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if opts.Logger != nil {
		opts.Logger.Printf("[INFO] window frontend started (%dx%d, debug ui %t)", width, height, opts.DebugUI)
	}

	err := ebiten.RunGame(g)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("failed to run window: %w", err)
	}
	return nil
}
