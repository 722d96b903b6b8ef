// Package terminal is the text-mode presentation adapter. It draws the game
// with tcell and runs the frame loop on its own fixed-rate scheduler.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/frontend"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
)

// Run plays controller in the terminal until the player quits or ctx is
// cancelled. The screen is restored before Run returns.
func Run(ctx context.Context, controller *game.Controller, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(defaultStyle)
	screen.HideCursor()

	input := NewInput(screen, frontend.DefaultKeyMap())
	defer input.Close()

	scheduler := loop.NewScheduler()
	frontend.Register(scheduler, controller, input, NewRenderer(screen), logger)

	logger.Println("[INFO] terminal frontend started")
	err = scheduler.Run(ctx, time.Second/game.FrameRate)
	if errors.Is(err, loop.ErrStopped) {
		return nil
	}
	return err
}
