// Package frontend defines how presentation adapters plug into the frame
// loop: an IntentSource feeds player input to the controller and a Renderer
// receives one snapshot of the game per frame.
package frontend

import (
	"errors"
	"io"
	"log"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
)

// ErrQuit is returned by an IntentSource when the player asked to leave.
var ErrQuit = errors.New("quit requested")

// IntentSource delivers the player intents collected since the last poll.
type IntentSource interface {
	Poll(apply func(game.Intent)) error
}

// Renderer presents a snapshot of the game.
type Renderer interface {
	Render(snap game.Snapshot) error
}

// InputSystem drains an IntentSource into the controller once per frame.
// ErrQuit stops the loop; other errors are logged and the frame continues.
type InputSystem struct {
	Source     IntentSource
	Controller *game.Controller
	Logger     *log.Logger
}

func (s *InputSystem) Execute(frame *loop.UpdateFrame) {
	err := s.Source.Poll(s.Controller.Apply)
	switch {
	case err == nil:
	case errors.Is(err, ErrQuit):
		frame.Commands.Stop()
	default:
		logger(s.Logger).Printf("[WARN] input: %v", err)
	}
}

// RenderSystem hands the renderer one snapshot per frame. A render failure
// stops the loop.
type RenderSystem struct {
	Renderer   Renderer
	Controller *game.Controller
	Logger     *log.Logger
}

func (s *RenderSystem) Execute(frame *loop.UpdateFrame) {
	if err := s.Renderer.Render(s.Controller.Snapshot()); err != nil {
		logger(s.Logger).Printf("[WARN] render: %v", err)
		frame.Commands.Stop()
	}
}

// Register adds the input, engine and render systems to scheduler in the
// order every adapter runs them.
func Register(scheduler *loop.Scheduler, controller *game.Controller, source IntentSource, renderer Renderer, l *log.Logger) {
	scheduler.Register(&InputSystem{Source: source, Controller: controller, Logger: l})
	scheduler.Register(&game.System{Controller: controller})
	scheduler.Register(&RenderSystem{Renderer: renderer, Controller: controller, Logger: l})
}

func logger(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard, "", 0)
	}
	return l
}
