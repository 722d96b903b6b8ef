package ebitenui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/frontend"
	"github.com/plus3/blockfall/game"
)

const (
	// repeatDelay and repeatInterval are in ticks.
	repeatDelay    = 12
	repeatInterval = 3
)

type keyBinding struct {
	ebiten ebiten.Key
	key    frontend.Key
}

var keyBindings = []keyBinding{
	{ebiten.KeyArrowLeft, frontend.KeyLeft},
	{ebiten.KeyArrowRight, frontend.KeyRight},
	{ebiten.KeyArrowUp, frontend.KeyUp},
	{ebiten.KeyArrowDown, frontend.KeyDown},
	{ebiten.KeyZ, frontend.KeyZ},
	{ebiten.KeySpace, frontend.KeySpace},
	{ebiten.KeyEnter, frontend.KeyEnter},
	{ebiten.KeyNumpadEnter, frontend.KeyEnter},
	{ebiten.KeyEscape, frontend.KeyEscape},
	{ebiten.KeyQ, frontend.KeyQ},
}

// Input reads key edges from ebiten. It must be polled from inside the
// game's Update, where inpututil state is current.
type Input struct {
	keys frontend.KeyMap
	// Captured reports whether another layer, such as the debug overlay,
	// owns the keyboard this frame.
	Captured func() bool
}

func NewInput(keys frontend.KeyMap) *Input {
	return &Input{keys: keys}
}

func (in *Input) Poll(apply func(game.Intent)) error {
	if in.Captured != nil && in.Captured() {
		return nil
	}

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.ebiten) {
			if in.keys.Quits(b.key) {
				return frontend.ErrQuit
			}
			if intent, ok := in.keys.Pressed(b.key); ok {
				apply(intent)
			}
		} else if in.keys.Repeats(b.key) && repeating(inpututil.KeyPressDuration(b.ebiten)) {
			if intent, ok := in.keys.Pressed(b.key); ok {
				apply(intent)
			}
		}

		if inpututil.IsKeyJustReleased(b.ebiten) {
			if intent, ok := in.keys.Released(b.key); ok {
				apply(intent)
			}
		}
	}
	return nil
}

// repeating reports whether a key held for ticks should fire again.
func repeating(ticks int) bool {
	return ticks > repeatDelay && (ticks-repeatDelay)%repeatInterval == 0
}
