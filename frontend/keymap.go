package frontend

import "github.com/plus3/blockfall/game"

// Key is a physical key, independent of the windowing or terminal library
// that reported it.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyZ
	KeySpace
	KeyEnter
	KeyEscape
	KeyQ
)

// Binding describes what a key does. Press and Release are zero when the key
// has no intent for that edge.
type Binding struct {
	Press   game.Intent
	Release game.Intent
	// Repeat marks keys whose press intent repeats while held.
	Repeat bool
	Quit   bool
}

// KeyMap binds keys to intents.
type KeyMap map[Key]Binding

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		KeyLeft:   {Press: game.MoveLeft, Repeat: true},
		KeyRight:  {Press: game.MoveRight, Repeat: true},
		KeyUp:     {Press: game.RotateCW},
		KeyZ:      {Press: game.RotateCCW},
		KeyDown:   {Press: game.SoftDropStart, Release: game.SoftDropStop},
		KeySpace:  {Press: game.TogglePause},
		KeyEnter:  {Press: game.Restart},
		KeyEscape: {Quit: true},
		KeyQ:      {Quit: true},
	}
}

// Pressed returns the intent for a key going down.
func (m KeyMap) Pressed(key Key) (game.Intent, bool) {
	b, ok := m[key]
	return b.Press, ok && b.Press != 0
}

// Released returns the intent for a key coming up.
func (m KeyMap) Released(key Key) (game.Intent, bool) {
	b, ok := m[key]
	return b.Release, ok && b.Release != 0
}

func (m KeyMap) Repeats(key Key) bool { return m[key].Repeat }
func (m KeyMap) Quits(key Key) bool   { return m[key].Quit }

// Help lists the bindings for side panels, in display order.
func Help() []string {
	return []string{
		"Left/Right  move",
		"Up          rotate",
		"Z           rotate back",
		"Down        soft drop",
		"Space       pause",
		"Enter       new game",
		"Esc/Q       quit",
	}
}
