package terminal

import (
	"sync"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/frontend"
	"github.com/plus3/blockfall/game"
)

// DefaultReleaseAfter is how long a key with a release intent counts as held
// after its last press or repeat.
const DefaultReleaseAfter = 300 * time.Millisecond

const eventBuffer = 100

// Input turns tcell events into intents. Terminals report presses and
// auto-repeats but never releases, so keys bound to a release intent are let
// go once they stop repeating.
type Input struct {
	events       <-chan tcell.Event
	keys         frontend.KeyMap
	now          clock.TimeSource
	releaseAfter time.Duration
	onResize     func()

	held      map[frontend.Key]time.Time
	done      chan struct{}
	closeOnce sync.Once
}

// NewInput starts reading events from screen on a goroutine. The goroutine
// exits when the screen is finalized or Close is called.
func NewInput(screen tcell.Screen, keys frontend.KeyMap) *Input {
	events := make(chan tcell.Event, eventBuffer)
	in := newInput(events, keys, clock.SystemTime{}, screen.Sync)
	go pump(screen.PollEvent, events, in.done)
	return in
}

// pump forwards polled events until poll returns nil or done is closed, then
// closes events.
func pump(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func newInput(events <-chan tcell.Event, keys frontend.KeyMap, now clock.TimeSource, onResize func()) *Input {
	return &Input{
		events:       events,
		keys:         keys,
		now:          now,
		releaseAfter: DefaultReleaseAfter,
		onResize:     onResize,
		held:         make(map[frontend.Key]time.Time),
		done:         make(chan struct{}),
	}
}

// Close stops the event reader. It is safe to call more than once.
func (in *Input) Close() {
	in.closeOnce.Do(func() { close(in.done) })
}

// Poll drains every pending event without blocking.
func (in *Input) Poll(apply func(game.Intent)) error {
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				return frontend.ErrQuit
			}
			if err := in.handle(ev, apply); err != nil {
				return err
			}
		default:
			in.expire(apply)
			return nil
		}
	}
}

func (in *Input) handle(ev tcell.Event, apply func(game.Intent)) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key := translate(ev)
		if ev.Key() == tcell.KeyCtrlC || in.keys.Quits(key) {
			return frontend.ErrQuit
		}

		intent, ok := in.keys.Pressed(key)
		if !ok {
			return nil
		}
		if _, releases := in.keys.Released(key); releases {
			_, repeating := in.held[key]
			in.held[key] = in.now.Now()
			if repeating {
				return nil
			}
		}
		apply(intent)

	case *tcell.EventResize:
		if in.onResize != nil {
			in.onResize()
		}
	}
	return nil
}

func (in *Input) expire(apply func(game.Intent)) {
	now := in.now.Now()
	for key, last := range in.held {
		if now.Sub(last) < in.releaseAfter {
			continue
		}
		delete(in.held, key)
		if intent, ok := in.keys.Released(key); ok {
			apply(intent)
		}
	}
}

func translate(ev *tcell.EventKey) frontend.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return frontend.KeyLeft
	case tcell.KeyRight:
		return frontend.KeyRight
	case tcell.KeyUp:
		return frontend.KeyUp
	case tcell.KeyDown:
		return frontend.KeyDown
	case tcell.KeyEnter:
		return frontend.KeyEnter
	case tcell.KeyEscape:
		return frontend.KeyEscape
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'z':
			return frontend.KeyZ
		case 'q':
			return frontend.KeyQ
		case ' ':
			return frontend.KeySpace
		}
	}
	return frontend.KeyNone
}
