package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/frontend"
	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inputHarness struct {
	input   *Input
	events  chan tcell.Event
	now     *clock.ManualTime
	resizes int
}

func newHarness() *inputHarness {
	h := &inputHarness{
		events: make(chan tcell.Event, eventBuffer),
		now:    clock.NewManualTime(time.Unix(0, 0)),
	}
	h.input = newInput(h.events, frontend.DefaultKeyMap(), h.now, func() { h.resizes++ })
	return h
}

func (h *inputHarness) key(k tcell.Key, r rune) {
	h.events <- tcell.NewEventKey(k, r, tcell.ModNone)
}

func (h *inputHarness) poll(t *testing.T) []game.Intent {
	t.Helper()
	var got []game.Intent
	require.NoError(t, h.input.Poll(func(i game.Intent) { got = append(got, i) }))
	return got
}

func TestInputTranslatesKeys(t *testing.T) {
	h := newHarness()
	h.key(tcell.KeyLeft, 0)
	h.key(tcell.KeyRight, 0)
	h.key(tcell.KeyUp, 0)
	h.key(tcell.KeyRune, 'Z')
	h.key(tcell.KeyRune, ' ')
	h.key(tcell.KeyEnter, 0)
	h.key(tcell.KeyRune, 'x')

	assert.Equal(t, []game.Intent{
		game.MoveLeft,
		game.MoveRight,
		game.RotateCW,
		game.RotateCCW,
		game.TogglePause,
		game.Restart,
	}, h.poll(t))
	assert.Empty(t, h.poll(t))
}

func TestInputSynthesizesSoftDropRelease(t *testing.T) {
	h := newHarness()

	h.key(tcell.KeyDown, 0)
	assert.Equal(t, []game.Intent{game.SoftDropStart}, h.poll(t))

	// Auto-repeats keep the drop engaged without restarting it.
	for range 5 {
		h.now.Advance(DefaultReleaseAfter / 2)
		h.key(tcell.KeyDown, 0)
		assert.Empty(t, h.poll(t))
	}

	h.now.Advance(DefaultReleaseAfter - time.Millisecond)
	assert.Empty(t, h.poll(t))

	h.now.Advance(time.Millisecond)
	assert.Equal(t, []game.Intent{game.SoftDropStop}, h.poll(t))
	assert.Empty(t, h.poll(t))

	h.key(tcell.KeyDown, 0)
	assert.Equal(t, []game.Intent{game.SoftDropStart}, h.poll(t))
}

func TestInputQuit(t *testing.T) {
	cases := []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"escape", tcell.KeyEscape, 0},
		{"q", tcell.KeyRune, 'q'},
		{"ctrl-c", tcell.KeyCtrlC, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness()
			h.key(tc.key, tc.r)
			err := h.input.Poll(func(game.Intent) {})
			assert.ErrorIs(t, err, frontend.ErrQuit)
		})
	}
}

func TestInputQuitsWhenScreenCloses(t *testing.T) {
	h := newHarness()
	close(h.events)

	err := h.input.Poll(func(game.Intent) {})
	assert.ErrorIs(t, err, frontend.ErrQuit)
}

func TestInputResize(t *testing.T) {
	h := newHarness()
	h.events <- tcell.NewEventResize(80, 24)

	assert.Empty(t, h.poll(t))
	assert.Equal(t, 1, h.resizes)
}

func TestPumpExitsOnCloseWithFullBuffer(t *testing.T) {
	h := newHarness()
	events := make(chan tcell.Event, 1)
	exited := make(chan struct{})

	go func() {
		pump(func() tcell.Event {
			return tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)
		}, events, h.input.done)
		close(exited)
	}()

	// Let the buffer fill so the reader blocks on its send.
	require.Eventually(t, func() bool { return len(events) == cap(events) }, time.Second, time.Millisecond)

	h.input.Close()
	h.input.Close()

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("event reader did not exit after Close")
	}
	_, open := <-events
	assert.True(t, open, "buffered event still readable")
	_, open = <-events
	assert.False(t, open)
}

func TestPumpExitsWhenPollReturnsNil(t *testing.T) {
	events := make(chan tcell.Event, eventBuffer)
	polls := 0
	pump(func() tcell.Event {
		polls++
		if polls > 2 {
			return nil
		}
		return tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	}, events, make(chan struct{}))

	assert.Len(t, events, 2)
}
