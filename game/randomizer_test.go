package game_test

import (
	"testing"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tile"
	"github.com/stretchr/testify/assert"
)

func TestBagRandomizerDealsEveryTypePerBag(t *testing.T) {
	r := game.NewBagRandomizer(42)

	for bag := range 20 {
		seen := make(map[tile.Type]int)
		for range tile.Count {
			seen[r.Next()]++
		}
		assert.Len(t, seen, tile.Count, "bag %d", bag)
		for typ, n := range seen {
			assert.True(t, typ.Valid())
			assert.Equal(t, 1, n)
		}
	}
}

func TestUniformRandomizerIsSeeded(t *testing.T) {
	a := game.NewUniformRandomizer(7)
	b := game.NewUniformRandomizer(7)

	counts := make(map[tile.Type]int)
	for range 7000 {
		typ := a.Next()
		assert.Equal(t, typ, b.Next())
		counts[typ]++
	}

	assert.Len(t, counts, tile.Count)
	for typ, n := range counts {
		assert.True(t, typ.Valid())
		assert.Greater(t, n, 700, typ.String())
	}
}

func TestIntentAndStateNames(t *testing.T) {
	assert.Equal(t, "RotateCCW", game.RotateCCW.String())
	assert.Equal(t, "Intent(?)", game.Intent(99).String())
	assert.Equal(t, "GameOver", game.GameOver.String())
	assert.Equal(t, "Unknown", game.State(9).String())
}
