package game

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/tile"
)

// Randomizer picks the type of each upcoming piece.
type Randomizer interface {
	Next() tile.Type
}

// UniformRandomizer draws every piece independently with equal odds.
type UniformRandomizer struct {
	rng *rand.Rand
}

func NewUniformRandomizer(seed uint64) *UniformRandomizer {
	return &UniformRandomizer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *UniformRandomizer) Next() tile.Type {
	return tile.All[r.rng.IntN(tile.Count)]
}

// BagRandomizer deals the seven types in shuffled bags so every type appears
// once per seven pieces.
type BagRandomizer struct {
	rng *rand.Rand
	bag []tile.Type
}

func NewBagRandomizer(seed uint64) *BagRandomizer {
	return &BagRandomizer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *BagRandomizer) Next() tile.Type {
	if len(r.bag) == 0 {
		r.bag = append(r.bag[:0], tile.All[:]...)
		r.rng.Shuffle(len(r.bag), func(i, j int) {
			r.bag[i], r.bag[j] = r.bag[j], r.bag[i]
		})
	}

	next := r.bag[0]
	r.bag = r.bag[1:]
	return next
}
