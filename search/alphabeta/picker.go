package alphabeta

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// A Picker chooses one move out of a non-empty set of equally good moves.
type Picker interface {
	Pick(moves []int) int
}

// RandomPicker picks uniformly at random.
type RandomPicker struct {
	rng *frand.RNG
}

// NewRandomPicker uses the shared frand source, which is safe for concurrent
// use.
func NewRandomPicker() *RandomPicker {
	return &RandomPicker{}
}

// NewSeededPicker returns a reproducible picker. It must not be shared
// between goroutines.
func NewSeededPicker(seed uint64) *RandomPicker {
	s := make([]byte, 32)
	binary.LittleEndian.PutUint64(s, seed)
	return &RandomPicker{rng: frand.NewCustom(s, 1024, 12)}
}

func (p *RandomPicker) Pick(moves []int) int {
	if p.rng == nil {
		return moves[frand.Intn(len(moves))]
	}
	return moves[p.rng.Intn(len(moves))]
}

// LowestIndexPicker always takes the lowest-numbered square.
type LowestIndexPicker struct{}

func (LowestIndexPicker) Pick(moves []int) int {
	return moves[0]
}

// PickerByName maps a tiebreak setting to a picker. seed is only used by
// "random" and only when non-zero.
func PickerByName(name string, seed uint64) (Picker, bool) {
	switch name {
	case "random":
		if seed != 0 {
			return NewSeededPicker(seed), true
		}
		return NewRandomPicker(), true
	case "lowest":
		return LowestIndexPicker{}, true
	}
	return nil, false
}
