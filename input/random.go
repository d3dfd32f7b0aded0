package input

import "math/rand"

// Range describes a random array: Size values drawn uniformly from [Lo, Hi].
type Range struct {
	Size, Lo, Hi int
}

// Shuffle presets.
var (
	SortingDefaults   = Range{Size: 15, Lo: 10, Hi: 99}
	SearchingDefaults = Range{Size: 12, Lo: 1, Hi: 99}
)

// RandomArray draws size values uniformly from [lo, hi].
func RandomArray(rng *rand.Rand, size, lo, hi int) []int {
	out := make([]int, size)
	for i := range out {
		out[i] = lo + rng.Intn(hi-lo+1)
	}

	return out
}

// Random draws an array described by r.
func (r Range) Random(rng *rand.Rand) []int { return RandomArray(rng, r.Size, r.Lo, r.Hi) }
