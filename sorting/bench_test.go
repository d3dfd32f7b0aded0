package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algostep/sorting"
	"github.com/katalvlaran/algostep/stepper"
)

// BenchmarkReplay measures a full replay of each algorithm over 20 values,
// the largest input the validation layer admits.
func BenchmarkReplay(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	values := make([]int, 20)
	for i := range values {
		values[i] = rng.Intn(99) + 1
	}
	for _, algo := range sorting.Algorithms {
		b.Run(string(algo), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				s, _ := sorting.New(algo, values)
				stepper.Count(s)
			}
		})
	}
}
