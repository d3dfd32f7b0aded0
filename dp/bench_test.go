package dp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algostep/dp"
	"github.com/katalvlaran/algostep/stepper"
)

// BenchmarkDTW replays DTW over two 12-sample series, banded and unbanded.
func BenchmarkDTW(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	x, y := make([]int, 12), make([]int, 12)
	for i := range x {
		x[i], y[i] = rng.Intn(100), rng.Intn(100)
	}
	b.Run("full", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			stepper.Count(dp.DTW(x, y))
		}
	})
	b.Run("window=2", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			stepper.Count(dp.DTW(x, y, dp.WithWindow(2)))
		}
	})
}

// BenchmarkKnapsack replays the largest knapsack the validation layer admits.
func BenchmarkKnapsack(b *testing.B) {
	weights := []int{2, 3, 4, 5, 9, 10}
	values := []int{3, 4, 5, 6, 18, 20}
	for i := 0; i < b.N; i++ {
		stepper.Count(dp.Knapsack(weights, values, 20))
	}
}
