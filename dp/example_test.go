package dp_test

import (
	"fmt"

	"github.com/katalvlaran/algostep/dp"
	"github.com/katalvlaran/algostep/stepper"
)

// ExampleLCS prints the terminal summary of an LCS run.
func ExampleLCS() {
	last, _ := stepper.Last(dp.LCS("AGCAT", "GAC"))
	fmt.Println(last.Message)
	// Output: LCS length: 2, LCS: "AC"
}

// ExampleFibonacci prints the result of Fibonacci(5) and the memo size.
func ExampleFibonacci() {
	for snap := range stepper.All(dp.Fibonacci(5)) {
		if snap.Result != nil {
			fmt.Println(snap.Message, len(snap.Memo))
		}
	}
	// Output: Fibonacci(5) = 5 6
}

// ExampleDTW aligns two series that differ by one repeated sample.
func ExampleDTW() {
	last, _ := stepper.Last(dp.DTW([]int{1, 2, 3}, []int{1, 2, 2, 3}))
	fmt.Println(last.Message)
	// Output: DTW distance: 0, warping path: (1,1) → (2,2) → (2,3) → (3,4)
}
