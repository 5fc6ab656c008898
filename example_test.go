package maxsum_test

import (
	"fmt"

	"github.com/katalvlaran/maxsum"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleLinearScan
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The classic mixed instance: positives and negatives interleaved.
//	  seq = [-2, 1, -3, 4, -1, 2, 1, -5, 4]
//
// The maximum subarray is [4, -1, 2, 1] — indices 3..6, sum 6.
//
// Complexity: O(n) time, O(1) memory
func ExampleLinearScan() {
	seq := []int{-2, 1, -3, 4, -1, 2, 1, -5, 4}

	res, err := maxsum.LinearScan(seq)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("sum=%d start=%d end=%d\n", res.Sum, res.Start, res.End)
	// Output:
	// sum=6 start=3 end=6
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDivideAndConquer
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	An all-negative sequence. The empty subarray is disallowed, so the
//	answer is the least-negative single element.
//	  seq = [-5, -3, -8, -1]
//
// Complexity: O(n log n) time, O(log n) stack
func ExampleDivideAndConquer() {
	seq := []int{-5, -3, -8, -1}

	res, err := maxsum.DivideAndConquer(seq)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("sum=%d start=%d end=%d\n", res.Sum, res.Start, res.End)
	// Output:
	// sum=-1 start=3 end=3
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Run every solver on the same input through the dispatcher and show
//	that the sums agree; only the running time differs per Algorithm.
func ExampleSolve() {
	seq := []int{1, 2, 3, 4}

	for algo := maxsum.Cubic; algo <= maxsum.Kadane; algo++ {
		res, err := maxsum.Solve(seq, algo)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%s: sum=%d [%d..%d]\n", algo, res.Sum, res.Start, res.End)
	}
	// Output:
	// BruteForceCubic: sum=10 [0..3]
	// BruteForceQuadratic: sum=10 [0..3]
	// DivideAndConquer: sum=10 [0..3]
	// LinearScan: sum=10 [0..3]
}
