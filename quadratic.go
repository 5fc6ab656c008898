package maxsum

import "math"

// BruteForceQuadratic finds the maximum-sum contiguous subsequence of seq
// by trying every start index and extending the end index with an
// accumulated running sum, removing BruteForceCubic's inner re-summation.
//
// Algorithm Outline:
//  1. best = -∞ (math.MinInt).
//  2. For i = 0..n-1:
//     sum = 0
//     For j = i..n-1:
//     sum += seq[j]
//     if sum > best, record (sum, i, j).
//  3. Return the recorded Result.
//
// Tie-break: identical to BruteForceCubic — strictly-greater updates keep
// the first-seen (i, j) pair. The two brute-force solvers return identical
// Results on every input; only the running time differs.
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(1)
//
// Errors:
//   - ErrEmptyInput — if seq has no elements.
func BruteForceQuadratic(seq []int) (Result, error) {
	n := len(seq)
	if n == 0 {
		return Result{}, ErrEmptyInput
	}

	best := math.MinInt
	start, end := 0, 0
	for i := 0; i < n; i++ {
		sum := 0
		for j := i; j < n; j++ {
			sum += seq[j]
			if sum > best {
				best = sum
				start, end = i, j
			}
		}
	}

	return Result{Sum: best, Start: start, End: end}, nil
}
