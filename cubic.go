package maxsum

import "math"

// BruteForceCubic finds the maximum-sum contiguous subsequence of seq by
// exhaustive search: every boundary pair (i, j) with i <= j is tried, and
// the sum of seq[i..j] is recomputed from scratch each time.
//
// Algorithm Outline:
//  1. best = -∞ (math.MinInt).
//  2. For i = 0..n-1:
//     For j = i..n-1:
//     sum = seq[i] + ... + seq[j]  (inner loop, no reuse)
//     if sum > best, record (sum, i, j).
//  3. Return the recorded Result.
//
// Tie-break: updates happen only on strictly greater sums, so among tied
// maxima the first-seen pair wins — lexicographically smallest i, then
// smallest j. BruteForceQuadratic reproduces this rule exactly; the two
// must return identical Results on every input.
//
// This is the correctness baseline for the faster solvers.
//
// Complexity:
//
//	Time   = O(n³)
//	Memory = O(1)
//
// Errors:
//   - ErrEmptyInput — if seq has no elements.
func BruteForceCubic(seq []int) (Result, error) {
	n := len(seq)
	if n == 0 {
		return Result{}, ErrEmptyInput
	}

	best := math.MinInt
	start, end := 0, 0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			// Recompute seq[i..j] in full; reuse is the quadratic solver's job.
			sum := 0
			for k := i; k <= j; k++ {
				sum += seq[k]
			}
			if sum > best {
				best = sum
				start, end = i, j
			}
		}
	}

	return Result{Sum: best, Start: start, End: end}, nil
}
