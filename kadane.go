package maxsum

// LinearScan finds the maximum-sum contiguous subsequence of seq in a
// single pass using Kadane's dynamic-programming recurrence: at each index
// the best subarray ending there either extends the previous one or starts
// fresh.
//
// Algorithm Outline:
//  1. best = current = seq[0]; currentStart = 0; answer indices (0, 0).
//  2. For i = 1..n-1:
//     if seq[i] > current+seq[i], restart: current = seq[i], currentStart = i;
//     otherwise extend: current += seq[i].
//     if current > best, record (current, currentStart, i).
//  3. Return the recorded Result.
//
// Tie-break: the restart comparison is strict, so when seq[i] equals
// current+seq[i] (a zero-sum prefix) the scan extends instead of
// restarting; the best-so-far update is also strict, keeping the earliest
// subarray among tied maxima. Both rules are load-bearing for index
// tracking on inputs with zero-valued runs — Sum always matches the other
// solvers, and the indices stay deterministic.
//
// Complexity:
//
//	Time   = O(n) single pass
//	Memory = O(1)
//
// Errors:
//   - ErrEmptyInput — if seq has no elements.
func LinearScan(seq []int) (Result, error) {
	if len(seq) == 0 {
		return Result{}, ErrEmptyInput
	}

	best := seq[0]
	current := seq[0]
	currentStart := 0
	start, end := 0, 0
	for i := 1; i < len(seq); i++ {
		if seq[i] > current+seq[i] {
			current = seq[i]
			currentStart = i
		} else {
			current += seq[i]
		}

		if current > best {
			best = current
			start, end = currentStart, i
		}
	}

	return Result{Sum: best, Start: start, End: end}, nil
}
