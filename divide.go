package maxsum

import "math"

// DivideAndConquer finds the maximum-sum contiguous subsequence of seq by
// recursively splitting the index range in half and combining three
// candidates: the best subarray entirely in the left half, entirely in the
// right half, and the best one crossing the midpoint.
//
// Algorithm Outline (per range [left, right]):
//  1. Base case: left == right → Result{seq[left], left, left}.
//  2. mid = left + (right-left)/2.
//  3. Recurse on [left, mid] and [mid+1, right].
//  4. maxCrossing(seq, left, mid, right) gives the spanning candidate.
//  5. Return the candidate with the largest Sum.
//
// Tie-break: on equal sums the left-half candidate wins over the right-half
// candidate, which wins over the crossing candidate. Combined with the
// crossing scan's own tie rule this makes the returned indices fully
// deterministic. Sum always matches the brute-force solvers; indices may
// differ from theirs only when several subarrays tie for the maximum.
//
// Complexity:
//
//	Time   = O(n log n) — two half-size calls plus O(n) crossing work per level
//	Memory = O(log n) call stack
//
// Errors:
//   - ErrEmptyInput — if seq has no elements.
func DivideAndConquer(seq []int) (Result, error) {
	if len(seq) == 0 {
		return Result{}, ErrEmptyInput
	}

	return solveRange(seq, 0, len(seq)-1), nil
}

// solveRange solves the subproblem on seq[left..right], both bounds
// inclusive. Callers guarantee 0 <= left <= right < len(seq).
func solveRange(seq []int, left, right int) Result {
	if left == right {
		return Result{Sum: seq[left], Start: left, End: left}
	}

	mid := left + (right-left)/2
	leftRes := solveRange(seq, left, mid)
	rightRes := solveRange(seq, mid+1, right)
	crossRes := maxCrossing(seq, left, mid, right)

	// Fixed preference order on ties: left, then right, then crossing.
	switch {
	case leftRes.Sum >= rightRes.Sum && leftRes.Sum >= crossRes.Sum:
		return leftRes
	case rightRes.Sum >= leftRes.Sum && rightRes.Sum >= crossRes.Sum:
		return rightRes
	default:
		return crossRes
	}
}

// maxCrossing returns the best subsequence of seq[left..right] that spans
// the split between mid and mid+1. Callers guarantee left <= mid < right.
//
// The left part scans right-to-left from mid accumulating a suffix sum; the
// right part scans left-to-right from mid+1 accumulating a prefix sum. Both
// scans update only on strictly greater sums, so on ties each keeps the
// index closest to the split. The returned Sum is the pair's total, never a
// standalone answer unless solveRange's combiner selects it.
func maxCrossing(seq []int, left, mid, right int) Result {
	leftSum := math.MinInt
	maxLeft := mid
	sum := 0
	for i := mid; i >= left; i-- {
		sum += seq[i]
		if sum > leftSum {
			leftSum = sum
			maxLeft = i
		}
	}

	rightSum := math.MinInt
	maxRight := mid + 1
	sum = 0
	for j := mid + 1; j <= right; j++ {
		sum += seq[j]
		if sum > rightSum {
			rightSum = sum
			maxRight = j
		}
	}

	return Result{Sum: leftSum + rightSum, Start: maxLeft, End: maxRight}
}
