// Package maxsum computes the maximum-sum contiguous subsequence of an
// integer sequence — the classic "maximum subarray" problem — with four
// independent solvers of increasing efficiency.
//
// 🚀 What is maxsum?
//
//	A small, pure-Go library that answers one question four ways:
//	which contiguous run of elements has the largest total?
//		• BruteForceCubic     — O(n³) exhaustive re-summation (the baseline)
//		• BruteForceQuadratic — O(n²) running-sum brute force
//		• DivideAndConquer    — O(n log n) recursive split/combine
//		• LinearScan          — O(n) Kadane single pass
//
//	Every solver returns the same Result{Sum, Start, End} contract and the
//	same Sum for the same input; only speed differs, which is the point.
//
// ✨ Why choose maxsum?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed tie-break rules, seedable input generation
//   - Pure Go – no cgo, no hidden deps
//   - Comparable – Solve/Timed run any solver behind one entry point
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/maxsum"
//
//	res, err := maxsum.LinearScan([]int{-2, 1, -3, 4, -1, 2, 1, -5, 4})
//	if err != nil {
//	  // handle ErrEmptyInput
//	}
//	fmt.Println(res.Sum, res.Start, res.End) // 6 3 6
//
// Tie-breaking:
//
//	When several subarrays share the maximum sum, each solver keeps a
//	documented, deterministic representative (brute force: first-seen
//	lexicographic pair; divide & conquer: left half over right half over
//	crossing; Kadane: extend over restart). Sum always agrees; indices may
//	legitimately differ between solvers on tied inputs.
//
// See examples in example_test.go and the runnable comparison harness in
// examples/compare_solvers.go.
//
//	go get github.com/katalvlaran/maxsum
package maxsum
