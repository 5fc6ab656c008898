// Package maxsum - unified dispatcher for the four solvers.
//
// This file provides the canonical entry points when the algorithm is
// chosen at run time rather than at the call site:
//
//   - Solve: route a sequence to the solver selected by an Algorithm value.
//   - Timed: Solve plus a monotonic wall-clock measurement of the call,
//     for harnesses that compare the solvers' running times.
//
// Design principles:
//   - Deterministic: routing only; no hidden options, no randomness.
//   - Strict sentinels: only errors from errors.go; unknown selectors are
//     reported, never silently defaulted.
package maxsum

import "time"

// Solve runs the solver selected by algo on seq.
//
// Contracts:
//   - seq must be non-empty (every solver returns ErrEmptyInput otherwise).
//   - algo must be one of Cubic, Quadratic, DivideConquer, Kadane.
//
// Complexity: that of the selected solver; dispatch itself is O(1).
func Solve(seq []int, algo Algorithm) (Result, error) {
	switch algo {
	case Cubic:
		return BruteForceCubic(seq)
	case Quadratic:
		return BruteForceQuadratic(seq)
	case DivideConquer:
		return DivideAndConquer(seq)
	case Kadane:
		return LinearScan(seq)
	default:
		return Result{}, ErrUnknownAlgorithm
	}
}

// Timed runs Solve and reports how long the call took on the monotonic
// clock. The Result and error are passed through unchanged; the duration
// is valid even when the solver errors (it measures the failed call).
func Timed(seq []int, algo Algorithm) (Result, time.Duration, error) {
	started := time.Now()
	res, err := Solve(seq, algo)

	return res, time.Since(started), err
}
