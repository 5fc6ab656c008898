// Package maxsum defines the shared result contract and solver selectors.
package maxsum

// Result holds the outcome of a maximum-subsequence search.
//
// Start and End are inclusive indices into the input sequence, so the
// winning subarray is seq[Start..End] and its total is Sum. For any
// non-empty input every solver guarantees 0 <= Start <= End < len(seq).
// A Result is a plain value: constructed once per call, never mutated,
// owned by the caller.
type Result struct {
	// Sum is the maximum contiguous subsequence total found.
	Sum int

	// Start is the first index of the winning subsequence (inclusive).
	Start int

	// End is the last index of the winning subsequence (inclusive).
	End int
}

// Algorithm selects which solver Solve and Timed dispatch to.
//
//   - Cubic         — O(n³) exhaustive brute force; correctness baseline.
//   - Quadratic     — O(n²) brute force with a running sum.
//   - DivideConquer — O(n log n) recursive split/combine.
//   - Kadane        — O(n) single-pass dynamic programming.
type Algorithm int

const (
	// Cubic routes to BruteForceCubic.
	Cubic Algorithm = iota

	// Quadratic routes to BruteForceQuadratic.
	Quadratic

	// DivideConquer routes to DivideAndConquer.
	DivideConquer

	// Kadane routes to LinearScan.
	Kadane
)

// algorithmNames maps Algorithm values to their display names.
var algorithmNames = [...]string{
	Cubic:         "BruteForceCubic",
	Quadratic:     "BruteForceQuadratic",
	DivideConquer: "DivideAndConquer",
	Kadane:        "LinearScan",
}

// String returns the solver name for a, or "Unknown" for out-of-range values.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return "Unknown"
	}
	return algorithmNames[a]
}
