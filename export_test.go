package maxsum

// MaxCrossingForTest exposes the crossing solver to white-box tests in
// maxsum_test without widening the production API.
var MaxCrossingForTest = maxCrossing
