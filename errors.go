package maxsum

import "errors"

var (
	// ErrEmptyInput indicates the input sequence has no elements; the
	// maximum of an empty sequence is undefined.
	ErrEmptyInput = errors.New("maxsum: input sequence must be non-empty")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the declared set.
	ErrUnknownAlgorithm = errors.New("maxsum: unknown algorithm")

	// ErrBadRange indicates invalid RandomSequence parameters (n < 1 or lo >= hi).
	ErrBadRange = errors.New("maxsum: invalid sequence length or value range")
)
