package buffer

import "errors"

// Error taxonomy for TimelineBuffer operations. These are shared with
// downstream packages (src, minmax) that operate on a Timeline.
var (
	// ErrAllocFailed indicates the aligned allocator could not size a
	// region for the requested sample/channel/bit-width combination.
	ErrAllocFailed = errors.New("buffer: allocation failed")

	// ErrTypeMismatch indicates an accessor's bit width does not match
	// the buffer's layout.
	ErrTypeMismatch = errors.New("buffer: accessor type does not match layout")

	// ErrOutOfBounds indicates a sample or channel index beyond the
	// buffer's declared counts, or a bit width not a multiple of 8
	// where byte addressing is required.
	ErrOutOfBounds = errors.New("buffer: index out of bounds")

	// ErrEmptyInput indicates fewer than two samples where an operation
	// requires interpolation between neighbors.
	ErrEmptyInput = errors.New("buffer: input has fewer than 2 samples")
)
