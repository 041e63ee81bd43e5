package backend

import "errors"

var (
	// ErrInvalidBackend indicates SetBackend was called with an
	// out-of-range index.
	ErrInvalidBackend = errors.New("backend: invalid backend index")

	// ErrBadShape indicates a kernel was invoked on a layout/channel
	// count it does not support, e.g. a channel count other than 8 for
	// a SimdI16x8 kernel.
	ErrBadShape = errors.New("backend: unsupported shape for this kernel")
)
