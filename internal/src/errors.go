package src

import "errors"

var (
	// ErrUnsupportedLayout indicates Prepare/Convert was called on a
	// Timeline layout the converter does not implement SRC for.
	ErrUnsupportedLayout = errors.New("src: unsupported layout for sample-rate conversion")

	// ErrInvalidRate indicates Prepare was called with a zero or
	// negative target sample rate.
	ErrInvalidRate = errors.New("src: target sample rate must be positive")
)
