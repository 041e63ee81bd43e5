// Package backend implements BackendRegistry: selection of one of two
// function tables (scalar reference, ISA-accelerated) exposing
// per-operation kernels typed by sample layout. No kernel allocates or
// blocks; kernels report BadShape on a layout or channel-count mismatch,
// and otherwise only pass through buffer errors (ErrEmptyInput for
// fewer than two input samples, accessor bounds errors).
package backend

import "github.com/bfarago/timelinedb/internal/buffer"

// ConvertFunc resamples input into output using output's precomputed
// plan (or, for the scalar reference table, an equivalent Bresenham
// accumulator that needs no plan).
type ConvertFunc func(input, output *buffer.Timeline) error

// AggregateFunc writes the min/max extremes of input[start:end] for
// every channel into bin binIndex of outMin/outMax.
type AggregateFunc func(input, outMin, outMax *buffer.Timeline, binIndex, start, end int) error

// Table is the per-backend function table: one entry per operation,
// typed by sample layout.
type Table struct {
	Name string

	ConvertSampleRateI16x8 ConvertFunc
	AggregateMinMaxI8      AggregateFunc
	AggregateMinMaxI16x8   AggregateFunc
}
