// Package minmax implements MinMaxAggregator: a two-phase engine that
// downsamples a window of input samples into a fixed number of
// per-bin, per-channel extremes for visualization.
package minmax

import (
	"math"

	"github.com/bfarago/timelinedb/internal/backend"
	"github.com/bfarago/timelinedb/internal/buffer"
)

// alignmentFor mirrors src.alignmentFor: SIMD layouts need >=16-byte
// alignment, other layouts are unaligned.
func alignmentFor(layout buffer.Layout) int {
	if layout.IsSimd() {
		return 16
	}
	return 1
}

// Prepare allocates outMin and outMax with the same layout, channel
// count, bit width, and time base as input, each sized for binCount
// bins.
func Prepare(input *buffer.Timeline, binCount int) (outMin, outMax *buffer.Timeline, err error) {
	if binCount <= 0 {
		return nil, nil, buffer.ErrOutOfBounds
	}
	switch input.Layout {
	case buffer.AnalogI8, buffer.SimdI16x8:
	default:
		return nil, nil, ErrUnsupportedLayout
	}

	align := alignmentFor(input.Layout)
	outMin = &buffer.Timeline{}
	outMax = &buffer.Timeline{}
	outMin.Init()
	outMax.Init()
	if err := outMin.Allocate(binCount, input.ChannelCount, input.BitWidth, align, input.Layout); err != nil {
		return nil, nil, err
	}
	if err := outMax.Allocate(binCount, input.ChannelCount, input.BitWidth, align, input.Layout); err != nil {
		return nil, nil, err
	}
	outMin.TimeStep, outMin.TimeExponent = input.TimeStep, input.TimeExponent
	outMax.TimeStep, outMax.TimeExponent = input.TimeStep, input.TimeExponent
	return outMin, outMax, nil
}

// Aggregate partitions [inOffset, inOffset+inSamples) into binCount
// equal sub-ranges and dispatches the per-layout backend kernel for
// each bin, in ascending bin order. outMin/outMax must already have
// been sized by Prepare.
func Aggregate(input, outMin, outMax *buffer.Timeline, inSamples, inOffset int, tbl *backend.Table) error {
	binCount := outMin.SampleCount
	if binCount <= 0 {
		return buffer.ErrOutOfBounds
	}
	if inSamples <= 0 {
		return buffer.ErrOutOfBounds
	}
	if inOffset < 0 || inOffset+inSamples > input.SampleCount {
		return buffer.ErrOutOfBounds
	}

	var kernel backend.AggregateFunc
	switch input.Layout {
	case buffer.AnalogI8:
		kernel = tbl.AggregateMinMaxI8
	case buffer.SimdI16x8:
		kernel = tbl.AggregateMinMaxI16x8
	default:
		return ErrUnsupportedLayout
	}

	stride := float64(inSamples) / float64(binCount)
	for i := 0; i < binCount; i++ {
		start := inOffset + int(math.Floor(float64(i)*stride))
		end := inOffset + int(math.Floor(float64(i+1)*stride))
		if end <= start {
			end = start + 1
		}
		if end > inOffset+inSamples {
			end = inOffset + inSamples
		}
		if err := kernel(input, outMin, outMax, i, start, end); err != nil {
			return err
		}
	}
	return nil
}
