package backend

import (
	"math"

	"github.com/bfarago/timelinedb/internal/buffer"
)

// scalarTable is backend index 0, "C Backend": the pure reference
// implementation with no ISA acceleration. Its ConvertSampleRateI16x8
// is the Bresenham accumulator kernel, which needs no precomputed plan
// and bounds accumulator drift to one LSB per step.
var scalarTable = Table{
	Name:                   "C Backend",
	ConvertSampleRateI16x8: convertSampleRateI16x8Bresenham,
	AggregateMinMaxI8:      aggregateMinMaxI8Scalar,
	AggregateMinMaxI16x8:   aggregateMinMaxI16x8Scalar,
}

func convertSampleRateI16x8Bresenham(input, output *buffer.Timeline) error {
	if input.Layout != buffer.SimdI16x8 || output.Layout != buffer.SimdI16x8 {
		return ErrBadShape
	}
	if input.ChannelCount != 8 || output.ChannelCount != 8 {
		return ErrBadShape
	}
	if input.SampleCount < 2 {
		return buffer.ErrEmptyInput
	}
	if output.SampleCount == 0 {
		return nil
	}

	// acc/scale is the fractional position between idx0 and idx1; the
	// accumulator advances by step per output sample and sheds scale
	// each time it crosses it, so idx0 tracks the input position with
	// no per-sample division. Once idx0 runs past the last adjacent
	// pair the position is pinned at the far end of that pair (frac
	// exactly 1), replicating the final input sample.
	scale := output.SampleCount
	step := input.SampleCount
	idx0 := 0
	acc := 0

	for i := 0; i < output.SampleCount; i++ {
		idx1 := idx0 + 1
		if idx1 > input.SampleCount-1 {
			idx1 = input.SampleCount - 1
		}
		frac := float64(acc) / float64(scale)

		v0, err := input.LoadSimdI16x8(idx0)
		if err != nil {
			return err
		}
		v1, err := input.LoadSimdI16x8(idx1)
		if err != nil {
			return err
		}

		var out [8]int16
		for c := 0; c < 8; c++ {
			interp := (1-frac)*float64(v0[c]) + frac*float64(v1[c])
			out[c] = int16(math.Round(interp))
		}
		if err := output.StoreSimdI16x8(i, out); err != nil {
			return err
		}

		acc += step
		for acc >= scale {
			idx0++
			acc -= scale
		}
		if idx0 > input.SampleCount-2 {
			idx0 = input.SampleCount - 2
			acc = scale
		}
	}
	return nil
}

func aggregateMinMaxI8Scalar(input, outMin, outMax *buffer.Timeline, binIndex, start, end int) error {
	if input.Layout != buffer.AnalogI8 {
		return ErrBadShape
	}
	channels := input.ChannelCount
	if channels <= 0 || channels > 255 {
		return ErrBadShape
	}
	// Fixed-size arrays (Allocate caps channels at 255) keep the kernel
	// allocation-free.
	var mins, maxs [255]int8
	for c := 0; c < channels; c++ {
		mins[c] = math.MaxInt8
		maxs[c] = math.MinInt8
	}
	// Per-channel strip processing: a raw byte-wise scan over the
	// interleaved storage would mix channels together for channel
	// counts > 1.
	for c := 0; c < channels; c++ {
		for s := start; s < end; s++ {
			v, err := input.ReadI8(s, c)
			if err != nil {
				return err
			}
			if v < mins[c] {
				mins[c] = v
			}
			if v > maxs[c] {
				maxs[c] = v
			}
		}
	}
	for c := 0; c < channels; c++ {
		if err := outMin.WriteI8(binIndex, c, mins[c]); err != nil {
			return err
		}
		if err := outMax.WriteI8(binIndex, c, maxs[c]); err != nil {
			return err
		}
	}
	return nil
}

func aggregateMinMaxI16x8Scalar(input, outMin, outMax *buffer.Timeline, binIndex, start, end int) error {
	if input.Layout != buffer.SimdI16x8 {
		return ErrBadShape
	}
	if input.ChannelCount != 8 {
		return ErrBadShape
	}
	var mins, maxs [8]int16
	for c := 0; c < 8; c++ {
		mins[c] = math.MaxInt16
		maxs[c] = math.MinInt16
	}
	for s := start; s < end; s++ {
		v, err := input.LoadSimdI16x8(s)
		if err != nil {
			return err
		}
		for c := 0; c < 8; c++ {
			if v[c] < mins[c] {
				mins[c] = v[c]
			}
			if v[c] > maxs[c] {
				maxs[c] = v[c]
			}
		}
	}
	if err := outMin.StoreSimdI16x8(binIndex, mins); err != nil {
		return err
	}
	return outMax.StoreSimdI16x8(binIndex, maxs)
}
