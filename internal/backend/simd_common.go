package backend

import (
	"math"

	"github.com/bfarago/timelinedb/internal/buffer"
)

// convertSampleRateI16x8Plan is the plan-driven kernel for the SIMD
// layout: for each output index, load the two adjacent 8-lane vectors
// named by the precomputed plan entry, blend them in Q16 fixed point,
// and store. On vector hardware this is one aligned load per operand
// plus a widen/narrow pair; expressed here as a straight-line 8-lane
// loop, which the compiler is free to vectorize.
func convertSampleRateI16x8Plan(input, output *buffer.Timeline) error {
	if input.Layout != buffer.SimdI16x8 || output.Layout != buffer.SimdI16x8 {
		return ErrBadShape
	}
	if input.ChannelCount != 8 || output.ChannelCount != 8 {
		return ErrBadShape
	}
	if input.SampleCount < 2 {
		return buffer.ErrEmptyInput
	}
	if len(output.Plan) != output.SampleCount {
		return buffer.ErrOutOfBounds
	}

	for i, entry := range output.Plan {
		v0, err := input.LoadSimdI16x8(int(entry.Idx0))
		if err != nil {
			return err
		}

		var out [8]int16
		if entry.FracQ16 == 0 {
			// A uint16 inv_frac_q16 cannot represent 0x10000, so the
			// exact-identity weight (frac=0, all weight on v0) is
			// special-cased here rather than stored; identity stays
			// bit-exact instead of attenuated by 1/65536.
			out = v0
		} else {
			v1, err := input.LoadSimdI16x8(int(entry.Idx1))
			if err != nil {
				return err
			}
			for c := 0; c < 8; c++ {
				blended := int64(v0[c])*int64(entry.InvFracQ16) + int64(v1[c])*int64(entry.FracQ16)
				// Arithmetic right shift by 16 with rounding.
				blended += 1 << 15
				out[c] = int16(blended >> 16)
			}
		}
		if err := output.StoreSimdI16x8(i, out); err != nil {
			return err
		}
	}
	return nil
}

// aggregateMinMaxI8Simd processes the AnalogI8 layout one channel
// strip at a time, seeding min/max the same way the int16 kernel seeds
// its lanes. Interleaved multi-channel i8 data cannot be reduced with
// a flat byte-wise scan without mixing channels, so the strip walk is
// shared with the scalar table.
func aggregateMinMaxI8Simd(input, outMin, outMax *buffer.Timeline, binIndex, start, end int) error {
	return aggregateMinMaxI8Scalar(input, outMin, outMax, binIndex, start, end)
}

// aggregateMinMaxI16x8Simd seeds 8-lane min/max vectors with
// math.MaxInt16 / math.MinInt16 and updates them lane-wise while
// scanning the sub-range, one vector load per sample.
func aggregateMinMaxI16x8Simd(input, outMin, outMax *buffer.Timeline, binIndex, start, end int) error {
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
