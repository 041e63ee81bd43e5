// Package src implements SampleRateConverter: a two-phase engine that
// hoists ratio/plan derivation into Prepare so Convert's plan-driven
// SimdI16x8 kernel runs a tight, division-free per-sample loop suitable
// for SIMD. The Bresenham scalar kernel and the AnalogI8 path still
// compute their interpolation fraction with a per-sample division.
package src

import (
	"math"

	"github.com/bfarago/timelinedb/internal/backend"
	"github.com/bfarago/timelinedb/internal/buffer"
	"github.com/bfarago/timelinedb/internal/timebase"
)

// alignmentFor returns the allocation alignment a layout requires:
// SIMD layouts need >=16-byte alignment, everything else is unaligned.
func alignmentFor(layout buffer.Layout) int {
	if layout.IsSimd() {
		return 16
	}
	return 1
}

// Prepare computes the output sample count and time base, allocates
// output's storage with input's layout, and — for SimdI16x8 — the
// interpolation plan the plan-driven kernel will consume.
func Prepare(input *buffer.Timeline, targetRateHz float64, output *buffer.Timeline) error {
	if input.SampleCount < 2 {
		return buffer.ErrEmptyInput
	}
	if targetRateHz <= 0 {
		return ErrInvalidRate
	}

	ratio := timebase.RateRatio(input.TimeStep, input.TimeExponent, targetRateHz)
	outCount := int(math.Floor(float64(input.SampleCount) * ratio))

	step, exponent, ok := timebase.NormalizeToExponent(1 / targetRateHz)
	if !ok {
		return buffer.ErrAllocFailed
	}

	if err := output.Allocate(outCount, input.ChannelCount, input.BitWidth, alignmentFor(input.Layout), input.Layout); err != nil {
		return err
	}
	output.TimeStep = step
	output.TimeExponent = exponent
	output.RateInfo = &buffer.RateInfo{Ratio: ratio}

	switch input.Layout {
	case buffer.SimdI16x8:
		output.Plan = buildPlan(input.SampleCount, outCount)
	case buffer.AnalogI8:
		// No plan: the AnalogI8 path interpolates directly in
		// floating point.
	default:
		return ErrUnsupportedLayout
	}
	return nil
}

// buildPlan precomputes one (idx0, idx1, frac_q16, inv_frac_q16) tuple
// per output sample.
func buildPlan(inCount, outCount int) []buffer.PlanEntry {
	plan := make([]buffer.PlanEntry, outCount)
	if outCount == 0 {
		return plan
	}
	for i := 0; i < outCount; i++ {
		pos := float64(i) * float64(inCount) / float64(outCount)
		idx0 := int(math.Floor(pos))
		if idx0 < 0 {
			idx0 = 0
		}

		if pos == float64(idx0) && idx0 <= inCount-1 {
			// pos lands exactly on an input sample (every entry of an
			// identity plan does): all weight on idx0, frac_q16 = 0.
			// This holds at the final sample too, where idx0 has no
			// right neighbor to blend toward; the kernel's frac-0 path
			// copies v0 without reading idx1, so the output stays
			// bit-exact instead of picking up the 1-LSB error the
			// near-1.0 blend can produce on large v0/v1 swings.
			idx1 := idx0 + 1
			if idx1 > inCount-1 {
				idx1 = inCount - 1
			}
			plan[i] = buffer.PlanEntry{
				Idx0:       uint32(idx0),
				Idx1:       uint32(idx1),
				FracQ16:    0,
				InvFracQ16: 0xFFFF,
			}
			continue
		}

		if idx0 > inCount-2 {
			idx0 = inCount - 2
		}
		idx1 := idx0 + 1
		if idx1 > inCount-1 {
			idx1 = inCount - 1
		}

		frac := pos - float64(idx0)
		fracRounded := math.Round(frac * 65536)

		var fracQ16, invFracQ16 uint16
		switch {
		case fracRounded <= 0:
			// A uint16 field cannot hold inv_frac_q16 == 0x10000; the
			// plan-driven kernel special-cases frac_q16 == 0 instead of
			// relying on the stored pair to sum exactly to 0x10000.
			fracQ16 = 0
			invFracQ16 = 0xFFFF
		case fracRounded >= 0x10000:
			// Tie-break: would round to 0x10000, which overflows a u16.
			fracQ16 = 0xFFFF
			invFracQ16 = 0x0001
		default:
			fracQ16 = uint16(fracRounded)
			invFracQ16 = uint16(0x10000 - uint32(fracQ16))
		}

		plan[i] = buffer.PlanEntry{
			Idx0:       uint32(idx0),
			Idx1:       uint32(idx1),
			FracQ16:    fracQ16,
			InvFracQ16: invFracQ16,
		}
	}
	return plan
}

// Convert resamples input into output using tbl's kernel for input's
// layout, or a direct float interpolation for AnalogI8, which has no
// entry in the backend function table.
func Convert(input, output *buffer.Timeline, tbl *backend.Table) error {
	switch input.Layout {
	case buffer.SimdI16x8:
		return tbl.ConvertSampleRateI16x8(input, output)
	case buffer.AnalogI8:
		return convertAnalogI8(input, output)
	default:
		return ErrUnsupportedLayout
	}
}

// convertAnalogI8 interpolates directly in floating point, rounding
// half-away-from-zero and clamping to the int8 domain.
func convertAnalogI8(input, output *buffer.Timeline) error {
	if input.SampleCount < 2 {
		return buffer.ErrEmptyInput
	}
	if output.SampleCount == 0 {
		return nil
	}
	channels := input.ChannelCount
	for i := 0; i < output.SampleCount; i++ {
		pos := float64(i) * float64(input.SampleCount) / float64(output.SampleCount)
		idx0 := int(math.Floor(pos))
		if idx0 > input.SampleCount-2 {
			idx0 = input.SampleCount - 2
		}
		if idx0 < 0 {
			idx0 = 0
		}
		idx1 := idx0 + 1
		if idx1 > input.SampleCount-1 {
			idx1 = input.SampleCount - 1
		}
		frac := pos - float64(idx0)

		for c := 0; c < channels; c++ {
			v0, err := input.ReadI8(idx0, c)
			if err != nil {
				return err
			}
			v1, err := input.ReadI8(idx1, c)
			if err != nil {
				return err
			}
			interp := (1-frac)*float64(v0) + frac*float64(v1)
			rounded := roundHalfAwayFromZero(interp)
			if rounded > 127 {
				rounded = 127
			} else if rounded < -128 {
				rounded = -128
			}
			if err := output.WriteI8(i, c, int8(rounded)); err != nil {
				return err
			}
		}
	}
	return nil
}

func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return math.Floor(v + 0.5)
	}
	return math.Ceil(v - 0.5)
}
