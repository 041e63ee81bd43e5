// Package timebase converts between (step, decimal-exponent) time bases
// and engineering-unit frequencies/intervals, and derives conversion
// ratios between two time bases. All functions are pure and stateless.
package timebase

import "math"

// freqUnits are SI prefixes applied to Hz, in ascending order, checked
// by repeated mantissa division until it falls in [1, 1000).
var freqUnits = []string{"Hz", "kHz", "MHz", "GHz", "THz", "PHz"}

// EngineeringFrequency returns the sampling frequency implied by step
// and exponent as a (mantissa, unit) pair with mantissa in [1, 1000),
// capped at PHz.
func EngineeringFrequency(step uint32, exponent int32) (float64, string) {
	freq := 1 / (float64(step) * math.Pow(10, float64(exponent)))
	mantissa := freq
	unit := freqUnits[0]
	for i := 1; i < len(freqUnits) && mantissa >= 1000; i++ {
		mantissa /= 1000
		unit = freqUnits[i]
	}
	return mantissa, unit
}

// intervalUnits maps a time_exponent to its SI-prefixed seconds unit.
var intervalUnits = map[int32]string{
	0:   "s",
	-3:  "ms",
	-6:  "µs",
	-9:  "ns",
	-12: "ps",
	-15: "fs",
}

// EngineeringInterval returns the sample interval implied by step and
// exponent as a (value, unit) pair. The unit is a direct lookup on
// exponent, so the value is step expressed in that unit; exponents
// outside the known table report "?s" with the value in seconds.
func EngineeringInterval(step uint32, exponent int32) (float64, string) {
	unit, ok := intervalUnits[exponent]
	if !ok {
		return float64(step) * math.Pow(10, float64(exponent)), "?s"
	}
	return float64(step), unit
}

// normalizeExponents are the candidate decimal exponents, checked from
// largest to smallest, for NormalizeToExponent.
var normalizeExponents = []int32{15, 12, 9, 6, 3, 0, -3, -6, -9, -12, -15}

// NormalizeToExponent picks the largest exponent e such that
// targetSeconds / 10^e >= 1, and returns step = round(targetSeconds /
// 10^e). Returns ok=false if no candidate exponent yields a step that
// fits in a uint32.
func NormalizeToExponent(targetSeconds float64) (step uint32, exponent int32, ok bool) {
	for _, e := range normalizeExponents {
		scaled := targetSeconds / math.Pow(10, float64(e))
		if scaled >= 1 {
			rounded := math.Round(scaled)
			if rounded > math.MaxUint32 {
				continue
			}
			return uint32(rounded), e, true
		}
	}
	// No candidate exponent produced a mantissa >= 1; fall back to the
	// smallest exponent with at least a 1-unit step.
	e := normalizeExponents[len(normalizeExponents)-1]
	rounded := math.Round(targetSeconds / math.Pow(10, float64(e)))
	if rounded < 1 {
		rounded = 1
	}
	if rounded > math.MaxUint32 {
		return 0, 0, false
	}
	return uint32(rounded), e, true
}

// RateRatio computes the resampling ratio between an input time base
// (step, exponent) and a target output sample rate in Hz:
// ratio = outputRateHz / (1 / (step * 10^exponent)).
func RateRatio(step uint32, exponent int32, outputRateHz float64) float64 {
	inputInterval := float64(step) * math.Pow(10, float64(exponent))
	inputRate := 1 / inputInterval
	return outputRateHz / inputRate
}
