//go:build arm64 && !purego

package backend

// simdTable is backend index 1 on arm64. ARMv8-A mandates NEON, so the
// build tag itself stands in for a runtime feature probe.
var simdTable = Table{
	Name:                   "Neon SIMD Backend",
	ConvertSampleRateI16x8: convertSampleRateI16x8Plan,
	AggregateMinMaxI8:      aggregateMinMaxI8Simd,
	AggregateMinMaxI16x8:   aggregateMinMaxI16x8Simd,
}
