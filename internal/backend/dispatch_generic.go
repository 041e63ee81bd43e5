//go:build (!amd64 && !arm64) || purego

package backend

// simdTable is backend index 1 on ISAs with no accelerated kernel in
// this tree (or when built with the purego tag): it degrades to the
// scalar kernels under the "Fallback C Backend" name.
var simdTable = Table{
	Name:                   "Fallback C Backend",
	ConvertSampleRateI16x8: convertSampleRateI16x8Bresenham,
	AggregateMinMaxI8:      aggregateMinMaxI8Scalar,
	AggregateMinMaxI16x8:   aggregateMinMaxI16x8Scalar,
}
