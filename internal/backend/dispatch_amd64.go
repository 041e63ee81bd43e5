//go:build amd64 && !purego

package backend

import "golang.org/x/sys/cpu"

// simdTable is backend index 1 on amd64. Its name and kernels depend
// on the ISA features probed once at process start.
var simdTable = Table{
	Name:                   "Fallback C Backend",
	ConvertSampleRateI16x8: convertSampleRateI16x8Bresenham,
	AggregateMinMaxI8:      aggregateMinMaxI8Scalar,
	AggregateMinMaxI16x8:   aggregateMinMaxI16x8Scalar,
}

func init() {
	if cpu.X86.HasAVX2 || cpu.X86.HasAVX {
		simdTable.Name = "Intel AVX2 SIMD Backend"
		simdTable.ConvertSampleRateI16x8 = convertSampleRateI16x8Plan
		simdTable.AggregateMinMaxI8 = aggregateMinMaxI8Simd
		simdTable.AggregateMinMaxI16x8 = aggregateMinMaxI16x8Simd
	}
}
