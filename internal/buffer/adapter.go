package buffer

// Adapter converts between scalar 8-bit interleaved buffers and the
// 8-lane int16 SIMD layout: sign-extending on widen, truncating on
// narrow. It is a reduced utility — narrowing discards the upper byte
// and leaves clipping to the caller.
type Adapter struct{}

// PrepareSimdI16x8FromI8 allocates dst as a SimdI16x8 Timeline with 8
// channels, the same sample count as src, 16-byte stride, 16-byte
// alignment.
func (Adapter) PrepareSimdI16x8FromI8(src, dst *Timeline) error {
	return dst.Allocate(src.SampleCount, simdChannels, SimdI16x8.BitWidth(), 16, SimdI16x8)
}

// WidenChannel copies src[srcChannel] (int8, sign-extended) into lane
// dstChannel of dst (int16) for every sample.
func (Adapter) WidenChannel(src, dst *Timeline, srcChannel, dstChannel int) error {
	if src.SampleCount != dst.SampleCount {
		return ErrOutOfBounds
	}
	for i := 0; i < src.SampleCount; i++ {
		v, err := src.ReadI8(i, srcChannel)
		if err != nil {
			return err
		}
		if err := dst.WriteI16Simd(i, dstChannel, int16(v)); err != nil {
			return err
		}
	}
	return nil
}

// NarrowToI8 truncates lane 0 of src (int16) into dst[sample] (int8)
// for every sample, discarding the upper byte.
func (Adapter) NarrowToI8(src, dst *Timeline) error {
	if src.SampleCount != dst.SampleCount {
		return ErrOutOfBounds
	}
	for i := 0; i < src.SampleCount; i++ {
		v, err := src.ReadI16Simd(i, 0)
		if err != nil {
			return err
		}
		if err := dst.WriteI8(i, 0, int8(v)); err != nil {
			return err
		}
	}
	return nil
}
