package buffer

import (
	"encoding/binary"
	"math"
)

// ReadI8 decodes a signed 8-bit channel value. Fails with
// ErrTypeMismatch unless the layout is AnalogI8 or DigitalBits8.
func (t *Timeline) ReadI8(sampleIndex, channel int) (int8, error) {
	if t.Layout != AnalogI8 && t.Layout != DigitalBits8 {
		return 0, ErrTypeMismatch
	}
	off, err := t.SampleByteOffset(sampleIndex, channel)
	if err != nil {
		return 0, err
	}
	return int8(t.Storage[off]), nil
}

// WriteI8 stores a signed 8-bit channel value.
func (t *Timeline) WriteI8(sampleIndex, channel int, v int8) error {
	if t.Layout != AnalogI8 && t.Layout != DigitalBits8 {
		return ErrTypeMismatch
	}
	off, err := t.SampleByteOffset(sampleIndex, channel)
	if err != nil {
		return err
	}
	t.Storage[off] = byte(v)
	return nil
}

// ReadF32 decodes a 32-bit float channel value. Fails with
// ErrTypeMismatch unless the layout is AnalogF32.
func (t *Timeline) ReadF32(sampleIndex, channel int) (float32, error) {
	if t.Layout != AnalogF32 {
		return 0, ErrTypeMismatch
	}
	off, err := t.SampleByteOffset(sampleIndex, channel)
	if err != nil {
		return 0, err
	}
	bits := binary.LittleEndian.Uint32(t.Storage[off : off+4])
	return math.Float32frombits(bits), nil
}

// WriteF32 stores a 32-bit float channel value.
func (t *Timeline) WriteF32(sampleIndex, channel int, v float32) error {
	if t.Layout != AnalogF32 {
		return ErrTypeMismatch
	}
	off, err := t.SampleByteOffset(sampleIndex, channel)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(t.Storage[off:off+4], math.Float32bits(v))
	return nil
}

// ReadF64 decodes a 64-bit float channel value. Fails with
// ErrTypeMismatch unless the layout is AnalogF64.
func (t *Timeline) ReadF64(sampleIndex, channel int) (float64, error) {
	if t.Layout != AnalogF64 {
		return 0, ErrTypeMismatch
	}
	off, err := t.SampleByteOffset(sampleIndex, channel)
	if err != nil {
		return 0, err
	}
	bits := binary.LittleEndian.Uint64(t.Storage[off : off+8])
	return math.Float64frombits(bits), nil
}

// WriteF64 stores a 64-bit float channel value.
func (t *Timeline) WriteF64(sampleIndex, channel int, v float64) error {
	if t.Layout != AnalogF64 {
		return ErrTypeMismatch
	}
	off, err := t.SampleByteOffset(sampleIndex, channel)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(t.Storage[off:off+8], math.Float64bits(v))
	return nil
}

// ReadI16Simd decodes one lane of the 8-lane int16 SIMD layout. Fails
// with ErrTypeMismatch unless the layout is SimdI16x8.
func (t *Timeline) ReadI16Simd(sampleIndex, channel int) (int16, error) {
	if t.Layout != SimdI16x8 {
		return 0, ErrTypeMismatch
	}
	off, err := t.SampleByteOffset(sampleIndex, channel)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(t.Storage[off : off+2])), nil
}

// WriteI16Simd stores one lane of the 8-lane int16 SIMD layout.
func (t *Timeline) WriteI16Simd(sampleIndex, channel int, v int16) error {
	if t.Layout != SimdI16x8 {
		return ErrTypeMismatch
	}
	off, err := t.SampleByteOffset(sampleIndex, channel)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(t.Storage[off:off+2], uint16(v))
	return nil
}

// ReadI24Simd decodes one 24-bit lane of the 8-lane SimdI24x8 layout,
// sign-extended to int32. Lanes sit at 3-byte offsets
// (SampleByteOffset) inside the fixed 32-byte stride. Fails with
// ErrTypeMismatch unless the layout is SimdI24x8.
func (t *Timeline) ReadI24Simd(sampleIndex, channel int) (int32, error) {
	if t.Layout != SimdI24x8 {
		return 0, ErrTypeMismatch
	}
	off, err := t.SampleByteOffset(sampleIndex, channel)
	if err != nil {
		return 0, err
	}
	raw := int32(binary.LittleEndian.Uint32(t.Storage[off : off+4]))
	return raw << 8 >> 8, nil // sign-extend from 24 to 32 bits
}

// WriteI24Simd stores one 24-bit lane of the 8-lane SimdI24x8 layout.
// The value is truncated to 24 bits and only its three bytes are
// written, so the neighbouring lane is left intact.
func (t *Timeline) WriteI24Simd(sampleIndex, channel int, v int32) error {
	if t.Layout != SimdI24x8 {
		return ErrTypeMismatch
	}
	off, err := t.SampleByteOffset(sampleIndex, channel)
	if err != nil {
		return err
	}
	u := uint32(v)
	t.Storage[off] = byte(u)
	t.Storage[off+1] = byte(u >> 8)
	t.Storage[off+2] = byte(u >> 16)
	return nil
}

// LoadSimdI16x8 returns all 8 lanes of one sample as a fixed array,
// used by backend kernels that issue a single vector load per sample.
func (t *Timeline) LoadSimdI16x8(sampleIndex int) (lanes [8]int16, err error) {
	if t.Layout != SimdI16x8 {
		return lanes, ErrTypeMismatch
	}
	if sampleIndex < 0 || sampleIndex >= t.SampleCount {
		return lanes, ErrOutOfBounds
	}
	base := sampleIndex * t.BytesPerSample
	row := t.Storage[base : base+16]
	for i := 0; i < 8; i++ {
		lanes[i] = int16(binary.LittleEndian.Uint16(row[i*2 : i*2+2]))
	}
	return lanes, nil
}

// StoreSimdI16x8 writes all 8 lanes of one sample in a single call.
func (t *Timeline) StoreSimdI16x8(sampleIndex int, lanes [8]int16) error {
	if t.Layout != SimdI16x8 {
		return ErrTypeMismatch
	}
	if sampleIndex < 0 || sampleIndex >= t.SampleCount {
		return ErrOutOfBounds
	}
	base := sampleIndex * t.BytesPerSample
	row := t.Storage[base : base+16]
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint16(row[i*2:i*2+2], uint16(lanes[i]))
	}
	return nil
}
