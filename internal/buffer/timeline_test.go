package buffer

import (
	"testing"
	"unsafe"
)

func TestAllocate_SimdStrideFixedAt16(t *testing.T) {
	tests := []struct {
		name     string
		channels int
	}{
		{"1_channel", 1},
		{"3_channels", 3},
		{"8_channels", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tl Timeline
			tl.Init()
			if err := tl.Allocate(100, tt.channels, 16, 16, SimdI16x8); err != nil {
				t.Fatalf("Allocate: %v", err)
			}
			if tl.BytesPerSample != 16 {
				t.Errorf("BytesPerSample = %d, want 16", tl.BytesPerSample)
			}
			if len(tl.Storage) != 100*16 {
				t.Errorf("len(Storage) = %d, want %d", len(tl.Storage), 100*16)
			}
		})
	}
}

func TestAllocate_AlignmentInvariant(t *testing.T) {
	var tl Timeline
	tl.Init()
	if err := tl.Allocate(50, 8, 16, 16, SimdI16x8); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	addr := uintptr(unsafe.Pointer(&tl.Storage[0]))
	if addr%16 != 0 {
		t.Errorf("storage address %#x is not 16-byte aligned", addr)
	}
}

func TestAllocate_BufferSizeInvariant(t *testing.T) {
	var tl Timeline
	tl.Init()
	if err := tl.Allocate(37, 3, 8, 1, AnalogI8); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if tl.BytesPerSample*tl.SampleCount > len(tl.Storage) {
		t.Errorf("bytes_per_sample*sample_count = %d exceeds len(storage) = %d",
			tl.BytesPerSample*tl.SampleCount, len(tl.Storage))
	}
	if tl.BytesPerSample != 3 {
		t.Errorf("BytesPerSample = %d, want 3", tl.BytesPerSample)
	}
}

func TestFree_ResetsMetadata(t *testing.T) {
	var tl Timeline
	tl.Init()
	if err := tl.Allocate(10, 1, 8, 1, AnalogI8); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	tl.Free()
	if tl.Storage != nil || tl.SampleCount != 0 || tl.Plan != nil || tl.RateInfo != nil {
		t.Errorf("Free did not reset metadata: %+v", tl)
	}
}

func TestSampleByteOffset(t *testing.T) {
	var tl Timeline
	tl.Init()
	if err := tl.Allocate(10, 4, 8, 1, DigitalBits8); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	tl.BitWidth = 16 // simulate a 16-bit-per-channel digital layout for offset math
	tl.BytesPerSample = 8
	off, err := tl.SampleByteOffset(2, 1)
	if err != nil {
		t.Fatalf("SampleByteOffset: %v", err)
	}
	want := uint32(2*8 + (1*16)/8)
	if off != want {
		t.Errorf("offset = %d, want %d", off, want)
	}

	if _, err := tl.SampleByteOffset(100, 0); err != ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds for sample index, got %v", err)
	}
	if _, err := tl.SampleByteOffset(0, 10); err != ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds for channel index, got %v", err)
	}
}

func TestReadWriteI8Roundtrip(t *testing.T) {
	var tl Timeline
	tl.Init()
	if err := tl.Allocate(5, 2, 8, 1, AnalogI8); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if err := tl.WriteI8(3, 1, -42); err != nil {
		t.Fatalf("WriteI8: %v", err)
	}
	v, err := tl.ReadI8(3, 1)
	if err != nil {
		t.Fatalf("ReadI8: %v", err)
	}
	if v != -42 {
		t.Errorf("ReadI8 = %d, want -42", v)
	}
}

func TestReadF32_TypeMismatch(t *testing.T) {
	var tl Timeline
	tl.Init()
	if err := tl.Allocate(5, 1, 8, 1, AnalogI8); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if _, err := tl.ReadF32(0, 0); err != ErrTypeMismatch {
		t.Errorf("ReadF32 on AnalogI8 buffer: got %v, want ErrTypeMismatch", err)
	}
}

func TestSimdI16x8_LoadStoreLanes(t *testing.T) {
	var tl Timeline
	tl.Init()
	if err := tl.Allocate(4, 8, 16, 16, SimdI16x8); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	var lanes [8]int16
	for i := range lanes {
		lanes[i] = int16(i * 10)
	}
	if err := tl.StoreSimdI16x8(2, lanes); err != nil {
		t.Fatalf("StoreSimdI16x8: %v", err)
	}
	got, err := tl.LoadSimdI16x8(2)
	if err != nil {
		t.Fatalf("LoadSimdI16x8: %v", err)
	}
	if got != lanes {
		t.Errorf("LoadSimdI16x8 = %v, want %v", got, lanes)
	}
	for ch := 0; ch < 8; ch++ {
		v, err := tl.ReadI16Simd(2, ch)
		if err != nil {
			t.Fatalf("ReadI16Simd: %v", err)
		}
		if v != lanes[ch] {
			t.Errorf("ReadI16Simd(2,%d) = %d, want %d", ch, v, lanes[ch])
		}
	}
}

func TestFrequencyAndTotalTime(t *testing.T) {
	var tl Timeline
	tl.Init()
	if err := tl.Allocate(1000, 1, 16, 16, SimdI16x8); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	tl.TimeStep = 1
	tl.TimeExponent = -6 // 1 MHz

	if got := tl.FrequencyHz(); got != 1_000_000 {
		t.Errorf("FrequencyHz = %v, want 1e6", got)
	}
	want := 1000.0 * 1e-6
	if got := tl.TotalTimeSec(); got != want {
		t.Errorf("TotalTimeSec = %v, want %v", got, want)
	}
}
