package buffer

import "math"

// PlanEntry is one precomputed interpolation tuple used by the
// plan-driven sample-rate-conversion kernel. frac_q16 and inv_frac_q16
// always sum to 0x10000.
type PlanEntry struct {
	Idx0       uint32
	Idx1       uint32
	FracQ16    uint16
	InvFracQ16 uint16
}

// RateInfo is a snapshot of the resampling ratio computed during
// SampleRateConverter.Prepare, retained on the output Timeline for
// diagnostics.
type RateInfo struct {
	Ratio float64
}

// Timeline owns an aligned byte region plus the metadata describing
// how to interpret it: a fixed-rate, interleaved, multi-channel sample
// stream with an engineering-unit time base.
//
// A Timeline is created zero-valued (Init), allocated once with a
// definite layout (Allocate), populated by a converter/aggregator or an
// external ingest source, and finally released (Free). It exclusively
// owns Storage, Plan, and RateInfo; other components must only borrow
// from it via the accessor methods, never retain its backing array.
type Timeline struct {
	SampleCount     int
	ChannelCount    int
	BitWidth        int
	BytesPerSample  int
	Layout          Layout
	TimeStep        uint32
	TimeExponent    int32

	Storage []byte

	Plan     []PlanEntry
	RateInfo *RateInfo

	raw []byte // unsliced backing allocation, kept for alignment bookkeeping
}

// Init zeroes all metadata. Storage remains nil.
func (t *Timeline) Init() {
	*t = Timeline{}
}

// TotalTimeSec returns the window duration in seconds implied by
// SampleCount samples at this Timeline's rate.
func (t *Timeline) TotalTimeSec() float64 {
	if t.SampleCount == 0 {
		return 0
	}
	return float64(t.SampleCount) * float64(t.TimeStep) * math.Pow(10, float64(t.TimeExponent))
}

// FrequencyHz returns the sampling frequency implied by TimeStep and
// TimeExponent: f = 1 / (TimeStep * 10^TimeExponent).
func (t *Timeline) FrequencyHz() float64 {
	interval := float64(t.TimeStep) * math.Pow(10, float64(t.TimeExponent))
	if interval == 0 {
		return 0
	}
	return 1 / interval
}

// Allocate computes BytesPerSample for the given layout/channel count,
// acquires an aligned backing region, and sets Timeline metadata. For
// SIMD layouts the stride is fixed regardless of channelCount.
func (t *Timeline) Allocate(sampleCount, channelCount, bitWidth, alignment int, layout Layout) error {
	if sampleCount < 0 || channelCount <= 0 || channelCount > 255 {
		return ErrAllocFailed
	}
	if bitWidth != layout.BitWidth() {
		return ErrAllocFailed
	}
	bps := layout.BytesPerSample(channelCount)
	if bps <= 0 {
		return ErrAllocFailed
	}
	size := sampleCount * bps
	region, raw, err := alignedAlloc(size, alignment)
	if err != nil {
		return ErrAllocFailed
	}
	t.SampleCount = sampleCount
	t.ChannelCount = channelCount
	t.BitWidth = bitWidth
	t.BytesPerSample = bps
	t.Layout = layout
	t.Storage = region
	t.raw = raw
	return nil
}

// Free releases storage, the interpolation plan, and the rate-info
// snapshot, then resets all metadata.
func (t *Timeline) Free() {
	t.Init()
}

// Reallocate frees the current storage and allocates a fresh region
// with the given sample count and alignment, keeping the existing
// channel count, bit width, and layout. Used when a target pixel width
// changes.
func (t *Timeline) Reallocate(sampleCount, alignment int) error {
	channelCount, bitWidth, layout := t.ChannelCount, t.BitWidth, t.Layout
	t.Free()
	return t.Allocate(sampleCount, channelCount, bitWidth, alignment, layout)
}

// SampleByteOffset returns the byte offset of a given (sampleIndex,
// channel) pair within Storage.
func (t *Timeline) SampleByteOffset(sampleIndex, channel int) (uint32, error) {
	if sampleIndex < 0 || sampleIndex >= t.SampleCount {
		return 0, ErrOutOfBounds
	}
	if channel < 0 || channel >= t.ChannelCount {
		return 0, ErrOutOfBounds
	}
	if t.BitWidth%8 != 0 {
		return 0, ErrOutOfBounds
	}
	offset := sampleIndex*t.BytesPerSample + (channel*t.BitWidth)/8
	return uint32(offset), nil
}
