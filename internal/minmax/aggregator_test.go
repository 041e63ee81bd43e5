package minmax

import (
	"testing"

	"github.com/bfarago/timelinedb/internal/backend"
	"github.com/bfarago/timelinedb/internal/buffer"
)

func newI8Timeline(t *testing.T, values []int8) *buffer.Timeline {
	t.Helper()
	var tl buffer.Timeline
	tl.Init()
	if err := tl.Allocate(len(values), 1, 8, 1, buffer.AnalogI8); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	for i, v := range values {
		if err := tl.WriteI8(i, 0, v); err != nil {
			t.Fatalf("WriteI8: %v", err)
		}
	}
	return &tl
}

// MinMax bins over a literal 20-sample single-channel AnalogI8 window:
// four equal 5-sample bins, each reduced to its extremes.
func TestAggregate_LiteralWindow(t *testing.T) {
	values := []int8{-5, 7, -3, 2, 4, -1, 8, 0, -8, 3, 6, -2, 1, 9, -9, 5, 7, -7, 4, 0}
	input := newI8Timeline(t, values)

	outMin, outMax, err := Prepare(input, 4)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	tbl, err := backend.Select(0)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := Aggregate(input, outMin, outMax, 20, 0, tbl); err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	wantMin := []int8{-5, -8, -9, -7}
	wantMax := []int8{7, 8, 9, 7}
	for i := 0; i < 4; i++ {
		gotMin, err := outMin.ReadI8(i, 0)
		if err != nil {
			t.Fatalf("ReadI8 min: %v", err)
		}
		gotMax, err := outMax.ReadI8(i, 0)
		if err != nil {
			t.Fatalf("ReadI8 max: %v", err)
		}
		if gotMin != wantMin[i] {
			t.Errorf("bin %d min = %d, want %d", i, gotMin, wantMin[i])
		}
		if gotMax != wantMax[i] {
			t.Errorf("bin %d max = %d, want %d", i, gotMax, wantMax[i])
		}
	}
}

// outMin[i,c] <= outMax[i,c] must hold for every bin and channel.
func TestAggregate_MinNeverExceedsMax(t *testing.T) {
	values := []int8{3, -3, 10, -10, 0, 5, -5, 1, -1, 2}
	input := newI8Timeline(t, values)

	outMin, outMax, err := Prepare(input, 3)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	tbl, _ := backend.Select(0)
	if err := Aggregate(input, outMin, outMax, 10, 0, tbl); err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	for i := 0; i < 3; i++ {
		mn, _ := outMin.ReadI8(i, 0)
		mx, _ := outMax.ReadI8(i, 0)
		if mn > mx {
			t.Errorf("bin %d: min %d > max %d", i, mn, mx)
		}
	}
}

// SIMD and scalar backends agree bit-exactly on SimdI16x8 MinMax.
func TestAggregate_ScalarSimdAgreeI16x8(t *testing.T) {
	var input buffer.Timeline
	input.Init()
	if err := input.Allocate(64, 8, 16, 16, buffer.SimdI16x8); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	for i := 0; i < 64; i++ {
		var lanes [8]int16
		for c := range lanes {
			lanes[c] = int16((i*37 + c*101) % 65536 - 32768)
		}
		if err := input.StoreSimdI16x8(i, lanes); err != nil {
			t.Fatalf("StoreSimdI16x8: %v", err)
		}
	}

	run := func(idx int) (minVals, maxVals [][8]int16) {
		outMin, outMax, err := Prepare(&input, 8)
		if err != nil {
			t.Fatalf("Prepare: %v", err)
		}
		tbl, err := backend.Select(idx)
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		if err := Aggregate(&input, outMin, outMax, 64, 0, tbl); err != nil {
			t.Fatalf("Aggregate: %v", err)
		}
		minVals = make([][8]int16, 8)
		maxVals = make([][8]int16, 8)
		for i := 0; i < 8; i++ {
			minVals[i], _ = outMin.LoadSimdI16x8(i)
			maxVals[i], _ = outMax.LoadSimdI16x8(i)
		}
		return
	}

	scalarMin, scalarMax := run(0)
	simdMin, simdMax := run(1)
	for i := 0; i < 8; i++ {
		if scalarMin[i] != simdMin[i] {
			t.Errorf("bin %d min mismatch: scalar=%v simd=%v", i, scalarMin[i], simdMin[i])
		}
		if scalarMax[i] != simdMax[i] {
			t.Errorf("bin %d max mismatch: scalar=%v simd=%v", i, scalarMax[i], simdMax[i])
		}
	}
}

func TestAggregate_OutOfBounds(t *testing.T) {
	input := newI8Timeline(t, []int8{1, 2, 3})
	outMin, outMax, err := Prepare(input, 2)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	tbl, _ := backend.Select(0)
	if err := Aggregate(input, outMin, outMax, 10, 0, tbl); err != buffer.ErrOutOfBounds {
		t.Errorf("Aggregate with inSamples beyond input = %v, want ErrOutOfBounds", err)
	}
}
