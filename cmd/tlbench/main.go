// Command tlbench compares scalar and SIMD backend throughput for
// sample-rate conversion and min/max aggregation, and checks that the
// two backends agree on the same input.
//
// Usage:
//
//	go run ./cmd/tlbench
//	go run ./cmd/tlbench -samples 100000 -bins 512 -iters 5
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/bfarago/timelinedb/internal/backend"
	"github.com/bfarago/timelinedb/internal/buffer"
	"github.com/bfarago/timelinedb/internal/minmax"
	"github.com/bfarago/timelinedb/internal/src"
)

func main() {
	samples := flag.Int("samples", 10_000, "Number of pseudo-random input samples")
	bins := flag.Int("bins", 256, "Number of MinMax output bins")
	iters := flag.Int("iters", 3, "Timed iterations per backend")
	seed := flag.Int64("seed", 1, "PRNG seed for input data")
	flag.Parse()

	input := randomInput(*samples, *seed)

	for idx := 0; idx < backend.BackendCount(); idx++ {
		tbl, err := backend.Select(idx)
		if err != nil {
			log.Fatalf("Select(%d): %v", idx, err)
		}
		srcDur := benchConvert(input, tbl, *iters)
		mmDur := benchAggregate(input, tbl, *bins, *iters)
		fmt.Printf("%-28s convert=%v/iter  aggregate=%v/iter\n", tbl.Name, srcDur, mmDur)
	}

	agree, err := backendsAgree(input)
	if err != nil {
		log.Fatalf("agreement check: %v", err)
	}
	if agree {
		fmt.Println("Scalar and SIMD backends agree (SRC within +-1 LSB, MinMax bit-exact)")
	} else {
		fmt.Println("WARNING: backends disagree beyond tolerance")
	}
}

func randomInput(n int, seed int64) *buffer.Timeline {
	var tl buffer.Timeline
	tl.Init()
	if err := tl.Allocate(n, 8, 16, 16, buffer.SimdI16x8); err != nil {
		log.Fatalf("Allocate: %v", err)
	}
	tl.TimeStep, tl.TimeExponent = 1, -6
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		var lanes [8]int16
		for c := range lanes {
			lanes[c] = int16(rng.Intn(65536) - 32768)
		}
		tl.StoreSimdI16x8(i, lanes)
	}
	return &tl
}

func benchConvert(input *buffer.Timeline, tbl *backend.Table, iters int) time.Duration {
	var total time.Duration
	for i := 0; i < iters; i++ {
		var output buffer.Timeline
		output.Init()
		if err := src.Prepare(input, 0.8*input.FrequencyHz(), &output); err != nil {
			log.Fatalf("src.Prepare: %v", err)
		}
		start := time.Now()
		if err := src.Convert(input, &output, tbl); err != nil {
			log.Fatalf("src.Convert: %v", err)
		}
		total += time.Since(start)
	}
	return total / time.Duration(iters)
}

func benchAggregate(input *buffer.Timeline, tbl *backend.Table, bins, iters int) time.Duration {
	var total time.Duration
	for i := 0; i < iters; i++ {
		outMin, outMax, err := minmax.Prepare(input, bins)
		if err != nil {
			log.Fatalf("minmax.Prepare: %v", err)
		}
		start := time.Now()
		if err := minmax.Aggregate(input, outMin, outMax, input.SampleCount, 0, tbl); err != nil {
			log.Fatalf("minmax.Aggregate: %v", err)
		}
		total += time.Since(start)
	}
	return total / time.Duration(iters)
}

func backendsAgree(input *buffer.Timeline) (bool, error) {
	scalarTbl, err := backend.Select(0)
	if err != nil {
		return false, err
	}
	simdTbl, err := backend.Select(1)
	if err != nil {
		return false, err
	}

	var scalarOut, simdOut buffer.Timeline
	scalarOut.Init()
	simdOut.Init()
	if err := src.Prepare(input, 0.8*input.FrequencyHz(), &scalarOut); err != nil {
		return false, err
	}
	if err := src.Prepare(input, 0.8*input.FrequencyHz(), &simdOut); err != nil {
		return false, err
	}
	if err := src.Convert(input, &scalarOut, scalarTbl); err != nil {
		return false, err
	}
	if err := src.Convert(input, &simdOut, simdTbl); err != nil {
		return false, err
	}
	for i := 0; i < scalarOut.SampleCount; i++ {
		s, _ := scalarOut.LoadSimdI16x8(i)
		v, _ := simdOut.LoadSimdI16x8(i)
		for c := 0; c < 8; c++ {
			d := int(s[c]) - int(v[c])
			if d < -1 || d > 1 {
				return false, nil
			}
		}
	}

	scalarMin, scalarMax, err := minmax.Prepare(input, 64)
	if err != nil {
		return false, err
	}
	simdMin, simdMax, err := minmax.Prepare(input, 64)
	if err != nil {
		return false, err
	}
	if err := minmax.Aggregate(input, scalarMin, scalarMax, input.SampleCount, 0, scalarTbl); err != nil {
		return false, err
	}
	if err := minmax.Aggregate(input, simdMin, simdMax, input.SampleCount, 0, simdTbl); err != nil {
		return false, err
	}
	for i := 0; i < 64; i++ {
		a, _ := scalarMin.LoadSimdI16x8(i)
		b, _ := simdMin.LoadSimdI16x8(i)
		if a != b {
			return false, nil
		}
		a, _ = scalarMax.LoadSimdI16x8(i)
		b, _ = simdMax.LoadSimdI16x8(i)
		if a != b {
			return false, nil
		}
	}
	return true, nil
}
