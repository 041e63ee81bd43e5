// Command tlgen synthesizes a multi-channel signal into a TimelineBuffer
// and runs it through sample-rate conversion and min/max aggregation,
// standing in for an ingest source (packet capture, signal generator)
// feeding the library.
//
// Usage:
//
//	go run ./cmd/tlgen
//	go run ./cmd/tlgen -wave sine -samples 4096 -rate 1e6 -target 0.8e6 -bins 256
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/bfarago/timelinedb/internal/backend"
	"github.com/bfarago/timelinedb/internal/buffer"
	"github.com/bfarago/timelinedb/internal/minmax"
	"github.com/bfarago/timelinedb/internal/src"
	"github.com/bfarago/timelinedb/internal/timebase"
)

func main() {
	wave := flag.String("wave", "ramp", "Synthetic waveform: ramp, sine, or square")
	samples := flag.Int("samples", 4096, "Number of input samples to synthesize")
	rate := flag.Float64("rate", 1_000_000, "Input sample rate in Hz")
	target := flag.Float64("target", 800_000, "Target sample rate for SRC, in Hz")
	bins := flag.Int("bins", 256, "Number of MinMax output bins")
	backendIdx := flag.Int("backend", -1, "Backend index (0=scalar, 1=SIMD, -1=process default)")
	flag.Parse()

	if *backendIdx != -1 {
		if err := backend.SetBackend(*backendIdx); err != nil {
			log.Fatalf("SetBackend: %v", err)
		}
	}
	tbl := backend.Current()
	fmt.Printf("Active backend: %s\n", tbl.Name)

	input, err := synthesize(*wave, *samples, *rate)
	if err != nil {
		log.Fatalf("synthesize: %v", err)
	}
	freq, unit := timebase.EngineeringFrequency(input.TimeStep, input.TimeExponent)
	fmt.Printf("Input: %d samples, %s=%.3f%s, %.3fs\n", input.SampleCount, *wave, freq, unit, input.TotalTimeSec())

	var output buffer.Timeline
	output.Init()
	if err := src.Prepare(input, *target, &output); err != nil {
		log.Fatalf("src.Prepare: %v", err)
	}
	if err := src.Convert(input, &output, tbl); err != nil {
		log.Fatalf("src.Convert: %v", err)
	}
	fmt.Printf("Resampled: %d -> %d samples (ratio %.4f)\n", input.SampleCount, output.SampleCount, output.RateInfo.Ratio)

	outMin, outMax, err := minmax.Prepare(&output, *bins)
	if err != nil {
		log.Fatalf("minmax.Prepare: %v", err)
	}
	if err := minmax.Aggregate(&output, outMin, outMax, output.SampleCount, 0, tbl); err != nil {
		log.Fatalf("minmax.Aggregate: %v", err)
	}
	fmt.Printf("Aggregated: %d bins from %d samples\n", *bins, output.SampleCount)

	if lanes, err := outMin.LoadSimdI16x8(0); err == nil {
		fmt.Printf("Bin 0 min channel 0 = %d, max channel 0 = %d\n", lanes[0], mustMax(outMax, 0))
	}
}

func mustMax(t *buffer.Timeline, bin int) int16 {
	lanes, err := t.LoadSimdI16x8(bin)
	if err != nil {
		return 0
	}
	return lanes[0]
}

// synthesize allocates a SimdI16x8 Timeline and fills channel 0 with a
// ramp, sine, or square wave; the remaining 7 lanes stay zero and are
// still written, as the SIMD layout requires.
func synthesize(wave string, n int, rateHz float64) (*buffer.Timeline, error) {
	var tl buffer.Timeline
	tl.Init()
	if err := tl.Allocate(n, 8, 16, 16, buffer.SimdI16x8); err != nil {
		return nil, err
	}
	step, exponent, ok := timebase.NormalizeToExponent(1 / rateHz)
	if !ok {
		return nil, buffer.ErrAllocFailed
	}
	tl.TimeStep, tl.TimeExponent = step, exponent

	for i := 0; i < n; i++ {
		var lanes [8]int16
		switch wave {
		case "sine":
			lanes[0] = int16(math.Round(30000 * math.Sin(2*math.Pi*float64(i)/64)))
		case "square":
			if (i/32)%2 == 0 {
				lanes[0] = 30000
			} else {
				lanes[0] = -30000
			}
		default: // ramp
			lanes[0] = int16(i % 32768)
		}
		if err := tl.StoreSimdI16x8(i, lanes); err != nil {
			return nil, err
		}
	}
	return &tl, nil
}
