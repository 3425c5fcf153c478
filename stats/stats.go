// Package stats summarizes the distribution of per-trial averages.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ZValue pairs a confidence level with its normal-distribution z score.
type ZValue struct {
	C float64
	Z float64
}

var (
	C90 = ZValue{C: 90, Z: 1.645}
	C95 = ZValue{C: 95, Z: 1.96}
	C99 = ZValue{C: 99, Z: 2.58}
)

// Summary describes one run's trial averages.
type Summary struct {
	ZValue
	Count  int
	Mean   float64
	StdDev float64
	CLow   float64
	CHigh  float64
	Min    float64
	P50    float64
	Max    float64
}

// Summarize computes a Summary of samples at the given confidence
// level. samples must be non-empty and is sorted in place.
func Summarize(samples []float64, z ZValue) Summary {
	sort.Float64s(samples)

	var mean, std float64
	if len(samples) < 2 {
		// MeanStdDev divides by n-1; a single sample has no spread.
		mean = samples[0]
	} else {
		mean, std = stat.MeanStdDev(samples, nil)
	}
	se := stat.StdErr(std, float64(len(samples)))

	return Summary{
		ZValue: z,
		Count:  len(samples),
		Mean:   mean,
		StdDev: std,
		CLow:   mean - z.Z*se,
		CHigh:  mean + z.Z*se,
		Min:    samples[0],
		P50:    samples[len(samples)/2],
		Max:    samples[len(samples)-1],
	}
}
