// Package report formats sampler trials as plain text, a markdown
// summary, or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/callcost/callcost/sampler"
	"github.com/callcost/callcost/stats"
)

// WriteText emits one line per trial in the classic format:
//
//	avg since: <N>ns
//
// with a trailing space before the newline. The trailing space is part
// of the format.
func WriteText(w io.Writer, trials []sampler.Trial) error {
	for _, tr := range trials {
		if _, err := fmt.Fprintf(w, "avg since: %dns \n", tr.AvgNs); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary writes a markdown table of per-trial results followed
// by distribution statistics over the trial averages.
func WriteSummary(w io.Writer, target string, trials []sampler.Trial) error {
	if len(trials) == 0 {
		return fmt.Errorf("no trials to report")
	}

	fmt.Fprintf(w, "## %s\n", target)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "| Trial | Elapsed | Overhead | Avg/Call |")
	fmt.Fprintln(w, "|-------|---------|----------|----------|")

	for _, tr := range trials {
		fmt.Fprintf(w, "| %d | %s | %s | %dns |\n",
			tr.Index,
			formatNs(tr.ElapsedNs),
			formatNs(tr.OverheadNs),
			tr.AvgNs,
		)
	}

	s := stats.Summarize(averages(trials), stats.C95)

	fmt.Fprintln(w)
	fmt.Fprintf(w,
		"mean %.1fns, stddev %.1fns, c%.0f [%.1fns, %.1fns], "+
			"min %.0fns, p50 %.0fns, max %.0fns\n",
		s.Mean, s.StdDev, s.C, s.CLow, s.CHigh, s.Min, s.P50, s.Max,
	)

	return nil
}

// Result is the JSON document for one run.
type Result struct {
	Target     string          `json:"target"`
	Iterations int             `json:"iterations"`
	Calibrated bool            `json:"calibrated"`
	Trials     []sampler.Trial `json:"trials"`
	Summary    resultSummary   `json:"summary"`
}

type resultSummary struct {
	Count      int     `json:"count"`
	MeanNs     float64 `json:"mean_ns"`
	StdDevNs   float64 `json:"stddev_ns"`
	Confidence float64 `json:"confidence"`
	CLowNs     float64 `json:"ci_low_ns"`
	CHighNs    float64 `json:"ci_high_ns"`
	MinNs      float64 `json:"min_ns"`
	P50Ns      float64 `json:"p50_ns"`
	MaxNs      float64 `json:"max_ns"`
}

// NewResult assembles the JSON document for a finished run.
func NewResult(target string, iterations int, calibrated bool, trials []sampler.Trial) Result {
	s := stats.Summarize(averages(trials), stats.C95)
	return Result{
		Target:     target,
		Iterations: iterations,
		Calibrated: calibrated,
		Trials:     trials,
		Summary: resultSummary{
			Count:      s.Count,
			MeanNs:     s.Mean,
			StdDevNs:   s.StdDev,
			Confidence: s.C,
			CLowNs:     s.CLow,
			CHighNs:    s.CHigh,
			MinNs:      s.Min,
			P50Ns:      s.P50,
			MaxNs:      s.Max,
		},
	}
}

// WriteJSON writes the run result as indented JSON.
func WriteJSON(w io.Writer, r Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

func averages(trials []sampler.Trial) []float64 {
	avgs := make([]float64, 0, len(trials))
	for _, tr := range trials {
		avgs = append(avgs, float64(tr.AvgNs))
	}
	return avgs
}

func formatNs(ns int64) string {
	switch {
	case ns >= 1e9 || ns <= -1e9:
		return fmt.Sprintf("%.2fs", float64(ns)/1e9)
	case ns >= 1e6 || ns <= -1e6:
		return fmt.Sprintf("%.2fms", float64(ns)/1e6)
	case ns >= 1e3 || ns <= -1e3:
		return fmt.Sprintf("%.2fµs", float64(ns)/1e3)
	default:
		return fmt.Sprintf("%dns", ns)
	}
}
