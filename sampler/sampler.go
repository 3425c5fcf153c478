// Package sampler measures the average per-call wall time of a target
// operation over repeated trials.
package sampler

import (
	"fmt"
	"log/slog"

	"github.com/callcost/callcost/clock"
)

// Config holds parameters for a measurement run.
type Config struct {
	// Trials is the number of independent measurements. Each trial
	// produces one reported average; trials are never aggregated.
	Trials int

	// Iterations is the number of timed calls per trial.
	Iterations int

	// Calibrate subtracts a measured clock-read baseline from each
	// trial's accumulator before averaging, isolating the target-call
	// cost from the cost of reading the clock around it.
	Calibrate bool
}

func (c Config) validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("trials must be >= 1, got %d", c.Trials)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be >= 1, got %d", c.Iterations)
	}
	return nil
}

// Trial holds the result of one trial.
type Trial struct {
	Index int `json:"index"`

	// ElapsedNs is the raw accumulated duration of all timed calls,
	// before any overhead correction.
	ElapsedNs int64 `json:"elapsed_ns"`

	// OverheadNs is the clock-read baseline subtracted from ElapsedNs.
	// Zero when calibration is off.
	OverheadNs int64 `json:"overhead_ns"`

	// AvgNs is the per-call average in truncated integer nanoseconds.
	// With calibration it can go negative on machines where the
	// baseline overshoots the measured loop.
	AvgNs int64 `json:"avg_ns"`
}

// Sampler runs trials against a target operation.
type Sampler struct {
	cfg    Config
	logger *slog.Logger

	// now is swapped out by tests for deterministic arithmetic.
	now func() int64
}

// New validates cfg and creates a Sampler.
func New(cfg Config, logger *slog.Logger) (*Sampler, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid sampler config: %w", err)
	}
	return &Sampler{
		cfg:    cfg,
		logger: logger,
		now:    clock.Nanotime,
	}, nil
}

// Run executes all configured trials against fn and returns one Trial
// per repetition, in order.
func (s *Sampler) Run(fn func()) []Trial {
	trials := make([]Trial, 0, s.cfg.Trials)
	for i := 0; i < s.cfg.Trials; i++ {
		tr := s.runTrial(i, fn)
		s.logger.Debug("trial finished",
			slog.Int("trial", i),
			slog.Int64("avg_ns", tr.AvgNs),
		)
		trials = append(trials, tr)
	}
	return trials
}

func (s *Sampler) runTrial(index int, fn func()) Trial {
	var since int64
	for i := 0; i < s.cfg.Iterations; i++ {
		start := s.now()
		fn()
		since += s.now() - start
	}

	tr := Trial{Index: index, ElapsedNs: since}
	if s.cfg.Calibrate {
		tr.OverheadNs = s.clockOverhead()
		since -= tr.OverheadNs
	}

	// Integer division: averages are truncated nanosecond counts.
	tr.AvgNs = since / int64(s.cfg.Iterations)
	return tr
}

// clockOverhead measures the cost of the two clock reads surrounding
// each timed call by accumulating Iterations back-to-back read pairs
// with no work in between. The call instruction sitting between the
// reads in the real loop is not accounted for, so the baseline is a
// slight underestimate.
func (s *Sampler) clockOverhead() int64 {
	var since int64
	for i := 0; i < s.cfg.Iterations; i++ {
		start := s.now()
		since += s.now() - start
	}
	return since
}
