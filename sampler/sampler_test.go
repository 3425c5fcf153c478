package sampler

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// scriptClock returns a clock whose consecutive reads are separated by
// the given deltas, starting at an arbitrary base.
func scriptClock(t *testing.T, deltas []int64) func() int64 {
	t.Helper()
	now := int64(1000)
	reads := 0
	first := true
	return func() int64 {
		if first {
			first = false
			return now
		}
		if reads >= len(deltas) {
			t.Fatalf("clock read %d exceeds scripted deltas (%d)", reads+1, len(deltas))
		}
		now += deltas[reads]
		reads++
		return now
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(Config{Trials: 0, Iterations: 1}, discardLogger()); err == nil {
		t.Error("New with zero trials succeeded, want error")
	}
	if _, err := New(Config{Trials: 1, Iterations: 0}, discardLogger()); err == nil {
		t.Error("New with zero iterations succeeded, want error")
	}
}

func TestRunReportsOneTrialPerRepetition(t *testing.T) {
	s, err := New(Config{Trials: 5, Iterations: 100}, discardLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	trials := s.Run(func() {})

	if len(trials) != 5 {
		t.Fatalf("got %d trials, want 5", len(trials))
	}
	for i, tr := range trials {
		if tr.Index != i {
			t.Errorf("trial %d has index %d", i, tr.Index)
		}
		if tr.AvgNs < 0 {
			t.Errorf("trial %d average = %dns, want >= 0 without calibration", i, tr.AvgNs)
		}
		if tr.OverheadNs != 0 {
			t.Errorf("trial %d overhead = %dns, want 0 without calibration", i, tr.OverheadNs)
		}
	}
}

func TestRunTruncatesAverage(t *testing.T) {
	s, err := New(Config{Trials: 1, Iterations: 4}, discardLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// Four timed calls costing 407ns in total: the average truncates
	// to 101, not rounds to 102.
	s.now = scriptClock(t, []int64{
		100, 0, // call 1, gap to next start
		100, 0,
		103, 0,
		104,
	})

	trials := s.Run(func() {})

	if got := trials[0].ElapsedNs; got != 407 {
		t.Errorf("elapsed = %dns, want 407", got)
	}
	if got := trials[0].AvgNs; got != 101 {
		t.Errorf("avg = %dns, want truncated 101", got)
	}
}

func TestCalibrationSubtractsClockBaseline(t *testing.T) {
	s, err := New(Config{Trials: 1, Iterations: 2, Calibrate: true}, discardLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// Timed calls cost 105ns each; back-to-back reads cost 5ns each,
	// so the corrected average isolates the 100ns call cost.
	s.now = scriptClock(t, []int64{
		105, 0, // timed call 1
		105, 0, // timed call 2
		5, 0, // baseline pair 1
		5, // baseline pair 2
	})

	trials := s.Run(func() {})

	tr := trials[0]
	if tr.ElapsedNs != 210 {
		t.Errorf("elapsed = %dns, want 210", tr.ElapsedNs)
	}
	if tr.OverheadNs != 10 {
		t.Errorf("overhead = %dns, want 10", tr.OverheadNs)
	}
	if tr.AvgNs != 100 {
		t.Errorf("avg = %dns, want 100", tr.AvgNs)
	}
}

func TestRunMeasuresRealDuration(t *testing.T) {
	if testing.Short() {
		t.Skip("timing-sensitive")
	}

	s, err := New(Config{Trials: 1, Iterations: 20}, discardLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	trials := s.Run(func() { time.Sleep(time.Millisecond) })

	// Sleeps round up on every platform; assert only a loose lower
	// bound on the per-call average.
	if got := trials[0].AvgNs; got < int64(500*time.Microsecond) {
		t.Errorf("avg = %dns for 1ms sleep target, want >= 0.5ms", got)
	}
}
