package clock

import (
	"testing"
	"time"
)

func TestNanotimeMonotonic(t *testing.T) {
	prev := Nanotime()
	for i := 0; i < 10000; i++ {
		cur := Nanotime()
		if cur < prev {
			t.Fatalf("clock went backwards at read %d: %d -> %d", i, prev, cur)
		}
		prev = cur
	}
}

func TestNanotimeAdvances(t *testing.T) {
	start := Nanotime()
	time.Sleep(10 * time.Millisecond)
	elapsed := Nanotime() - start

	// Sleep granularity varies across platforms; only assert a loose
	// lower bound.
	if elapsed < int64(5*time.Millisecond) {
		t.Errorf("elapsed = %dns after 10ms sleep, want >= 5ms", elapsed)
	}
}
