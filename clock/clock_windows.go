//go:build windows

package clock

import "time"

var processStart = time.Now()

// Nanotime returns the current monotonic clock reading in nanoseconds,
// derived from the elapsed time since process start. time.Since uses
// the monotonic component of processStart, so readings never go
// backwards.
func Nanotime() int64 {
	return int64(time.Since(processStart))
}
