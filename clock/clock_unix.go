//go:build !windows

package clock

import (
	_ "unsafe" // for go:linkname
)

//go:noescape
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// Nanotime returns the current monotonic clock reading in nanoseconds.
// It links directly against the runtime clock, which is cheaper than
// time.Now and carries no wall-clock component.
func Nanotime() int64 {
	return nanotime()
}
