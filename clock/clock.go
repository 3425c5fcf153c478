// Package clock provides a monotonic nanosecond timestamp source for
// measuring short intervals. The zero point is arbitrary; only the
// difference between two reads is meaningful. Readings never go
// backwards and are immune to wall-clock adjustments.
package clock
