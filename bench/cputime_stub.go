// cputime_stub.go - wall-clock fallback where getrusage(2) is unavailable

//go:build !linux && !darwin

package bench

import "time"

var processStart = time.Now()

// cpuTime falls back to monotonic wall time measured from process start.
// Differences between two samples remain a valid elapsed measure; they
// just include any time the OS scheduled other work onto the core.
//
//go:nosplit
//go:registerparams
func cpuTime() float64 {
	return time.Since(processStart).Seconds()
}
