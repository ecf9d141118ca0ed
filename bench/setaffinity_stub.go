// setaffinity_stub.go - CPU affinity no-op for platforms without
// sched_setaffinity(2): macOS, Windows, BSD variants, TinyGo targets.
// Maintains an identical API surface so higher-level code needs no
// conditional compilation; the thread stays wherever the scheduler put it.

//go:build !linux || tinygo

package bench

// setAffinity is a no-op on unsupported platforms.
//
//go:nosplit
//go:inline
func setAffinity(cpu int) {
	_ = cpu
}
