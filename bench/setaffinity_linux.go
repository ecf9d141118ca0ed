// setaffinity_linux.go - Linux CPU affinity via sched_setaffinity(2)

//go:build linux && !tinygo

package bench

import "golang.org/x/sys/unix"

// setAffinity pins the current thread to the specified CPU core so the
// traversal's cache footprint stays on one L1/L2 for the whole pass.
// Out-of-range cores are ignored; a failed syscall degrades silently to
// scheduler placement, which only widens measurement variance.
//
//go:nosplit
//go:registerparams
func setAffinity(cpu int) {
	if cpu < 0 || cpu >= 1024 {
		return
	}

	var set unix.CPUSet
	set.Set(cpu)
	_ = unix.SchedSetaffinity(0, &set)
}
