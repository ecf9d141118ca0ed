// cputime_unix.go - per-process CPU time via getrusage(2)

//go:build linux || darwin

package bench

import "golang.org/x/sys/unix"

// cpuTime returns user+system CPU seconds consumed by the process so far,
// the same quantity clock(3) accumulates. Wall time would overstate a pass
// that gets descheduled and understate nothing; CPU time is what the
// prefetch hint actually buys back.
//
//go:nosplit
//go:registerparams
func cpuTime() float64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	user := float64(ru.Utime.Sec) + float64(ru.Utime.Usec)/1e6
	sys := float64(ru.Stime.Sec) + float64(ru.Stime.Usec)/1e6
	return user + sys
}
