// ════════════════════════════════════════════════════════════════════════════════════════════════
// Benchmark Pass Harness
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Cache Prefetch Micro-Benchmark
// Component: Timed Pass Execution & Verification
//
// Description:
//   Runs one complete traversal pass under measurement conditions: a freshly allocated
//   working buffer (cold cache by construction), the goroutine locked to its OS thread and
//   optionally pinned to a core, the GC parked for the timed region, and per-process CPU
//   time captured around the traversal only — allocation and digesting stay outside the
//   timed window.
//
// Measurement discipline:
//   - Each pass owns an independent buffer; one pass can never warm another's lines
//   - CPU time, not wall time, mirrors clock(3) semantics on POSIX targets
//   - The optional SHA3-256 digest of the final buffer makes the determinism invariant
//     (hint choice never changes buffer contents) checkable across passes
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package bench

import (
	"encoding/hex"
	"runtime"
	rtdebug "runtime/debug"
	"unsafe"

	"golang.org/x/crypto/sha3"

	"main/traverse"
)

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// RESULT & OPTIONS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Result captures one measured pass. JSON tags feed the optional export path.
type Result struct {
	Label     string  `json:"label"`
	BufferLen int     `json:"buffer_len"`
	Iters     int     `json:"iters"`
	Lookahead int     `json:"lookahead"`
	Seconds   float64 `json:"seconds"`
	Digest    string  `json:"digest,omitempty"` // hex SHA3-256, empty unless verified
}

// Options control measurement conditions shared by both passes.
type Options struct {
	PinCore int  // core to pin the traversal thread to; -1 disables pinning
	Verify  bool // digest the final buffer for cross-pass comparison
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// PASS EXECUTION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// RunPass executes one traversal with opHighest as the lookahead operation
// and the increment as the due-now operation, and returns its measurement.
// A fresh working buffer is allocated per call; allocation failure is fatal
// by design — a benchmark that cannot hold its working set has no degraded
// mode worth reporting.
func RunPass(label string, cfg traverse.Config, opHighest traverse.Op, opt Options) Result {
	buf := make([]int64, cfg.BufferLen)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if opt.PinCore >= 0 {
		setAffinity(opt.PinCore)
	}

	// Park the collector for the timed region. The traversal allocates
	// nothing, so this only guards against background cycles stealing
	// CPU time from the measurement.
	prevGC := rtdebug.SetGCPercent(-1)

	start := cpuTime()
	traverse.Run(cfg, buf, opHighest, traverse.OpIncrement)
	elapsed := cpuTime() - start

	rtdebug.SetGCPercent(prevGC)

	res := Result{
		Label:     label,
		BufferLen: cfg.BufferLen,
		Iters:     cfg.Iters,
		Lookahead: cfg.Lookahead,
		Seconds:   elapsed,
	}
	if opt.Verify {
		res.Digest = digest(buf)
	}
	return res
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// VERIFICATION DIGEST
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// digest hashes the buffer's raw bytes with SHA3-256 and returns the hex
// form. The byte view is a reinterpretation, not a copy; a 1 GiB working
// set would double peak memory otherwise.
func digest(buf []int64) string {
	var view []byte
	if len(buf) > 0 {
		view = unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), len(buf)*8)
	}
	sum := sha3.Sum256(view)
	return hex.EncodeToString(sum[:])
}
