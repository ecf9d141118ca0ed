// ════════════════════════════════════════════════════════════════════════════════════════════════
// Cache Prefetch Hint - AMD64 Architecture
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Cache Prefetch Micro-Benchmark
// Component: x86-64 Software Prefetch Intrinsic
//
// Description:
//   Platform-specific implementation emitting PREFETCHT0 through the compiler builtin.
//   Requests that the line containing the target address be pulled into every level of
//   the data-cache hierarchy, without blocking and without architectural side effects.
//
// Hardware Behavior:
//   - Fire-and-forget: no completion signal, no program-visible state change
//   - Never faults: invalid or unmapped addresses are silently dropped
//   - Redundant hints on already-resident lines are absorbed by the LFB
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

//go:build amd64 && !noasm && cgo

package traverse

/*
#ifdef __x86_64__
static inline void cache_prefetch(const void *p) {
    __builtin_prefetch(p, 0, 3);
}
#else
#error "This file requires x86-64 architecture"
#endif
*/
import "C"

import "unsafe"

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// PREFETCH FUNCTION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// prefetch emits a read prefetch with maximum temporal locality for the
// line containing p. The hint is advisory only; the memory subsystem may
// ignore it entirely under load.
//
//go:norace
//go:nocheckptr
//go:nosplit
//go:inline
//go:registerparams
func prefetch(p unsafe.Pointer) {
	C.cache_prefetch(p)
}
