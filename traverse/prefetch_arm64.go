// ════════════════════════════════════════════════════════════════════════════════════════════════
// Cache Prefetch Hint - ARM64 Architecture
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Cache Prefetch Micro-Benchmark
// Component: AArch64 Software Prefetch Intrinsic
//
// Description:
//   Platform-specific implementation emitting PRFM PLDL1KEEP through the compiler builtin.
//   Hints the load of the target line into L1D with keep policy. Particularly effective on
//   Apple Silicon and server-class ARM cores with deep load/store queues.
//
// Hardware Behavior:
//   - Fire-and-forget: retires immediately, fill proceeds asynchronously
//   - Never faults: translation failures downgrade the hint to a no-op
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

//go:build arm64 && !noasm && cgo

package traverse

/*
#ifdef __aarch64__
static inline void cache_prefetch(const void *p) {
    __builtin_prefetch(p, 0, 3);
}
#else
#error "This file requires ARM64 architecture"
#endif
*/
import "C"

import "unsafe"

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// PREFETCH FUNCTION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// prefetch emits a read prefetch with maximum temporal locality for the
// line containing p. Advisory only.
//
//go:norace
//go:nocheckptr
//go:nosplit
//go:inline
//go:registerparams
func prefetch(p unsafe.Pointer) {
	C.cache_prefetch(p)
}
