// ════════════════════════════════════════════════════════════════════════════════════════════════
// Cache Prefetch Hint - Fallback Implementation
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Cache Prefetch Micro-Benchmark
// Component: Cross-Platform Compatibility Layer
//
// Description:
//   Fallback for architectures without a dedicated implementation, and for builds with
//   assembly or CGO disabled. Keeps the API surface identical so the engine compiles
//   everywhere; the optimized pass simply degenerates to a second baseline.
//
// Compilation Targets:
//   - RISC-V, MIPS, PowerPC, s390x and other architectures
//   - Builds with the noasm tag
//   - Builds with CGO disabled (nocgo tag)
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

//go:build (!amd64 && !arm64) || noasm || !cgo

package traverse

import "unsafe"

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// PREFETCH FUNCTION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// prefetch is a no-op on platforms without a prefetch intrinsic. The empty
// body inlines to nothing, which also preserves the determinism contract:
// with or without the hint, buffer mutation is identical.
//
//go:nosplit
//go:inline
func prefetch(p unsafe.Pointer) {
	_ = p
}
