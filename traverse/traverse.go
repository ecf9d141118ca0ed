// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ LOOKAHEAD TRAVERSAL ENGINE
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Cache Prefetch Micro-Benchmark
// Component: Ring-Driven Access-Pattern Walker
//
// Description:
//   Drives a fixed number of iterations over a working buffer using the Fibonacci index ring.
//   Each iteration touches the index that is due now and simultaneously announces the index
//   that will be due `lookahead` iterations from now, so a prefetch issued on the announcement
//   has the whole ring depth of real work to hide its memory latency behind.
//
// Access pattern:
//   - Indices are Fibonacci terms reduced mod the working-set length: fully deterministic,
//     fully known to the program, and useless to a hardware stride predictor.
//
// Threading model:
//   - Single owner, no suspension points. The ring lives and dies inside one Run call.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package traverse

import (
	"unsafe"

	"main/fibring"
)

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Config carries the three engine tunables. They travel as explicit values
// rather than process-wide constants so that property tests can run the
// same engine over toy sizes.
type Config struct {
	BufferLen int // working-set length in counters (harness allocates this)
	Iters     int // loop trip count
	Lookahead int // ring depth = prefetch distance in iterations
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// OPERATION SET
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Op selects one of the three fixed per-index operations. The set is closed:
// dispatch is a jump table over a uint8, not an interface call, because the
// engine's hot loop executes two dispatches per iteration.
type Op uint8

const (
	// OpNop does nothing; the lookahead role in the baseline pass.
	OpNop Op = iota

	// OpPrefetch issues a non-blocking cache-prefetch hint for the
	// addressed counter. Purely advisory: never faults, never blocks,
	// never changes buffer contents.
	OpPrefetch

	// OpIncrement loads the addressed counter, adds one and stores it
	// back — the only mutating operation, and the real work both passes
	// perform identically so that timing differences isolate the hint.
	OpIncrement
)

// String names the operation for diagnostics.
func (op Op) String() string {
	switch op {
	case OpNop:
		return "nop"
	case OpPrefetch:
		return "prefetch"
	case OpIncrement:
		return "increment"
	default:
		return "unknown"
	}
}

// apply executes op against buf[idx]. Total over idx < len(buf); the
// traversal's reduction invariant guarantees that by construction, so no
// bounds decision beyond Go's own check sits on the hot path.
//
//go:nosplit
//go:inline
//go:registerparams
func (op Op) apply(buf []int64, idx uint64) {
	switch op {
	case OpPrefetch:
		prefetch(unsafe.Pointer(&buf[idx]))
	case OpIncrement:
		buf[idx]++
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// TRAVERSAL LOOP
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// step performs one traversal iteration with iBuf addressing the oldest
// ring slot, and returns the next oldest position.
//
// Per-iteration contract:
//  1. opLowest fires on the index that is due now (the oldest slot).
//  2. The next Fibonacci term is the sum of the two newest slots, reduced
//     into range by subtraction (see fibring.Reduce for the bound).
//  3. The new term overwrites the slot consumed in step 1.
//  4. opHighest fires on the new term — the access due `depth` iterations
//     in the future.
//
//go:nosplit
//go:inline
//go:registerparams
func step(r *fibring.Ring, buf []int64, iBuf int, opHighest, opLowest Op) int {
	opLowest.apply(buf, r.At(iBuf))

	prev := r.Retreat(iBuf)
	next := fibring.Reduce(r.At(prev)+r.At(r.Retreat(prev)), r.Modulus())
	r.Set(iBuf, next)

	opHighest.apply(buf, next)
	return r.Advance(iBuf)
}

// Run drives cfg.Iters iterations of the lookahead access pattern over buf.
// The index ring is allocated, seeded and discarded inside the call; buf is
// borrowed and only ever accessed by index. The operation sequence is a
// pure function of (len(buf), cfg.Iters, cfg.Lookahead), so two runs over
// equal inputs mutate buf identically regardless of which lookahead
// operation is installed.
//
// Lookahead must be > 0 and buf non-empty; both are caller contract
// (fibring.New panics on violation rather than limping).
//
//go:norace
//go:nocheckptr
//go:registerparams
func Run(cfg Config, buf []int64, opHighest, opLowest Op) {
	r := fibring.New(cfg.Lookahead, uint64(len(buf)))

	iBuf := 0
	for i := 0; i < cfg.Iters; i++ {
		iBuf = step(r, buf, iBuf, opHighest, opLowest)
	}
}
