// ════════════════════════════════════════════════════════════════════════════════════════════════
// Cache Prefetch Micro-Benchmark - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Cache Prefetch Micro-Benchmark
// Component: Main Entry Point & Pass Orchestration
//
// Description:
//   Runs the same Fibonacci-pattern traversal twice over independently allocated working
//   buffers — once with a no-op lookahead and once with a cache-prefetch lookahead — and
//   reports the CPU time of each. The access pattern is deterministic and fully known to
//   the program, which is exactly the case where software prefetch beats the hardware
//   stride predictor.
//
// Phases:
//   - Phase 0: Flag surface over compile-time defaults
//   - Phase 1: Baseline pass (nop lookahead) → first report line
//   - Phase 2: Optimized pass (prefetch lookahead) → second report line
//   - Phase 3: Optional verification, persistence and JSON export
//
// Output contract:
//   Two lines on stdout, CPU seconds each; diagnostics on stderr; exit 0.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"flag"

	"main/bench"
	"main/constants"
	"main/debug"
	"main/results"
	"main/traverse"
	"main/utils"
)

// main orchestrates the two measured passes and the optional reporting tail.
func main() {
	// PHASE 0: Configuration. No arguments are required; every tunable has
	// a compile-time default sized for a cold-cache run on real hardware.
	bufLen := flag.Int("len", constants.DefaultBufferLen, "working-set size in counters (buffer_length)")
	iters := flag.Int("iters", constants.DefaultIters, "per-pass loop trip count (iterations)")
	ahead := flag.Int("ahead", constants.DefaultLookahead, "ring depth / prefetch distance (lookahead_depth)")
	cpu := flag.Int("cpu", -1, "core to pin the traversal thread to; -1 leaves placement to the scheduler")
	verify := flag.Bool("verify", false, "digest both final buffers and compare them")
	resultsPath := flag.String("results", "", "append both passes to a sqlite trial log at this path")
	jsonOut := flag.Bool("json", false, "emit the pass results as a JSON array after the report lines")
	flag.Parse()

	cfg := traverse.Config{BufferLen: *bufLen, Iters: *iters, Lookahead: *ahead}
	opt := bench.Options{PinCore: *cpu, Verify: *verify}

	debug.DropMessage("CONFIG", utils.Itoa(cfg.BufferLen)+" counters, "+
		utils.Itoa(cfg.Iters)+" iters, lookahead "+utils.Itoa(cfg.Lookahead))

	// PHASE 1: Baseline pass. The lookahead slot is computed but its
	// operation does nothing, so every increment eats the full miss.
	base := bench.RunPass(constants.BaselineLabel, cfg, traverse.OpNop, opt)
	utils.PrintLine("CPU time w/o prefetching: " + utils.Ftoa(base.Seconds) + "\n")

	// PHASE 2: Optimized pass over a fresh buffer — separate allocations
	// keep the cache cold at the start of both passes.
	opti := bench.RunPass(constants.PrefetchLabel, cfg, traverse.OpPrefetch, opt)
	utils.PrintLine("CPU time prefetching " + utils.Itoa(cfg.Lookahead) + " ahead: " + utils.Ftoa(opti.Seconds) + "\n")

	// PHASE 3: Verification and optional reporting. Failures here are
	// diagnostics, not exit codes; the measurement already happened.
	if *verify {
		if base.Digest == opti.Digest {
			debug.DropMessage("VERIFY", "buffers identical: "+base.Digest)
		} else {
			debug.DropMessage("VERIFY", "buffer mismatch: "+base.Digest+" != "+opti.Digest)
		}
	}

	if *resultsPath != "" {
		store, err := results.Open(*resultsPath)
		if err != nil {
			debug.DropError("results open", err)
		} else {
			for _, r := range [...]bench.Result{base, opti} {
				if err := store.Record(r); err != nil {
					debug.DropError("results record", err)
				}
			}
			if err := store.Close(); err != nil {
				debug.DropError("results close", err)
			}
		}
	}

	if *jsonOut {
		out, err := results.ExportJSON([]bench.Result{base, opti})
		if err != nil {
			debug.DropError("json export", err)
		} else {
			utils.PrintLine(utils.B2s(out) + "\n")
		}
	}
}
