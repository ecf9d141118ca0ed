// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go — Global Benchmark Tunables
//
// Purpose:
//   - Defines the default working-set size, trip count and lookahead depth
//     used by the prefetch benchmark when no flags override them.
//
// Notes:
//   - The working set must exceed last-level cache capacity by a wide margin
//     so that every touch is cold without deliberate intervention.
//   - Sized for power-of-2 alignment; the reduction step in the index
//     generator does not require it, but allocation behaves better.
//
// ⚠️ No runtime logic here — all values must be compile-time resolvable
// ─────────────────────────────────────────────────────────────────────────────

package constants

// ───────────────────────────── Working Set ─────────────────────────────────

const (
	// DefaultBufferLen is the working-set length in int64 counters:
	// 2^27 elements = 1 GiB of counter state. Significantly greater than
	// any L3 on commodity hardware, so untouched lines are always cold.
	DefaultBufferLen = 1 << 27

	// DefaultIters is the per-pass trip count. High enough that the timed
	// region dwarfs harness overhead (allocation, pinning, rusage reads).
	DefaultIters = 50_000_000

	// DefaultLookahead is the ring depth and therefore the prefetch
	// distance in logical iterations. 32 gives the memory subsystem on
	// current cores enough slack to complete a line fill before the
	// increment lands on it; experimentally a good operating point.
	DefaultLookahead = 32
)

// ───────────────────────────── Report Labels ───────────────────────────────

const (
	// BaselineLabel tags the pass whose lookahead operation is a no-op.
	BaselineLabel = "baseline"

	// PrefetchLabel tags the pass whose lookahead operation issues a
	// cache-prefetch hint.
	PrefetchLabel = "prefetch"
)
