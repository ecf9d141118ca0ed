// ============================================================================
// FIBONACCI INDEX RING SYSTEM
// ============================================================================
//
// Fixed-depth circular buffer of pending working-set indices for the
// lookahead traversal engine. Each slot holds one term of the Fibonacci
// sequence reduced into [0, modulus), and the ring as a whole always holds
// `depth` consecutive terms of that sequence.
//
// Core capabilities:
//   - Branch-predictable ring navigation without modulo arithmetic
//   - Subtractive range reduction exploiting the recurrence growth bound
//   - Deterministic seeding: same (depth, modulus) ⇒ same index stream
//
// Ordering invariant:
//   - The rotating head slot always holds the oldest (next-due) index;
//     the slot behind it holds the newest. Appends land on the slot the
//     consumer just vacated, so the ring never grows or shrinks.
//
// Safety model:
//   - Slot positions are caller-supplied and unchecked on the hot path.
//     Positions must come from Advance/Retreat walks starting at 0.
//   - Constructor panics on a zero/negative depth or zero modulus; the
//     traversal is a fast path and validates nothing per iteration.
//
// Compiler optimizations:
//   - //go:nosplit for stack management elimination
//   - //go:inline for call overhead reduction
//   - //go:registerparams for register-based parameter passing

package fibring

// ============================================================================
// CORE DATA STRUCTURES
// ============================================================================

// Ring is a fixed-depth circular window over the reduced Fibonacci index
// sequence. The zero value is unusable; construct with New.
type Ring struct {
	slots   []uint64 // depth pending indices, each < modulus
	modulus uint64   // working-set length the indices address
}

// ============================================================================
// CONSTRUCTOR & SEEDING
// ============================================================================

// New allocates a ring of the given depth and pre-fills it with the first
// `depth` terms of the Fibonacci sequence reduced into [0, modulus).
//
// Seeding walks the recurrence with two accumulators (index=1, follow=0),
// storing the leading accumulator before each step and reducing it after.
// Reduction can make a later seed numerically smaller than an earlier one
// once the raw term wraps past the modulus; that is expected and is what
// turns the monotone recurrence into a pseudo-chaotic index stream.
//
// Panics:
//   - depth <= 0: ring cannot hold a window
//   - modulus == 0: no valid index range exists
//
//go:norace
//go:nocheckptr
//go:registerparams
func New(depth int, modulus uint64) *Ring {
	if depth <= 0 {
		panic("fibring: depth must be > 0")
	}
	if modulus == 0 {
		panic("fibring: modulus must be > 0")
	}

	r := &Ring{
		slots:   make([]uint64, depth),
		modulus: modulus,
	}

	// Reduce the initial term too: for any modulus >= 2 this is the
	// identity, but a unit modulus must still seed inside [0, 1).
	index, follow := Reduce(1, modulus), uint64(0)
	for i := range r.slots {
		r.slots[i] = index
		index, follow = index+follow, index
		index = Reduce(index, modulus)
	}

	return r
}

// ============================================================================
// RING NAVIGATION
// ============================================================================

// Advance returns the slot position after i, wrapping depth-1 → 0.
// Pure and total over [0, depth); compare-and-reset beats modulo on every
// microarchitecture this has been measured on.
//
//go:nosplit
//go:inline
//go:registerparams
func (r *Ring) Advance(i int) int {
	next := i + 1
	if next >= len(r.slots) {
		return 0
	}
	return next
}

// Retreat returns the slot position before i, wrapping 0 → depth-1.
//
//go:nosplit
//go:inline
//go:registerparams
func (r *Ring) Retreat(i int) int {
	next := i + len(r.slots) - 1
	if next >= len(r.slots) {
		return next - len(r.slots)
	}
	return next
}

// ============================================================================
// SLOT ACCESS
// ============================================================================

// At returns the pending index stored at slot position i.
//
//go:nosplit
//go:inline
//go:registerparams
func (r *Ring) At(i int) uint64 {
	return r.slots[i]
}

// Set overwrites slot position i with a new pending index. The caller is
// responsible for v already being reduced into [0, modulus).
//
//go:nosplit
//go:inline
//go:registerparams
func (r *Ring) Set(i int, v uint64) {
	r.slots[i] = v
}

// Depth returns the number of slots, i.e. the lookahead distance.
//
//go:nosplit
//go:inline
//go:registerparams
func (r *Ring) Depth() int {
	return len(r.slots)
}

// Modulus returns the working-set length the ring's indices address.
//
//go:nosplit
//go:inline
//go:registerparams
func (r *Ring) Modulus() uint64 {
	return r.modulus
}

// ============================================================================
// RANGE REDUCTION
// ============================================================================

// Reduce maps v into [0, modulus) by repeated subtraction. Valid only while
// v is bounded by a small multiple of modulus — which the Fibonacci
// recurrence guarantees, since each new term is the sum of two values
// already < modulus and therefore < 2·modulus. Under that bound the loop
// body runs at most once and the whole reduction is a predictable
// compare-and-subtract, where a modulo would cost a full divide per
// iteration of the traversal.
//
//go:nosplit
//go:inline
//go:registerparams
func Reduce(v, modulus uint64) uint64 {
	for v >= modulus {
		v -= modulus
	}
	return v
}
