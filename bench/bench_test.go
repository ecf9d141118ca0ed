// ============================================================================
// BENCHMARK PASS HARNESS VALIDATION SUITE
// ============================================================================
//
// Tests for pass execution, measurement plumbing and the verification
// digest. Timing assertions stay loose — CPU time on shared CI hardware is
// noisy — but structural properties (fresh buffers, digest determinism,
// monotonic clocks) are exact.

package bench

import (
	"strings"
	"testing"

	"main/traverse"
)

// smallCfg is big enough to exercise wrap and reduction, small enough for
// unit-test latency.
func smallCfg() traverse.Config {
	return traverse.Config{BufferLen: 1 << 12, Iters: 100000, Lookahead: 16}
}

// TestRunPassResultShape validates that a pass reports its configuration
// back and a sane elapsed time.
func TestRunPassResultShape(t *testing.T) {
	cfg := smallCfg()
	res := RunPass("baseline", cfg, traverse.OpNop, Options{PinCore: -1})

	if res.Label != "baseline" {
		t.Errorf("Label = %q", res.Label)
	}
	if res.BufferLen != cfg.BufferLen || res.Iters != cfg.Iters || res.Lookahead != cfg.Lookahead {
		t.Errorf("config echo mismatch: %+v", res)
	}
	if res.Seconds < 0 {
		t.Errorf("Seconds = %f, negative elapsed time", res.Seconds)
	}
	if res.Digest != "" {
		t.Errorf("Digest = %q without verify", res.Digest)
	}
}

// TestRunPassDigestDeterminism validates the cross-pass invariant end to
// end: baseline and hinted passes over equal configs digest identically.
func TestRunPassDigestDeterminism(t *testing.T) {
	cfg := smallCfg()
	opt := Options{PinCore: -1, Verify: true}

	base := RunPass("baseline", cfg, traverse.OpNop, opt)
	hinted := RunPass("prefetch", cfg, traverse.OpPrefetch, opt)

	if len(base.Digest) != 64 {
		t.Fatalf("digest %q is not 32 hex-encoded bytes", base.Digest)
	}
	if base.Digest != strings.ToLower(base.Digest) {
		t.Errorf("digest %q not lowercase hex", base.Digest)
	}
	if base.Digest != hinted.Digest {
		t.Errorf("digest mismatch: %s vs %s", base.Digest, hinted.Digest)
	}
}

// TestRunPassBuffersIndependent validates the cold-cache separation: each
// pass starts from a zeroed buffer, so equal configs yield equal digests on
// repetition rather than accumulating state.
func TestRunPassBuffersIndependent(t *testing.T) {
	cfg := smallCfg()
	opt := Options{PinCore: -1, Verify: true}

	first := RunPass("baseline", cfg, traverse.OpNop, opt)
	second := RunPass("baseline", cfg, traverse.OpNop, opt)
	if first.Digest != second.Digest {
		t.Errorf("repeated passes diverged: %s vs %s", first.Digest, second.Digest)
	}
}

// TestRunPassPinnedCore validates that pinning to core 0 (always present)
// completes normally; on platforms without affinity support the call is a
// no-op by design.
func TestRunPassPinnedCore(t *testing.T) {
	cfg := traverse.Config{BufferLen: 1 << 10, Iters: 10000, Lookahead: 8}
	res := RunPass("pinned", cfg, traverse.OpPrefetch, Options{PinCore: 0})
	if res.Seconds < 0 {
		t.Errorf("Seconds = %f", res.Seconds)
	}
}

// TestCPUTimeMonotonic validates that the clock never runs backwards and
// advances across real work.
func TestCPUTimeMonotonic(t *testing.T) {
	start := cpuTime()

	// Burn CPU the measurement must notice eventually.
	var acc uint64
	for i := 0; i < 50_000_000; i++ {
		acc = acc*2862933555777941757 + 3037000493
	}
	_ = acc

	end := cpuTime()
	if end < start {
		t.Errorf("cpuTime went backwards: %f -> %f", start, end)
	}
}

// TestDigestStability validates the digest helper against mutation and the
// empty buffer.
func TestDigestStability(t *testing.T) {
	buf := make([]int64, 256)
	before := digest(buf)
	if digest(buf) != before {
		t.Fatal("digest unstable over unchanged buffer")
	}

	buf[255]++
	if digest(buf) == before {
		t.Error("digest blind to mutation")
	}

	if got := digest(nil); len(got) != 64 {
		t.Errorf("empty-buffer digest %q malformed", got)
	}
}
