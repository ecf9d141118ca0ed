// ============================================================================
// FORMATTING HELPER VALIDATION SUITE
// ============================================================================
//
// Cross-checks the zero-alloc formatters against the standard library and
// pins the fixed-point shape of the report lines.

package utils

import (
	"math"
	"strconv"
	"testing"
)

// TestItoa validates signed rendering against strconv across the range,
// including both int extremes.
func TestItoa(t *testing.T) {
	cases := []int{0, 1, -1, 9, 10, -10, 12345, -98765, math.MaxInt, math.MinInt}
	for _, n := range cases {
		if got, want := Itoa(n), strconv.Itoa(n); got != want {
			t.Errorf("Itoa(%d) = %q, want %q", n, got, want)
		}
	}
}

// TestUtoa validates unsigned rendering against strconv.
func TestUtoa(t *testing.T) {
	cases := []uint64{0, 1, 9, 10, 1 << 27, math.MaxUint64}
	for _, u := range cases {
		if got, want := Utoa(u), strconv.FormatUint(u, 10); got != want {
			t.Errorf("Utoa(%d) = %q, want %q", u, got, want)
		}
	}
}

// TestFtoa validates the printf-%f shape the report lines depend on.
func TestFtoa(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.000000"},
		{0.5, "0.500000"},
		{3.671016, "3.671016"},
		{6.919791, "6.919791"},
		{12, "12.000000"},
		{0.0000004, "0.000000"}, // rounds down
		{0.0000006, "0.000001"}, // rounds up
		{-1.5, "0.000000"},      // elapsed time cannot be negative
	}
	for _, tc := range cases {
		if got := Ftoa(tc.in); got != tc.want {
			t.Errorf("Ftoa(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// TestFtoaFractionCarry validates rounding that carries into the whole part.
func TestFtoaFractionCarry(t *testing.T) {
	if got := Ftoa(1.99999996); got != "2.000000" {
		t.Errorf("Ftoa(1.99999996) = %q, want carry into whole part", got)
	}
}

// TestB2s validates the zero-copy byte→string view.
func TestB2s(t *testing.T) {
	if got := B2s(nil); got != "" {
		t.Errorf("B2s(nil) = %q", got)
	}
	if got := B2s([]byte("prefetch")); got != "prefetch" {
		t.Errorf("B2s = %q", got)
	}
}

// TestItoaZeroAllocation keeps the formatter honest about its one result
// allocation.
func TestItoaZeroAllocation(t *testing.T) {
	allocs := testing.AllocsPerRun(1000, func() {
		_ = Itoa(12345)
	})
	if allocs > 1 {
		t.Errorf("Itoa allocates %f times per call", allocs)
	}
}
