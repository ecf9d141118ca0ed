// utils.go — low-level formatting & printing helpers shared by the harness.
package utils

import (
	"syscall"
	"unsafe"
)

///////////////////////////////////////////////////////////////////////////////
// Tiny zero-alloc conversions
///////////////////////////////////////////////////////////////////////////////

// B2s converts a []byte to a string **without** allocation.
// ⚠️ Caller must ensure the input slice remains valid and unchanged.
//
//go:nosplit
//go:inline
func B2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// s2b reinterprets a string as a []byte for write(2) without copying.
//
//go:nosplit
//go:inline
func s2b(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

///////////////////////////////////////////////////////////////////////////////
// Integer & fixed-point formatting (no fmt, no strconv)
///////////////////////////////////////////////////////////////////////////////

// Itoa renders a signed integer in base 10.
//
//go:nosplit
//go:inline
func Itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := n < 0
	u := uint64(n)
	if neg {
		u = -u // two's complement magnitude, safe for MinInt
	}
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Utoa renders an unsigned integer in base 10.
//
//go:nosplit
//go:inline
func Utoa(u uint64) string {
	if u == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	return string(buf[i:])
}

// Ftoa renders a non-negative float with exactly six decimal places, the
// printf "%f" shape used by the benchmark report. Values are rounded to the
// nearest microsecond-scale digit; negative inputs render as "0.000000"
// since elapsed time cannot go backwards.
func Ftoa(f float64) string {
	if f < 0 {
		f = 0
	}
	scaled := uint64(f*1e6 + 0.5)
	whole := scaled / 1e6
	frac := scaled % 1e6

	var fb [6]byte
	for i := 5; i >= 0; i-- {
		fb[i] = byte('0' + frac%10)
		frac /= 10
	}
	return Utoa(whole) + "." + string(fb[:])
}

///////////////////////////////////////////////////////////////////////////////
// Raw fd writes — report lines on stdout, diagnostics on stderr
///////////////////////////////////////////////////////////////////////////////

// PrintLine writes directly to stdout (fd 1), bypassing buffered I/O.
// The report contract is two lines on stdout and nothing else; keeping the
// write path this thin means no interleaving with diagnostic output.
//
//go:nosplit
//go:inline
func PrintLine(s string) {
	_, _ = syscall.Write(1, s2b(s))
}

// PrintWarning writes directly to stderr (fd 2). Cold paths only.
//
//go:nosplit
//go:inline
func PrintWarning(s string) {
	_, _ = syscall.Write(2, s2b(s))
}
