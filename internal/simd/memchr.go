// Package simd provides byte-search primitives for the trie's string search
// layer (Container.StartsWith/IndexOf/LastIndexOf).
//
// The functions here use SWAR (SIMD Within A Register) techniques to scan
// 8 bytes at a time via uint64 bitwise operations. On CPUs that report AVX2
// support, the unrolled variant processes two words per iteration; the
// comparison logic itself is identical on every platform, so the portable
// path and the AVX2-tuned path always agree on results. There is no actual
// vector assembly here — chunk width is the only thing CPU detection
// changes.
package simd

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// wideScan reports whether the host CPU has wide SIMD registers available,
// in which case Memchr/Memmem process two 8-byte words per iteration instead
// of one. This only affects throughput, never the result.
var wideScan = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
)

// hasZeroByte returns a non-zero word with bit 7 of byte k set if byte k of
// v is the zero byte, using the classic "Hacker's Delight" trick: subtracting
// 1 from each byte of v borrows out of any zero byte, and ANDing with the
// bitwise complement of v isolates exactly those borrows.
func hasZeroByte(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

// Memchr returns the index of the first occurrence of needle in haystack, or
// -1 if it is not present.
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n == 0 {
		return -1
	}
	if n < 8 {
		return memchrScalar(haystack, needle)
	}

	mask := uint64(needle) * lo8
	step := 8
	if wideScan && n >= 16 {
		step = 16
	}

	i := 0
	for i+step <= n {
		if step == 16 {
			c0 := binary.LittleEndian.Uint64(haystack[i:])
			c1 := binary.LittleEndian.Uint64(haystack[i+8:])
			if z := hasZeroByte(c0 ^ mask); z != 0 {
				return i + bits.TrailingZeros64(z)/8
			}
			if z := hasZeroByte(c1 ^ mask); z != 0 {
				return i + 8 + bits.TrailingZeros64(z)/8
			}
		} else {
			c := binary.LittleEndian.Uint64(haystack[i:])
			if z := hasZeroByte(c ^ mask); z != 0 {
				return i + bits.TrailingZeros64(z)/8
			}
		}
		i += step
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

func memchrScalar(haystack []byte, needle byte) int {
	for i, b := range haystack {
		if b == needle {
			return i
		}
	}
	return -1
}

// LastIndexByte returns the index of the last occurrence of needle in
// haystack, or -1 if it is not present. Used by LastIndex for the
// right-trie terminal-byte scan.
func LastIndexByte(haystack []byte, needle byte) int {
	for i := len(haystack) - 1; i >= 0; i-- {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
