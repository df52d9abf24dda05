// Package conv provides safe integer conversion helpers for the trie's cell
// and offset arithmetic.
//
// Cell words, segment lengths, and character-region offsets are all packed
// into fixed-width fields (24 or 8 bits). These helpers bounds-check
// narrowing conversions before packing, panicking on overflow since it
// indicates a caller violated a documented precondition (e.g. a segment
// longer than 255 bytes) rather than a recoverable runtime condition.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("biditrie: integer overflow converting int to uint32")
	}
	return uint32(n)
}

// IntToUint8 safely converts an int to uint8.
// Panics if n < 0 or n > math.MaxUint8.
//
//go:inline
func IntToUint8(n int) uint8 {
	if n < 0 || n > math.MaxUint8 {
		panic("biditrie: integer overflow converting int to uint8")
	}
	return uint8(n)
}

// Uint32To24 safely narrows a uint32 offset into a 24-bit field.
// Panics if n exceeds the 24-bit range.
//
//go:inline
func Uint32To24(n uint32) uint32 {
	const max24 = 0x00FFFFFF
	if n > max24 {
		panic("biditrie: integer overflow converting uint32 to 24-bit field")
	}
	return n
}
