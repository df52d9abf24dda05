package simd

import "bytes"

// Memmem returns the index of the first occurrence of needle in haystack, or
// -1 if needle does not occur.
//
// The search locates the rarest byte in needle (via the frequency table in
// byte_frequencies.go) and scans for it with Memchr, verifying the full
// needle at each candidate. This avoids the O(n*m) worst case of a naive
// scan for all but pathological needles, and is the primitive
// Container.IndexOf is built from.
func Memmem(haystack, needle []byte) int {
	nlen := len(needle)
	hlen := len(haystack)

	if nlen == 0 {
		return 0
	}
	if hlen == 0 || nlen > hlen {
		return -1
	}
	if nlen == 1 {
		return Memchr(haystack, needle[0])
	}

	rareByte, rareIdx := rarestByte(needle)

	searchStart := 0
	for {
		candidate := Memchr(haystack[searchStart:], rareByte)
		if candidate == -1 {
			return -1
		}
		candidate += searchStart

		start := candidate - rareIdx
		if start < 0 || start+nlen > hlen {
			searchStart = candidate + 1
			if searchStart >= hlen {
				return -1
			}
			continue
		}

		if bytes.Equal(haystack[start:start+nlen], needle) {
			return start
		}

		searchStart = candidate + 1
		if searchStart >= hlen {
			return -1
		}
	}
}

// LastIndex returns the index of the last occurrence of needle in haystack,
// or -1 if needle does not occur. Used by Container.LastIndexOf.
func LastIndex(haystack, needle []byte) int {
	nlen := len(needle)
	hlen := len(haystack)

	if nlen == 0 {
		return hlen
	}
	if hlen == 0 || nlen > hlen {
		return -1
	}
	if nlen == 1 {
		return LastIndexByte(haystack, needle[0])
	}

	rareByte, rareIdx := rarestByte(needle)

	searchEnd := hlen
	for searchEnd > 0 {
		window := haystack[:searchEnd]
		candidate := lastIndexByteBefore(window, rareByte)
		if candidate == -1 {
			return -1
		}

		start := candidate - rareIdx
		if start >= 0 && start+nlen <= hlen && bytes.Equal(haystack[start:start+nlen], needle) {
			return start
		}

		searchEnd = candidate
	}
	return -1
}

func lastIndexByteBefore(haystack []byte, b byte) int {
	return LastIndexByte(haystack, b)
}
