package biditrie

import (
	"bytes"

	"github.com/coregx/biditrie/internal/simd"
)

// String search primitives (spec.md section 4.6): byte-exact operations
// over the single backing buffer. hL/hR are absolute buffer offsets
// (usually 0 and haystackLen); nL is relative to char0. Exported on
// Container, mirroring Handle's exported surface, since spec.md section 2
// describes this component as used "both internally and by callers" —
// match.go's own segment-verification step is one such internal caller
// (see StartsWith below).

// StartsWith reports whether the needle at nL fits within [hL, hR) and
// matches exactly at hL.
func (c *Container) StartsWith(hL, hR int, nL uint32, nLen int) bool {
	if hL+nLen > hR {
		return false
	}
	needle := c.segmentBytes(nL, nLen)
	return bytes.Equal(c.buf[hL:hL+nLen], needle)
}

// IndexOf returns the leftmost offset in [hL, hR-nLen] where the needle
// occurs, or -1.
func (c *Container) IndexOf(hL, hR int, nL uint32, nLen int) int {
	if nLen == 0 {
		if hL <= hR {
			return hL
		}
		return -1
	}
	if hL+nLen > hR {
		return -1
	}
	needle := c.segmentBytes(nL, nLen)
	pos := simd.Memmem(c.buf[hL:hR], needle)
	if pos < 0 {
		return -1
	}
	return hL + pos
}

// LastIndexOf returns the rightmost offset in [hL, hR-nLen] where the
// needle occurs, or -1.
func (c *Container) LastIndexOf(hL, hR int, nL uint32, nLen int) int {
	if nLen == 0 {
		if hL <= hR {
			return hR
		}
		return -1
	}
	if hL+nLen > hR {
		return -1
	}
	needle := c.segmentBytes(nL, nLen)
	pos := simd.LastIndex(c.buf[hL:hR], needle)
	if pos < 0 {
		return -1
	}
	return hL + pos
}
