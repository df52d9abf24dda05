package biditrie

// Serialization (spec.md section 4.7 and section 6): the backing buffer is
// self-describing via its header slots, so a raw byte image round-trips
// with no separate encoding step. Byte order is little-endian throughout;
// the portable search path is endian-clean because it reads individual
// bytes, but any native fast path must be disabled on big-endian hosts
// (spec.md section 6) — this port has no native path, so the point is
// moot, but Serialize still truncates to the documented 4-byte-aligned
// length rather than leaving stray trailing bytes.

// Serialize returns the live buffer truncated to (char1+3) &^ 3 bytes.
func (c *Container) Serialize() []byte {
	n := (c.char1() + 3) &^ 3
	image := make([]byte, n)
	copy(image, c.buf[:n])
	return image
}

// Deserialize restores a Container's state from a byte image produced by
// Serialize. It returns false (per spec.md section 7) when image is empty;
// corrupt image contents are not validated.
func (c *Container) Deserialize(image []byte) (bool, error) {
	if len(image) == 0 {
		return false, ErrEmptyImage
	}
	if len(image) < dataStart {
		return false, &DeserializeError{ImageLen: len(image), Need: dataStart, Err: ErrBufferTooSmall}
	}

	if len(c.buf) < len(image) {
		c.buf = make([]byte, roundUpPage(len(image), c.pageSize))
	}
	copy(c.buf, image)
	// Zero anything left over from a previous, longer-lived buffer so stale
	// trie/character bytes past the restored image can't be mistaken for
	// live content.
	clearRange(c.buf, len(image), len(c.buf))

	need := c.char1()
	if need > len(image) {
		return false, &DeserializeError{ImageLen: len(image), Need: need, Err: ErrBufferTooSmall}
	}

	return true, nil
}
