package biditrie

// Field accessors for the two cell shapes described in spec.md section 3.
// Both shapes store three words at the same three word-offsets; which shape
// applies is decided by isBoundaryWord on word 2, never by a separate tag.

// --- normal cell (branch on a segment) ---

func (c *Container) cellAnd(ref cellRef) cellRef  { return cellRef(c.cellWord(ref, 0)) }
func (c *Container) cellOr(ref cellRef) cellRef   { return cellRef(c.cellWord(ref, 1)) }
func (c *Container) cellSeg(ref cellRef) uint32   { return c.cellWord(ref, 2) }

func (c *Container) setCellAnd(ref, v cellRef) { c.setCellWord(ref, 0, uint32(v)) }
func (c *Container) setCellOr(ref, v cellRef)  { c.setCellWord(ref, 1, uint32(v)) }
func (c *Container) setCellSeg(ref cellRef, v uint32) { c.setCellWord(ref, 2, v) }

// segment returns the decoded (length, charOffset) of a normal cell.
func (c *Container) segment(ref cellRef) (length int, charOffset uint32) {
	return unpackSegmentInfo(c.cellSeg(ref))
}

// segmentBytesOf returns the raw bytes of a normal cell's segment.
func (c *Container) segmentBytesOf(ref cellRef) []byte {
	length, off := c.segment(ref)
	return c.segmentBytes(off, length)
}

// --- boundary cell (terminal marker) ---

func (c *Container) cellNextAnd(ref cellRef) cellRef { return cellRef(c.cellWord(ref, 0)) }
func (c *Container) cellAltAnd(ref cellRef) cellRef  { return cellRef(c.cellWord(ref, 1)) }
func (c *Container) cellExtra(ref cellRef) uint32    { return c.cellWord(ref, 2) }

func (c *Container) setCellNextAnd(ref, v cellRef)   { c.setCellWord(ref, 0, uint32(v)) }
func (c *Container) setCellAltAnd(ref, v cellRef)    { c.setCellWord(ref, 1, uint32(v)) }
func (c *Container) setCellExtra(ref cellRef, v uint32) { c.setCellWord(ref, 2, v) }

// isBoundary reports whether ref is a boundary cell rather than a normal
// (segment) cell.
func (c *Container) isBoundary(ref cellRef) bool {
	return isBoundaryWord(c.cellSeg(ref))
}

// isEmptySegment reports whether ref is a normal cell whose segment has not
// been written yet (a freshly allocated root).
func (c *Container) isEmptySegment(ref cellRef) bool {
	return c.cellSeg(ref) == 0
}
