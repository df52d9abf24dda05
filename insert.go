package biditrie

// Insertion (spec.md section 4.3): add/addLeft and their mirror-image
// helpers. A pattern occupies [internOffset, internOffset+totalLen) in the
// character region; pivot in [0, totalLen] splits it into a right part
// walked forward from the root and a left part walked backward from the
// boundary cell where the right part ends.
//
// Preconditions enforced by the caller, not this package (spec.md section
// 7): pivot must be in range, and a root must not receive both
// pivot==totalLen (empty right part) and pivot<totalLen insertions — mixing
// them would make the root's AND slot simultaneously mean "zero characters
// consumed" and "this cell's whole segment consumed", which the two-word
// cell shape cannot represent. Violating this is undefined behavior, like
// the other documented preconditions (string length, haystack window size).

// add inserts pattern [internOffset, internOffset+totalLen) into the trie
// rooted at root, split at pivot, returning the boundary cell the caller
// should annotate via setExtra.
func (c *Container) add(root cellRef, internOffset uint32, totalLen, pivot int) (cellRef, error) {
	if pivot < 0 || pivot > totalLen {
		return noCell, ErrPivotOutOfRange
	}

	al := pivot
	if al == totalLen {
		// Empty right part: the boundary sits directly on root's AND with
		// zero characters consumed going forward.
		return c.addLeft(root, internOffset, pivot)
	}

	if c.isEmptySegment(root) {
		c.setCellSeg(root, packSegmentInfo(totalLen-al, internOffset+uint32(al)))
		return c.addLeft(root, internOffset, pivot)
	}

	return c.addRight(root, internOffset, totalLen, al, pivot)
}

// addRight is the radix-split descent over the right part of the pattern
// (spec.md section 4.3, steps 2-8).
func (c *Container) addRight(icell cellRef, internOffset uint32, totalLen, al, pivot int) (cellRef, error) {
	for {
		if c.isBoundary(icell) {
			if al == totalLen {
				return c.addLeft(icell, internOffset, pivot)
			}
			next := c.cellNextAnd(icell)
			if !next.valid() {
				newCell := c.allocateCell()
				c.setCellSeg(newCell, packSegmentInfo(totalLen-al, internOffset+uint32(al)))
				c.setCellNextAnd(icell, newCell)
				return c.addLeft(newCell, internOffset, pivot)
			}
			icell = next
			continue
		}

		length, segOff := c.segment(icell)
		segBytes := c.segmentBytes(segOff, length)

		if c.patternByte(internOffset, al) != segBytes[0] {
			orRef := c.cellOr(icell)
			if !orRef.valid() {
				newCell := c.allocateCell()
				c.setCellOr(icell, newCell)
				c.setCellSeg(newCell, packSegmentInfo(totalLen-al, internOffset+uint32(al)))
				return c.addLeft(newCell, internOffset, pivot)
			}
			icell = orRef
			continue
		}

		bi, ai := 0, al
		for bi < length && ai < totalLen && segBytes[bi] == c.patternByte(internOffset, ai) {
			bi++
			ai++
		}
		al = ai

		if bi == length {
			if al == totalLen {
				return c.addLeft(icell, internOffset, pivot)
			}
			andRef := c.cellAnd(icell)
			if andRef.valid() {
				icell = andRef
				continue
			}
			newCell := c.allocateCell()
			c.setCellSeg(newCell, packSegmentInfo(totalLen-al, internOffset+uint32(al)))
			c.setCellAnd(icell, newCell)
			return c.addLeft(newCell, internOffset, pivot)
		}

		// Partial match: split icell's segment at bi. The matched prefix
		// [0,bi) stays on icell; the unmatched tail [bi,length) moves to a
		// new cell that inherits icell's old AND.
		oldAnd := c.cellAnd(icell)
		tailCell := c.allocateCell()
		c.setCellSeg(tailCell, packSegmentInfo(length-bi, segOff+uint32(bi)))
		c.setCellAnd(tailCell, oldAnd)
		c.setCellSeg(icell, packSegmentInfo(bi, segOff))
		c.setCellAnd(icell, tailCell)

		if al == totalLen {
			return c.addLeft(icell, internOffset, pivot)
		}
		remCell := c.allocateCell()
		c.setCellSeg(remCell, packSegmentInfo(totalLen-al, internOffset+uint32(al)))
		c.setCellOr(tailCell, remCell)
		return c.addLeft(remCell, internOffset, pivot)
	}
}

// addLeft ensures the crossing-point boundary cell on rightCell.AND exists,
// then, if pivot > 0, inserts the left part [0, pivot) into the boundary's
// ALT_AND-rooted left trie. Returns the boundary the caller should
// annotate: the crossing-point boundary itself when pivot == 0, or the
// left-trie's own terminal boundary for this specific left text otherwise.
func (c *Container) addLeft(rightCell cellRef, internOffset uint32, pivot int) (cellRef, error) {
	crossing := c.ensureBoundary(rightCell)

	// EXTRA == 1 ("accept-always shortest match") dominates: no pattern
	// inserted below it can ever change the outcome, so skip insertion.
	if c.cellExtra(crossing) == 1 {
		return crossing, nil
	}

	if pivot == 0 {
		return crossing, nil
	}

	altRoot := c.cellAltAnd(crossing)
	if !altRoot.valid() {
		altRoot = c.allocateCell()
		c.setCellAltAnd(crossing, altRoot)
	}

	if c.isEmptySegment(altRoot) {
		c.setCellSeg(altRoot, packSegmentInfo(pivot, internOffset))
		return c.ensureBoundary(altRoot), nil
	}

	return c.addLeftTrie(altRoot, internOffset, pivot), nil
}

// addLeftTrie is the mirror image of addRight: it walks the left part of
// the pattern back-to-front, comparing each segment's last unconsumed byte
// first. It has no ALT_AND recursion of its own — index 0 is the true
// start of the string, so there is nothing further to cross into.
func (c *Container) addLeftTrie(icell cellRef, internOffset uint32, al int) cellRef {
	for {
		if c.isBoundary(icell) {
			if al == 0 {
				return icell
			}
			next := c.cellNextAnd(icell)
			if !next.valid() {
				newCell := c.allocateCell()
				c.setCellSeg(newCell, packSegmentInfo(al, internOffset))
				c.setCellNextAnd(icell, newCell)
				return c.ensureBoundary(newCell)
			}
			icell = next
			continue
		}

		length, segOff := c.segment(icell)
		segBytes := c.segmentBytes(segOff, length)

		if c.patternByte(internOffset, al-1) != segBytes[length-1] {
			orRef := c.cellOr(icell)
			if !orRef.valid() {
				newCell := c.allocateCell()
				c.setCellOr(icell, newCell)
				c.setCellSeg(newCell, packSegmentInfo(al, internOffset))
				return c.ensureBoundary(newCell)
			}
			icell = orRef
			continue
		}

		bi, ai := length-1, al-1
		for bi >= 0 && ai >= 0 && segBytes[bi] == c.patternByte(internOffset, ai) {
			bi--
			ai--
		}
		al = ai + 1

		if bi < 0 {
			if al == 0 {
				return c.ensureBoundary(icell)
			}
			andRef := c.cellAnd(icell)
			if andRef.valid() {
				icell = andRef
				continue
			}
			newCell := c.allocateCell()
			c.setCellSeg(newCell, packSegmentInfo(al, internOffset))
			c.setCellAnd(icell, newCell)
			return c.ensureBoundary(newCell)
		}

		// Partial match from the tail: the matched suffix [bi+1,length)
		// stays on icell (shortened); the unmatched prefix [0,bi+1) moves
		// to a new cell inheriting icell's old AND.
		oldAnd := c.cellAnd(icell)
		tailCell := c.allocateCell()
		c.setCellSeg(tailCell, packSegmentInfo(bi+1, segOff))
		c.setCellAnd(tailCell, oldAnd)
		c.setCellSeg(icell, packSegmentInfo(length-bi-1, segOff+uint32(bi+1)))
		c.setCellAnd(icell, tailCell)

		if al == 0 {
			return c.ensureBoundary(icell)
		}
		remCell := c.allocateCell()
		c.setCellSeg(remCell, packSegmentInfo(al, internOffset))
		c.setCellOr(tailCell, remCell)
		return c.ensureBoundary(remCell)
	}
}

// ensureBoundary implements the boundary cell placement rule (spec.md
// section 4.3): if cell.AND is zero or points to a normal (segment) cell,
// a fresh boundary is spliced in as the new AND, preserving the old value
// as the boundary's NEXT_AND so any existing longer-pattern chain survives.
// If cell.AND already points to a boundary, that boundary is reused.
func (c *Container) ensureBoundary(cell cellRef) cellRef {
	andRef := c.cellAnd(cell)
	if andRef.valid() && c.isBoundary(andRef) {
		return andRef
	}

	b := c.allocateCell()
	c.setCellNextAnd(b, andRef)
	c.setCellAltAnd(b, noCell)
	c.setCellExtra(b, 0)
	c.setCellAnd(cell, b)
	return b
}

// patternByte reads the byte at pattern-relative index idx of the string
// interned at internOffset.
func (c *Container) patternByte(internOffset uint32, idx int) byte {
	return c.buf[c.char0()+int(internOffset)+idx]
}
