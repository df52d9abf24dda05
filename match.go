package biditrie

// Matching (spec.md section 4.4): matches/matchesLeft walk the same cell
// graph insertion built, but read from the haystack window instead of the
// character region and never mutate the buffer. $l/$r/$iu are
// container-scoped and overwritten on every successful call (spec.md
// section 5) — concurrent matchers needing independent results must use
// separate Containers.
//
// Segment verification below is a call to StartsWith (search.go): a
// segment matches at al iff the haystack starting at al starts with the
// segment's bytes, which is exactly StartsWith's contract.

// matches tests whether some pattern whose pivot equals haystack position i
// matches. On success it records $l/$r/$iu and returns true.
func (c *Container) matches(root cellRef, i int) bool {
	hlen := c.haystackLen()
	icell := root
	al := i

	for {
		if al >= hlen {
			return false
		}
		ch := c.buf[al]

		for {
			if c.isBoundary(icell) {
				// OR chains only ever link normal cells; reaching a
				// boundary here means no sibling matched.
				return false
			}
			_, segOff := c.segment(icell)
			if c.buf[c.char0()+int(segOff)] == ch {
				break
			}
			next := c.cellOr(icell)
			if !next.valid() {
				return false
			}
			icell = next
		}

		length, segOff := c.segment(icell)

		if !c.StartsWith(al, hlen, segOff, length) {
			return false
		}
		al += length

		andRef := c.cellAnd(icell)
		if !andRef.valid() {
			return false
		}
		if !c.isBoundary(andRef) {
			icell = andRef
			continue
		}

		if c.acceptBoundary(andRef, i, al, i, al) {
			return true
		}

		if altRef := c.cellAltAnd(andRef); altRef.valid() {
			if c.matchesLeft(altRef, i, al) {
				return true
			}
		}

		next := c.cellNextAnd(andRef)
		if !next.valid() {
			return false
		}
		icell = next
	}
}

// matchesLeft is the mirror of matches: it consumes haystack bytes
// backward from leftBound toward 0, comparing each segment tail-first, and
// reports (ar, rightBound) on acceptance.
func (c *Container) matchesLeft(root cellRef, leftBound, rightBound int) bool {
	icell := root
	ar := leftBound

	for {
		if ar <= 0 {
			return false
		}
		ch := c.buf[ar-1]

		for {
			if c.isBoundary(icell) {
				return false
			}
			length, segOff := c.segment(icell)
			if c.buf[c.char0()+int(segOff)+length-1] == ch {
				break
			}
			next := c.cellOr(icell)
			if !next.valid() {
				return false
			}
			icell = next
		}

		length, segOff := c.segment(icell)

		if ar-length < 0 || !c.StartsWith(ar-length, ar, segOff, length) {
			return false
		}
		ar -= length

		andRef := c.cellAnd(icell)
		if !andRef.valid() {
			return false
		}
		if !c.isBoundary(andRef) {
			icell = andRef
			continue
		}

		if c.acceptBoundary(andRef, ar, rightBound, ar, rightBound) {
			return true
		}

		// Left-subtrie-internal boundaries never carry an ALT_AND (index 0
		// is the true start of the string); only NEXT_AND continues.
		next := c.cellNextAnd(andRef)
		if !next.valid() {
			return false
		}
		icell = next
	}
}

// acceptBoundary decides whether boundary b accepts, recording $l/$r/$iu as
// (recordL, recordR) on acceptance. l and r are the values passed to
// extraHandler.
func (c *Container) acceptBoundary(b cellRef, l, r, recordL, recordR int) bool {
	extra := c.cellExtra(b)
	if extra == 0 {
		return false
	}
	if extra == 1 {
		c.matchL, c.matchR, c.matchIU = recordL, recordR, -1
		return true
	}
	if c.extraHandler == nil {
		return false
	}
	h := c.extraHandler(l, r, int(extra))
	if h == 0 {
		return false
	}
	c.matchL, c.matchR, c.matchIU = recordL, recordR, h
	return true
}
