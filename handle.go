package biditrie

// Handle is a thin reference to one root cell inside a Container, letting
// several independent tries share one buffer (spec.md section 4.8,
// component 5).
type Handle struct {
	c    *Container
	root cellRef
	size int
}

// NewHandle allocates a fresh root cell in c and returns a Handle over it.
func NewHandle(c *Container) *Handle {
	return &Handle{c: c, root: c.allocateCell()}
}

// DefaultHandle returns a Handle over the root cell NewContainer allocates
// eagerly, for the common case of one trie per Container.
func DefaultHandle(c *Container) *Handle {
	return &Handle{c: c, root: cellRef(dataStart / 4)}
}

// Add inserts the pattern interned at [internOffset, internOffset+totalLen)
// split at pivot, returning the boundary cell to annotate via SetExtra.
func (h *Handle) Add(internOffset uint32, totalLen, pivot int) (cellRef, error) {
	b, err := h.c.add(h.root, internOffset, totalLen, pivot)
	if err != nil {
		return noCell, err
	}
	if b.valid() {
		h.size++
	}
	return b, nil
}

// AddPattern interns left+right and inserts it with pivot = len(left). A
// convenience over Add for the common case of inserting from Go byte
// slices rather than pre-interned offsets.
func (h *Handle) AddPattern(left, right []byte) (cellRef, error) {
	combined := make([]byte, 0, len(left)+len(right))
	combined = append(combined, left...)
	combined = append(combined, right...)

	off, err := h.c.StoreString(combined)
	if err != nil {
		return noCell, err
	}
	return h.Add(off, len(combined), len(left))
}

// GetExtra reads the extra payload of a boundary cell returned by Add.
func (h *Handle) GetExtra(boundary cellRef) uint32 {
	return h.c.cellExtra(boundary)
}

// SetExtra annotates a boundary cell with a caller-defined handle. 1 means
// "accept unconditionally"; values above 1 are passed to Container's
// extraHandler during matching.
func (h *Handle) SetExtra(boundary cellRef, value uint32) error {
	if value > bcellExtraMax {
		return ErrExtraOutOfRange
	}
	h.c.setCellExtra(boundary, value)
	return nil
}

// Matches tests whether some inserted pattern's pivot aligns at haystack
// position i. On success, L/R/IU report the match.
func (h *Handle) Matches(i int) bool {
	return h.c.matches(h.root, i)
}

// Iterate returns an Iterator over this handle's right-side patterns.
func (h *Handle) Iterate() *Iterator {
	return NewIterator(h.c, h.root)
}

// L, R, and IU report the most recent successful Matches call's side
// channel outputs: leftmost matched index, one-past-right matched index,
// and the extraHandler's return value (-1 for EXTRA == 1).
func (h *Handle) L() int  { return h.c.matchL }
func (h *Handle) R() int  { return h.c.matchR }
func (h *Handle) IU() int { return h.c.matchIU }

// Size returns the number of patterns successfully inserted via this
// Handle.
func (h *Handle) Size() int { return h.size }

// Root returns the handle's root cell index, for callers building their
// own tooling around a trie (e.g. a serializer that needs per-handle
// roots rather than Container.Serialize's whole-buffer image).
func (h *Handle) Root() cellRef { return h.root }
