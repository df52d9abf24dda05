package biditrie

// Iterator performs a DFS over one trie's right-side patterns, yielding
// each inserted pattern's right text exactly once as a decoded string
// (spec.md section 4.5). The reference shape is a parallel stack of
// (cellIndex, charPointer) fork points plus a scratch buffer accumulating
// the path string; this port folds both into one stack of structs.
type Iterator struct {
	c       *Container
	icell   cellRef
	scratch []byte
	stack   []forkPoint
	done    bool
}

type forkPoint struct {
	cell cellRef
	mark int // scratch write-pointer to rewind to on resume
}

// NewIterator returns an Iterator over the trie rooted at root.
func NewIterator(c *Container, root cellRef) *Iterator {
	it := &Iterator{
		c:       c,
		icell:   root,
		scratch: make([]byte, 0, 256),
	}
	if c.isEmptySegment(root) && !c.cellAnd(root).valid() {
		// A freshly allocated, never-inserted-into root's all-zero
		// SEGMENT_INFO word satisfies isBoundary the same way a genuine
		// boundary does; without this the empty trie spuriously yields one
		// phantom ("", true) before exhausting. The AND check excludes a
		// root whose only insertions took the pivot==totalLen all-left path
		// in insert.go: that path writes root's AND without ever writing
		// root's segment, so isEmptySegment alone would misclassify it as
		// empty too. Mirrors matches()'s treatment of an untouched root
		// reached via the OR chain: no sibling, no match.
		it.done = true
	}
	return it
}

// Next advances the iterator, returning the next pattern's right text and
// true, or ("", false) once exhausted.
func (it *Iterator) Next() (string, bool) {
	for {
		if it.done {
			return "", false
		}

		if !it.icell.valid() {
			if !it.popFork() {
				it.done = true
				return "", false
			}
			continue
		}

		if it.c.isBoundary(it.icell) {
			value := string(it.scratch)
			it.icell = it.c.cellNextAnd(it.icell)
			return value, true
		}

		length, segOff := it.c.segment(it.icell)
		if orRef := it.c.cellOr(it.icell); orRef.valid() {
			it.stack = append(it.stack, forkPoint{cell: orRef, mark: len(it.scratch)})
		}
		it.scratch = append(it.scratch, it.c.segmentBytes(segOff, length)...)
		it.icell = it.c.cellAnd(it.icell)
	}
}

// popFork resumes the most recently pushed sibling, rewinding the scratch
// write-pointer to where it branched.
func (it *Iterator) popFork() bool {
	if len(it.stack) == 0 {
		return false
	}
	top := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.scratch = it.scratch[:top.mark]
	it.icell = top.cell
	return true
}
