package biditrie

import (
	"encoding/binary"

	"github.com/coregx/biditrie/internal/conv"
)

// Layout constants for the backing buffer (spec.md section 3).
const (
	// haystackWindowSize is the fixed size, in bytes, of the haystack
	// window at the start of the buffer.
	haystackWindowSize = 2048

	// headerSize is the byte size of the five 32-bit header slots that
	// follow the haystack window.
	headerSize = 20

	// dataStart is the byte offset immediately after the header, where the
	// first trie cell always lives.
	dataStart = haystackWindowSize + headerSize

	offHaystackLen = haystackWindowSize      // 2048
	offTrie0       = offHaystackLen + 4      // 2052
	offTrie1       = offTrie0 + 4            // 2056
	offChar0       = offTrie1 + 4            // 2060
	offChar1       = offChar0 + 4            // 2064

	// minFreeCellBytes is the headroom (in bytes) that must separate the
	// trie region from the character region; growBuf/shrinkBuf maintain
	// this margin so a batch of allocateCell calls never races char0.
	minFreeCellBytes = 8 * cellBytes

	// defaultPageSize is used when Options.PageSize is unset.
	defaultPageSize = 128 * 1024

	// minBufferPages floors effective initial capacity, per spec.md
	// section 6 ("effective capacity is rounded up to a page and floored
	// at 4 x pageSize").
	minBufferPages = 4
)

// Container owns one backing buffer: the haystack window, the trie cells,
// the interned character bytes, and the four header offset slots that
// self-describe the region boundaries. Multiple Handles may share one
// Container, each rooted at a different cell.
//
// A Container is single-writer, multiple-reader (spec.md section 5): no
// Add/Reset/Grow/Deserialize may run concurrently with any Matches or
// iteration. $l/$r/$iu are fields on the Container, so concurrent matchers
// that need independent results must use separate Containers.
type Container struct {
	buf      []byte
	pageSize int

	// extraHandler decides whether a boundary cell with EXTRA > 1 accepts;
	// it may be nil only if no pattern is ever stored with EXTRA > 1.
	extraHandler func(l, r, extraID int) int

	// matchL, matchR, matchIU are the side-channel outputs ($l, $r, $iu)
	// of the most recent successful Matches/MatchesLeft call.
	matchL, matchR, matchIU int
}

// NewContainer allocates a fresh Container per opts (see Options).
func NewContainer(opts Options) *Container {
	opts = opts.withDefaults()

	c := &Container{
		pageSize:     opts.PageSize,
		extraHandler: opts.ExtraHandler,
	}

	length := roundUpPage(opts.ByteLength, c.pageSize)
	if length < minBufferPages*c.pageSize {
		length = minBufferPages * c.pageSize
	}

	char0 := opts.Char0
	if char0 <= dataStart || char0 >= length {
		char0 = length / 2
	}

	c.buf = make([]byte, length)
	c.setUint32(offTrie0, uint32(dataStart))
	c.setUint32(offTrie1, uint32(dataStart))
	c.setUint32(offChar0, uint32(char0))
	c.setUint32(offChar1, uint32(char0))
	c.setUint32(offHaystackLen, 0)

	// The root cell of the default (right) trie is allocated eagerly so a
	// fresh Handle always has a valid root to Add/Matches against.
	c.allocateCell()

	return c
}

func roundUpPage(n, page int) int {
	if n <= 0 {
		return page
	}
	return ((n + page - 1) / page) * page
}

// --- header slot accessors ---

func (c *Container) getUint32(off int) uint32 {
	return binary.LittleEndian.Uint32(c.buf[off : off+4])
}

func (c *Container) setUint32(off int, v uint32) {
	binary.LittleEndian.PutUint32(c.buf[off:off+4], v)
}

func (c *Container) haystackLen() int { return int(c.getUint32(offHaystackLen)) }
func (c *Container) trie0() int       { return int(c.getUint32(offTrie0)) }
func (c *Container) trie1() int       { return int(c.getUint32(offTrie1)) }
func (c *Container) char0() int       { return int(c.getUint32(offChar0)) }
func (c *Container) char1() int       { return int(c.getUint32(offChar1)) }

func (c *Container) setHaystackLen(n int) { c.setUint32(offHaystackLen, conv.IntToUint32(n)) }
func (c *Container) setTrie1(n int)       { c.setUint32(offTrie1, conv.IntToUint32(n)) }
func (c *Container) setChar0(n int)       { c.setUint32(offChar0, conv.IntToUint32(n)) }
func (c *Container) setChar1(n int)       { c.setUint32(offChar1, conv.IntToUint32(n)) }

// --- cell word access ---

func (c *Container) cellWord(ref cellRef, i int) uint32 {
	off := ref.wordOffset(i)
	return c.getUint32(off)
}

func (c *Container) setCellWord(ref cellRef, i int, v uint32) {
	off := ref.wordOffset(i)
	c.setUint32(off, v)
}

// allocateCell bump-allocates one fresh, zeroed cell from the trie region
// and returns its cellRef. Callers must ensure free space via growBuf
// before a batch of allocations; allocateCell itself grows lazily by one
// cell's worth if the precondition was not met, matching the teacher's
// "grow on demand" Cache.Insert behavior rather than leaving corruption.
func (c *Container) allocateCell() cellRef {
	if c.char0()-c.trie1() < cellBytes {
		c.growBuf(cellBytes, 0)
	}

	off := c.trie1()
	ref := cellRef(off / 4)

	for i := 0; i < cellWords; i++ {
		c.setUint32(off+i*4, 0)
	}

	c.setTrie1(off + cellBytes)
	return ref
}

// growBuf ensures at least trieBytesNeeded free bytes for the trie region
// and charBytesNeeded free bytes for the character region, growing and/or
// relocating the buffer as needed (spec.md section 4.1).
func (c *Container) growBuf(trieBytesNeeded, charBytesNeeded int) {
	trie1 := c.trie1()
	char0 := c.char0()
	char1 := c.char1()

	newTrie1Needed := trie1 + trieBytesNeeded + minFreeCellBytes
	newChar0 := roundUpPage(newTrie1Needed, c.pageSize)
	if newChar0 < char0 {
		newChar0 = char0
	}

	charUsed := char1 - char0
	newLength := roundUpPage(newChar0+charUsed+charBytesNeeded, c.pageSize)

	c.resizeBuf(newLength, newChar0)
}

// resizeBuf implements the buffer relocation algorithm described in
// spec.md section 4.1: grow the backing array if the total length changed,
// or shift the character region in place if only char0 moved.
func (c *Container) resizeBuf(newLength, newChar0 int) {
	trie1 := c.trie1()
	char0 := c.char0()
	char1 := c.char1()
	charUsed := char1 - char0

	if newLength != len(c.buf) {
		newBuf := make([]byte, newLength)
		copy(newBuf[:trie1], c.buf[:trie1])
		copy(newBuf[newChar0:newChar0+charUsed], c.buf[char0:char1])
		c.buf = newBuf
	} else if newChar0 != char0 {
		// In-place shift; copy handles overlap correctly regardless of
		// direction.
		copy(c.buf[newChar0:newChar0+charUsed], c.buf[char0:char1])
		if newChar0 > char0 {
			clearRange(c.buf, char0, min(newChar0, char1))
		}
	}

	c.setChar0(newChar0)
	c.setChar1(newChar0 + charUsed)
}

func clearRange(buf []byte, lo, hi int) {
	for i := lo; i < hi; i++ {
		buf[i] = 0
	}
}

// shrinkBuf packs the character region immediately after the trie region's
// headroom and trims the buffer to fit, per spec.md section 4.1. Used by
// Container.Optimize.
func (c *Container) shrinkBuf() {
	trie1 := c.trie1()
	char0 := c.char0()
	char1 := c.char1()
	charUsed := char1 - char0

	newChar0 := trie1 + minFreeCellBytes
	newLength := newChar0 + charUsed + 256

	if newLength >= len(c.buf) && newChar0 == char0 {
		return
	}

	newBuf := make([]byte, newLength)
	copy(newBuf[:trie1], c.buf[:trie1])
	copy(newBuf[newChar0:newChar0+charUsed], c.buf[char0:char1])
	c.buf = newBuf
	c.setChar0(newChar0)
	c.setChar1(newChar0 + charUsed)
}

// Optimize shrinks the buffer to the minimum size that fits current
// content, releasing memory held by prior growth. Safe only when no
// concurrent reader holds a stale slice from before the call.
func (c *Container) Optimize() {
	c.shrinkBuf()
}

// Reset truncates both the trie and character regions to empty, discarding
// all inserted patterns in bulk (spec.md section 3: "there is no per-cell
// free"). Re-inserting the same patterns afterward behaves identically to
// the first time.
func (c *Container) Reset() {
	c.setTrie1(c.trie0())
	c.setChar1(c.char0())
	c.allocateCell()
}

// Stats is a read-only snapshot of region usage, supplementing spec.md with
// operational visibility in the style of the teacher's lazy.Cache hit/miss
// counters.
type Stats struct {
	TrieBytesUsed int
	CharBytesUsed int
	FreeBytes     int
	BufferLength  int
}

// Stats reports current region usage.
func (c *Container) Stats() Stats {
	return Stats{
		TrieBytesUsed: c.trie1() - c.trie0(),
		CharBytesUsed: c.char1() - c.char0(),
		FreeBytes:     c.char0() - c.trie1(),
		BufferLength:  len(c.buf),
	}
}

// SetHaystack copies b into the haystack window and records its length.
// Patterns longer than the window are not supported (spec.md section 6).
func (c *Container) SetHaystack(b []byte) {
	if len(b) > haystackWindowSize {
		panic("biditrie: haystack exceeds window size")
	}
	copy(c.buf[:len(b)], b)
	c.setHaystackLen(len(b))
}

// Haystack returns the currently installed haystack window contents.
func (c *Container) Haystack() []byte {
	return c.buf[:c.haystackLen()]
}
