package biditrie

import "testing"

func TestNewContainerDefaults(t *testing.T) {
	c := NewContainer(DefaultOptions())

	if c.trie0() != dataStart {
		t.Errorf("trie0 = %d, want %d", c.trie0(), dataStart)
	}
	if c.trie1() <= c.trie0() {
		t.Errorf("trie1 = %d, want > trie0 (%d) after eager root allocation", c.trie1(), c.trie0())
	}
	if c.char0() > len(c.buf) || c.char0() < c.trie1() {
		t.Errorf("char0 = %d out of range [trie1=%d, len=%d]", c.char0(), c.trie1(), len(c.buf))
	}
	if len(c.buf) < minBufferPages*defaultPageSize {
		t.Errorf("buffer length %d below floor %d", len(c.buf), minBufferPages*defaultPageSize)
	}
}

func TestAllocateCellBumpsAndZeroes(t *testing.T) {
	c := NewContainer(DefaultOptions())

	before := c.trie1()
	ref := c.allocateCell()

	if int(ref)*4 != before {
		t.Errorf("allocateCell returned %d, want word index for byte offset %d", ref, before)
	}
	if c.trie1() != before+cellBytes {
		t.Errorf("trie1 = %d, want %d", c.trie1(), before+cellBytes)
	}
	for i := 0; i < cellWords; i++ {
		if c.cellWord(ref, i) != 0 {
			t.Errorf("word %d of fresh cell = %d, want 0", i, c.cellWord(ref, i))
		}
	}
}

func TestGrowBufRelocatesCharacterRegion(t *testing.T) {
	c := NewContainer(Options{PageSize: 4096, ByteLength: 4096 * 4})

	payload := make([]byte, 200)
	for i := range payload {
		payload[i] = byte(i)
	}
	off, err := c.StoreString(payload)
	if err != nil {
		t.Fatalf("StoreString: %v", err)
	}

	// Force many cell allocations to push trie1 toward char0, triggering a
	// relocation that must preserve the already-stored character bytes.
	for i := 0; i < 4096; i++ {
		c.allocateCell()
	}

	got := c.segmentBytes(off, len(payload))
	for i, b := range payload {
		if got[i] != b {
			t.Fatalf("byte %d = %d after growth, want %d (character region corrupted by relocation)", i, got[i], b)
		}
	}
	if c.trie0() != dataStart {
		t.Errorf("trie0 moved to %d, want immutable %d", c.trie0(), dataStart)
	}
	if c.char0() > c.char1() || c.trie1() > c.char0() {
		t.Errorf("invariant trie1 <= char0 <= char1 violated: trie1=%d char0=%d char1=%d", c.trie1(), c.char0(), c.char1())
	}
}

func TestOptimizeShrinksWithoutLosingContent(t *testing.T) {
	c := NewContainer(Options{PageSize: 4096, ByteLength: 4096 * 8})
	off, err := c.StoreString([]byte("optimize-me"))
	if err != nil {
		t.Fatalf("StoreString: %v", err)
	}

	before := len(c.buf)
	c.Optimize()
	if len(c.buf) > before {
		t.Errorf("Optimize grew the buffer: %d -> %d", before, len(c.buf))
	}

	got := c.segmentBytes(off, len("optimize-me"))
	if string(got) != "optimize-me" {
		t.Errorf("segmentBytes after Optimize = %q, want %q", got, "optimize-me")
	}
}

func TestResetDiscardsContent(t *testing.T) {
	c := NewContainer(DefaultOptions())
	h := DefaultHandle(c)

	if _, err := h.AddPattern([]byte("x"), []byte("ad")); err != nil {
		t.Fatalf("AddPattern: %v", err)
	}

	c.Reset()

	if c.trie1() != c.trie0()+cellBytes {
		t.Errorf("trie1 after Reset = %d, want trie0+cellBytes (one fresh root)", c.trie1())
	}
	if c.char1() != c.char0() {
		t.Errorf("char1 after Reset = %d, want char0 (%d)", c.char1(), c.char0())
	}
}

func TestStatsReportsUsage(t *testing.T) {
	c := NewContainer(DefaultOptions())
	h := DefaultHandle(c)
	h.AddPattern([]byte("-images/"), []byte("ad-"))

	s := c.Stats()
	if s.TrieBytesUsed <= 0 {
		t.Errorf("TrieBytesUsed = %d, want > 0", s.TrieBytesUsed)
	}
	if s.CharBytesUsed <= 0 {
		t.Errorf("CharBytesUsed = %d, want > 0", s.CharBytesUsed)
	}
	if s.BufferLength != len(c.buf) {
		t.Errorf("BufferLength = %d, want %d", s.BufferLength, len(c.buf))
	}
}

func TestSetHaystackRejectsOversize(t *testing.T) {
	c := NewContainer(DefaultOptions())
	defer func() {
		if recover() == nil {
			t.Error("SetHaystack did not panic on oversized input")
		}
	}()
	c.SetHaystack(make([]byte, haystackWindowSize+1))
}
