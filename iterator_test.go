package biditrie

import "testing"

func TestIteratorYieldsAllBranches(t *testing.T) {
	c := NewContainer(DefaultOptions())
	h := DefaultHandle(c)

	for _, r := range []string{"ad-banner", "ad-block", "ad-frame"} {
		if _, err := h.AddPattern(nil, []byte(r)); err != nil {
			t.Fatalf("AddPattern(%q): %v", r, err)
		}
	}

	got := map[string]bool{}
	it := h.Iterate()
	for {
		s, ok := it.Next()
		if !ok {
			break
		}
		got[s] = true
	}

	want := []string{"ad-banner", "ad-block", "ad-frame"}
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d: %v", len(got), len(want), got)
	}
	for _, w := range want {
		if !got[w] {
			t.Errorf("missing %q from iteration", w)
		}
	}
}

// TestIteratorFollowsNextAndChain exercises a pattern that is a strict
// prefix of another: both must surface even though they share a boundary
// chain rather than an OR fork.
func TestIteratorFollowsNextAndChain(t *testing.T) {
	c := NewContainer(DefaultOptions())
	h := DefaultHandle(c)

	h.AddPattern(nil, []byte("ad"))
	h.AddPattern(nil, []byte("ad-banner"))

	got := map[string]bool{}
	it := h.Iterate()
	for {
		s, ok := it.Next()
		if !ok {
			break
		}
		got[s] = true
	}

	for _, w := range []string{"ad", "ad-banner"} {
		if !got[w] {
			t.Errorf("missing %q from iteration over %v", w, got)
		}
	}
}

// TestIteratorRewindsScratchOnFork ensures that resuming a sibling branch
// does not leak bytes accumulated along the first branch into the second.
func TestIteratorRewindsScratchOnFork(t *testing.T) {
	c := NewContainer(DefaultOptions())
	h := DefaultHandle(c)

	h.AddPattern(nil, []byte("apple"))
	h.AddPattern(nil, []byte("banana"))

	got := map[string]bool{}
	it := h.Iterate()
	for {
		s, ok := it.Next()
		if !ok {
			break
		}
		if got[s] {
			t.Fatalf("duplicate yield %q", s)
		}
		got[s] = true
	}

	if !got["apple"] || !got["banana"] {
		t.Errorf("got %v, want apple and banana", got)
	}
}

// TestIteratorEmptyTrie covers spec.md section 8's round-trip property for
// the zero-pattern case: a handle with nothing ever inserted must exhaust
// immediately rather than yield a phantom ("", true) from its untouched
// root.
func TestIteratorEmptyTrie(t *testing.T) {
	c := NewContainer(DefaultOptions())
	h := DefaultHandle(c)

	it := h.Iterate()
	if s, ok := it.Next(); ok {
		t.Fatalf("Next() on empty trie = (%q, true), want (_, false)", s)
	}
	if s, ok := it.Next(); ok {
		t.Fatalf("second Next() on empty trie = (%q, true), want (_, false)", s)
	}
}

// TestIteratorAfterReset exercises the same empty-root ambiguity on a
// handle whose root was freshly reallocated by Reset rather than by
// NewContainer.
func TestIteratorAfterReset(t *testing.T) {
	c := NewContainer(DefaultOptions())
	h := DefaultHandle(c)
	h.AddPattern(nil, []byte("stale"))

	c.Reset()
	h = DefaultHandle(c)

	if s, ok := h.Iterate().Next(); ok {
		t.Fatalf("Next() after Reset = (%q, true), want (_, false)", s)
	}

	h.AddPattern(nil, []byte("fresh"))
	s, ok := h.Iterate().Next()
	if !ok || s != "fresh" {
		t.Fatalf("Next() after re-insert = (%q, %v), want (\"fresh\", true)", s, ok)
	}
}

// TestIteratorAllLeftPivot covers the root whose only insertion took the
// pivot==totalLen all-left path: insert.go writes the root's AND slot
// without ever writing its segment, so the root is not isEmptySegment in
// the "never touched" sense even though its segment word reads zero.
func TestIteratorAllLeftPivot(t *testing.T) {
	c := NewContainer(DefaultOptions())
	h := DefaultHandle(c)

	if _, err := h.AddPattern([]byte("ad-banner"), nil); err != nil {
		t.Fatalf("AddPattern: %v", err)
	}

	s, ok := h.Iterate().Next()
	if !ok || s != "" {
		t.Fatalf("Next() on all-left insertion = (%q, %v), want (\"\", true)", s, ok)
	}
	if _, ok := h.Iterate().Next(); !ok {
		t.Fatal("second, independent Iterate() call should still yield the boundary")
	}
}
