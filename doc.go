// Package biditrie implements a bidirectional segment trie: a compact
// structure that stores (left, right) pattern pairs sharing a pivot and
// answers "does some stored pattern match with its pivot aligned at
// haystack position i" in time proportional to the matched span and the
// branch fan-out.
//
// Everything lives in one growable byte buffer — trie cells, interned
// pattern segments, and the haystack window being matched against — with
// no per-node heap allocation. Insertion (Handle.Add) radix-splits on the
// first mismatching byte in each direction from the pivot; matching
// (Handle.Matches) walks the same cell graph read-only.
//
// Example:
//
//	c := biditrie.NewContainer(biditrie.DefaultOptions())
//	h := biditrie.DefaultHandle(c)
//
//	boundary, err := h.AddPattern([]byte("-images/"), []byte("ad-"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	h.SetExtra(boundary, 1)
//
//	haystack := []byte("http://x/-images/ad-banner")
//	c.SetHaystack(haystack)
//	if h.Matches(bytes.Index(haystack, []byte("ad"))) {
//		fmt.Println(h.L(), h.R())
//	}
package biditrie
