package biditrie_test

import (
	"fmt"

	"github.com/coregx/biditrie"
)

func ExampleHandle_Matches() {
	c := biditrie.NewContainer(biditrie.DefaultOptions())
	h := biditrie.DefaultHandle(c)

	boundary, err := h.AddPattern([]byte("-images/"), []byte("ad-"))
	if err != nil {
		fmt.Println(err)
		return
	}
	h.SetExtra(boundary, 1)

	haystack := []byte("http://x/-images/ad-banner")
	c.SetHaystack(haystack)

	if h.Matches(17) {
		fmt.Println(h.L(), h.R())
	}
	// Output: 9 20
}

func ExampleHandle_Iterate() {
	c := biditrie.NewContainer(biditrie.DefaultOptions())
	h := biditrie.DefaultHandle(c)

	h.AddPattern(nil, []byte("ad"))
	h.AddPattern(nil, []byte("ad-banner"))

	seen := map[string]bool{}
	it := h.Iterate()
	for {
		s, ok := it.Next()
		if !ok {
			break
		}
		seen[s] = true
	}
	fmt.Println(seen["ad"], seen["ad-banner"])
	// Output: true true
}
