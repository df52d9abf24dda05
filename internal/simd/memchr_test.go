package simd

import (
	"strings"
	"testing"
)

func TestMemchr(t *testing.T) {
	cases := []struct {
		haystack string
		needle   byte
		want     int
	}{
		{"", 'a', -1},
		{"a", 'a', 0},
		{"abc", 'c', 2},
		{"abcabc", 'b', 1},
		{strings.Repeat("x", 100) + "y", 'y', 100},
		{strings.Repeat("a", 33), 'a', 0},
	}
	for _, c := range cases {
		if got := Memchr([]byte(c.haystack), c.needle); got != c.want {
			t.Errorf("Memchr(%q, %q) = %d, want %d", c.haystack, c.needle, got, c.want)
		}
	}
}

func TestLastIndexByte(t *testing.T) {
	cases := []struct {
		haystack string
		needle   byte
		want     int
	}{
		{"", 'a', -1},
		{"abcabc", 'a', 3},
		{"abc", 'z', -1},
	}
	for _, c := range cases {
		if got := LastIndexByte([]byte(c.haystack), c.needle); got != c.want {
			t.Errorf("LastIndexByte(%q, %q) = %d, want %d", c.haystack, c.needle, got, c.want)
		}
	}
}

func TestMemchrAgainstScalar(t *testing.T) {
	data := []byte(strings.Repeat("abcdefgh", 40) + "Z")
	for _, b := range []byte{'a', 'h', 'Z', 'q'} {
		want := memchrScalar(data, b)
		got := Memchr(data, b)
		if got != want {
			t.Errorf("Memchr(%q) = %d, want %d (scalar)", b, got, want)
		}
	}
}
