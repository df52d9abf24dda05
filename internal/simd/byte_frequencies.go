package simd

// byteFrequencies ranks each byte value by how often it shows up in typical
// text and binary data. Lower rank = rarer byte = better anchor for a
// memchr-then-verify substring search, since a rarer anchor byte produces
// fewer false candidates to verify.
//
// Values are taken from English-text/source-code corpus analysis, the same
// approach BurntSushi's memchr crate uses for its rare-byte heuristic
// (https://github.com/BurntSushi/memchr).
var byteFrequencies = [256]byte{
	// control characters: rare
	0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// space, punctuation
	255, 60, 140, 50, 40, 35, 30, 160, 130, 130, 80, 55, 200, 140, 210, 100,
	// digits and more punctuation
	180, 190, 170, 150, 140, 140, 130, 120, 120, 120, 150, 100, 70, 160, 70, 50,
	// '@' and uppercase A-O
	25, 120, 80, 90, 85, 130, 75, 70, 80, 115, 30, 35, 90, 85, 100, 105,
	// uppercase P-Z and brackets
	80, 15, 100, 110, 115, 70, 45, 55, 20, 50, 10, 90, 60, 90, 20, 110,
	// backtick and lowercase a-o
	30, 225, 140, 170, 165, 245, 135, 130, 150, 200, 25, 65, 175, 155, 195, 205,
	// lowercase p-z and braces
	145, 15, 195, 200, 215, 150, 75, 95, 45, 120, 20, 85, 40, 85, 15, 0,
	// extended ASCII / UTF-8 continuation bytes: uniformly rare in text
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
}

// rarestByte returns the least-frequent byte in needle and its index, for
// use as a Memchr anchor in Memmem/LastIndex.
func rarestByte(needle []byte) (b byte, index int) {
	b, index = needle[0], 0
	minRank := byteFrequencies[b]

	for i := 1; i < len(needle); i++ {
		if rank := byteFrequencies[needle[i]]; rank < minRank {
			b, index, minRank = needle[i], i, rank
		}
	}
	return b, index
}
