package biditrie

import "github.com/coregx/biditrie/internal/conv"

// cellRef identifies a cell by its word index: byteOffset/4. A cellRef of 0
// means "no cell" — safe because the lowest legal cell lives well past the
// header region, so no real cell ever lands on word index 0.
//
// This mirrors the teacher's StateID pattern (nfa.StateID, an opaque integer
// index rather than a pointer) but addresses 4-byte words instead of states,
// since cells here live inside a flat byte buffer rather than a Go slice of
// structs.
type cellRef uint32

// noCell is the sentinel for "no cell here".
const noCell cellRef = 0

// cellWords is the number of 4-byte words per cell (AND/OR/SEGMENT_INFO, or
// NEXT_AND/ALT_AND/EXTRA for a boundary cell).
const cellWords = 3

// cellBytes is the byte size of one cell.
const cellBytes = cellWords * 4

// bcellExtraMax is the largest legal value of a boundary cell's EXTRA word.
// SEGMENT_INFO on a normal cell is always greater than this, since its
// length field occupies bits 24-31 and length is always >= 1.
const bcellExtraMax = 0x00FFFFFF

// byteOffset returns the byte offset of cell word 0.
func (r cellRef) byteOffset() int {
	return int(r) * 4
}

// wordOffset returns the byte offset of the i-th word (0, 1, or 2) of the
// cell referenced by r.
func (r cellRef) wordOffset(i int) int {
	return r.byteOffset() + i*4
}

// valid reports whether r refers to an actual cell.
func (r cellRef) valid() bool {
	return r != noCell
}

// packSegmentInfo packs a segment length and a char-region-relative offset
// into one SEGMENT_INFO word: (length << 24) | offset.
func packSegmentInfo(length int, charOffset uint32) uint32 {
	if length < 1 {
		panic("biditrie: segment length out of range [1,255]")
	}
	return uint32(conv.IntToUint8(length))<<24 | conv.Uint32To24(charOffset)
}

// unpackSegmentInfo reverses packSegmentInfo.
func unpackSegmentInfo(word uint32) (length int, charOffset uint32) {
	return int(word >> 24), word & bcellExtraMax
}

// isBoundaryWord reports whether a SEGMENT_INFO/EXTRA word denotes a
// boundary cell rather than a normal (segment) cell. Normal cells pack a
// length >= 1 into bits 24-31, which always pushes the word above
// bcellExtraMax; boundary cells never set those bits.
func isBoundaryWord(word uint32) bool {
	return word <= bcellExtraMax
}
