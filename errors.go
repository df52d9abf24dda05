package biditrie

import (
	"errors"
	"fmt"
)

// Sentinel errors, following the teacher's nfa/error.go style: callers can
// check these with errors.Is; they describe programmer-facing preconditions,
// not recoverable runtime conditions.
var (
	// ErrEmptyImage is returned by Deserialize when given a zero-length
	// image (spec.md section 7: "Deserialization reports failure by
	// returning false when the image size is zero").
	ErrEmptyImage = errors.New("biditrie: empty serialized image")

	// ErrBufferTooSmall is returned by Deserialize when the image's
	// self-described header offsets don't fit within the supplied bytes.
	ErrBufferTooSmall = errors.New("biditrie: image shorter than its own header claims")

	// ErrSegmentTooLong is returned by StoreString when given more than
	// 255 bytes (spec.md section 4.2).
	ErrSegmentTooLong = errors.New("biditrie: segment exceeds 255 bytes")

	// ErrPivotOutOfRange is returned by Add when pivot is outside
	// [0, totalLen] (spec.md section 4.3).
	ErrPivotOutOfRange = errors.New("biditrie: pivot out of range")

	// ErrExtraOutOfRange is returned by SetExtra when given a value above
	// BCELL_EXTRA_MAX (spec.md section 3).
	ErrExtraOutOfRange = errors.New("biditrie: extra value out of range")
)

// DeserializeError wraps ErrBufferTooSmall with the offending lengths, in
// the style of the teacher's CompileError wrapping a pattern alongside the
// underlying error.
type DeserializeError struct {
	ImageLen int
	Need     int
	Err      error
}

func (e *DeserializeError) Error() string {
	return fmt.Sprintf("biditrie: deserialize failed: image is %d bytes, need %d: %v", e.ImageLen, e.Need, e.Err)
}

func (e *DeserializeError) Unwrap() error { return e.Err }
