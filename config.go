package biditrie

// Options controls Container construction (spec.md section 6).
//
// Example:
//
//	opts := biditrie.DefaultOptions()
//	opts.ExtraHandler = func(l, r, extraID int) int { return extraID }
//	c := biditrie.NewContainer(opts)
type Options struct {
	// ByteLength is the advisory initial capacity in bytes. Effective
	// capacity is rounded up to a page and floored at 4 x PageSize.
	// Default: 4 x PageSize.
	ByteLength int

	// PageSize is the page size all buffer growth rounds to.
	// Default: 128 KiB.
	PageSize int

	// Char0 is the advisory initial offset of the character region.
	// Default: half the effective buffer length (after rounding and the
	// 4 x PageSize floor).
	Char0 int

	// ExtraHandler decides whether a boundary cell with EXTRA > 1 accepts
	// a match: it is called as extraHandler(l, r, extraID) and a non-zero
	// result is recorded as the match's $iu and accepts. May be nil only
	// if no pattern is ever stored with EXTRA > 1.
	ExtraHandler func(l, r, extraID int) int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		ByteLength: minBufferPages * defaultPageSize,
		PageSize:   defaultPageSize,
	}
}

func (o Options) withDefaults() Options {
	if o.PageSize <= 0 {
		o.PageSize = defaultPageSize
	}
	if o.ByteLength <= 0 {
		o.ByteLength = minBufferPages * o.PageSize
	}
	return o
}
