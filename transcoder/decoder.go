package transcoder

import (
	"go.uber.org/zap"

	"github.com/wippyai/unic"
	"github.com/wippyai/unic/errors"
	"github.com/wippyai/unic/transcoder/internal/scalar"
)

// DecodeNext decodes the UTF-8 sequence starting at src[pos], which must
// satisfy 0 <= pos < len(src). It returns the decoded code point and the
// position of the next unconsumed byte.
// A sequence is either consumed whole or not at all: on error, no bytes
// count as consumed and the returned error carries the index of the
// offending byte (the header for header and truncation faults, the
// continuation byte itself for trail faults).
func DecodeNext(src []byte, pos int) (cp rune, next int, err error) {
	header := src[pos]
	acc, trailing := scalar.HeaderByte(header)
	if trailing < 0 {
		return 0, pos, errors.InvalidHeader(pos, header)
	}
	if remaining := len(src) - pos - 1; trailing > remaining {
		return 0, pos, errors.Truncated(pos, trailing, remaining)
	}

	for i := 1; i <= trailing; i++ {
		b := src[pos+i]
		var ok bool
		if acc, ok = scalar.TrailByte(b, acc); !ok {
			return 0, pos, errors.InvalidTrail(pos+i, b)
		}
	}

	return rune(acc), pos + 1 + trailing, nil
}

// CodePoints is a lazy, forward-only sequence of code points decoded
// from a UTF-8 byte slice. It is restartable from the beginning via
// Reset, but never resumes past a fault. Not safe for concurrent use.
//
//	cps := transcoder.NewCodePoints(data)
//	for cps.Next() {
//		use(cps.CodePoint())
//	}
//	if err := cps.Err(); err != nil {
//		// err carries the byte index of the fault
//	}
type CodePoints struct {
	err  error
	src  []byte
	pos  int // start of the current code point's byte sequence
	next int // start of the following sequence
	cp   rune
}

var _ unic.CodePointSource = (*CodePoints)(nil)

// NewCodePoints returns a code-point sequence over src. The slice is
// read-only to the sequence and must not be mutated while iterating.
func NewCodePoints(src []byte) *CodePoints {
	return &CodePoints{src: src}
}

// Next advances to the next code point. It returns false at the end of
// input or on the first malformed sequence; Err distinguishes the two.
func (c *CodePoints) Next() bool {
	if c.err != nil || c.next >= len(c.src) {
		return false
	}
	cp, next, err := DecodeNext(c.src, c.next)
	if err != nil {
		Logger().Debug("decode fault",
			zap.Int("pos", c.next),
			zap.Error(err))
		c.err = err
		return false
	}
	c.pos = c.next
	c.cp, c.next = cp, next
	return true
}

// CodePoint returns the code point produced by the last call to Next.
func (c *CodePoints) CodePoint() rune {
	return c.cp
}

// Pos returns the byte offset of the current code point's header byte.
func (c *CodePoints) Pos() int {
	return c.pos
}

// Err returns the decode fault that stopped iteration, or nil if the
// sequence ended cleanly (or has not ended yet).
func (c *CodePoints) Err() error {
	return c.err
}

// Reset rewinds the sequence to the start of the input.
func (c *CodePoints) Reset() {
	c.pos, c.next, c.cp, c.err = 0, 0, 0, nil
}
