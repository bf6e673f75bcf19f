package transcoder

import (
	"github.com/wippyai/unic"
	"github.com/wippyai/unic/errors"
	"github.com/wippyai/unic/transcoder/internal/scalar"
)

// UnitSink is a push-only destination for UTF-16 code units. Byte order
// is the sink's concern; the encoder hands over host-order uint16 values.
type UnitSink = unic.UnitSink

// SliceSink appends units to a caller-owned buffer. Pre-size Units with
// UTF16Size to avoid growth during encoding.
type SliceSink struct {
	Units []uint16
}

func (s *SliceSink) WriteUnit(u uint16) error {
	s.Units = append(s.Units, u)
	return nil
}

// SinkFunc adapts a function to the UnitSink interface.
type SinkFunc func(u uint16) error

func (f SinkFunc) WriteUnit(u uint16) error {
	return f(u)
}

// utf16Units is the single 1-vs-2 unit branch shared by the write paths
// and the size calculators. For a BMP code point (0xFFFF included) it
// returns n=1 with the value in hi, verbatim; lone surrogates are not
// rejected. For a supplementary code point it returns n=2 with the
// surrogate pair. ok is false above 0x10FFFF; negative runes land there
// too via the uint32 conversion.
func utf16Units(cp rune) (hi, lo uint16, n int, ok bool) {
	v := uint32(cp)
	n, ok = scalar.UTF16Length(v)
	if !ok {
		return 0, 0, 0, false
	}
	if n == 1 {
		return uint16(v), 0, 1, true
	}
	hi, lo = scalar.SurrogatePair(v)
	return hi, lo, 2, true
}

// Encoder writes code points to a UnitSink as UTF-16. It tracks the
// output cursor so faults report where in the output stream encoding
// stopped. Not safe for concurrent use.
type Encoder struct {
	sink    UnitSink
	written int
}

// NewEncoder returns an encoder writing to sink.
func NewEncoder(sink UnitSink) *Encoder {
	return &Encoder{sink: sink}
}

// Write encodes one code point, emitting one unit for the BMP and a
// surrogate pair above it, and returns the number of units written.
// A code point above U+10FFFF fails before anything is emitted, with
// the current output cursor as the error position. Units already
// written by earlier calls are not rolled back.
func (e *Encoder) Write(cp rune) (int, error) {
	hi, lo, n, ok := utf16Units(cp)
	if !ok {
		return 0, errors.OutOfRange(errors.PhaseEncode, e.written, uint32(cp))
	}
	if err := e.sink.WriteUnit(hi); err != nil {
		return 0, err
	}
	e.written++
	if n == 2 {
		if err := e.sink.WriteUnit(lo); err != nil {
			return 1, err
		}
		e.written++
	}
	return n, nil
}

// Written returns the output cursor: the total units emitted so far.
func (e *Encoder) Written() int {
	return e.written
}

// EncodeCodePoints writes cps to sink as UTF-16 and returns the number
// of units emitted. The first invalid code point aborts the call;
// output already written stays written. Size the destination with
// UTF16SizeOfCodePoints first when atomicity matters.
func EncodeCodePoints(cps []rune, sink UnitSink) (int, error) {
	enc := NewEncoder(sink)
	for _, cp := range cps {
		if _, err := enc.Write(cp); err != nil {
			return enc.Written(), err
		}
	}
	return enc.Written(), nil
}

// EncodeFrom drains a code-point source into sink as UTF-16 and returns
// the number of units emitted. A source fault or an invalid code point
// aborts the call; output already written stays written. With a
// CodePoints source this streams UTF-8 to UTF-16 without materializing
// the intermediate code points.
func EncodeFrom(src unic.CodePointSource, sink UnitSink) (int, error) {
	enc := NewEncoder(sink)
	for src.Next() {
		if _, err := enc.Write(src.CodePoint()); err != nil {
			return enc.Written(), err
		}
	}
	if err := src.Err(); err != nil {
		return enc.Written(), err
	}
	return enc.Written(), nil
}
