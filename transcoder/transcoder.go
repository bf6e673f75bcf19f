package transcoder

import (
	"github.com/wippyai/unic/errors"
)

// transcode is the fused UTF-8 to UTF-16 pass. With a nil sink it is a
// dry run that only counts, taking exactly the same branches as the
// writing pass, so both succeed, fail, and position faults identically.
// Out-of-range code points (reachable because the decoder validates
// byte shape, not scalar range) report the byte index of the sequence's
// header byte.
func transcode(src []byte, sink UnitSink) (int, error) {
	units := 0
	for pos := 0; pos < len(src); {
		cp, next, err := DecodeNext(src, pos)
		if err != nil {
			return units, err
		}

		hi, lo, n, ok := utf16Units(cp)
		if !ok {
			return units, errors.OutOfRange(errors.PhaseEncode, pos, uint32(cp))
		}
		if sink != nil {
			if err := sink.WriteUnit(hi); err != nil {
				return units, err
			}
			if n == 2 {
				if err := sink.WriteUnit(lo); err != nil {
					return units + 1, err
				}
			}
		}

		units += n
		pos = next
	}
	return units, nil
}

// ToUTF16 decodes UTF-8 from src and writes UTF-16 units to sink,
// returning the number of units emitted. The first fault aborts the
// call with the byte position of the offending input; partial output
// is not rolled back (size first with UTF16Size for atomic writes).
func ToUTF16(src []byte, sink UnitSink) (int, error) {
	return transcode(src, sink)
}

// AppendUTF16 decodes UTF-8 from src and appends the UTF-16 units to
// dst, returning the extended slice. On error dst is returned with the
// units emitted before the fault already appended.
func AppendUTF16(dst []uint16, src []byte) ([]uint16, error) {
	s := SliceSink{Units: dst}
	_, err := transcode(src, &s)
	return s.Units, err
}

// AppendUTF32 decodes UTF-8 from src and appends the code points to
// dst, returning the extended slice. On error dst is returned with the
// code points decoded before the fault already appended.
func AppendUTF32(dst []rune, src []byte) ([]rune, error) {
	for pos := 0; pos < len(src); {
		cp, next, err := DecodeNext(src, pos)
		if err != nil {
			return dst, err
		}
		dst = append(dst, cp)
		pos = next
	}
	return dst, nil
}

// ToUTF32 decodes UTF-8 from src into dst and returns the number of
// code points written. dst must hold every decoded code point; size it
// with UTF32Size, which fails on exactly the inputs this fails on.
// Panics if dst is too short, like utf8.EncodeRune on a short buffer.
func ToUTF32(src []byte, dst []rune) (int, error) {
	count := 0
	for pos := 0; pos < len(src); {
		cp, next, err := DecodeNext(src, pos)
		if err != nil {
			return count, err
		}
		dst[count] = cp
		count++
		pos = next
	}
	return count, nil
}
