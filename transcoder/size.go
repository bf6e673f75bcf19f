package transcoder

import (
	"github.com/wippyai/unic/errors"
)

// UTF32Size returns the number of code points encoded in src: the exact
// capacity AppendUTF32 needs. It decodes the whole input without
// materializing code points and fails exactly where AppendUTF32 would.
func UTF32Size(src []byte) (int, error) {
	count := 0
	for pos := 0; pos < len(src); {
		_, next, err := DecodeNext(src, pos)
		if err != nil {
			return count, err
		}
		count++
		pos = next
	}
	return count, nil
}

// UTF16Size returns the number of UTF-16 units ToUTF16 would emit for
// src: the exact capacity to pre-allocate. It is the write pass with
// writes elided, so it fails on exactly the inputs ToUTF16 fails on, at
// the same positions.
func UTF16Size(src []byte) (int, error) {
	return transcode(src, nil)
}

// UTF16SizeOfCodePoints returns the number of UTF-16 units needed to
// encode cps: one per BMP code point, two above. A code point over
// U+10FFFF fails with its index in cps as the error position.
func UTF16SizeOfCodePoints(cps []rune) (int, error) {
	size := 0
	for i, cp := range cps {
		_, _, n, ok := utf16Units(cp)
		if !ok {
			return size, errors.OutOfRange(errors.PhaseEncode, i, uint32(cp))
		}
		size += n
	}
	return size, nil
}
