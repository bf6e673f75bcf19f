package scalar

// Unicode range boundaries.
const (
	MaxBMP       = 0xFFFF   // highest code point in the Basic Multilingual Plane
	MaxCodePoint = 0x10FFFF // highest valid Unicode code point
)

// UTF-16 surrogate ranges and pair math.
const (
	SurrogateMin     = 0xD800
	SurrogateMax     = 0xDFFF
	HighSurrogateMin = 0xD800
	HighSurrogateMax = 0xDBFF
	LowSurrogateMin  = 0xDC00
	LowSurrogateMax  = 0xDFFF
	SurrogateOffset  = 0x10000
)

// UTF-8 byte shape boundaries.
const (
	asciiMax   = 0x7F // 0xxxxxxx: single-byte sequence
	trailMin   = 0x80 // 10xxxxxx: continuation byte range start
	trailMax   = 0xBF // continuation byte range end
	header2Min = 0xC0 // 110xxxxx: two-byte sequence header
	header3Min = 0xE0 // 1110xxxx: three-byte sequence header
	header4Min = 0xF0 // 11110xxx: four-byte sequence header
	headerEnd  = 0xF8 // 11111xxx: never a valid header
)

// HeaderByte classifies a UTF-8 header byte. It returns the number of
// trailing bytes the sequence declares (0 to 3) and the initial code
// point value extracted from the header's payload bits. trailing is -1
// for bytes that cannot start a sequence: continuation bytes and bytes
// of shape 11111xxx.
func HeaderByte(in byte) (cp uint32, trailing int) {
	switch {
	case in <= asciiMax:
		return uint32(in), 0
	case in < header2Min: // continuation byte in header position
		return 0, -1
	case in < header3Min:
		return uint32(in & 0x1F), 1
	case in < header4Min:
		return uint32(in & 0x0F), 2
	case in < headerEnd:
		return uint32(in & 0x07), 3
	default:
		return 0, -1
	}
}

// TrailByte folds one continuation byte into the accumulated code point.
// ok is false when in lies outside [0x80, 0xBF].
func TrailByte(in byte, cp uint32) (uint32, bool) {
	if in < trailMin || in > trailMax {
		return cp, false
	}
	return (cp << 6) | uint32(in&0x3F), true
}

// UTF16Length returns the number of UTF-16 code units needed for cp:
// 1 for the BMP (0xFFFF included), 2 above it. ok is false when cp
// exceeds MaxCodePoint.
func UTF16Length(cp uint32) (n int, ok bool) {
	switch {
	case cp <= MaxBMP:
		return 1, true
	case cp <= MaxCodePoint:
		return 2, true
	default:
		return 0, false
	}
}

// SurrogatePair splits a supplementary-plane code point into its UTF-16
// surrogate pair. The caller must ensure MaxBMP < cp <= MaxCodePoint.
func SurrogatePair(cp uint32) (hi, lo uint16) {
	cp -= SurrogateOffset
	return uint16(cp>>10) + HighSurrogateMin, uint16(cp&0x3FF) + LowSurrogateMin
}

// CombineSurrogates reconstructs a code point from a surrogate pair.
// The caller must ensure hi and lo lie in their respective ranges.
func CombineSurrogates(hi, lo uint16) uint32 {
	return (uint32(hi-HighSurrogateMin)<<10 | uint32(lo-LowSurrogateMin)) + SurrogateOffset
}

// IsHighSurrogate reports whether u lies in [0xD800, 0xDBFF].
func IsHighSurrogate(u uint16) bool {
	return u >= HighSurrogateMin && u <= HighSurrogateMax
}

// IsLowSurrogate reports whether u lies in [0xDC00, 0xDFFF].
func IsLowSurrogate(u uint16) bool {
	return u >= LowSurrogateMin && u <= LowSurrogateMax
}
