package transcoder

import (
	goerrors "errors"
	"testing"

	"github.com/wippyai/unic/errors"
)

func TestUTF32Size(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want int
	}{
		{"empty", nil, 0},
		{"ascii", []byte("hello"), 5},
		{"mixed widths", []byte("a¢€😀"), 4},
		{"all four byte", []byte("😀😀😀"), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UTF32Size(tt.src)
			if err != nil {
				t.Fatalf("UTF32Size failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("UTF32Size = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUTF16Size(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want int
	}{
		{"empty", nil, 0},
		{"ascii", []byte("hello"), 5},
		{"bmp only", []byte("a¢€"), 3},
		{"supplementary", []byte("😀"), 2},
		{"mixed", []byte("a😀b"), 4},
		{"bmp max one unit", []byte{0xEF, 0xBF, 0xBF}, 1}, // U+FFFF
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UTF16Size(tt.src)
			if err != nil {
				t.Fatalf("UTF16Size failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("UTF16Size = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUTF16SizeOfCodePoints(t *testing.T) {
	tests := []struct {
		name string
		cps  []rune
		want int
	}{
		{"empty", nil, 0},
		{"bmp", []rune{'a', 0x20AC, 0xFFFF}, 3},
		{"supplementary", []rune{0x10000, 0x10FFFF}, 4},
		{"lone surrogate counts as one", []rune{0xD800}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UTF16SizeOfCodePoints(tt.cps)
			if err != nil {
				t.Fatalf("UTF16SizeOfCodePoints failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("size = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUTF16SizeOfCodePoints_OutOfRange(t *testing.T) {
	_, err := UTF16SizeOfCodePoints([]rune{'a', 0x110000})
	if err == nil {
		t.Fatal("size succeeded, want error")
	}
	var terr *errors.Error
	if !goerrors.As(err, &terr) {
		t.Fatalf("error type %T, want *errors.Error", err)
	}
	if terr.Kind != errors.KindOutOfRange {
		t.Errorf("Kind = %v, want out_of_range", terr.Kind)
	}
	if terr.Position != 1 {
		t.Errorf("Position = %d, want code-point index 1", terr.Position)
	}
}

// Dry-run sizes must match the write paths unit for unit, and fail with
// identical errors on the same inputs.
func TestSizeAgreement(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("hello"),
		[]byte("a¢€😀"),
		[]byte("κόσμε"),
		[]byte("日本語テキスト"),
		[]byte("🇺🇳 flags and 👨‍👩‍👧 joins"),
		{0xEF, 0xBF, 0xBF},       // U+FFFF
		{0xF4, 0x8F, 0xBF, 0xBF}, // U+10FFFF
		{0xC0, 0x80},             // overlong, accepted by policy
		{0xED, 0xA0, 0x80},       // UTF-8 encoded surrogate, accepted
	}

	for _, src := range inputs {
		cpSize, err := UTF32Size(src)
		if err != nil {
			t.Fatalf("UTF32Size(%q) failed: %v", src, err)
		}
		cps, err := AppendUTF32(make([]rune, 0, cpSize), src)
		if err != nil {
			t.Fatalf("AppendUTF32(%q) failed: %v", src, err)
		}
		if len(cps) != cpSize {
			t.Errorf("UTF32Size(%q) = %d, write path produced %d", src, cpSize, len(cps))
		}

		u16Size, err := UTF16Size(src)
		if err != nil {
			t.Fatalf("UTF16Size(%q) failed: %v", src, err)
		}
		units, err := AppendUTF16(make([]uint16, 0, u16Size), src)
		if err != nil {
			t.Fatalf("AppendUTF16(%q) failed: %v", src, err)
		}
		if len(units) != u16Size {
			t.Errorf("UTF16Size(%q) = %d, write path produced %d", src, u16Size, len(units))
		}

		cpUnits, err := UTF16SizeOfCodePoints(cps)
		if err != nil {
			t.Fatalf("UTF16SizeOfCodePoints(%q) failed: %v", src, err)
		}
		if cpUnits != u16Size {
			t.Errorf("two-stage size %d != fused size %d for %q", cpUnits, u16Size, src)
		}
	}
}

func TestSizeErrorParity(t *testing.T) {
	malformed := [][]byte{
		{0x80},                   // continuation as header
		{0xFF},                   // invalid header
		{0xC2},                   // truncated two byte
		{0xE2, 0x82},             // truncated three byte
		{0xC2, 0x20},             // illegal continuation
		{'o', 'k', 0xF0, 0x28},   // fault after clean prefix
		{0xF7, 0xBF, 0xBF, 0xBF}, // decodes to 0x1FFFFF, out of UTF-16 range
	}

	for _, src := range malformed {
		_, sizeErr := UTF16Size(src)
		_, writeErr := AppendUTF16(nil, src)
		if sizeErr == nil || writeErr == nil {
			t.Fatalf("input % X: size err = %v, write err = %v, want both non-nil", src, sizeErr, writeErr)
		}
		var se, we *errors.Error
		if !goerrors.As(sizeErr, &se) || !goerrors.As(writeErr, &we) {
			t.Fatalf("input % X: unexpected error types %T / %T", src, sizeErr, writeErr)
		}
		if se.Kind != we.Kind || se.Position != we.Position || se.Phase != we.Phase {
			t.Errorf("input % X: size fault [%v] %v at %d, write fault [%v] %v at %d",
				src, se.Phase, se.Kind, se.Position, we.Phase, we.Kind, we.Position)
		}

		_, sizeErr = UTF32Size(src)
		_, writeErr = AppendUTF32(nil, src)
		switch {
		case se.Kind == errors.KindOutOfRange:
			// 0x1FFFFF decodes fine as a code point; only the UTF-16
			// target rejects it.
			if sizeErr != nil || writeErr != nil {
				t.Errorf("input % X: UTF-32 paths errored: %v / %v", src, sizeErr, writeErr)
			}
		default:
			if sizeErr == nil || writeErr == nil {
				t.Fatalf("input % X: UTF-32 size err = %v, write err = %v", src, sizeErr, writeErr)
			}
			if !goerrors.Is(sizeErr, writeErr) {
				t.Errorf("input % X: UTF-32 size and write faults differ: %v / %v", src, sizeErr, writeErr)
			}
		}
	}
}
