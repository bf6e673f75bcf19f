package transcoder

import (
	"strings"
	"testing"
)

var (
	benchASCII = []byte(strings.Repeat("the quick brown fox ", 64))
	benchMixed = []byte(strings.Repeat("pi≈3.14159 €100 😀 ", 64))
	benchCJK   = []byte(strings.Repeat("日本語のテキストです。", 64))
)

func benchmarkDecode(b *testing.B, src []byte) {
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		cps := NewCodePoints(src)
		for cps.Next() {
		}
		if err := cps.Err(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode_ASCII(b *testing.B) { benchmarkDecode(b, benchASCII) }
func BenchmarkDecode_Mixed(b *testing.B) { benchmarkDecode(b, benchMixed) }
func BenchmarkDecode_CJK(b *testing.B)   { benchmarkDecode(b, benchCJK) }

func benchmarkUTF16Size(b *testing.B, src []byte) {
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := UTF16Size(src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUTF16Size_ASCII(b *testing.B) { benchmarkUTF16Size(b, benchASCII) }
func BenchmarkUTF16Size_Mixed(b *testing.B) { benchmarkUTF16Size(b, benchMixed) }

func benchmarkToUTF16(b *testing.B, src []byte) {
	size, err := UTF16Size(src)
	if err != nil {
		b.Fatal(err)
	}
	buf := make([]uint16, 0, size)

	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink := SliceSink{Units: buf[:0]}
		if _, err := ToUTF16(src, &sink); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkToUTF16_ASCII(b *testing.B) { benchmarkToUTF16(b, benchASCII) }
func BenchmarkToUTF16_Mixed(b *testing.B) { benchmarkToUTF16(b, benchMixed) }
func BenchmarkToUTF16_CJK(b *testing.B)   { benchmarkToUTF16(b, benchCJK) }

func BenchmarkEncodeCodePoints(b *testing.B) {
	cps, err := AppendUTF32(nil, benchMixed)
	if err != nil {
		b.Fatal(err)
	}
	size, err := UTF16SizeOfCodePoints(cps)
	if err != nil {
		b.Fatal(err)
	}
	buf := make([]uint16, 0, size)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink := SliceSink{Units: buf[:0]}
		if _, err := EncodeCodePoints(cps, &sink); err != nil {
			b.Fatal(err)
		}
	}
}
