// Package transcoder provides validating transcoding between UTF-8,
// UTF-32 code points, and UTF-16.
//
// This package handles the decode step (UTF-8 bytes to code points, with
// malformed-input detection and exact fault positions), the encode step
// (code points to UTF-16 units, with surrogate-pair construction and
// out-of-range rejection), and dry-run size calculators that share the
// write paths' validation branches.
//
// # Data Flow
//
//	┌──────────────────────────────────────────────────────────────┐
//	│ UTF-8 bytes → [decode] → code points → [encode] → UTF-16    │
//	└──────────────────────────────────────────────────────────────┘
//
// # UTF-8 Byte Shapes
//
// The decoder classifies each header byte by its leading bits:
//
//	Header          Trailing    Payload bits
//	─────────────────────────────────────────
//	0x00–0x7F       0           7 (ASCII)
//	0x80–0xBF       —           invalid header (continuation byte)
//	0xC0–0xDF       1           5
//	0xE0–0xEF       2           4
//	0xF0–0xF7       3           3
//	0xF8–0xFF       —           invalid header
//
// Each trailing byte must lie in [0x80, 0xBF] and contributes 6 bits.
//
// # Key Types
//
//	CodePoints    - Restartable lazy sequence of code points over UTF-8
//	Encoder       - Writes code points as UTF-16 units to a UnitSink
//	UnitSink      - Push-only destination for 16-bit code units
//
// # Size Calculators
//
// UTF32Size, UTF16Size, and UTF16SizeOfCodePoints compute exact output
// unit counts without writing. They route through the same decode and
// encode branches as the write paths, so a dry run succeeds, fails, and
// positions faults exactly as the corresponding write call would.
// Callers that need atomic output size first and write only after a
// clean dry run: the write paths do not roll back partial output.
//
// # Validation Policy
//
// The decoder checks byte shape and sequence length only. Overlong
// encodings and surrogate code points carried in UTF-8 are accepted, and
// the UTF-16 encoder passes lone BMP surrogates through verbatim. The
// only encode-side rejection is a code point above U+10FFFF. Callers
// needing strict Unicode scalar validation must filter separately.
//
// # Error Positions
//
// Decode faults carry the byte index of the offending byte: the header
// byte for header and truncation faults, the continuation byte itself
// for trail faults. The streaming Encoder reports the output cursor;
// the code-point size calculator reports the code-point index.
//
// # Thread Safety
//
// All top-level functions are pure and safe for concurrent use on
// distinct buffers. CodePoints and Encoder instances maintain cursor
// state and are NOT thread-safe; use one per goroutine.
package transcoder
