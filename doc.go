// Package unic provides validating Unicode transcoding between UTF-8,
// UTF-32 code points, and UTF-16.
//
// This library is a strict transcoder: malformed input fails with the
// exact byte position of the fault rather than being replaced or
// skipped, and every write path has a dry-run size calculator that
// takes the same validation branches, so callers can pre-allocate
// exact-capacity buffers and get all-or-nothing output.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	unic/               Root package with the UnitSink and CodePointSource interfaces
//	├── transcoder/     The engine: UTF-8 decode, UTF-16 encode, size calculators
//	└── errors/         Structured error types with fault positions
//
// # Quick Start
//
// Decode UTF-8 and encode to UTF-16 with exact pre-allocation:
//
//	n, err := transcoder.UTF16Size(data)
//	if err != nil {
//	    log.Fatal(err) // the error carries the byte position of the fault
//	}
//
//	units, err := transcoder.AppendUTF16(make([]uint16, 0, n), data)
//
// Or iterate code points lazily:
//
//	cps := transcoder.NewCodePoints(data)
//	for cps.Next() {
//	    fmt.Printf("U+%04X at byte %d\n", cps.CodePoint(), cps.Pos())
//	}
//	if err := cps.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Validation Model
//
// The decoder validates UTF-8 structure: header byte shape, declared
// sequence length against remaining input, and continuation byte range.
// The encoder rejects code points above U+10FFFF. Overlong encodings
// and surrogate code points embedded in UTF-8 are accepted; see the
// transcoder package documentation for the full policy.
//
// # Thread Safety
//
// All pure functions are safe for concurrent use on distinct buffers.
// CodePoints and Encoder instances hold cursor state and belong to a
// single goroutine.
//
// # Allocation
//
// The engine itself never allocates: it reads caller-supplied input and
// pushes to caller-supplied sinks. The Append helpers grow only the
// caller's destination slice.
package unic
