// Package errors provides structured error types for the unic library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category), and carry the Position in the source sequence at which the fault
// was detected: a byte index for UTF-8 input, a code-point index for
// code-point input.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidTrail).
//		Position(5).
//		Value(0x20).
//		Detail("continuation byte out of range").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidTrail(5, 0x20)
//	err := errors.OutOfRange(errors.PhaseEncode, 2, 0x110000)
//
// The size calculators route through the decode/encode logic and propagate
// its errors verbatim, so a dry run and the corresponding write path fail
// with identical errors at identical positions.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
