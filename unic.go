package unic

// UnitSink is a push-only destination for UTF-16 code units. Encoders
// call WriteUnit once per unit, in stream order; a returned error
// aborts the operation in progress.
//
// Implementations decide byte order and storage. The transcoder package
// provides SliceSink and SinkFunc for the common cases.
type UnitSink interface {
	WriteUnit(u uint16) error
}

// CodePointSource is a lazy, forward-only sequence of code points.
// Next advances and reports whether a code point is available;
// iteration stops at the end of input or on the first fault, and Err
// returns the fault, if any, once Next has returned false.
type CodePointSource interface {
	Next() bool
	CodePoint() rune
	Err() error
}
