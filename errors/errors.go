package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode Phase = "decode" // UTF-8 to code points
	PhaseEncode Phase = "encode" // code points to UTF-16
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidHeader Kind = "invalid_header" // malformed UTF-8 header byte
	KindTruncated     Kind = "truncated"      // sequence runs past end of input
	KindInvalidTrail  Kind = "invalid_trail"  // continuation byte out of range
	KindOutOfRange    Kind = "out_of_range"   // code point above 0x10FFFF
)

// NoPosition marks an error with no meaningful source position.
const NoPosition = -1

// Error is the structured error type used throughout the library.
//
// Position indexes the source sequence at the point of failure: a byte
// index when the source is UTF-8, a code-point index when the source is
// a code-point sequence.
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Detail   string
	Position int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Position != NoPosition {
		b.WriteString(" at ")
		b.WriteString(strconv.Itoa(e.Position))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:    phase,
			Kind:     kind,
			Position: NoPosition,
		},
	}
}

// Position sets the source position
func (b *Builder) Position(pos int) *Builder {
	b.err.Position = pos
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidHeader creates an error for a malformed UTF-8 header byte.
func InvalidHeader(pos int, header byte) *Error {
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindInvalidHeader,
		Position: pos,
		Detail:   fmt.Sprintf("byte 0x%02X is not a valid sequence header", header),
		Value:    header,
	}
}

// Truncated creates an error for a multi-byte sequence that runs past
// the end of the input. Position points at the header byte.
func Truncated(pos, need, have int) *Error {
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindTruncated,
		Position: pos,
		Detail:   fmt.Sprintf("sequence declares %d trailing bytes, %d remain", need, have),
	}
}

// InvalidTrail creates an error for a continuation byte outside
// [0x80, 0xBF]. Position points at the offending byte.
func InvalidTrail(pos int, trail byte) *Error {
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindInvalidTrail,
		Position: pos,
		Detail:   fmt.Sprintf("byte 0x%02X is not a continuation byte", trail),
		Value:    trail,
	}
}

// OutOfRange creates an error for a code point above 0x10FFFF.
// Position indexes the code-point sequence being encoded.
func OutOfRange(phase Phase, pos int, codePoint uint32) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindOutOfRange,
		Position: pos,
		Detail:   fmt.Sprintf("code point 0x%X exceeds U+10FFFF", codePoint),
		Value:    codePoint,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     kind,
		Position: NoPosition,
		Detail:   detail,
		Cause:    cause,
	}
}
