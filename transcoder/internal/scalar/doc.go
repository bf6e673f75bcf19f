// Package scalar provides internal bit-level utilities for UTF transcoding.
//
// This package contains the UTF-8 byte classification and accumulation
// primitives and the UTF-16 surrogate constants used by the transcoder
// package. Both the write paths and the dry-run size calculators route
// through these helpers, so the validation branches exist exactly once.
//
// # Contents
//
//   - scalar.go: header/trail byte classification, surrogate math, range checks
//
// This package is internal to the transcoder.
package scalar
