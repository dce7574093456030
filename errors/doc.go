// Package errors provides structured error types for archive codecs.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// Every Kind maps to a small integer status code through Status, so callers that
// speak the numeric protocol can recover it from any error returned by a codec:
//
//	 0   success
//	-1   the underlying stream failed outright
//	-2   the stream returned fewer bytes than requested
//	-3   a declared length was negative
//	-4   a declared length exceeded the configured limit
//	-5   the payload was malformed (bad bool, enum, checksum, type)
//
// Element codecs may report their own opaque codes with Code; these travel
// unchanged through every enclosing container.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindOverflow).
//		Value(n).
//		Detail("count %d exceeds maximum %d", n, max).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Truncated(10, 4)
//	err := errors.InvalidLength(-1)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
