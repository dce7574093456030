package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode   Phase = "encode"   // value to bytes
	PhaseDecode   Phase = "decode"   // bytes to value
	PhaseValidate Phase = "validate" // envelope and checksum validation
	PhaseParse    Phase = "parse"    // shape text parsing
	PhaseCompile  Phase = "compile"  // shape to codec compilation
	PhaseLoad     Phase = "load"     // configuration and file loading
)

// Kind categorizes the error
type Kind string

const (
	KindStreamError   Kind = "stream_error"
	KindTruncatedRead Kind = "truncated_read"
	KindInvalidLength Kind = "invalid_length"
	KindOverflow      Kind = "overflow"
	KindInvalidData   Kind = "invalid_data"
	KindInvalidEnum   Kind = "invalid_enum"
	KindTypeMismatch  Kind = "type_mismatch"
	KindChecksum      Kind = "checksum"
	KindUnsupported   Kind = "unsupported"
	KindInvalidInput  Kind = "invalid_input"
	KindStatus        Kind = "status"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Code   int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Kind == KindStatus {
		fmt.Fprintf(&b, " %d", e.Code)
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
		if e.Kind == KindStatus && t.Kind == KindStatus && e.Code != t.Code {
			return false
		}
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Status returns the numeric status code of the error.
func (e *Error) Status() int {
	switch e.Kind {
	case KindStreamError:
		return StatusStreamError
	case KindTruncatedRead:
		return StatusTruncatedRead
	case KindInvalidLength:
		return StatusInvalidLength
	case KindOverflow:
		return StatusOverflow
	case KindStatus:
		return e.Code
	default:
		return StatusInvalidData
	}
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
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

// StreamFailure creates an error for a stream that failed outright
func StreamFailure(phase Phase, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindStreamError,
		Detail: "stream failed",
		Cause:  cause,
	}
}

// Truncated creates a short read error
func Truncated(want, got int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncatedRead,
		Detail: fmt.Sprintf("wanted %d bytes, stream provided %d", want, got),
		Value:  got,
	}
}

// InvalidLength creates an error for a negative declared length
func InvalidLength(length int64) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidLength,
		Detail: fmt.Sprintf("declared length %d is negative", length),
		Value:  length,
	}
}

// Overflow creates an error for a declared length above a limit
func Overflow(phase Phase, what string, length, limit uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("%s %d exceeds maximum %d", what, length, limit),
		Value:  length,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// InvalidEnum creates an invalid enum value error
func InvalidEnum(value any, count int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidEnum,
		Detail: fmt.Sprintf("enum value %v out of range (count %d)", value, count),
		Value:  value,
	}
}

// TypeMismatch creates a type mismatch error for dynamic values
func TypeMismatch(phase Phase, goType, shape string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Detail: fmt.Sprintf("Go type %s does not match shape %s", goType, shape),
	}
}

// Checksum creates a checksum mismatch error
func Checksum(want, got uint64) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindChecksum,
		Detail: fmt.Sprintf("checksum %016x does not match payload %016x", want, got),
		Value:  got,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Code creates an error carrying an opaque caller-defined status code.
// Code(0) returns nil.
func Code(code int) error {
	if code == 0 {
		return nil
	}
	return &Error{
		Phase: PhaseDecode,
		Kind:  KindStatus,
		Code:  code,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
