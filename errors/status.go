package errors

import stderrors "errors"

// Status codes returned by Status.
const (
	StatusOK            = 0
	StatusStreamError   = -1
	StatusTruncatedRead = -2
	StatusInvalidLength = -3
	StatusOverflow      = -4
	StatusInvalidData   = -5
	StatusUnknown       = -127
)

// Status reports the numeric status code of err. It returns StatusOK for nil
// and StatusUnknown for errors that carry no code.
func Status(err error) int {
	if err == nil {
		return StatusOK
	}
	var coded interface{ Status() int }
	if stderrors.As(err, &coded) {
		return coded.Status()
	}
	return StatusUnknown
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Sentinels usable with errors.Is; they match any error of the same phase and kind.
var (
	ErrStreamError   = &Error{Phase: PhaseDecode, Kind: KindStreamError}
	ErrTruncatedRead = &Error{Phase: PhaseDecode, Kind: KindTruncatedRead}
	ErrInvalidLength = &Error{Phase: PhaseDecode, Kind: KindInvalidLength}
	ErrOverflow      = &Error{Phase: PhaseDecode, Kind: KindOverflow}
	ErrChecksum      = &Error{Phase: PhaseValidate, Kind: KindChecksum}
)
