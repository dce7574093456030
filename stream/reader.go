package stream

import (
	"bytes"
	"fmt"
	"io"
)

// Reader wraps an io.Reader with position tracking.
type Reader struct {
	r   io.Reader
	pos int64
}

// NewReader creates a new Reader wrapping r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// NewBytesReader creates a Reader over data.
func NewBytesReader(data []byte) *Reader {
	return &Reader{r: bytes.NewReader(data)}
}

// Read reads up to len(p) bytes and advances the position.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	r.pos += int64(n)
	return n, err
}

// Position returns the number of bytes consumed so far.
func (r *Reader) Position() int64 {
	return r.pos
}

// Remaining reports how many unread bytes are left when the wrapped reader
// knows its length, and -1 otherwise.
func (r *Reader) Remaining() int {
	if l, ok := r.r.(interface{ Len() int }); ok {
		return l.Len()
	}
	return -1
}

// WrapError annotates err with the current position.
func (r *Reader) WrapError(err error) error {
	if err == nil {
		return nil
	}
	return &PositionError{Position: r.pos, Err: err}
}

// PositionError reports where in a stream an error was detected.
type PositionError struct {
	Err      error
	Position int64
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("at position %d: %v", e.Position, e.Err)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}
