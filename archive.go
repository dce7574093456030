package archive

import (
	"errors"
	"io"
)

// Sink is an append-only byte destination.
// Append must not retain p after it returns.
type Sink interface {
	Append(p []byte) error
}

// Stream is a consumable byte source. A single Read may return fewer bytes
// than requested.
type Stream interface {
	io.Reader
}

// Memory represents random-access linear memory.
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
}

// MemorySizer provides the current size of linear memory in bytes.
type MemorySizer interface {
	Size() uint32
}

// MemoryGrower grows linear memory by a number of 64KiB pages and returns the
// previous size in pages.
type MemoryGrower interface {
	Grow(pages uint32) (uint32, error)
}

// ForceRead performs one bounded read request for len(p) bytes, retrying short
// reads until p is full or the stream ends. It returns the number of bytes
// obtained. The end of the stream is not an error; it shows as n < len(p).
// A non-nil error reports a hard failure of the underlying stream.
func ForceRead(s Stream, p []byte) (int, error) {
	n, err := io.ReadFull(s, p)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return n, nil
	}
	return n, err
}
