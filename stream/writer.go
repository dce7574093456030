package stream

import (
	"bytes"
	"io"

	"github.com/wippyai/archive/errors"
)

// Writer is an in-memory sink. Appends never fail.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}}
}

// NewWriterSize creates a Writer with room for size bytes.
func NewWriterSize(size int) *Writer {
	return &Writer{buf: bytes.NewBuffer(make([]byte, 0, size))}
}

// Append writes p to the end of the buffer.
func (w *Writer) Append(p []byte) error {
	w.buf.Write(p)
	return nil
}

// Bytes returns the written bytes. The slice aliases the buffer until the
// next Append or Reset.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Cap returns the capacity of the underlying buffer.
func (w *Writer) Cap() int {
	return w.buf.Cap()
}

// Reset discards everything written so far, keeping the allocation.
func (w *Writer) Reset() {
	w.buf.Reset()
}

// WriteTo writes the buffered bytes to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	return w.buf.WriteTo(dst)
}

// WriterSink adapts an io.Writer into a sink.
type WriterSink struct {
	w io.Writer
}

// FromWriter adapts an io.Writer into a sink. Write failures and short writes
// are reported as stream errors.
func FromWriter(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Append(p []byte) error {
	n, err := s.w.Write(p)
	if err != nil {
		return errors.StreamFailure(errors.PhaseEncode, err)
	}
	if n != len(p) {
		return errors.StreamFailure(errors.PhaseEncode, io.ErrShortWrite)
	}
	return nil
}
