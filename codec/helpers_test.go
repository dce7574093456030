package codec

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/wippyai/archive/errors"
	"github.com/wippyai/archive/stream"
)

// wire builds expected byte sequences.
type wire struct {
	buf bytes.Buffer
}

func (w *wire) u64(v uint64) *wire {
	_ = binary.Write(&w.buf, binary.LittleEndian, v)
	return w
}

func (w *wire) i64(v int64) *wire {
	_ = binary.Write(&w.buf, binary.LittleEndian, v)
	return w
}

func (w *wire) i32(v int32) *wire {
	_ = binary.Write(&w.buf, binary.LittleEndian, v)
	return w
}

func (w *wire) raw(p ...byte) *wire {
	w.buf.Write(p)
	return w
}

func (w *wire) str(s string) *wire {
	w.i64(int64(len(s)))
	w.buf.WriteString(s)
	return w
}

func (w *wire) bytes() []byte {
	return w.buf.Bytes()
}

func encode[T any](t *testing.T, c Codec[T], v T) []byte {
	t.Helper()
	w := stream.NewWriter()
	if err := c.Encode(w, v); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return w.Bytes()
}

func roundTrip[T any](t *testing.T, c Codec[T], v T) T {
	t.Helper()
	data := encode(t, c, v)
	var out T
	r := stream.NewBytesReader(data)
	if err := c.Decode(r, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if r.Remaining() != 0 {
		t.Fatalf("Decode left %d bytes unread", r.Remaining())
	}
	return out
}

func expectStatus(t *testing.T, err error, want int) {
	t.Helper()
	if got := errors.Status(err); got != want {
		t.Errorf("status: got %d (%v), want %d", got, err, want)
	}
}
