package archive

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"
)

func TestForceRead_Full(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	buf := make([]byte, 5)

	n, err := ForceRead(bytes.NewReader(data), buf)
	if err != nil {
		t.Fatalf("ForceRead: %v", err)
	}
	if n != 5 {
		t.Errorf("n: got %d, want 5", n)
	}
	if !bytes.Equal(buf, data) {
		t.Errorf("data: got %v, want %v", buf, data)
	}
}

func TestForceRead_RetriesShortReads(t *testing.T) {
	data := []byte("hello world")
	buf := make([]byte, len(data))

	n, err := ForceRead(iotest.OneByteReader(bytes.NewReader(data)), buf)
	if err != nil {
		t.Fatalf("ForceRead: %v", err)
	}
	if n != len(data) {
		t.Errorf("n: got %d, want %d", n, len(data))
	}
	if string(buf) != "hello world" {
		t.Errorf("data: got %q", buf)
	}
}

func TestForceRead_EndOfStream(t *testing.T) {
	buf := make([]byte, 10)

	n, err := ForceRead(bytes.NewReader([]byte{1, 2, 3, 4}), buf)
	if err != nil {
		t.Fatalf("end of stream must not be an error, got %v", err)
	}
	if n != 4 {
		t.Errorf("n: got %d, want 4", n)
	}

	n, err = ForceRead(bytes.NewReader(nil), buf)
	if err != nil {
		t.Fatalf("empty stream must not be an error, got %v", err)
	}
	if n != 0 {
		t.Errorf("n: got %d, want 0", n)
	}
}

func TestForceRead_HardFailure(t *testing.T) {
	boom := errors.New("boom")
	buf := make([]byte, 4)

	_, err := ForceRead(iotest.ErrReader(boom), buf)
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}

func TestForceRead_ZeroLength(t *testing.T) {
	n, err := ForceRead(iotest.ErrReader(errors.New("unused")), nil)
	if err != nil || n != 0 {
		t.Errorf("zero-length read: got (%d, %v), want (0, nil)", n, err)
	}
}
