package codec

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
	"testing/iotest"

	archiveerrors "github.com/wippyai/archive/errors"
	"github.com/wippyai/archive/stream"
)

func TestScalarWireWidth(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []byte
	}{
		{"u8", encode(t, Uint8, 0xab), []byte{0xab}},
		{"s8", encode(t, Int8, -1), []byte{0xff}},
		{"u16", encode(t, Uint16, 0x0102), []byte{0x02, 0x01}},
		{"s16", encode(t, Int16, -2), []byte{0xfe, 0xff}},
		{"u32", encode(t, Uint32, 0x01020304), []byte{0x04, 0x03, 0x02, 0x01}},
		{"s32", encode(t, Int32, -1), []byte{0xff, 0xff, 0xff, 0xff}},
		{"u64", encode(t, Uint64, 3), []byte{3, 0, 0, 0, 0, 0, 0, 0}},
		{"s64", encode(t, Int64, -1), bytes.Repeat([]byte{0xff}, 8)},
		{"f32", encode(t, Float32, 1), []byte{0x00, 0x00, 0x80, 0x3f}},
		{"f64", encode(t, Float64, 1), []byte{0, 0, 0, 0, 0, 0, 0xf0, 0x3f}},
		{"bool true", encode(t, Bool, true), []byte{1}},
		{"bool false", encode(t, Bool, false), []byte{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !bytes.Equal(tt.data, tt.want) {
				t.Errorf("got %x, want %x", tt.data, tt.want)
			}
		})
	}
}

func TestScalarRoundTrip(t *testing.T) {
	if got := roundTrip(t, Int64, math.MinInt64); got != math.MinInt64 {
		t.Errorf("s64: got %d", got)
	}
	if got := roundTrip(t, Uint64, math.MaxUint64); got != math.MaxUint64 {
		t.Errorf("u64: got %d", got)
	}
	if got := roundTrip(t, Int32, -123456); got != -123456 {
		t.Errorf("s32: got %d", got)
	}
	if got := roundTrip(t, Uint16, 65535); got != 65535 {
		t.Errorf("u16: got %d", got)
	}
	if got := roundTrip(t, Int8, -128); got != -128 {
		t.Errorf("s8: got %d", got)
	}
	if got := roundTrip(t, Float64, math.Pi); got != math.Pi {
		t.Errorf("f64: got %v", got)
	}
	if got := roundTrip(t, Float32, float32(-0.5)); got != -0.5 {
		t.Errorf("f32: got %v", got)
	}
	if got := roundTrip(t, Bool, true); !got {
		t.Error("bool: got false")
	}
}

func TestScalarTruncated(t *testing.T) {
	var v uint64
	err := Uint64.Decode(stream.NewBytesReader([]byte{1, 2, 3}), &v)
	expectStatus(t, err, archiveerrors.StatusTruncatedRead)
	if !errors.Is(err, archiveerrors.ErrTruncatedRead) {
		t.Errorf("expected ErrTruncatedRead, got %v", err)
	}
}

func TestScalarStreamError(t *testing.T) {
	boom := errors.New("boom")
	var v int32
	err := Int32.Decode(iotest.ErrReader(boom), &v)
	expectStatus(t, err, archiveerrors.StatusStreamError)
	if !errors.Is(err, boom) {
		t.Errorf("cause should be kept, got %v", err)
	}

	// partial data followed by a hard failure is still a stream error
	r := io.MultiReader(bytes.NewReader([]byte{1, 2}), iotest.ErrReader(boom))
	err = Int32.Decode(r, &v)
	expectStatus(t, err, archiveerrors.StatusStreamError)
}

func TestScalarOneByteReads(t *testing.T) {
	data := encode(t, Int64, 0x0102030405060708)
	var v int64
	if err := Int64.Decode(iotest.OneByteReader(bytes.NewReader(data)), &v); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if v != 0x0102030405060708 {
		t.Errorf("got %x", v)
	}
}

func TestBoolInvalid(t *testing.T) {
	var v bool
	err := Bool.Decode(stream.NewBytesReader([]byte{2}), &v)
	expectStatus(t, err, archiveerrors.StatusInvalidData)
}

type color uint8

const (
	red color = iota
	green
	blue
	colorCount
)

func TestEnum(t *testing.T) {
	c := Enum[color](int(colorCount))

	data := encode(t, c, blue)
	if want := (&wire{}).i32(2).bytes(); !bytes.Equal(data, want) {
		t.Errorf("wire: got %x, want %x", data, want)
	}
	if got := roundTrip(t, c, green); got != green {
		t.Errorf("round trip: got %d", got)
	}

	var v color
	err := c.Decode(stream.NewBytesReader((&wire{}).i32(3).bytes()), &v)
	expectStatus(t, err, archiveerrors.StatusInvalidData)
	if !errors.Is(err, &archiveerrors.Error{Phase: archiveerrors.PhaseDecode, Kind: archiveerrors.KindInvalidEnum}) {
		t.Errorf("expected invalid enum, got %v", err)
	}

	err = c.Decode(stream.NewBytesReader((&wire{}).i32(-1).bytes()), &v)
	expectStatus(t, err, archiveerrors.StatusInvalidData)

	if err := c.Encode(stream.NewWriter(), color(7)); err == nil {
		t.Error("encoding an out-of-range enum should fail")
	}
}
