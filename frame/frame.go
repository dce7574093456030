// Package frame wraps archive payloads in a checksummed envelope:
//
//	[u64 payload length][payload][u64 xxhash64 of payload]
//
// The length and checksum use the same little-endian layout as every other
// archive scalar, so a frame is itself a valid archive of a byte sequence
// followed by a u64.
package frame

import (
	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/wippyai/archive"
	"github.com/wippyai/archive/codec"
	"github.com/wippyai/archive/errors"
)

// DefaultMaxLength bounds payloads written by Encode and read by Decode.
const DefaultMaxLength = 1 << 28

// Overhead is the number of envelope bytes around a payload.
const Overhead = 16

// Write appends payload to s inside an envelope.
func Write(s archive.Sink, payload []byte) error {
	if err := codec.Uint64.Encode(s, uint64(len(payload))); err != nil {
		return err
	}
	if err := s.Append(payload); err != nil {
		return err
	}
	return codec.Uint64.Encode(s, xxhash.Sum64(payload))
}

// Read reads one envelope from r and returns its verified payload. Payloads
// longer than maxLen are rejected before any allocation.
func Read(r archive.Stream, maxLen uint64) ([]byte, error) {
	var n uint64
	if err := codec.Uint64.Decode(r, &n); err != nil {
		return nil, err
	}
	if n > maxLen {
		return nil, errors.Overflow(errors.PhaseDecode, "frame length", n, maxLen)
	}

	payload := make([]byte, n)
	got, err := archive.ForceRead(r, payload)
	if err != nil {
		return nil, errors.StreamFailure(errors.PhaseDecode, err)
	}
	if got < len(payload) {
		return nil, errors.Truncated(len(payload), got)
	}

	var sum uint64
	if err := codec.Uint64.Decode(r, &sum); err != nil {
		return nil, err
	}
	if actual := xxhash.Sum64(payload); actual != sum {
		codec.Logger().Debug("frame checksum mismatch",
			zap.Uint64("length", n),
			zap.Uint64("want", sum),
			zap.Uint64("got", actual),
		)
		return nil, errors.Checksum(sum, actual)
	}
	return payload, nil
}

// Encode encodes v with c and writes the result to s as one envelope.
func Encode[T any](s archive.Sink, c codec.Codec[T], v T) error {
	w := getWriter()
	defer putWriter(w)

	if err := c.Encode(w, v); err != nil {
		return err
	}
	if n := uint64(w.Len()); n > DefaultMaxLength {
		return errors.Overflow(errors.PhaseEncode, "frame length", n, DefaultMaxLength)
	}
	return Write(s, w.Bytes())
}

// Decode reads one envelope from r and decodes its payload into dst with c.
// A payload with bytes left over after the value is invalid data.
func Decode[T any](r archive.Stream, c codec.Codec[T], dst *T) error {
	return DecodeLimit(r, c, dst, DefaultMaxLength)
}

// DecodeLimit is Decode with an explicit payload limit.
func DecodeLimit[T any](r archive.Stream, c codec.Codec[T], dst *T, maxLen uint64) error {
	payload, err := Read(r, maxLen)
	if err != nil {
		return err
	}
	return codec.Unmarshal(c, payload, dst)
}
