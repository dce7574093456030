package guest

import (
	"io"
	"math"

	"github.com/wippyai/archive"
)

// Stream reads a region of linear memory. It reports end of stream once the
// region is consumed, and returns the memory's error when the region lies
// outside the memory.
type Stream struct {
	mem    archive.Memory
	offset uint32
	end    uint32
}

// NewStream returns a stream over length bytes of mem starting at offset.
// A region running past the 32-bit address space is cut at its end.
func NewStream(mem archive.Memory, offset, length uint32) *Stream {
	end := min(uint64(offset)+uint64(length), math.MaxUint32)
	return &Stream{mem: mem, offset: offset, end: uint32(end)}
}

func (s *Stream) Read(p []byte) (int, error) {
	if s.offset >= s.end {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}

	n := uint32(min(uint64(len(p)), uint64(s.end-s.offset)))
	data, err := s.mem.Read(s.offset, n)
	if err != nil {
		return 0, err
	}
	copy(p, data)
	s.offset += n
	return int(n), nil
}

// Remaining returns the number of unread bytes in the region.
func (s *Stream) Remaining() int {
	return int(s.end - s.offset)
}

var _ archive.Stream = (*Stream)(nil)
