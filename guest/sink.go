package guest

import (
	"math"

	"go.uber.org/zap"

	"github.com/wippyai/archive"
	"github.com/wippyai/archive/codec"
	"github.com/wippyai/archive/errors"
)

// Sink appends to linear memory starting at a fixed offset. When the memory
// reports its size and can grow, Sink grows it page by page as needed;
// otherwise writes past the end fail with a stream error.
type Sink struct {
	mem    archive.Memory
	start  uint32
	offset uint32
}

// NewSink returns a sink writing to mem at offset.
func NewSink(mem archive.Memory, offset uint32) *Sink {
	return &Sink{mem: mem, start: offset, offset: offset}
}

func (s *Sink) Append(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if uint64(s.offset)+uint64(len(p)) > math.MaxUint32 {
		return errors.New(errors.PhaseEncode, errors.KindStreamError).
			Value(s.offset).
			Detail("append of %d bytes at %d exceeds 32-bit address space", len(p), s.offset).
			Build()
	}
	end := s.offset + uint32(len(p))

	if err := s.ensure(end); err != nil {
		return errors.StreamFailure(errors.PhaseEncode, err)
	}
	if err := s.mem.Write(s.offset, p); err != nil {
		return errors.StreamFailure(errors.PhaseEncode, err)
	}
	s.offset = end
	return nil
}

// ensure grows the memory so that it holds at least end bytes.
func (s *Sink) ensure(end uint32) error {
	sizer, ok := s.mem.(archive.MemorySizer)
	if !ok {
		return nil
	}
	grower, ok := s.mem.(archive.MemoryGrower)
	if !ok {
		return nil
	}

	size := sizer.Size()
	if end <= size {
		return nil
	}
	pages := uint32((uint64(end-size) + PageSize - 1) / PageSize)
	if _, err := grower.Grow(pages); err != nil {
		return err
	}
	codec.Logger().Debug("guest memory grown",
		zap.Uint32("pages", pages),
		zap.Uint32("size", sizer.Size()),
	)
	return nil
}

// Start returns the offset of the first byte written.
func (s *Sink) Start() uint32 {
	return s.start
}

// Offset returns the offset of the next byte to be written.
func (s *Sink) Offset() uint32 {
	return s.offset
}

// Len returns the number of bytes written.
func (s *Sink) Len() uint32 {
	return s.offset - s.start
}
