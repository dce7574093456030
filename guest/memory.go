// Package guest serializes archives directly into and out of WebAssembly
// linear memory.
//
// Wrap adapts a wazero memory; NewSink and NewStream then give the codecs a
// sink and stream over a region of that memory, so a host can hand a guest
// module an archive without an intermediate buffer:
//
//	mem := guest.Wrap(mod.Memory())
//	sink := guest.NewSink(mem, ptr)
//	if err := c.Encode(sink, v); err != nil { ... }
//	// pass ptr and sink.Len() to the guest
package guest

import (
	"fmt"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/archive"
)

// PageSize is the size of a WebAssembly memory page.
const PageSize = 65536

// Memory wraps wazero memory to implement archive.Memory.
type Memory struct {
	mem api.Memory
}

// Wrap adapts mem.
func Wrap(mem api.Memory) *Memory {
	return &Memory{mem: mem}
}

func (m *Memory) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, fmt.Errorf("read out of bounds: offset=%d, length=%d", offset, length)
	}
	return data, nil
}

func (m *Memory) Write(offset uint32, data []byte) error {
	ok := m.mem.Write(offset, data)
	if !ok {
		return fmt.Errorf("write out of bounds: offset=%d, length=%d", offset, len(data))
	}
	return nil
}

func (m *Memory) Size() uint32 {
	if m.mem == nil {
		return 0
	}
	return m.mem.Size()
}

// Grow adds pages to the memory and returns the previous size in pages.
func (m *Memory) Grow(pages uint32) (uint32, error) {
	prev, ok := m.mem.Grow(pages)
	if !ok {
		return 0, fmt.Errorf("grow by %d pages failed at %d bytes", pages, m.Size())
	}
	return prev, nil
}

// Compile-time check that Memory implements archive.Memory, MemorySizer and MemoryGrower
var _ archive.Memory = (*Memory)(nil)
var _ archive.MemorySizer = (*Memory)(nil)
var _ archive.MemoryGrower = (*Memory)(nil)
