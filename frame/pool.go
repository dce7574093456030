package frame

import (
	"sync"

	"github.com/wippyai/archive/stream"
)

const (
	// Pool limits to prevent memory bloat
	poolMaxCap  = 1 << 20
	poolInitCap = 256
)

var writerPool = sync.Pool{
	New: func() any {
		return stream.NewWriterSize(poolInitCap)
	},
}

func getWriter() *stream.Writer {
	return writerPool.Get().(*stream.Writer)
}

func putWriter(w *stream.Writer) {
	if w == nil || w.Cap() > poolMaxCap {
		return // reject oversized
	}
	w.Reset()
	writerPool.Put(w)
}
