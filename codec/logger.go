package codec

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger atomic.Pointer[zap.Logger]
	nop    = zap.NewNop()
)

// Logger returns the codec logger. It is a no-op logger unless SetLogger was
// called.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nop
}

// SetLogger replaces the codec logger. Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

// logDecodeFailure records where inside a container a decode stopped.
func logDecodeFailure(container string, index, count uint64, err error) {
	if ce := Logger().Check(zap.DebugLevel, "container decode failed"); ce != nil {
		ce.Write(
			zap.String("container", container),
			zap.Uint64("index", index),
			zap.Uint64("count", count),
			zap.Error(err),
		)
	}
}
