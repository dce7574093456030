// Package stream provides concrete archive sinks and streams.
//
// Writer is an in-memory append-only sink backed by a bytes.Buffer. Reader
// wraps any io.Reader as an archive stream and tracks the byte position, which
// is useful when reporting where a decode stopped. FromWriter adapts an
// io.Writer such as a file into a sink.
package stream
