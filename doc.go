// Package archive provides container serialization on top of a minimal binary
// archive primitive: an append-only byte Sink and a consumable byte Stream.
//
// Scalars are written with a fixed width. Containers are written as an 8-byte
// count followed by their elements, each encoded by its own codec, so nested
// shapes such as a list of maps of strings to lists compose without bespoke
// code.
//
// # Architecture Overview
//
//	archive/          Root package with the Sink, Stream and Memory interfaces
//	├── codec/        Scalar and container codecs (pair, string, list, map, set)
//	├── container/    Ordered Map and Set with hinted insertion, linked List
//	├── errors/       Structured error types and status codes
//	├── stream/       In-memory and io-backed sinks and streams
//	├── guest/        Sinks and streams over WASM linear memory (wazero)
//	├── shape/        Runtime-described shapes, dynamic codecs and the WIT bridge
//	├── frame/        Checksummed envelope for whole archives
//	├── config/       YAML configuration for limits and logging
//	├── cmd/archive/  CLI: encode JSON, decode archives, interactive browser
//	└── examples/     Runnable usage examples
//
// # Wire Layout
//
//	container   [u64 count][elem 1]...[elem n]
//	pair        [first][second]
//	string      [s64 length][raw bytes]
//
// All fixed-width values are little endian.
//
// # Quick Start
//
//	c := codec.SliceOf(codec.MapOf(codec.String, codec.SliceOf(codec.Int64)))
//
//	w := stream.NewWriter()
//	if err := c.Encode(w, value); err != nil {
//	    log.Fatal(err)
//	}
//
//	var out []container.Map[string, []int64]
//	if err := c.Decode(stream.NewBytesReader(w.Bytes()), &out); err != nil {
//	    log.Fatal(err)
//	}
//
// # Failure Semantics
//
// Decoding is fail-fast and not transactional. On error the destination is left
// partially populated and must be discarded or reset with codec.Reset before
// it is reused.
//
// # Thread Safety
//
// Codecs are stateless and safe for concurrent use. Sinks, streams and
// destinations are owned by a single call and must not be shared while a call
// is in progress.
package archive
