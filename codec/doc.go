// Package codec implements encoding and decoding of scalars and containers.
//
// A Codec[T] is a value that knows how to append a T to a Sink and how to
// decode a T from a Stream. Container codecs are built from element codecs,
// so any nesting is expressed by composing constructors:
//
//	// list<map<string, list<s64>>>
//	c := codec.SliceOf(codec.MapOf(codec.String, codec.SliceOf(codec.Int64)))
//
// # Wire Layout
//
//	Type               Layout
//	─────────────────────────────────────────────────────────
//	bool, u8, s8       1 byte
//	u16, s16           2 bytes, little endian
//	u32, s32, f32      4 bytes, little endian
//	u64, s64, f64      8 bytes, little endian
//	enum               s32
//	pair               [first][second]
//	string, bytes      [s64 length][raw bytes]
//	slice, list        [u64 count][elem]...
//	map                [u64 count][pair(key, value)]...   ascending keys
//	set                [u64 count][elem]...               ascending elements
//
// Counts and lengths always use 8 bytes regardless of the platform int size.
//
// # Decoding
//
// Every container decoder clears its destination before populating it. A
// decode either completes or returns the first error it hit; enclosing
// containers return that same error unchanged. On failure the destination
// holds whatever was decoded before the error and must be discarded or reset
// with Reset before reuse.
//
// Map and set decoders insert with a hint: the position of the previous
// insertion. Encoders emit entries in ascending order, so every hinted
// insertion is an append and reconstruction is linear.
//
// # Integrity Checks
//
// Decoders accept any count by default. WithMaxLength makes the slice, string
// and bytes decoders reject counts above a maximum before allocating. A count
// or length larger than what a bounded stream still holds is reported as
// a truncated read without allocating. The linked-list decoder
// performs no such check: it allocates one element at a time and a bogus count
// only fails once the stream runs dry.
package codec
