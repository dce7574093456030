// Package shape describes archive layouts at runtime.
//
// A Shape is a small type expression such as map<string,list<s64>>. It can be
// parsed from text, converted to and from WIT types, and compiled into a
// codec.Codec[any] that encodes and decodes dynamic Go values with exactly
// the wire layout the static codecs in package codec produce for the same
// structure:
//
//	s := shape.MustParse("map<string,list<s64>>")
//	c, err := shape.Compile(s)
//	...
//	v, err := shape.ParseJSON(s, []byte(`{"a": [1, 2]}`))
//	data, err := codec.Marshal(c, v)
//
// Grammar:
//
//	shape  = scalar | "list<" shape ">" | "linked<" shape ">" | "set<" shape ">"
//	       | "map<" shape "," shape ">" | "tuple<" shape "," shape ">"
//	scalar = "bool" | "u8" | "s8" | "u16" | "s16" | "u32" | "s32" | "u64" | "s64"
//	       | "f32" | "f64" | "string" | "bytes"
package shape
