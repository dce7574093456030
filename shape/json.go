package shape

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/wippyai/archive/container"
	"github.com/wippyai/archive/errors"
)

// FromJSON converts a value produced by encoding/json into the dynamic value
// for shape s. Numbers may be float64 or json.Number. Maps whose key shape is
// string accept JSON objects; every map also accepts an array of [key, value]
// arrays. Bytes accept a base64 string or an array of numbers. Tuples are
// two-element arrays.
func FromJSON(s *Shape, v any) (any, error) {
	return fromJSON(s, v, "$")
}

// ParseJSON decodes text and converts it with FromJSON. Numbers are kept
// exact, so 64-bit integers survive the conversion.
func ParseJSON(s *Shape, text []byte) (any, error) {
	d := json.NewDecoder(bytes.NewReader(text))
	d.UseNumber()

	var v any
	if err := d.Decode(&v); err != nil {
		return nil, errors.Wrap(errors.PhaseParse, errors.KindInvalidInput, err, "malformed JSON value")
	}
	return FromJSON(s, v)
}

func fromJSON(s *Shape, v any, path string) (any, error) {
	switch s.Kind {
	case Bool:
		b, ok := v.(bool)
		if !ok {
			return nil, jsonMismatch(path, "boolean", v)
		}
		return b, nil
	case U8:
		return unsignedFromJSON[uint8](v, path, math.MaxUint8)
	case U16:
		return unsignedFromJSON[uint16](v, path, math.MaxUint16)
	case U32:
		return unsignedFromJSON[uint32](v, path, math.MaxUint32)
	case U64:
		return unsignedFromJSON[uint64](v, path, math.MaxUint64)
	case S8:
		return signedFromJSON[int8](v, path, math.MinInt8, math.MaxInt8)
	case S16:
		return signedFromJSON[int16](v, path, math.MinInt16, math.MaxInt16)
	case S32:
		return signedFromJSON[int32](v, path, math.MinInt32, math.MaxInt32)
	case S64:
		return signedFromJSON[int64](v, path, math.MinInt64, math.MaxInt64)
	case F32:
		f, err := floatFromJSON(v, path)
		return float32(f), err
	case F64:
		return floatFromJSON(v, path)
	case String:
		str, ok := v.(string)
		if !ok {
			return nil, jsonMismatch(path, "string", v)
		}
		return str, nil
	case Bytes:
		return bytesFromJSON(v, path)
	case List:
		items, err := arrayFromJSON(s.Elem, v, path)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []any{}
		}
		return items, nil
	case Linked:
		items, err := arrayFromJSON(s.Elem, v, path)
		if err != nil {
			return nil, err
		}
		return container.NewList(items...), nil
	case Set:
		items, err := arrayFromJSON(s.Elem, v, path)
		if err != nil {
			return nil, err
		}
		set := container.NewSetFunc(Compare(s.Elem))
		for _, item := range items {
			set.Add(item)
		}
		return set, nil
	case Map:
		return mapFromJSON(s, v, path)
	case Tuple:
		arr, ok := v.([]any)
		if !ok || len(arr) != 2 {
			return nil, jsonMismatch(path, "two-element array", v)
		}
		first, err := fromJSON(s.Elem, arr[0], path+"[0]")
		if err != nil {
			return nil, err
		}
		second, err := fromJSON(s.Value, arr[1], path+"[1]")
		if err != nil {
			return nil, err
		}
		return container.MakePair(first, second), nil
	}
	return nil, errors.Unsupported(errors.PhaseParse, fmt.Sprintf("shape kind %d", s.Kind))
}

func arrayFromJSON(elem *Shape, v any, path string) ([]any, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, jsonMismatch(path, "array", v)
	}
	items := make([]any, len(arr))
	for i, raw := range arr {
		item, err := fromJSON(elem, raw, path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

func mapFromJSON(s *Shape, v any, path string) (any, error) {
	m := container.NewMapFunc[any, any](Compare(s.Elem))

	if obj, ok := v.(map[string]any); ok && s.Elem.Kind == String {
		for k, raw := range obj {
			item, err := fromJSON(s.Value, raw, path+"."+k)
			if err != nil {
				return nil, err
			}
			m.Set(k, item)
		}
		return m, nil
	}

	arr, ok := v.([]any)
	if !ok {
		return nil, jsonMismatch(path, "array of [key, value] pairs", v)
	}
	for i, raw := range arr {
		entry, ok := raw.([]any)
		itemPath := path + "[" + strconv.Itoa(i) + "]"
		if !ok || len(entry) != 2 {
			return nil, jsonMismatch(itemPath, "[key, value] pair", raw)
		}
		k, err := fromJSON(s.Elem, entry[0], itemPath+"[0]")
		if err != nil {
			return nil, err
		}
		val, err := fromJSON(s.Value, entry[1], itemPath+"[1]")
		if err != nil {
			return nil, err
		}
		m.Set(k, val)
	}
	return m, nil
}

func bytesFromJSON(v any, path string) ([]byte, error) {
	switch b := v.(type) {
	case string:
		data, err := base64.StdEncoding.DecodeString(b)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseParse, errors.KindInvalidInput, err, path+": invalid base64")
		}
		return data, nil
	case []any:
		data := make([]byte, len(b))
		for i, raw := range b {
			n, err := unsignedFromJSON[uint8](raw, path+"["+strconv.Itoa(i)+"]", math.MaxUint8)
			if err != nil {
				return nil, err
			}
			data[i] = n
		}
		return data, nil
	}
	return nil, jsonMismatch(path, "base64 string or byte array", v)
}

func unsignedFromJSON[T uint8 | uint16 | uint32 | uint64](v any, path string, limit uint64) (T, error) {
	var n uint64
	switch x := v.(type) {
	case json.Number:
		parsed, err := strconv.ParseUint(x.String(), 10, 64)
		if err != nil {
			return 0, jsonRange(path, v)
		}
		n = parsed
	case float64:
		if x < 0 || x != math.Trunc(x) || x >= math.MaxUint64 {
			return 0, jsonRange(path, v)
		}
		n = uint64(x)
	default:
		return 0, jsonMismatch(path, "number", v)
	}
	if n > limit {
		return 0, jsonRange(path, v)
	}
	return T(n), nil
}

func signedFromJSON[T int8 | int16 | int32 | int64](v any, path string, lo, hi int64) (T, error) {
	var n int64
	switch x := v.(type) {
	case json.Number:
		parsed, err := strconv.ParseInt(x.String(), 10, 64)
		if err != nil {
			return 0, jsonRange(path, v)
		}
		n = parsed
	case float64:
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			return 0, jsonRange(path, v)
		}
		n = int64(x)
	default:
		return 0, jsonMismatch(path, "number", v)
	}
	if n < lo || n > hi {
		return 0, jsonRange(path, v)
	}
	return T(n), nil
}

func floatFromJSON(v any, path string) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, jsonRange(path, v)
		}
		return f, nil
	}
	return 0, jsonMismatch(path, "number", v)
}

func jsonMismatch(path, want string, got any) error {
	return errors.New(errors.PhaseParse, errors.KindTypeMismatch).
		Value(got).
		Detail("%s: expected %s, got %T", path, want, got).
		Build()
}

func jsonRange(path string, got any) error {
	return errors.New(errors.PhaseParse, errors.KindInvalidInput).
		Value(got).
		Detail("%s: %v is not representable", path, got).
		Build()
}
