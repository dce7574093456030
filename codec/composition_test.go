package codec

import (
	"slices"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/archive/container"
	archiveerrors "github.com/wippyai/archive/errors"
	"github.com/wippyai/archive/stream"
)

type point struct {
	Name string
	X, Y int64
}

func (p *point) MarshalArchive(s Sink) error {
	if err := String.Encode(s, p.Name); err != nil {
		return err
	}
	if err := Int64.Encode(s, p.X); err != nil {
		return err
	}
	return Int64.Encode(s, p.Y)
}

func (p *point) UnmarshalArchive(r Stream) error {
	if err := String.Decode(r, &p.Name); err != nil {
		return err
	}
	if err := Int64.Decode(r, &p.X); err != nil {
		return err
	}
	return Int64.Decode(r, &p.Y)
}

func TestNested_SliceOfMaps(t *testing.T) {
	c := SliceOf(MapOf(String, SliceOf(Int64)))

	first := container.NewMap[string, []int64]()
	first.Set("odd", []int64{1, 3, 5})
	first.Set("even", []int64{2, 4})
	first.Set("none", []int64{})
	second := container.NewMap[string, []int64]()

	in := []container.Map[string, []int64]{*first, *second}
	got := roundTrip(t, c, in)

	if len(got) != 2 {
		t.Fatalf("len: got %d, want 2", len(got))
	}
	if keys := slices.Collect(got[0].Keys()); !slices.Equal(keys, []string{"even", "none", "odd"}) {
		t.Errorf("keys: got %v", keys)
	}
	if v, _ := got[0].Get("odd"); !slices.Equal(v, []int64{1, 3, 5}) {
		t.Errorf("odd: got %v", v)
	}
	if v, _ := got[0].Get("none"); len(v) != 0 {
		t.Errorf("none: got %v", v)
	}
	if got[1].Len() != 0 {
		t.Errorf("second map: got %d entries", got[1].Len())
	}
}

func TestNested_ListOfPairs(t *testing.T) {
	c := ListOf(PairOf(String, SetOf(Uint16)))

	tags := container.NewSet[uint16]()
	tags.Add(7)
	tags.Add(3)
	in := container.NewList(
		container.MakePair("a", *tags),
		container.MakePair("b", *container.NewSet[uint16]()),
	)

	got := roundTrip(t, c, *in)
	if got.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", got.Len())
	}
	front := got.Front().Value
	if front.First != "a" || !slices.Equal(front.Second.Values(), []uint16{3, 7}) {
		t.Errorf("front: got %s %v", front.First, front.Second.Values())
	}
	if back := got.Back().Value; back.First != "b" || back.Second.Len() != 0 {
		t.Errorf("back: got %s %v", back.First, back.Second.Values())
	}
}

func TestNested_StatusPropagates(t *testing.T) {
	const code = 42
	failing := Func[int64]{
		EncodeFunc: func(s Sink, v int64) error { return Int64.Encode(s, v) },
		DecodeFunc: func(r Stream, dst *int64) error {
			if err := Int64.Decode(r, dst); err != nil {
				return err
			}
			if *dst < 0 {
				return archiveerrors.Code(code)
			}
			return nil
		},
	}
	c := MapOf(String, SliceOf(failing))

	data := (&wire{}).u64(2).
		str("a").u64(1).i64(1).
		str("b").u64(2).i64(2).i64(-1).
		bytes()

	var dst container.Map[string, []int64]
	err := c.Decode(stream.NewBytesReader(data), &dst)
	expectStatus(t, err, code)

	if !archiveerrors.Is(err, archiveerrors.Code(code)) {
		t.Errorf("Is(Code(%d)): got false for %v", code, err)
	}
	if dst.Len() != 1 {
		t.Errorf("Len: got %d, want 1", dst.Len())
	}
}

func TestNested_TruncationPropagates(t *testing.T) {
	c := SliceOf(SliceOf(String))
	data, err := Marshal(c, [][]string{{"x", "yy"}, {"zzz"}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	for cut := 0; cut < len(data); cut++ {
		var out [][]string
		err := c.Decode(stream.NewBytesReader(data[:cut]), &out)
		expectStatus(t, err, archiveerrors.StatusTruncatedRead)
	}
}

func TestObject(t *testing.T) {
	c := SliceOf(Object[point]())
	in := []point{{Name: "origin"}, {Name: "p", X: -4, Y: 9}}

	got := roundTrip(t, c, in)
	if !slices.Equal(got, in) {
		t.Errorf("got %v, want %v", got, in)
	}

	data := encode(t, Object[point](), point{Name: "ab", X: 1, Y: 2})
	want := (&wire{}).str("ab").i64(1).i64(2).bytes()
	if string(data) != string(want) {
		t.Errorf("wire: got %x, want %x", data, want)
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := MapOf(Int32, String)
	m := container.NewMap[int32, string]()
	m.Set(2, "two")
	m.Set(1, "one")

	data, err := Marshal(c, *m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out container.Map[int32, string]
	if err := Unmarshal(c, data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !slices.Equal(out.Entries(), m.Entries()) {
		t.Errorf("got %v, want %v", out.Entries(), m.Entries())
	}

	err = Unmarshal(c, append(data, 0), &out)
	expectStatus(t, err, archiveerrors.StatusInvalidData)
}

func TestUnmarshal_FailurePosition(t *testing.T) {
	c := SliceOf(PairOf(String, Int64))
	// The second pair's int64 stops after three bytes.
	data := (&wire{}).u64(2).str("ab").i64(1).str("c").raw(1, 2, 3).bytes()

	var out []container.Pair[string, int64]
	err := Unmarshal(c, data, &out)
	expectStatus(t, err, archiveerrors.StatusTruncatedRead)

	var pe *stream.PositionError
	if !archiveerrors.As(err, &pe) {
		t.Fatalf("got %T, want *stream.PositionError", err)
	}
	if want := int64(len(data)); pe.Position != want {
		t.Errorf("position: got %d, want %d", pe.Position, want)
	}
	if !archiveerrors.Is(err, archiveerrors.ErrTruncatedRead) {
		t.Errorf("expected ErrTruncatedRead through the wrapper, got %v", err)
	}
}

func TestReset(t *testing.T) {
	c := SliceOf(Int64)
	data := (&wire{}).u64(3).i64(1).i64(2).bytes()

	var out []int64
	if err := c.Decode(stream.NewBytesReader(data), &out); err == nil {
		t.Fatal("expected truncated decode")
	}
	Reset(&out)
	if out != nil {
		t.Errorf("slice: got %v, want nil", out)
	}

	l := container.NewList[int64](1, 2)
	Reset(l)
	if l.Len() != 0 {
		t.Errorf("list: got %d elements", l.Len())
	}

	m := container.NewMap[string, int64]()
	m.Set("a", 1)
	Reset(m)
	if m.Len() != 0 {
		t.Errorf("map: got %d entries", m.Len())
	}

	p := point{Name: "x", X: 1}
	Reset(&p)
	if p != (point{}) {
		t.Errorf("object: got %v", p)
	}
}

func TestDecodeFailureLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	data := (&wire{}).u64(2).i64(5).bytes()
	var out []int64
	err := SliceOf(Int64).Decode(stream.NewBytesReader(data), &out)
	expectStatus(t, err, archiveerrors.StatusTruncatedRead)

	entries := logs.FilterMessage("container decode failed").All()
	if len(entries) != 1 {
		t.Fatalf("log entries: got %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["container"] != "sequence" {
		t.Errorf("container: got %v, want sequence", fields["container"])
	}
	if fields["index"] != uint64(1) {
		t.Errorf("index: got %v, want 1", fields["index"])
	}
}
