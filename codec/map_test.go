package codec

import (
	"bytes"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/wippyai/archive/container"
	archiveerrors "github.com/wippyai/archive/errors"
	"github.com/wippyai/archive/stream"
)

func TestMap_EncodeAB(t *testing.T) {
	c := MapOf(String, Int64)
	m := container.NewMap[string, int64]()
	m.Set("b", 2)
	m.Set("a", 1)

	data := encode(t, c, *m)
	want := (&wire{}).u64(2).str("a").i64(1).str("b").i64(2).bytes()
	if !bytes.Equal(data, want) {
		t.Errorf("wire: got %x, want %x", data, want)
	}

	got := roundTrip(t, c, *m)
	if got.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", got.Len())
	}
	if v, ok := got.Get("a"); !ok || v != 1 {
		t.Errorf("a: got (%d, %v)", v, ok)
	}
	if v, ok := got.Get("b"); !ok || v != 2 {
		t.Errorf("b: got (%d, %v)", v, ok)
	}
}

func TestMap_Fidelity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	keys := rng.Perm(200)

	m := container.NewMap[int64, string]()
	for _, k := range keys {
		m.Set(int64(k), strings.Repeat("x", k%7))
	}

	for _, in := range []*container.Map[int64, string]{
		container.NewMap[int64, string](),
		func() *container.Map[int64, string] {
			s := container.NewMap[int64, string]()
			s.Set(42, "answer")
			return s
		}(),
		m,
	} {
		got := roundTrip(t, MapOf(Int64, String), *in)
		if !slices.Equal(got.Entries(), in.Entries()) {
			t.Errorf("entries differ after round trip of %d entries", in.Len())
		}
	}
}

func TestMap_ClearsDestination(t *testing.T) {
	c := MapOf(String, Int64)
	dst := container.NewMap[string, int64]()
	dst.Set("stale", 1)

	data := (&wire{}).u64(1).str("fresh").i64(2).bytes()
	if err := c.Decode(stream.NewBytesReader(data), dst); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, ok := dst.Get("stale"); ok || dst.Len() != 1 {
		t.Errorf("destination not cleared: %v", dst.Entries())
	}
}

func TestMap_ZeroValueDestination(t *testing.T) {
	var dst container.Map[string, int64]
	data := (&wire{}).u64(1).str("k").i64(5).bytes()

	if err := MapOf(String, Int64).Decode(stream.NewBytesReader(data), &dst); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if v, _ := dst.Get("k"); v != 5 {
		t.Errorf("got %d, want 5", v)
	}
}

func TestMap_PartialFailure(t *testing.T) {
	c := MapOf(String, Int64)
	// third key carries a negative length
	data := (&wire{}).u64(3).str("a").i64(1).str("b").i64(2).i64(-1).bytes()

	var dst container.Map[string, int64]
	err := c.Decode(stream.NewBytesReader(data), &dst)
	expectStatus(t, err, archiveerrors.StatusInvalidLength)

	if keys := slices.Collect(dst.Keys()); !slices.Equal(keys, []string{"a", "b"}) {
		t.Errorf("inserted prefix: got %v, want [a b]", keys)
	}
}

func TestMap_UnsortedInput(t *testing.T) {
	data := (&wire{}).u64(3).str("c").i64(3).str("a").i64(1).str("b").i64(2).bytes()

	var dst container.Map[string, int64]
	if err := MapOf(String, Int64).Decode(stream.NewBytesReader(data), &dst); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if keys := slices.Collect(dst.Keys()); !slices.Equal(keys, []string{"a", "b", "c"}) {
		t.Errorf("keys: got %v", keys)
	}
}

func TestMap_DuplicateKeysKeepFirst(t *testing.T) {
	data := (&wire{}).u64(2).str("a").i64(1).str("a").i64(2).bytes()

	var dst container.Map[string, int64]
	if err := MapOf(String, Int64).Decode(stream.NewBytesReader(data), &dst); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if v, _ := dst.Get("a"); v != 1 || dst.Len() != 1 {
		t.Errorf("got len %d value %d, want len 1 value 1", dst.Len(), v)
	}
}

func TestMapFunc_CustomOrder(t *testing.T) {
	byLength := func(a, b string) int { return len(a) - len(b) }
	c := MapFunc(String, Bool, byLength)

	m := container.NewMapFunc[string, bool](byLength)
	m.Set("ccc", true)
	m.Set("a", false)
	m.Set("bb", true)

	got := roundTrip(t, c, *m)
	if keys := slices.Collect(got.Keys()); !slices.Equal(keys, []string{"a", "bb", "ccc"}) {
		t.Errorf("keys: got %v", keys)
	}
}

func TestSet_RoundTrip(t *testing.T) {
	c := SetOf(Int32)
	s := container.NewSet[int32]()
	for _, v := range []int32{9, -3, 4, 4, 0} {
		s.Add(v)
	}

	data := encode(t, c, *s)
	want := (&wire{}).u64(4).i32(-3).i32(0).i32(4).i32(9).bytes()
	if !bytes.Equal(data, want) {
		t.Errorf("wire: got %x, want %x", data, want)
	}

	got := roundTrip(t, c, *s)
	if !slices.Equal(got.Values(), []int32{-3, 0, 4, 9}) {
		t.Errorf("round trip: got %v", got.Values())
	}

	empty := roundTrip(t, c, *container.NewSet[int32]())
	if empty.Len() != 0 {
		t.Errorf("empty: got %v", empty.Values())
	}
}

func TestSet_PartialFailure(t *testing.T) {
	data := (&wire{}).u64(3).str("x").str("y").i64(-5).bytes()

	dst := container.NewSet[string]()
	dst.Add("stale")
	err := SetOf(String).Decode(stream.NewBytesReader(data), dst)
	expectStatus(t, err, archiveerrors.StatusInvalidLength)

	if !slices.Equal(dst.Values(), []string{"x", "y"}) {
		t.Errorf("inserted prefix: got %v", dst.Values())
	}
}

func TestSetFunc_PairElements(t *testing.T) {
	type entry = container.Pair[string, int64]
	compare := func(a, b entry) int {
		if c := strings.Compare(a.First, b.First); c != 0 {
			return c
		}
		return int(a.Second - b.Second)
	}
	c := SetFunc(PairOf(String, Int64), compare)

	s := container.NewSetFunc(compare)
	s.Add(container.MakePair("b", int64(1)))
	s.Add(container.MakePair("a", int64(2)))
	s.Add(container.MakePair("a", int64(1)))

	got := roundTrip(t, c, *s)
	if !slices.Equal(got.Values(), s.Values()) {
		t.Errorf("got %v, want %v", got.Values(), s.Values())
	}
}
