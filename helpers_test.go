package nbt

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
)

var tagCmpOpts = []cmp.Option{
	cmp.AllowUnexported(List{}, Compound{}),
	cmp.Comparer(func(a, b Float) bool { return a == b || (a != a && b != b) }),
	cmp.Comparer(func(a, b Double) bool { return a == b || (a != a && b != b) }),
}

func requireSameTree(t *testing.T, want, got NamedTag) {
	t.Helper()
	if d := cmp.Diff(want, got, tagCmpOpts...); d != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s\ngot: %s", d, spew.Sdump(got))
	}
}

// wire builds raw documents byte by byte
type wire []byte

func (w wire) id(t TagType) wire { return append(w, byte(t)) }

func (w wire) u8(b byte) wire { return append(w, b) }

func (w wire) i16(v int16) wire { return binary.BigEndian.AppendUint16(w, uint16(v)) }

func (w wire) i32(v int32) wire { return binary.BigEndian.AppendUint32(w, uint32(v)) }

func (w wire) i64(v int64) wire { return binary.BigEndian.AppendUint64(w, uint64(v)) }

func (w wire) f32(v float32) wire { return binary.BigEndian.AppendUint32(w, math.Float32bits(v)) }

func (w wire) f64(v float64) wire { return binary.BigEndian.AppendUint64(w, math.Float64bits(v)) }

func (w wire) str(s string) wire {
	w = binary.BigEndian.AppendUint16(w, uint16(len(s)))
	return append(w, s...)
}

// entry starts a named compound entry
func (w wire) entry(t TagType, name string) wire { return w.id(t).str(name) }

func mustList(t testing.TB, elem TagType, items ...Tag) *List {
	t.Helper()
	l, err := NewList(elem, items...)
	if err != nil {
		t.Fatalf("NewList: %v", err)
	}
	return l
}

type kv struct {
	k string
	v Tag
}

func compound(entries ...kv) *Compound {
	c := NewCompound()
	for _, e := range entries {
		c.Set(e.k, e.v)
	}
	return c
}

// nested returns n compounds nested inside each other
func nested(n int) *Compound {
	c := NewCompound()
	for i := 1; i < n; i++ {
		c = compound(kv{"child", c})
	}
	return c
}

// sampleTree exercises every tag type
func sampleTree(t testing.TB) NamedTag {
	t.Helper()
	return NamedTag{
		Name: "Level",
		Tag: compound(
			kv{"byte", Byte(-7)},
			kv{"short", Short(-1234)},
			kv{"int", Int(123456789)},
			kv{"long", Long(-9876543210)},
			kv{"float", Float(2.5)},
			kv{"double", Double(-0.125)},
			kv{"bytes", ByteArray{-128, 0, 127}},
			kv{"string", String("hello, world")},
			kv{"ints", IntArray{1, -2, 3}},
			kv{"longs", LongArray{math.MinInt64, 0, math.MaxInt64}},
			kv{"list", mustList(t, TagString, String("a"), String("b"))},
			kv{"empty", mustList(t, TagEnd)},
			kv{"nested", compound(kv{"name", String("inner")})},
		),
	}
}
