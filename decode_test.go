package nbt

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readWire(t *testing.T, b []byte, depth int) (NamedTag, error) {
	t.Helper()
	return NewReader(bytes.NewReader(b)).ReadNamed(depth)
}

func TestReadEveryType(t *testing.T) {
	doc := wire{}.entry(TagCompound, "Level").
		entry(TagByte, "byte").u8(0xf9).
		entry(TagShort, "short").i16(-1234).
		entry(TagInt, "int").i32(123456789).
		entry(TagLong, "long").i64(-9876543210).
		entry(TagFloat, "float").f32(2.5).
		entry(TagDouble, "double").f64(-0.125).
		entry(TagByteArray, "bytes").i32(3).u8(0x80).u8(0).u8(0x7f).
		entry(TagString, "string").str("hello, world").
		entry(TagIntArray, "ints").i32(3).i32(1).i32(-2).i32(3).
		entry(TagLongArray, "longs").i32(3).i64(math.MinInt64).i64(0).i64(math.MaxInt64).
		entry(TagList, "list").id(TagString).i32(2).str("a").str("b").
		entry(TagList, "empty").id(TagEnd).i32(0).
		entry(TagCompound, "nested").entry(TagString, "name").str("inner").id(TagEnd).
		id(TagEnd)

	got, err := readWire(t, doc, DefaultMaxDepth)
	require.NoError(t, err)
	requireSameTree(t, sampleTree(t), got)
}

func TestReadRootEnd(t *testing.T) {
	got, err := readWire(t, []byte{0}, DefaultMaxDepth)
	require.NoError(t, err)
	assert.Equal(t, NamedTag{Tag: End{}}, got)
}

func TestReadSequentialRoots(t *testing.T) {
	doc := wire{}.entry(TagInt, "a").i32(1).entry(TagString, "b").str("two")
	r := NewReader(bytes.NewReader(doc))

	first, err := r.ReadNamed(DefaultMaxDepth)
	require.NoError(t, err)
	second, err := r.ReadNamed(DefaultMaxDepth)
	require.NoError(t, err)

	assert.Equal(t, NamedTag{Name: "a", Tag: Int(1)}, first)
	assert.Equal(t, NamedTag{Name: "b", Tag: String("two")}, second)
}

func TestReadNegativeLengthsClampToZero(t *testing.T) {
	doc := wire{}.entry(TagCompound, "").
		entry(TagLongArray, "longs").i32(-5).
		entry(TagList, "list").id(TagInt).i32(-1).
		entry(TagInt, "after").i32(9).
		id(TagEnd)

	got, err := readWire(t, doc, DefaultMaxDepth)
	require.NoError(t, err)

	c := got.Tag.(*Compound)
	longs, ok := c.LongArray("longs")
	require.True(t, ok)
	assert.Empty(t, longs)

	list, ok := c.List("list")
	require.True(t, ok)
	assert.Zero(t, list.Len())

	after, _ := c.Int("after")
	assert.Equal(t, int32(9), after)
}

func TestReadUnknownTagType(t *testing.T) {
	_, err := readWire(t, wire{}.u8(13).str("x"), DefaultMaxDepth)

	var unknown *UnknownTagTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, byte(13), unknown.ID)
}

func TestReadUnknownListElementType(t *testing.T) {
	doc := wire{}.entry(TagList, "list").u8(42).i32(1)

	_, err := readWire(t, doc, DefaultMaxDepth)

	var unknown *UnknownTagTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, byte(42), unknown.ID)
}

func TestReadListKeepsDeclaredType(t *testing.T) {
	doc := wire{}.entry(TagCompound, "").
		entry(TagList, "ints").id(TagInt).i32(2).i32(1).i32(2).
		entry(TagList, "strings").id(TagString).i32(1).str("x").
		entry(TagList, "arrays").id(TagIntArray).i32(1).i32(1).i32(7).
		entry(TagList, "compounds").id(TagCompound).i32(2).id(TagEnd).entry(TagByte, "b").u8(1).id(TagEnd).
		id(TagEnd)

	got, err := readWire(t, doc, DefaultMaxDepth)
	require.NoError(t, err)
	c := got.Tag.(*Compound)

	want := map[string]TagType{
		"ints":      TagInt,
		"strings":   TagString,
		"arrays":    TagIntArray,
		"compounds": TagCompound,
	}
	for key, typ := range want {
		l, ok := c.List(key)
		require.True(t, ok, key)
		assert.Equal(t, typ, l.Elem(), key)
		for _, it := range l.Items() {
			assert.Equal(t, typ, it.Type(), key)
		}
		// decoded lists still enforce their element type
		assert.ErrorIs(t, l.Append(Long(1)), ErrListElementType, key)
	}
}

func TestReadListOfEndWithLength(t *testing.T) {
	doc := wire{}.entry(TagList, "list").id(TagEnd).i32(3)

	_, err := readWire(t, doc, DefaultMaxDepth)

	var rerr *ReadError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, errEndList, rerr.Msg)
}

func TestReadTruncated(t *testing.T) {
	full := wire{}.entry(TagCompound, "root").
		entry(TagLongArray, "longs").i32(4).i64(1).i64(2).i64(3).i64(4).
		id(TagEnd)

	for _, n := range []int{1, 2, 5, 9, 20, len(full) - 2} {
		_, err := readWire(t, full[:n], DefaultMaxDepth)
		require.Error(t, err, "prefix of %d bytes", n)

		var rerr *ReadError
		assert.ErrorAs(t, err, &rerr, "prefix of %d bytes", n)
	}
}

func TestReadHugeDeclaredLengthFailsWithoutAllocating(t *testing.T) {
	doc := wire{}.entry(TagLongArray, "longs").i32(math.MaxInt32).i64(1)

	_, err := readWire(t, doc, DefaultMaxDepth)

	var rerr *ReadError
	require.ErrorAs(t, err, &rerr)
}

func TestReadCompoundKeyCollisionLastWins(t *testing.T) {
	doc := wire{}.entry(TagCompound, "").
		entry(TagInt, "k").i32(1).
		entry(TagInt, "other").i32(2).
		entry(TagString, "k").str("last").
		id(TagEnd)

	got, err := readWire(t, doc, DefaultMaxDepth)
	require.NoError(t, err)

	c := got.Tag.(*Compound)
	assert.Equal(t, []string{"k", "other"}, c.Keys())
	v, ok := c.String("k")
	require.True(t, ok)
	assert.Equal(t, "last", v)
}

func TestReadCompoundWithoutEntriesAtEOF(t *testing.T) {
	_, err := readWire(t, wire{}.entry(TagCompound, "root"), DefaultMaxDepth)

	var rerr *ReadError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, errEmptyCompound, rerr.Msg)
}

func TestReadCompoundEntriesThenEOF(t *testing.T) {
	doc := wire{}.entry(TagCompound, "root").entry(TagInt, "x").i32(7)

	got, err := readWire(t, doc, DefaultMaxDepth)
	require.NoError(t, err)

	x, ok := got.Tag.(*Compound).Int("x")
	require.True(t, ok)
	assert.Equal(t, int32(7), x)
}

func TestReadCompoundCollectsEntryErrors(t *testing.T) {
	doc := wire{}.entry(TagCompound, "root").
		entry(TagInt, "ok").i32(1).
		u8(99).
		u8(77).
		id(TagEnd)

	_, err := readWire(t, doc, DefaultMaxDepth)

	var multi MultiError
	require.ErrorAs(t, err, &multi)
	require.Len(t, multi, 2)

	var unknown *UnknownTagTypeError
	require.ErrorAs(t, multi[0], &unknown)
	assert.Equal(t, byte(99), unknown.ID)
	require.ErrorAs(t, multi[1], &unknown)
	assert.Equal(t, byte(77), unknown.ID)
}

func TestReadDepthBound(t *testing.T) {
	const maxDepth = 8

	doc, err := Marshal(NamedTag{Tag: nested(maxDepth)})
	require.NoError(t, err)
	_, err = readWire(t, doc, maxDepth)
	require.NoError(t, err)

	doc, err = Marshal(NamedTag{Tag: nested(maxDepth + 1)})
	require.NoError(t, err)
	_, err = readWire(t, doc, maxDepth)
	require.ErrorIs(t, err, ErrMaxDepthReached)
}

func TestReadDepthBoundCountsLists(t *testing.T) {
	inner := mustList(t, TagInt, Int(1))
	outer := mustList(t, TagList, inner)
	doc, err := Marshal(NamedTag{Tag: compound(kv{"l", outer})})
	require.NoError(t, err)

	_, err = readWire(t, doc, 3)
	require.NoError(t, err)

	_, err = readWire(t, doc, 2)
	require.ErrorIs(t, err, ErrMaxDepthReached)
}

func TestReadDefaultDepth(t *testing.T) {
	doc, err := Marshal(NamedTag{Tag: nested(DefaultMaxDepth)})
	require.NoError(t, err)
	_, err = FromBytes(doc)
	require.NoError(t, err)

	doc, err = Marshal(NamedTag{Tag: nested(DefaultMaxDepth + 1)})
	require.NoError(t, err)
	_, err = FromBytes(doc)
	require.ErrorIs(t, err, ErrMaxDepthReached)
}

func TestReadNegativeDepth(t *testing.T) {
	_, err := readWire(t, wire{}.entry(TagInt, "x").i32(1), -1)
	require.ErrorIs(t, err, ErrNegativeDepth)

	r := NewReader(bytes.NewReader(wire{}.id(TagEnd)))
	_, err = r.readCompound(-3)
	require.ErrorIs(t, err, ErrNegativeDepth)
	_, err = r.readList(0)
	require.ErrorIs(t, err, ErrMaxDepthReached)
}

func TestReadModifiedUTF8Name(t *testing.T) {
	doc := wire{}.id(TagString)
	doc = doc.i16(int16(len("a\xc0\x80b"))).u8('a').u8(0xc0).u8(0x80).u8('b')
	doc = doc.str("v")

	got, err := readWire(t, doc, DefaultMaxDepth)
	require.NoError(t, err)
	assert.Equal(t, "a\x00b", got.Name)
}

func TestReadErrorsUnwrap(t *testing.T) {
	_, err := readWire(t, wire{}.entry(TagInt, "x").u8(1), DefaultMaxDepth)

	var rerr *ReadError
	require.ErrorAs(t, err, &rerr)
	assert.True(t, errors.Is(err, rerr.Err))
	assert.Contains(t, err.Error(), errTruncated)
}
