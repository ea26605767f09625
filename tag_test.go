package nbt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListElementTypeIsFixed(t *testing.T) {
	l, err := NewList(TagInt, Int(1), Int(2))
	require.NoError(t, err)

	require.ErrorIs(t, l.Append(String("three")), ErrListElementType)
	require.ErrorIs(t, l.Append(nil), ErrListElementType)
	require.NoError(t, l.Append(Int(3)))

	assert.Equal(t, TagInt, l.Elem())
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, Int(3), l.Index(2))

	_, err = NewList(TagByte, Byte(1), Short(2))
	require.ErrorIs(t, err, ErrListElementType)
}

func TestListOfEndStaysEmpty(t *testing.T) {
	l, err := NewList(TagEnd)
	require.NoError(t, err)
	require.ErrorIs(t, l.Append(End{}), ErrListElementType)
	require.Zero(t, l.Len())
}

func TestCompoundOrderAndOverwrite(t *testing.T) {
	c := NewCompound()
	c.Set("b", Int(1))
	c.Set("a", Int(2))
	c.Set("c", Int(3))
	c.Set("b", String("again"))

	assert.Equal(t, []string{"b", "a", "c"}, c.Keys())
	assert.Equal(t, 3, c.Len())

	s, ok := c.String("b")
	require.True(t, ok)
	assert.Equal(t, "again", s)

	c.Delete("a")
	c.Delete("missing")
	assert.Equal(t, []string{"b", "c"}, c.Keys())
	_, ok = c.Get("a")
	assert.False(t, ok)
}

func TestCompoundTypedLookups(t *testing.T) {
	inner := NewCompound()
	list := mustList(t, TagShort, Short(4))
	c := compound(
		kv{"b", Byte(-1)},
		kv{"s", Short(2)},
		kv{"i", Int(3)},
		kv{"l", Long(4)},
		kv{"f", Float(5)},
		kv{"d", Double(6)},
		kv{"str", String("x")},
		kv{"ba", ByteArray{1}},
		kv{"ia", IntArray{2}},
		kv{"la", LongArray{3}},
		kv{"list", list},
		kv{"c", inner},
	)

	b, ok := c.Byte("b")
	assert.True(t, ok)
	assert.Equal(t, int8(-1), b)

	sh, _ := c.Short("s")
	assert.Equal(t, int16(2), sh)
	i, _ := c.Int("i")
	assert.Equal(t, int32(3), i)
	l, _ := c.Long("l")
	assert.Equal(t, int64(4), l)
	f, _ := c.Float("f")
	assert.Equal(t, float32(5), f)
	d, _ := c.Double("d")
	assert.Equal(t, float64(6), d)
	str, _ := c.String("str")
	assert.Equal(t, "x", str)
	ba, _ := c.ByteArray("ba")
	assert.Equal(t, []int8{1}, ba)
	ia, _ := c.IntArray("ia")
	assert.Equal(t, []int32{2}, ia)
	la, _ := c.LongArray("la")
	assert.Equal(t, []int64{3}, la)

	gotList, ok := c.List("list")
	assert.True(t, ok)
	assert.Same(t, list, gotList)
	gotInner, ok := c.Compound("c")
	assert.True(t, ok)
	assert.Same(t, inner, gotInner)

	// wrong type or missing key never panics
	_, ok = c.Int("str")
	assert.False(t, ok)
	_, ok = c.Compound("list")
	assert.False(t, ok)
	_, ok = c.LongArray("nope")
	assert.False(t, ok)
}

func TestTagTypes(t *testing.T) {
	tags := []Tag{End{}, Byte(0), Short(0), Int(0), Long(0), Float(0), Double(0),
		ByteArray{}, String(""), &List{}, NewCompound(), IntArray{}, LongArray{}}

	for i, tag := range tags {
		assert.Equal(t, TagType(i), tag.Type())
	}
	assert.Equal(t, "TAG_Compound", TagCompound.String())
	assert.Equal(t, "TAG_Unknown", TagType(99).String())
}
