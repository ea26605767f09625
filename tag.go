package nbt

import "errors"

// Tag is one node of a tag tree. The set of implementations is closed:
// End, Byte, Short, Int, Long, Float, Double, ByteArray, String, *List,
// *Compound, IntArray and LongArray.
type Tag interface {
	Type() TagType
	isTag()
}

// NamedTag pairs a root tag with its name.
type NamedTag struct {
	Name string
	Tag  Tag
}

type (
	End       struct{}
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []int8
	String    string
	IntArray  []int32
	LongArray []int64
)

func (End) Type() TagType       { return TagEnd }
func (Byte) Type() TagType      { return TagByte }
func (Short) Type() TagType     { return TagShort }
func (Int) Type() TagType       { return TagInt }
func (Long) Type() TagType      { return TagLong }
func (Float) Type() TagType     { return TagFloat }
func (Double) Type() TagType    { return TagDouble }
func (ByteArray) Type() TagType { return TagByteArray }
func (String) Type() TagType    { return TagString }
func (IntArray) Type() TagType  { return TagIntArray }
func (LongArray) Type() TagType { return TagLongArray }
func (*List) Type() TagType     { return TagList }
func (*Compound) Type() TagType { return TagCompound }

func (End) isTag()       {}
func (Byte) isTag()      {}
func (Short) isTag()     {}
func (Int) isTag()       {}
func (Long) isTag()      {}
func (Float) isTag()     {}
func (Double) isTag()    {}
func (ByteArray) isTag() {}
func (String) isTag()    {}
func (IntArray) isTag()  {}
func (LongArray) isTag() {}
func (*List) isTag()     {}
func (*Compound) isTag() {}

// ErrListElementType is returned when a tag is added to a list declared
// with a different element type.
var ErrListElementType = errors.New("nbt: list element type mismatch")

// List is a homogeneous sequence of tags. Its element type is fixed when
// the list is created.
type List struct {
	elem  TagType
	items []Tag
}

// NewList returns an empty list of the given element type, populated with
// items. It fails if any item is of another type.
func NewList(elem TagType, items ...Tag) (*List, error) {
	l := &List{elem: elem}
	for _, it := range items {
		if err := l.Append(it); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Elem returns the declared element type.
func (l *List) Elem() TagType { return l.elem }

// Len returns the number of elements.
func (l *List) Len() int { return len(l.items) }

// Index returns the i'th element.
func (l *List) Index(i int) Tag { return l.items[i] }

// Items returns the elements. The slice must not be modified.
func (l *List) Items() []Tag { return l.items }

// Append adds t to the end of the list.
func (l *List) Append(t Tag) error {
	if t == nil || t.Type() != l.elem || l.elem == TagEnd {
		return ErrListElementType
	}
	l.items = append(l.items, t)
	return nil
}

// Compound is an insertion-ordered map of uniquely keyed tags.
type Compound struct {
	keys []string
	m    map[string]Tag
}

// NewCompound returns an empty compound.
func NewCompound() *Compound {
	return &Compound{m: make(map[string]Tag)}
}

// Set stores t under key. An existing key keeps its position and takes
// the new value.
func (c *Compound) Set(key string, t Tag) {
	if c.m == nil {
		c.m = make(map[string]Tag)
	}
	if _, ok := c.m[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.m[key] = t
}

// Delete removes key, if present.
func (c *Compound) Delete(key string) {
	if _, ok := c.m[key]; !ok {
		return
	}
	delete(c.m, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
}

// Get returns the tag stored under key.
func (c *Compound) Get(key string) (Tag, bool) {
	t, ok := c.m[key]
	return t, ok
}

// Keys returns the keys in insertion order. The slice must not be modified.
func (c *Compound) Keys() []string { return c.keys }

// Len returns the number of entries.
func (c *Compound) Len() int { return len(c.keys) }

// typed lookups; ok is false when the key is absent or holds another type

func (c *Compound) Byte(key string) (int8, bool) {
	v, ok := c.m[key].(Byte)
	return int8(v), ok
}

func (c *Compound) Short(key string) (int16, bool) {
	v, ok := c.m[key].(Short)
	return int16(v), ok
}

func (c *Compound) Int(key string) (int32, bool) {
	v, ok := c.m[key].(Int)
	return int32(v), ok
}

func (c *Compound) Long(key string) (int64, bool) {
	v, ok := c.m[key].(Long)
	return int64(v), ok
}

func (c *Compound) Float(key string) (float32, bool) {
	v, ok := c.m[key].(Float)
	return float32(v), ok
}

func (c *Compound) Double(key string) (float64, bool) {
	v, ok := c.m[key].(Double)
	return float64(v), ok
}

func (c *Compound) String(key string) (string, bool) {
	v, ok := c.m[key].(String)
	return string(v), ok
}

func (c *Compound) ByteArray(key string) ([]int8, bool) {
	v, ok := c.m[key].(ByteArray)
	return v, ok
}

func (c *Compound) IntArray(key string) ([]int32, bool) {
	v, ok := c.m[key].(IntArray)
	return v, ok
}

func (c *Compound) LongArray(key string) ([]int64, bool) {
	v, ok := c.m[key].(LongArray)
	return v, ok
}

func (c *Compound) List(key string) (*List, bool) {
	v, ok := c.m[key].(*List)
	return v, ok && v != nil
}

func (c *Compound) Compound(key string) (*Compound, bool) {
	v, ok := c.m[key].(*Compound)
	return v, ok && v != nil
}
