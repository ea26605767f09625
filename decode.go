package nbt

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
)

const scratchSize = 4096

// maxCompoundErrors bounds how many failed entries one compound collects
// before it gives up on the rest of its body.
const maxCompoundErrors = 64

// A Reader reads tag trees from an uncompressed byte stream.
type Reader struct {
	r       io.Reader
	br      io.ByteReader
	scratch []byte
}

// NewReader returns a Reader over r. r is buffered unless it already
// implements io.ByteReader.
func NewReader(r io.Reader) *Reader {
	br, ok := r.(io.ByteReader)
	if !ok {
		b := bufio.NewReader(r)
		r, br = b, b
	}
	return &Reader{r: r, br: br}
}

// ReadNamed reads one named tag. maxDepth is the number of lists and
// compounds that may be nested inside each other, the root included.
func (rd *Reader) ReadNamed(maxDepth int) (NamedTag, error) {
	if maxDepth < 0 {
		return NamedTag{}, ErrNegativeDepth
	}

	id, err := rd.readByte()
	if err != nil {
		return NamedTag{}, err
	}

	typ := TagType(id)
	if !typ.valid() {
		return NamedTag{}, &UnknownTagTypeError{ID: id}
	}

	if typ == TagEnd {
		return NamedTag{Tag: End{}}, nil
	}

	name, err := rd.readString()
	if err != nil {
		return NamedTag{}, err
	}

	t, err := rd.readPayload(typ, maxDepth)
	if err != nil {
		return NamedTag{}, err
	}

	return NamedTag{Name: name, Tag: t}, nil
}

func checkDepth(depth int) error {
	switch {
	case depth < 0:
		return ErrNegativeDepth
	case depth == 0:
		return ErrMaxDepthReached
	}
	return nil
}

func (rd *Reader) readPayload(typ TagType, depth int) (Tag, error) {
	switch typ {
	case TagEnd:
		return End{}, nil

	case TagByte:
		b, err := rd.readByte()
		if err != nil {
			return nil, err
		}
		return Byte(int8(b)), nil

	case TagShort:
		if err := rd.readFull(2); err != nil {
			return nil, err
		}
		return Short(int16(binary.BigEndian.Uint16(rd.scratch))), nil

	case TagInt:
		if err := rd.readFull(4); err != nil {
			return nil, err
		}
		return Int(int32(binary.BigEndian.Uint32(rd.scratch))), nil

	case TagLong:
		if err := rd.readFull(8); err != nil {
			return nil, err
		}
		return Long(int64(binary.BigEndian.Uint64(rd.scratch))), nil

	case TagFloat:
		if err := rd.readFull(4); err != nil {
			return nil, err
		}
		return Float(math.Float32frombits(binary.BigEndian.Uint32(rd.scratch))), nil

	case TagDouble:
		if err := rd.readFull(8); err != nil {
			return nil, err
		}
		return Double(math.Float64frombits(binary.BigEndian.Uint64(rd.scratch))), nil

	case TagString:
		s, err := rd.readString()
		if err != nil {
			return nil, err
		}
		return String(s), nil

	case TagByteArray:
		a, err := rd.readByteArray()
		if err != nil {
			return nil, err
		}
		return a, nil

	case TagIntArray:
		a, err := rd.readIntArray()
		if err != nil {
			return nil, err
		}
		return a, nil

	case TagLongArray:
		a, err := rd.readLongArray()
		if err != nil {
			return nil, err
		}
		return a, nil

	case TagList:
		l, err := rd.readList(depth)
		if err != nil {
			return nil, err
		}
		return l, nil

	case TagCompound:
		c, err := rd.readCompound(depth)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	return nil, &UnknownTagTypeError{ID: byte(typ)}
}

func (rd *Reader) readByte() (byte, error) {
	b, err := rd.br.ReadByte()
	if err != nil {
		return 0, readErr(errTruncated, err)
	}
	return b, nil
}

// readFull fills rd.scratch[:n]
func (rd *Reader) readFull(n int) error {
	if len(rd.scratch) < n {
		rd.scratch = make([]byte, max(n, scratchSize))
	}
	if _, err := io.ReadFull(rd.r, rd.scratch[:n]); err != nil {
		return readErr(errTruncated, err)
	}
	return nil
}

func (rd *Reader) readString() (string, error) {
	if err := rd.readFull(2); err != nil {
		return "", err
	}
	n := int(binary.BigEndian.Uint16(rd.scratch))
	if err := rd.readFull(n); err != nil {
		return "", err
	}
	s, err := decodeMUTF8(rd.scratch[:n])
	if err != nil {
		return "", readErr(errBadString, err)
	}
	return s, nil
}

// readLength reads a signed 32-bit element count, clamped to zero
func (rd *Reader) readLength() (int, error) {
	if err := rd.readFull(4); err != nil {
		return 0, err
	}
	n := int32(binary.BigEndian.Uint32(rd.scratch))
	if n < 0 {
		n = 0
	}
	return int(n), nil
}

func prealloc(n int) int { return min(n, maxPrealloc) }

func (rd *Reader) readByteArray() (ByteArray, error) {
	n, err := rd.readLength()
	if err != nil {
		return nil, err
	}
	out := make(ByteArray, 0, prealloc(n))
	for n > 0 {
		k := min(n, scratchSize)
		if err := rd.readFull(k); err != nil {
			return nil, err
		}
		for _, b := range rd.scratch[:k] {
			out = append(out, int8(b))
		}
		n -= k
	}
	return out, nil
}

func (rd *Reader) readIntArray() (IntArray, error) {
	n, err := rd.readLength()
	if err != nil {
		return nil, err
	}
	out := make(IntArray, 0, prealloc(n))
	for n > 0 {
		k := min(n, scratchSize/4)
		if err := rd.readFull(k * 4); err != nil {
			return nil, err
		}
		for i := 0; i < k; i++ {
			out = append(out, int32(binary.BigEndian.Uint32(rd.scratch[i*4:])))
		}
		n -= k
	}
	return out, nil
}

func (rd *Reader) readLongArray() (LongArray, error) {
	n, err := rd.readLength()
	if err != nil {
		return nil, err
	}
	out := make(LongArray, 0, prealloc(n))
	for n > 0 {
		k := min(n, scratchSize/8)
		if err := rd.readFull(k * 8); err != nil {
			return nil, err
		}
		for i := 0; i < k; i++ {
			out = append(out, int64(binary.BigEndian.Uint64(rd.scratch[i*8:])))
		}
		n -= k
	}
	return out, nil
}

func (rd *Reader) readList(depth int) (*List, error) {
	if err := checkDepth(depth); err != nil {
		return nil, err
	}

	id, err := rd.readByte()
	if err != nil {
		return nil, err
	}
	elem := TagType(id)
	if !elem.valid() {
		return nil, &UnknownTagTypeError{ID: id}
	}

	n, err := rd.readLength()
	if err != nil {
		return nil, err
	}

	l := &List{elem: elem}
	if n == 0 {
		return l, nil
	}
	if elem == TagEnd {
		return nil, readErr(errEndList, nil)
	}

	l.items = make([]Tag, 0, prealloc(n))
	for i := 0; i < n; i++ {
		t, err := rd.readPayload(elem, depth-1)
		if err != nil {
			return nil, err
		}
		// readPayload only yields tags of type elem
		l.items = append(l.items, t)
	}

	return l, nil
}

func (rd *Reader) readCompound(depth int) (*Compound, error) {
	if err := checkDepth(depth); err != nil {
		return nil, err
	}

	c := NewCompound()
	var errs MultiError

	for len(errs) < maxCompoundErrors {
		id, err := rd.readByte()
		if err != nil {
			// a stream that stops after at least one entry closes the compound
			if len(errs) == 0 && c.Len() == 0 {
				return nil, readErr(errEmptyCompound, err)
			}
			break
		}

		typ := TagType(id)
		if typ == TagEnd {
			break
		}
		if !typ.valid() {
			errs = append(errs, &UnknownTagTypeError{ID: id})
			continue
		}

		key, err := rd.readString()
		if err != nil {
			errs = append(errs, err)
			continue
		}

		v, err := rd.readPayload(typ, depth-1)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		c.Set(key, v)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return c, nil
}
