package nbt

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"strconv"
)

var errStringTooLong = errors.New("nbt: string longer than 65535 encoded bytes")

// An Encoder writes tag trees in the binary format.
type Encoder struct {
	// Compression wraps the written document.
	Compression CompressionType
}

// NewEncoder returns an encoder that writes uncompressed documents.
func NewEncoder() *Encoder {
	return &Encoder{Compression: CompressionNone}
}

// Marshal returns the uncompressed encoding of nt.
func Marshal(nt NamedTag) ([]byte, error) {
	return NewEncoder().Marshal(nt)
}

// Marshal returns the encoding of nt, compressed as configured.
func (e *Encoder) Marshal(nt NamedTag) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Encode(&buf, nt); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes the encoding of nt to w.
func (e *Encoder) Encode(w io.Writer, nt NamedTag) error {
	b, err := appendNamed(nil, nt)
	if err != nil {
		return err
	}

	zw, err := e.Compression.NewWriter(w)
	if err != nil {
		return err
	}

	if _, err := zw.Write(b); err != nil {
		zw.Close()
		return err
	}

	return zw.Close()
}

func appendNamed(by []byte, nt NamedTag) ([]byte, error) {
	if nt.Tag == nil {
		return nil, errors.New("nbt: nil root tag")
	}

	by = append(by, byte(nt.Tag.Type()))
	if nt.Tag.Type() == TagEnd {
		return by, nil
	}

	by, err := appendString(by, nt.Name)
	if err != nil {
		return nil, err
	}

	return appendPayload(by, nt.Tag)
}

func appendString(by []byte, s string) ([]byte, error) {
	start := len(by)
	by = append(by, 0, 0)
	by = appendMUTF8(by, s)

	n := len(by) - start - 2
	if n > math.MaxUint16 {
		return nil, errStringTooLong
	}
	binary.BigEndian.PutUint16(by[start:], uint16(n))

	return by, nil
}

func appendLength(by []byte, n int) []byte {
	return binary.BigEndian.AppendUint32(by, uint32(int32(n)))
}

func appendPayload(by []byte, t Tag) ([]byte, error) {
	var err error

	switch v := t.(type) {
	case End:
	case Byte:
		by = append(by, byte(v))
	case Short:
		by = binary.BigEndian.AppendUint16(by, uint16(v))
	case Int:
		by = binary.BigEndian.AppendUint32(by, uint32(v))
	case Long:
		by = binary.BigEndian.AppendUint64(by, uint64(v))
	case Float:
		by = binary.BigEndian.AppendUint32(by, math.Float32bits(float32(v)))
	case Double:
		by = binary.BigEndian.AppendUint64(by, math.Float64bits(float64(v)))
	case String:
		by, err = appendString(by, string(v))

	case ByteArray:
		by = appendLength(by, len(v))
		for _, b := range v {
			by = append(by, byte(b))
		}

	case IntArray:
		by = appendLength(by, len(v))
		for _, i := range v {
			by = binary.BigEndian.AppendUint32(by, uint32(i))
		}

	case LongArray:
		by = appendLength(by, len(v))
		for _, l := range v {
			by = binary.BigEndian.AppendUint64(by, uint64(l))
		}

	case *List:
		if v == nil {
			return nil, errors.New("nbt: nil list")
		}
		by = append(by, byte(v.elem))
		by = appendLength(by, len(v.items))
		for _, it := range v.items {
			if by, err = appendPayload(by, it); err != nil {
				return nil, err
			}
		}

	case *Compound:
		if v == nil {
			return nil, errors.New("nbt: nil compound")
		}
		for _, k := range v.keys {
			it := v.m[k]
			if it == nil || it.Type() == TagEnd {
				return nil, errors.New("nbt: compound entry " + strconv.Quote(k) + " has no value")
			}
			by = append(by, byte(it.Type()))
			if by, err = appendString(by, k); err != nil {
				return nil, err
			}
			if by, err = appendPayload(by, it); err != nil {
				return nil, err
			}
		}
		by = append(by, byte(TagEnd))

	default:
		return nil, errors.New("nbt: cannot encode tag of type " + strconv.Quote(typeName(t)))
	}

	return by, err
}

func typeName(t Tag) string {
	if t == nil {
		return "nil"
	}
	return t.Type().String()
}
