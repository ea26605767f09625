package nbt

import (
	"bytes"
	"io"
)

// A Decoder turns raw, optionally compressed documents into tag trees.
type Decoder struct {
	// MaxDepth bounds list and compound nesting.
	MaxDepth int
	// MaxSize limits the decompressed document size in bytes. Zero means
	// no limit.
	MaxSize int64
}

// NewDecoder returns a decoder with default settings.
func NewDecoder() *Decoder {
	return &Decoder{MaxDepth: DefaultMaxDepth}
}

// FromBytes decodes b with a default Decoder.
func FromBytes(b []byte) (NamedTag, error) {
	return NewDecoder().FromBytes(b)
}

// FromBytes detects the compression of b, decompresses it and reads the
// root tag.
func (d *Decoder) FromBytes(b []byte) (NamedTag, error) {
	body, err := d.decompress(b)
	if err != nil {
		return NamedTag{}, &UnknownError{Err: err}
	}

	return NewReader(bytes.NewReader(body)).ReadNamed(d.MaxDepth)
}

func (d *Decoder) decompress(b []byte) ([]byte, error) {
	c := DetectCompression(b)
	if c == CompressionNone && d.MaxSize <= 0 {
		return b, nil
	}

	zr, err := c.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var r io.Reader = zr
	if d.MaxSize > 0 {
		r = io.LimitReader(zr, d.MaxSize+1)
	}

	var dec bytes.Buffer
	if _, err := dec.ReadFrom(r); err != nil {
		return nil, err
	}

	if d.MaxSize > 0 && int64(dec.Len()) > d.MaxSize {
		return nil, ErrTooLarge
	}

	return dec.Bytes(), nil
}
