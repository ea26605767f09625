package nbt

import (
	"bytes"
	"io"
	"strconv"
)

// CompressionType identifies the wrapper around a tag document.
type CompressionType uint8

const (
	CompressionNone CompressionType = iota
	CompressionGzip
	CompressionZlib
	CompressionZstd
	CompressionSnappy
)

var (
	magicGzip   = []byte{0x1f, 0x8b}
	magicZlib   = []byte{0x78, 0x9c}
	magicZstd   = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicSnappy = []byte("\xff\x06\x00\x00sNaPpY")
)

// DetectCompression sniffs the leading bytes of b. Input that matches no
// known magic is reported as CompressionNone.
func DetectCompression(b []byte) CompressionType {
	switch {
	case bytes.HasPrefix(b, magicGzip):
		return CompressionGzip
	case bytes.HasPrefix(b, magicZlib):
		return CompressionZlib
	case bytes.HasPrefix(b, magicZstd):
		return CompressionZstd
	case bytes.HasPrefix(b, magicSnappy):
		return CompressionSnappy
	default:
		return CompressionNone
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZlib:
		return "Zlib"
	case CompressionZstd:
		return "Zstd"
	case CompressionSnappy:
		return "Snappy"
	default:
		return "Unknown"
	}
}

// NewReader returns a reader of the decompressed contents of r.
func (c CompressionType) NewReader(r io.Reader) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionGzip:
		return gzipDecode(r)
	case CompressionZlib:
		return zlibDecode(r)
	case CompressionZstd:
		return zstdDecode(r)
	case CompressionSnappy:
		return snappyDecode(r), nil
	default:
		return nil, errUnknownCompression(c)
	}
}

// NewWriter returns a writer that compresses into w. Close must be
// called to flush the trailer.
func (c CompressionType) NewWriter(w io.Writer) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionGzip:
		return gzipEncode(w)
	case CompressionZlib:
		return zlibEncode(w)
	case CompressionZstd:
		return zstdEncode(w)
	case CompressionSnappy:
		return snappyEncode(w), nil
	default:
		return nil, errUnknownCompression(c)
	}
}

type errUnknownCompression CompressionType

func (e errUnknownCompression) Error() string {
	return "unknown compression type " + strconv.Itoa(int(e))
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
