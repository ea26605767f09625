package nbt

import (
	"io"

	"github.com/golang/snappy"
)

// Only the framed stream format is supported; raw snappy blocks carry no
// magic to detect.

func snappyEncode(w io.Writer) io.WriteCloser {
	return snappy.NewBufferedWriter(w)
}

func snappyDecode(r io.Reader) io.ReadCloser {
	return io.NopCloser(snappy.NewReader(r))
}
