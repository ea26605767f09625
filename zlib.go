package nbt

import (
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// Only the default level writes the 78 9C header that DetectCompression
// recognises, so the writer is not configurable.
var zlibWriterPool = sync.Pool{
	New: func() interface{} {
		return zlib.NewWriter(nil)
	},
}

type pooledZlibWriter struct{ *zlib.Writer }

func (w pooledZlibWriter) Close() error {
	err := w.Writer.Close()
	zlibWriterPool.Put(w.Writer)
	return err
}

func zlibEncode(w io.Writer) (io.WriteCloser, error) {
	zw := zlibWriterPool.Get().(*zlib.Writer)
	zw.Reset(w)
	return pooledZlibWriter{zw}, nil
}

func zlibDecode(r io.Reader) (io.ReadCloser, error) {
	return zlib.NewReader(r)
}
