package nbt

import (
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
)

var gzipWriterPool = sync.Pool{
	New: func() interface{} {
		return gzip.NewWriter(nil)
	},
}

type pooledGzipWriter struct{ *gzip.Writer }

func (w pooledGzipWriter) Close() error {
	err := w.Writer.Close()
	gzipWriterPool.Put(w.Writer)
	return err
}

func gzipEncode(w io.Writer) (io.WriteCloser, error) {
	zw := gzipWriterPool.Get().(*gzip.Writer)
	zw.Reset(w)
	return pooledGzipWriter{zw}, nil
}

func gzipDecode(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	return zr, nil
}
