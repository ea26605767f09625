//go:build clibs
// +build clibs

package nbt

import (
	"io"

	"github.com/DataDog/zstd"
)

func zstdEncode(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w), nil
}

func zstdDecode(r io.Reader) (io.ReadCloser, error) {
	return zstd.NewReader(r), nil
}
