//go:build gofuzz
// +build gofuzz

package nbt

import (
	"errors"

	"github.com/google/go-cmp/cmp"
)

var fuzzCmpOpts = []cmp.Option{
	cmp.AllowUnexported(List{}, Compound{}),
	cmp.Comparer(func(a, b Float) bool { return a == b || (a != a && b != b) }),
	cmp.Comparer(func(a, b Double) bool { return a == b || (a != a && b != b) }),
}

func Fuzz(data []byte) int {
	switch DetectCompression(data) {
	case CompressionNone:
		break
	default:
		// ignore compressed data
		return 0
	}

	nt, err := FromBytes(data)
	if err != nil {
		return 0
	}

	enc, err := Marshal(nt)
	if errors.Is(err, errStringTooLong) {
		return 0
	}
	if err != nil {
		panic("unable to marshal: " + err.Error())
	}

	nt2, err := FromBytes(enc)
	if err != nil {
		panic("unmarshalling marshalled data: " + err.Error())
	}

	if s := cmp.Diff(nt, nt2, fuzzCmpOpts...); s != "" {
		panic("failed to roundtrip: " + s)
	}

	return 1
}
