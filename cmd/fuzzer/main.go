package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	mrand "math/rand"
	"os"
	"path/filepath"

	"github.com/dchest/siphash"
	"github.com/dgryski/go-ddmin"
	"github.com/evengul/mc-org/nbt"
	"github.com/evengul/mc-org/nbt/litematic"
)

// prefixes make random bodies look like the start of a document so the
// reader gets past the root header more often
var prefixes = [][]byte{
	{byte(nbt.TagCompound), 0, 0},
	{byte(nbt.TagCompound), 0, 0, byte(nbt.TagList), 0, 1, 'l'},
	{byte(nbt.TagCompound), 0, 0, byte(nbt.TagCompound), 0, 8, 'M', 'e', 't', 'a', 'd', 'a', 't', 'a'},
	{byte(nbt.TagList), 0, 0},
}

// crashes reports whether decoding doc panics.
func crashes(doc []byte) (crashed bool) {
	defer func() {
		if r := recover(); r != nil {
			crashed = true
		}
	}()

	nbt.FromBytes(doc)
	litematic.Decode(doc)
	return false
}

func randomDoc() []byte {
	prefix := prefixes[mrand.Intn(len(prefixes))]
	doc := make([]byte, len(prefix)+mrand.Intn(200))
	copy(doc, prefix)
	crand.Read(doc[len(prefix):])
	return doc
}

func main() {
	iterations := flag.Int("n", 0, "documents to try (0 for no limit)")
	out := flag.String("o", "crashers", "directory for minimised crashing inputs")
	flag.Parse()

	var key [16]byte
	crand.Read(key[:])
	k0 := binary.LittleEndian.Uint64(key[:8])
	k1 := binary.LittleEndian.Uint64(key[8:])

	seen := make(map[uint64]bool)

	for i := 0; *iterations == 0 || i < *iterations; i++ {
		doc := randomDoc()
		if !crashes(doc) {
			continue
		}

		small := ddmin.Minimize(doc, func(d []byte) ddmin.Result {
			if crashes(d) {
				return ddmin.Fail
			}
			return ddmin.Pass
		})

		h := siphash.Hash(k0, k1, small)
		if seen[h] {
			continue
		}
		seen[h] = true

		fmt.Println(hex.Dump(small))

		if err := os.MkdirAll(*out, 0o755); err != nil {
			log.Fatalf("error creating %s: %s", *out, err)
		}
		fname := filepath.Join(*out, fmt.Sprintf("%016x", h))
		if err := os.WriteFile(fname, small, 0o644); err != nil {
			log.Fatalf("error writing %s: %s", fname, err)
		}
	}
}
