package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/evengul/mc-org/nbt"
)

func process(d *nbt.Decoder, fname string, b []byte) {
	nt, err := d.FromBytes(b)
	if err != nil {
		log.Fatalf("error processing %s: %s", fname, err)
	}

	spew.Dump(nt)
}

func main() {
	depth := flag.Int("depth", nbt.DefaultMaxDepth, "maximum list and compound nesting")
	maxSize := flag.Int64("max-size", 0, "maximum decompressed size in bytes (0 for no limit)")
	flag.Parse()

	d := nbt.NewDecoder()
	d.MaxDepth = *depth
	d.MaxSize = *maxSize

	if flag.NArg() == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("error reading stdin: %s", err)
		}
		process(d, "stdin", b)
		return
	}

	for _, arg := range flag.Args() {
		b, err := os.ReadFile(arg)
		if err != nil {
			log.Fatalf("error reading %s: %s", arg, err)
		}
		process(d, arg, b)
	}
}
