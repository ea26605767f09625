package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/evengul/mc-org/nbt/litematic"
)

type result struct {
	fname string
	s     litematic.Schematic
	err   error
}

func main() {
	jobs := flag.Int("j", runtime.NumCPU(), "files to decode concurrently")
	air := flag.Bool("air", false, "include air blocks in the material list")
	verbose := flag.Bool("v", false, "log why files or regions were rejected")
	maxInput := flag.Int("max-size", 0, "reject files larger than this many bytes (0 for no limit)")
	maxDoc := flag.Int64("max-doc-size", 0, "reject files that decompress to more than this many bytes (0 for no limit)")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("usage: schematic [flags] file.litematic...")
	}

	opts := []litematic.Option{
		litematic.WithMaxInputSize(*maxInput),
		litematic.WithMaxDocumentSize(*maxDoc),
	}
	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, litematic.WithLogger(slog.New(h)))
	}

	d, err := litematic.NewDecoder(opts...)
	if err != nil {
		log.Fatalf("bad options: %s", err)
	}

	results := decodeAll(d, flag.Args(), max(1, *jobs))

	failed := false
	for _, r := range results {
		if r.err != nil {
			log.Printf("error processing %s: %s", r.fname, r.err)
			failed = true
			continue
		}
		writeList(os.Stdout, r, *air)
	}

	if failed {
		os.Exit(1)
	}
}

// decodeAll decodes files with at most jobs running at once and returns
// the results in argument order.
func decodeAll(d *litematic.Decoder, files []string, jobs int) []result {
	results := make([]result, len(files))
	sem := make(chan struct{}, jobs)

	var wg sync.WaitGroup
	for i, fname := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, fname string) {
			defer func() { <-sem; wg.Done() }()

			results[i].fname = fname
			b, err := os.ReadFile(fname)
			if err != nil {
				results[i].err = err
				return
			}
			results[i].s, results[i].err = d.Decode(b)
		}(i, fname)
	}
	wg.Wait()

	return results
}

func writeList(w io.Writer, r result, air bool) {
	s := r.s
	fmt.Fprintf(w, "%s: %q by %s (%dx%dx%d)\n", r.fname, s.Name, s.Author, s.Size.X, s.Size.Y, s.Size.Z)
	if s.Description != nil && *s.Description != "" {
		fmt.Fprintf(w, "  %s\n", *s.Description)
	}

	for _, it := range s.Items.Sorted() {
		if !air && isAir(it.ID) {
			continue
		}
		fmt.Fprintf(w, "%8d  %s\n", it.Count, it.ID)
	}
}

func isAir(id string) bool {
	id = strings.TrimPrefix(id, "minecraft:")
	return id == "air" || id == "cave_air" || id == "void_air"
}
