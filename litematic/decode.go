package litematic

import (
	"errors"
	"io"
	"log/slog"

	"github.com/evengul/mc-org/nbt"
	"github.com/evengul/mc-org/nbt/internal/options"
)

const (
	defaultName   = "Unnamed"
	defaultAuthor = "Unknown"
)

// A Decoder decodes schematic files. It is immutable once created and
// safe for concurrent use.
type Decoder struct {
	logger   *slog.Logger
	tags     nbt.Decoder
	maxInput int
}

var defaultDecoder, _ = NewDecoder()

// NewDecoder returns a Decoder configured by opts.
func NewDecoder(opts ...Option) (*Decoder, error) {
	d := &Decoder{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tags:   *nbt.NewDecoder(),
	}

	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Decode decodes raw with the default Decoder.
func Decode(raw []byte) (Schematic, error) {
	return defaultDecoder.Decode(raw)
}

// Decode reads the schematic in raw and totals its blocks and container
// contents across all regions.
func (d *Decoder) Decode(raw []byte) (Schematic, error) {
	if d.maxInput > 0 && len(raw) > d.maxInput {
		d.logger.Warn("schematic rejected", "size", len(raw), "limit", d.maxInput)
		return Schematic{}, ErrInputTooLarge
	}

	root, err := d.tags.FromBytes(raw)
	if errors.Is(err, nbt.ErrTooLarge) {
		d.logger.Warn("schematic rejected", "error", err, "limit", d.tags.MaxSize)
		return Schematic{}, ErrDocumentTooLarge
	}
	if err != nil {
		d.logger.Warn("schematic unreadable", "error", err)
		return Schematic{}, ErrUnreadable
	}

	c, ok := root.Tag.(*nbt.Compound)
	if !ok {
		d.logger.Warn("schematic rejected", "root", root.Tag.Type().String())
		return Schematic{}, ErrRootNotCompound
	}

	meta, ok := c.Compound("Metadata")
	if !ok {
		return Schematic{}, ErrMissingMetadata
	}

	s := readMetadata(meta)

	regions, ok := c.Compound("Regions")
	if !ok {
		return Schematic{}, ErrMissingRegions
	}

	s.Items = make(ItemCounts)
	for _, name := range regions.Keys() {
		region, ok := regions.Compound(name)
		if !ok {
			d.logger.Debug("skipping region", "region", name, "reason", "not a compound")
			continue
		}
		s.Items.Merge(d.decodeRegion(name, region))
	}

	return s, nil
}

func readMetadata(meta *nbt.Compound) Schematic {
	s := Schematic{
		Name:   defaultName,
		Author: defaultAuthor,
	}

	if name, ok := meta.String("Name"); ok {
		s.Name = name
	}
	if author, ok := meta.String("Author"); ok {
		s.Author = author
	}
	if desc, ok := meta.String("Description"); ok {
		s.Description = &desc
	}
	if size, ok := meta.Compound("EnclosingSize"); ok {
		s.Size.X, _ = size.Int("x")
		s.Size.Y, _ = size.Int("y")
		s.Size.Z, _ = size.Int("z")
	}

	return s
}
