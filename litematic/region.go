package litematic

import (
	"github.com/evengul/mc-org/nbt"
)

// decodeRegion totals the blocks and container contents of one region.
// Containers are counted even when the block data is missing or the
// palette is empty.
func (d *Decoder) decodeRegion(name string, region *nbt.Compound) ItemCounts {
	items := make(ItemCounts)

	d.countBlocks(name, region, items)
	countContainers(region, items)

	return items
}

func (d *Decoder) countBlocks(name string, region *nbt.Compound, items ItemCounts) {
	palette := readPalette(region)
	if len(palette) == 0 {
		d.logger.Debug("skipping region blocks", "region", name, "reason", "empty palette")
		return
	}

	size, ok := readSize(region)
	if !ok {
		d.logger.Debug("skipping region blocks", "region", name, "reason", "missing size")
		return
	}

	states, ok := region.LongArray("BlockStates")
	if !ok {
		d.logger.Debug("skipping region blocks", "region", name, "reason", "missing block states")
		return
	}

	counts := make([]int, len(palette))
	unpack(states, bitsPerEntry(len(palette)), size.Volume(), func(idx uint64) {
		if idx < uint64(len(counts)) {
			counts[idx]++
		}
	})

	for i, n := range counts {
		if n > 0 && palette[i] != "" {
			items.Add(palette[i], n)
		}
	}
}

// readPalette returns the block id at each palette index. Entries without
// a Name keep their index and map to "".
func readPalette(region *nbt.Compound) []string {
	list, ok := region.List("BlockStatePalette")
	if !ok {
		return nil
	}

	palette := make([]string, list.Len())
	for i, t := range list.Items() {
		if entry, ok := t.(*nbt.Compound); ok {
			palette[i], _ = entry.String("Name")
		}
	}
	return palette
}

// readSize reads the region extent; negative components only encode the
// direction the region was selected in.
func readSize(region *nbt.Compound) (Vec3, bool) {
	size, ok := region.Compound("Size")
	if !ok {
		return Vec3{}, false
	}

	x, okX := size.Int("x")
	y, okY := size.Int("y")
	z, okZ := size.Int("z")
	if !okX || !okY || !okZ {
		return Vec3{}, false
	}

	return Vec3{X: x, Y: y, Z: z}, true
}

func countContainers(region *nbt.Compound, items ItemCounts) {
	tiles, ok := region.List("TileEntities")
	if !ok {
		return
	}

	for _, t := range tiles.Items() {
		tile, ok := t.(*nbt.Compound)
		if !ok {
			continue
		}

		stacks, ok := tile.List("Items")
		if !ok {
			continue
		}

		for _, s := range stacks.Items() {
			stack, ok := s.(*nbt.Compound)
			if !ok {
				continue
			}
			if id, n, ok := readStack(stack); ok {
				items.Add(id, n)
			}
		}
	}
}

func readStack(stack *nbt.Compound) (string, int, bool) {
	id, ok := stack.String("id")
	if !ok {
		return "", 0, false
	}

	if count, ok := stack.Byte("Count"); ok {
		return id, int(uint8(count)), true
	}

	// item stacks written since 1.20.5 use an int "count"
	if count, ok := stack.Int("count"); ok && count >= 0 {
		return id, int(count), true
	}

	return "", 0, false
}
