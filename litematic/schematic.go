package litematic

import "sort"

// Vec3 is an integer extent along the x, y and z axes.
type Vec3 struct {
	X, Y, Z int32
}

// Volume returns the number of blocks inside the extent.
func (v Vec3) Volume() int64 {
	return abs(int64(v.X)) * abs(int64(v.Y)) * abs(int64(v.Z))
}

// Schematic is the decoded summary of a schematic file.
type Schematic struct {
	Name        string
	Author      string
	Description *string
	Size        Vec3
	Items       ItemCounts
}

// ItemCounts maps a block or item id to the number required.
type ItemCounts map[string]int

// Add adds n to the count for id.
func (c ItemCounts) Add(id string, n int) {
	c[id] += n
}

// Merge adds every count in o to c.
func (c ItemCounts) Merge(o ItemCounts) {
	for id, n := range o {
		c[id] += n
	}
}

// Total returns the sum of all counts.
func (c ItemCounts) Total() int {
	t := 0
	for _, n := range c {
		t += n
	}
	return t
}

// ItemCount is one entry of ItemCounts.
type ItemCount struct {
	ID    string
	Count int
}

// Sorted returns the counts ordered by descending count, then by id.
func (c ItemCounts) Sorted() []ItemCount {
	out := make([]ItemCount, 0, len(c))
	for id, n := range c {
		out = append(out, ItemCount{ID: id, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
