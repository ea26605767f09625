package litematic

import "math/bits"

// bitsPerEntry returns the width of one packed palette index. Palettes
// never use fewer than two bits.
func bitsPerEntry(paletteSize int) int {
	if paletteSize <= 1 {
		return 2
	}
	return max(2, 32-bits.LeadingZeros32(uint32(paletteSize-1)))
}

// unpack walks count indices of width bits packed back to back into
// words, low bits first. An index may straddle two words. Unpacking stops
// at the end of words if count asks for more indices than are stored.
func unpack(words []int64, width int, count int64, visit func(idx uint64)) {
	mask := uint64(1)<<width - 1

	var off int64
	for i := int64(0); i < count; i++ {
		w := off >> 6
		if w >= int64(len(words)) {
			return
		}
		bit := uint(off & 63)
		cur := uint64(words[w])

		var v uint64
		if int(bit)+width <= 64 {
			v = cur >> bit & mask
		} else {
			if w+1 >= int64(len(words)) {
				return
			}
			next := uint64(words[w+1])
			v = (cur>>bit | next<<(64-bit)) & mask
		}

		visit(v)
		off += int64(width)
	}
}
