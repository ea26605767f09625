/*
Package nbt reads and writes Named Binary Tag documents, the recursively
typed binary tree format used by Minecraft for worlds, items and
schematics.

A document is a single named root tag, usually a compound, optionally
wrapped in gzip or zlib (zstd and framed snappy are recognised as well).
FromBytes sniffs the wrapper from the leading bytes and returns the tree:

	root, err := nbt.FromBytes(data)
	if err != nil {
		return err
	}
	meta, ok := root.Tag.(*nbt.Compound)

Tags form a closed set of types; switch on the concrete type to inspect
them. Reading never panics on malformed input. Nesting is bounded by
Decoder.MaxDepth, and failed compound entries are reported together in a
MultiError.

For more information on the format, see
https://minecraft.wiki/w/NBT_format
*/
package nbt
