// Package litematic decodes Litematica schematic files into material
// lists.
//
// A schematic is a gzip-compressed NBT document with a Metadata compound
// and a Regions compound. Each region stores its blocks as indices into a
// per-region palette, bit-packed into an array of 64-bit words, and the
// contents of containers as tile entities. Decode unpacks every region and
// returns the number of each block and item needed to build the structure.
package litematic
