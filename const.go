package nbt

// TagType is the one-byte id that precedes every tag on the wire.
type TagType byte

const (
	TagEnd TagType = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

// DefaultMaxDepth is the nesting ceiling used by NewDecoder.
const DefaultMaxDepth = 512

const maxTagType = TagLongArray

// arrays are grown as data arrives; the declared length only sizes the
// first allocation up to this many elements
const maxPrealloc = 1024

var tagNames = [...]string{
	TagEnd:       "TAG_End",
	TagByte:      "TAG_Byte",
	TagShort:     "TAG_Short",
	TagInt:       "TAG_Int",
	TagLong:      "TAG_Long",
	TagFloat:     "TAG_Float",
	TagDouble:    "TAG_Double",
	TagByteArray: "TAG_Byte_Array",
	TagString:    "TAG_String",
	TagList:      "TAG_List",
	TagCompound:  "TAG_Compound",
	TagIntArray:  "TAG_Int_Array",
	TagLongArray: "TAG_Long_Array",
}

func (t TagType) String() string {
	if t > maxTagType {
		return "TAG_Unknown"
	}
	return tagNames[t]
}

func (t TagType) valid() bool { return t <= maxTagType }
