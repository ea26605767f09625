package litematic

import "errors"

// Errors returned by Decode. Read-level detail from the tag reader is
// logged, never returned.
var (
	ErrUnreadable       = errors.New("could not read schematic")
	ErrRootNotCompound  = errors.New("schematic root is not a compound")
	ErrMissingMetadata  = errors.New("schematic is missing Metadata")
	ErrMissingRegions   = errors.New("schematic is missing Regions")
	ErrInputTooLarge    = errors.New("schematic file too large")
	ErrDocumentTooLarge = errors.New("schematic decompresses to more than the allowed size")
)
