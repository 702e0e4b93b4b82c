// Package persistence implements the HTY on-disk layer: the trailer codec
// and raw binary access to group blocks.
//
// File layout, back to front: a trailing 4-byte little-endian int32 holds the
// byte length of the JSON metadata block immediately preceding it; everything
// before that block is packed float32 cell data, row-major within each group.
package persistence
