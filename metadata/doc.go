// Package metadata defines the HTY trailer record and the column locator.
//
// An HTY file is a sequence of row-major column groups followed by a JSON
// trailer describing them. Metadata is a plain value: it is parsed fresh from
// the trailer on every open, never cached and never mutated in place. A
// mutation builds a brand-new Metadata with recomputed offsets.
//
// Lookup is first-match-wins: duplicate column names are legal in the format,
// and the locator resolves them to the first occurrence in group-then-column
// order.
package metadata
