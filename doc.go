// Package htygo reads, queries and appends HTY files: a minimal columnar
// binary format that packs float32 columns into contiguous row-major groups
// and carries its metadata in a JSON trailer at the end of the file.
//
// # File format
//
// Back to front: a trailing 4-byte little-endian int32 holds the byte length
// of the JSON metadata block immediately before it; everything preceding the
// block is packed cell data. Within a group, the value for row r and column c
// lives at offset + (r*numColumns + c) * 4.
//
// # Quick start
//
//	db := htygo.Open("trips.hty")
//
//	cols, err := db.Project("distance", "fare")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fares, err := db.Filter("fare", metadata.OpGreaterThan, 10)
//
//	// Append produces a new file; the source is immutable.
//	err = db.AddRows("trips2.hty", [][]float32{{3.2, 12.5}})
//
// A single query may only touch columns that share a physical group; spanning
// groups fails with metadata.ErrCrossGroupQuery. That is a format constraint,
// not a transient error.
//
// Concurrent read-only use of one file is safe. An append must not race a
// reader of the destination or source path; the format defines no locking
// discipline, so coordination is the caller's responsibility.
package htygo
