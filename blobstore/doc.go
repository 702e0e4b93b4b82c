// Package blobstore provides storage abstraction for archived HTY files.
//
// The engine itself only queries local paths; blobstore exists for moving
// immutable HTY files between a local working directory and shared storage.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem rooted at a directory
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 with range reads and streaming uploads
//   - minio.Store: MinIO and other S3-compatible object stores
package blobstore
