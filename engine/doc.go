// Package engine composes the trailer codec, column locator and group reader
// into the HTY query and mutation operations.
//
// The engine is single-threaded and synchronous. Every operation opens the
// source file, performs one pass over the rows, and closes it; metadata is
// parsed fresh per operation and never shared. Concurrent readers of one file
// are safe. A mutation must not race a reader of the same path; the engine
// documents but does not enforce this.
package engine
