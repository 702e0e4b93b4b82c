package htygo

import (
	"github.com/hupe1980/htygo/codec"
	"github.com/hupe1980/htygo/engine"
	"github.com/hupe1980/htygo/metadata"
)

// DB is a handle to one HTY file path.
//
// It holds no open file descriptors and no cached metadata: every operation
// opens the file, parses the trailer fresh, scans, and closes. A DB is safe
// for concurrent read-only use.
type DB struct {
	engine *engine.Engine
	opts   options
}

// Open creates a DB for the given path. The file is not touched until the
// first operation, so Open never fails; a missing or corrupt file surfaces
// on first use.
func Open(path string, optFns ...Option) *DB {
	opts := options{
		codec:  codec.Default,
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &DB{
		engine: engine.New(path,
			engine.WithCodec(opts.codec),
			engine.WithLogger(opts.logger.Logger),
		),
		opts: opts,
	}
}

// Path returns the file path this DB operates on.
func (db *DB) Path() string {
	return db.engine.Path()
}

// Metadata parses and returns the file's trailer record. The result is a
// fresh value owned by the caller.
func (db *DB) Metadata() (*metadata.Metadata, error) {
	return db.engine.Metadata()
}

// Project reads the named columns for every row. All columns must live in
// one group. The result holds one sequence per column, in request order.
func (db *DB) Project(columns ...string) ([][]float32, error) {
	return db.engine.Project(columns...)
}

// Filter projects one column and keeps the values satisfying the predicate.
// Equality ("eq"/"ne") uses an absolute tolerance of metadata.Epsilon rather
// than bit equality.
func (db *DB) Filter(column string, op metadata.Operator, threshold float32) ([]float32, error) {
	return db.engine.Filter(column, op, threshold)
}

// ProjectFiltered reads the projected columns for each row whose filter
// column satisfies the predicate, in one pass. The filter column counts
// toward the same-group constraint even when not projected.
func (db *DB) ProjectFiltered(columns []string, filterColumn string, op metadata.Operator, threshold float32) ([][]float32, error) {
	return db.engine.ProjectFiltered(columns, filterColumn, op, threshold)
}

// AddRows appends rows to every group by writing a complete new file at
// dest; the source file is immutable. Each row carries values for all
// columns of all groups in group-then-column order.
func (db *DB) AddRows(dest string, rows [][]float32) error {
	return db.engine.AddRows(dest, rows)
}
