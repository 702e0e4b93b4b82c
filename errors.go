package htygo

import (
	"github.com/hupe1980/htygo/engine"
	"github.com/hupe1980/htygo/metadata"
	"github.com/hupe1980/htygo/persistence"
)

// Error kinds re-exported from the subpackages where they arise, so callers
// of the top-level API only need this import.
//
// File open failures are not wrapped: they surface as the underlying
// *os.PathError (match with errors.Is(err, os.ErrNotExist) and friends).
var (
	// ErrCorruptTrailer reports an invalid trailing length field or an
	// unparseable metadata block.
	ErrCorruptTrailer = persistence.ErrCorruptTrailer

	// ErrEmptyColumnSet reports a query with no column names.
	ErrEmptyColumnSet = metadata.ErrEmptyColumnSet

	// ErrNoRowsProvided reports an append with an empty batch.
	ErrNoRowsProvided = engine.ErrNoRowsProvided
)

// Typed errors, matched with errors.As.
type (
	// ErrColumnNotFound reports an unknown (or empty) column name.
	ErrColumnNotFound = metadata.ErrColumnNotFound

	// ErrCrossGroupQuery reports columns spanning more than one group.
	ErrCrossGroupQuery = metadata.ErrCrossGroupQuery

	// ErrInvalidOperator reports an unrecognized predicate operator.
	ErrInvalidOperator = metadata.ErrInvalidOperator

	// ErrRowShapeMismatch reports an appended row with the wrong value count.
	ErrRowShapeMismatch = engine.ErrRowShapeMismatch
)
