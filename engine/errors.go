package engine

import (
	"errors"
	"fmt"
)

// ErrNoRowsProvided is returned when a mutation receives an empty batch.
var ErrNoRowsProvided = errors.New("no rows provided")

// ErrRowShapeMismatch indicates an appended row whose value count does not
// match the file's total column count across all groups.
type ErrRowShapeMismatch struct {
	Row      int
	Expected int
	Actual   int
}

func (e *ErrRowShapeMismatch) Error() string {
	return fmt.Sprintf("row %d has %d values, expected %d", e.Row, e.Actual, e.Expected)
}
