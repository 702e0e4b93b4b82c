package metadata

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyColumnSet is returned when a multi-column operation receives no
// column names.
var ErrEmptyColumnSet = errors.New("empty column set")

// ErrColumnNotFound indicates that no column with the requested name exists
// in any group.
type ErrColumnNotFound struct {
	Column string
}

func (e *ErrColumnNotFound) Error() string {
	return fmt.Sprintf("column not found: %q", e.Column)
}

// ErrCrossGroupQuery indicates that the requested columns resolve to
// different physical groups. This is a hard format constraint, not a
// transient failure: columns can only be queried together when they share a
// group.
type ErrCrossGroupQuery struct {
	Columns []string
	Groups  []int
}

func (e *ErrCrossGroupQuery) Error() string {
	return fmt.Sprintf("columns %s span groups %v; a query may only touch one group",
		strings.Join(e.Columns, ", "), e.Groups)
}
