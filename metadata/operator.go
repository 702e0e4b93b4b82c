package metadata

import (
	"fmt"
	"math"
)

// Operator represents a comparison operator for filtering.
type Operator string

const (
	// OpEqual represents the equality operator.
	OpEqual Operator = "eq"
	// OpNotEqual represents the inequality operator.
	OpNotEqual Operator = "ne"
	// OpGreaterThan represents the greater than operator.
	OpGreaterThan Operator = "gt"
	// OpGreaterEqual represents the greater than or equal operator.
	OpGreaterEqual Operator = "gte"
	// OpLessThan represents the less than operator.
	OpLessThan Operator = "lt"
	// OpLessEqual represents the less than or equal operator.
	OpLessEqual Operator = "lte"
)

// Epsilon is the absolute tolerance used for equality comparison. Stored
// values pass through a float32 narrowing on ingestion, so bit equality
// against user-supplied thresholds would be wrong.
const Epsilon = 1e-6

// ErrInvalidOperator indicates an operator token that is neither a symbol
// nor a stable operator name.
type ErrInvalidOperator struct {
	Token string
}

func (e *ErrInvalidOperator) Error() string {
	return fmt.Sprintf("invalid predicate operator: %q", e.Token)
}

// ParseOperator accepts both comparison symbols (">", ">=", "=", "!=", "<",
// "<=") and the stable names used in configuration ("gt", "gte", ...).
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "=", "==", string(OpEqual):
		return OpEqual, nil
	case "!=", string(OpNotEqual):
		return OpNotEqual, nil
	case ">", string(OpGreaterThan):
		return OpGreaterThan, nil
	case ">=", string(OpGreaterEqual):
		return OpGreaterEqual, nil
	case "<", string(OpLessThan):
		return OpLessThan, nil
	case "<=", string(OpLessEqual):
		return OpLessEqual, nil
	default:
		return "", &ErrInvalidOperator{Token: s}
	}
}

// Matches reports whether v satisfies the predicate against threshold.
// Unknown operators match nothing.
func (op Operator) Matches(v, threshold float32) bool {
	switch op {
	case OpEqual:
		return math.Abs(float64(v)-float64(threshold)) < Epsilon
	case OpNotEqual:
		return math.Abs(float64(v)-float64(threshold)) >= Epsilon
	case OpGreaterThan:
		return v > threshold
	case OpGreaterEqual:
		return v >= threshold
	case OpLessThan:
		return v < threshold
	case OpLessEqual:
		return v <= threshold
	default:
		return false
	}
}
