package axis

import "errors"

// ErrEmptyAxis indicates a MarkerAxis was constructed with zero positions.
var ErrEmptyAxis = errors.New("axis: must have at least one position")

// ErrBadArity indicates a position was given an allele cardinality below 2.
var ErrBadArity = errors.New("axis: arity must be >= 2")
