package axis

import "fmt"

// MarkerAxis is an immutable sequence of L positions, each carrying an
// allele cardinality (arity) of at least 2. It is the only shared context
// between a WeightedSequenceSource and the level chain built over it.
type MarkerAxis struct {
	arities []int
}

// New validates arities and returns a MarkerAxis over them.
//
// Errors: ErrEmptyAxis if arities is empty; ErrBadArity if any entry < 2.
// Complexity: O(L).
func New(arities []int) (*MarkerAxis, error) {
	if len(arities) == 0 {
		return nil, ErrEmptyAxis
	}
	cp := make([]int, len(arities))
	for i, a := range arities {
		if a < 2 {
			return nil, fmt.Errorf("axis: position %d: %w", i, ErrBadArity)
		}
		cp[i] = a
	}

	return &MarkerAxis{arities: cp}, nil
}

// Uniform builds a MarkerAxis of L positions all sharing the same arity.
// Errors: ErrEmptyAxis if l <= 0; ErrBadArity if arity < 2.
func Uniform(l, arity int) (*MarkerAxis, error) {
	if l <= 0 {
		return nil, ErrEmptyAxis
	}
	arities := make([]int, l)
	for i := range arities {
		arities[i] = arity
	}

	return New(arities)
}

// Len returns L, the number of positions on the axis.
func (a *MarkerAxis) Len() int {
	return len(a.arities)
}

// Arity returns the allele cardinality at position ℓ. Panics if ℓ is out of
// range: callers are expected to stay within [0, Len()), same as slice
// indexing; MarkerAxis performs no bounds-checked accessor dance for a hot
// path queried once per level.
func (a *MarkerAxis) Arity(level int) int {
	return a.arities[level]
}
