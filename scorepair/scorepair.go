package scorepair

import (
	"math"
)

// ScorePair is an immutable (nodeA, nodeB, score, mergeable?) value with
// the total order used by merge.LevelMerger's greedy loop: first by
// ¬Mergeable (Mergeable sorts less), then by Value ascending, then by A,
// then by B.
type ScorePair struct {
	A, B      int
	Value     float32
	Mergeable bool
}

// New validates and constructs a ScorePair.
//
// Errors:
//   - ErrNegativeScore if value < 0 or value is NaN.
//   - ErrInconsistentMergeable if value == 0 and mergeable is false (a zero
//     score means the two nodes are indistinguishable and must be mergeable).
func New(a, b int, value float32, mergeable bool) (ScorePair, error) {
	if math.IsNaN(float64(value)) || value < 0 {
		return ScorePair{}, ErrNegativeScore
	}
	if value == 0 && !mergeable {
		return ScorePair{}, ErrInconsistentMergeable
	}

	return ScorePair{A: a, B: b, Value: value, Mergeable: mergeable}, nil
}

// Less reports whether x sorts strictly before y under the merger's total
// order: mergeable pairs first, then ascending Value, then A, then B.
func Less(x, y ScorePair) bool {
	if x.Mergeable != y.Mergeable {
		return x.Mergeable // mergeable (true) sorts before non-mergeable
	}
	if x.Value != y.Value {
		return x.Value < y.Value
	}
	if x.A != y.A {
		return x.A < y.A
	}

	return x.B < y.B
}

// Compare is the gods-style three-way comparator matching Less, for use
// with github.com/emirpasic/gods priority structures.
func Compare(x, y ScorePair) int {
	if Less(x, y) {
		return -1
	}
	if Less(y, x) {
		return 1
	}

	return 0
}

// Equal reports whether x and y agree on all four fields; Value is compared
// bit-for-bit (via math.Float32bits) rather than with ==, so that two
// differently-computed NaNs or signed zeros are not silently conflated.
func Equal(x, y ScorePair) bool {
	return x.A == y.A && x.B == y.B && x.Mergeable == y.Mergeable &&
		math.Float32bits(x.Value) == math.Float32bits(y.Value)
}
