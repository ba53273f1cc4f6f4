package similarity

import (
	"fmt"
	"math"
)

// GatingPolicy decides, once the walk reaches the end of the built chain,
// whether the running divergence and the two sides' still-unclaimed
// proportions justify pulling in one more level of input. It is consulted
// only while depth is below MaxWindow; while depth is also below MinWindow
// the walk grows regardless of its answer.
type GatingPolicy func(maxDiff, threshold, propA, propB float32) bool

// DefaultGate builds the descent-gating rule described by growthRatios:
// grow if maxDiff has already cleared growthRatios[0] of threshold and
// neither side's proportion has dropped below growthRatios[1] of
// threshold.
func DefaultGate(growthRatios [2]float32) GatingPolicy {
	return func(maxDiff, threshold, propA, propB float32) bool {
		return maxDiff > growthRatios[0]*threshold && minF32(propA, propB) > growthRatios[1]*threshold
	}
}

// Options configures an Engine.
type Options struct {
	// Scale is the multiplicative factor in the per-pair threshold.
	Scale float32
	// MinWindow is the minimum subtree depth always explored before a
	// decision is accepted.
	MinWindow int
	// MaxWindow is the hard cap on subtree depth.
	MaxWindow int
	// MaxThresholdRatio is the early-reject ratio; a returned score above
	// MaxThresholdRatio*threshold yields no pair at all. Defaults to 1.4.
	MaxThresholdRatio float32
	// GrowthRatios parameterizes DefaultGate. Defaults to (0.7, 0.5).
	// Ignored if Gate is set.
	GrowthRatios [2]float32
	// Gate overrides the descent-gating predicate. Defaults to
	// DefaultGate(GrowthRatios).
	Gate GatingPolicy
}

func (o Options) resolve() (Options, error) {
	// Scale == 0 is the degenerate-but-valid trivial case: every threshold
	// collapses to 0, so no pair is ever mergeable and the chain stays a
	// bare prefix trie.
	if o.Scale < 0 || math.IsNaN(float64(o.Scale)) || math.IsInf(float64(o.Scale), 0) {
		return Options{}, fmt.Errorf("%w: scale must be >= 0 and finite", ErrInvalidOptions)
	}
	if o.MinWindow < 1 {
		return Options{}, fmt.Errorf("%w: min_window must be >= 1", ErrInvalidOptions)
	}
	if o.MaxWindow < o.MinWindow {
		return Options{}, fmt.Errorf("%w: max_window must be >= min_window", ErrInvalidOptions)
	}
	if o.MaxThresholdRatio == 0 {
		o.MaxThresholdRatio = 1.4
	}
	if o.GrowthRatios == ([2]float32{}) {
		o.GrowthRatios = [2]float32{0.7, 0.5}
	}
	if o.Gate == nil {
		o.Gate = DefaultGate(o.GrowthRatios)
	}
	return o, nil
}

func minF32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func absF32(a float32) float32 {
	if a < 0 {
		return -a
	}
	return a
}
