package hapdagbuild

import (
	"fmt"
	"math"

	"github.com/hapdag/hapdag/hapdaglog"
	"github.com/hapdag/hapdag/similarity"
)

// Option customizes a Builder by mutating a config before construction,
// exactly like builder.BuilderOption/builderConfig and dtw.Options.
type Option func(*config)

type config struct {
	scaleSet bool
	scale    float32

	maxWindowSet bool
	maxWindow    int

	minWindowSet bool
	minWindow    int

	maxThresholdRatio float32
	growthRatios      [2]float32
	gate              similarity.GatingPolicy

	logger hapdaglog.Logger
}

// WithScale sets the similarity-threshold multiplier. Required; scale = 0
// is the valid degenerate case that accepts no merges.
func WithScale(scale float32) Option {
	return func(c *config) {
		c.scaleSet = true
		c.scale = scale
	}
}

// WithMaxWindow sets the hard depth cap for SimilarityEngine. Required.
func WithMaxWindow(n int) Option {
	return func(c *config) {
		c.maxWindowSet = true
		c.maxWindow = n
	}
}

// WithMinWindow overrides the derived minimum subtree depth
// (max_window/12 + 1 by default).
func WithMinWindow(n int) Option {
	return func(c *config) {
		c.minWindowSet = true
		c.minWindow = n
	}
}

// WithMaxThresholdRatio overrides the early-reject ratio passed through to
// similarity.Options. Defaults to similarity's own default (1.4) when unset.
func WithMaxThresholdRatio(r float32) Option {
	return func(c *config) {
		c.maxThresholdRatio = r
	}
}

// WithGrowthRatios overrides the DefaultGate parameterization passed
// through to similarity.Options. Defaults to (0.7, 0.5) when unset.
func WithGrowthRatios(acceptRatio, minProportionRatio float32) Option {
	return func(c *config) {
		c.growthRatios = [2]float32{acceptRatio, minProportionRatio}
	}
}

// WithGate overrides the descent-gating predicate entirely, bypassing
// GrowthRatios. Lets the gating predicate be swapped out entirely.
func WithGate(gate similarity.GatingPolicy) Option {
	return func(c *config) {
		c.gate = gate
	}
}

// WithLogger attaches a structured logger; the zero Builder logs nothing.
func WithLogger(l hapdaglog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// newConfig resolves opts into a validated config. scale and max_window
// have no defaults and must be set explicitly; min_window derives from
// max_window when not overridden.
func newConfig(opts ...Option) (config, error) {
	var c config
	for _, o := range opts {
		o(&c)
	}

	if !c.scaleSet {
		return config{}, ErrMissingScale
	}
	if math.IsNaN(float64(c.scale)) || math.IsInf(float64(c.scale), 0) || c.scale < 0 {
		return config{}, fmt.Errorf("%w: got %v", ErrInvalidScale, c.scale)
	}

	if !c.maxWindowSet {
		return config{}, ErrMissingWindow
	}
	if c.maxWindow < 1 {
		return config{}, fmt.Errorf("%w: max_window=%d", ErrInvalidWindow, c.maxWindow)
	}

	if !c.minWindowSet {
		c.minWindow = c.maxWindow/12 + 1
	}
	if c.minWindow < 1 || c.minWindow > c.maxWindow {
		return config{}, fmt.Errorf("%w: min_window=%d max_window=%d", ErrInvalidWindow, c.minWindow, c.maxWindow)
	}

	return c, nil
}

func (c config) similarityOptions() similarity.Options {
	return similarity.Options{
		Scale:             c.scale,
		MinWindow:         c.minWindow,
		MaxWindow:         c.maxWindow,
		MaxThresholdRatio: c.maxThresholdRatio,
		GrowthRatios:      c.growthRatios,
		Gate:              c.gate,
	}
}
