package frozen

import (
	"math"

	"github.com/hapdag/hapdag/axis"
)

// FrozenDag is the fully built, immutable leveled DAG: a chain of
// FrozenLevel values plus the distance and size aggregates computed once
// at assembly time.
type FrozenDag struct {
	axis   *axis.MarkerAxis
	levels []*FrozenLevel

	distance []float64

	nNodes, nEdges     int
	maxNodes, maxEdges int
}

// NewDag validates and assembles levels into a FrozenDag. Level 0 must
// have exactly one parent node (the virtual root), and each level's
// child count must match the next level's parent count.
func NewDag(ax *axis.MarkerAxis, levels []*FrozenLevel) (*FrozenDag, error) {
	if len(levels) == 0 {
		return nil, ErrEmptyDag
	}
	if levels[0].ParentCount() != 1 {
		return nil, ErrShapeMismatch
	}
	for i := 1; i < len(levels); i++ {
		if levels[i-1].ChildCount() != levels[i].ParentCount() {
			return nil, ErrShapeMismatch
		}
	}

	d := &FrozenDag{axis: ax, levels: levels}
	d.computeDistance()
	d.computeAggregates()
	return d, nil
}

// computeDistance fills distance[i] with the cumulative sum of each
// level's -log10(sum over edges of edgeProb*condEdgeProb), clamped to a
// non-negative per-level contribution.
func (d *FrozenDag) computeDistance() {
	d.distance = make([]float64, len(d.levels))
	var cum float64
	for i, lvl := range d.levels {
		var mass float64
		for e := 0; e < lvl.EdgeCount(); e++ {
			mass += float64(lvl.EdgeProb(e)) * float64(lvl.CondEdgeProb(e))
		}
		term := -math.Log10(mass)
		if term < 0 {
			term = 0
		}
		cum += term
		d.distance[i] = cum
	}
}

func (d *FrozenDag) computeAggregates() {
	d.nNodes = 1
	for _, lvl := range d.levels {
		d.nNodes += lvl.ChildCount()
		d.nEdges += lvl.EdgeCount()
		if n := lvl.ParentCount() + lvl.ChildCount(); n > d.maxNodes {
			d.maxNodes = n
		}
		if e := lvl.EdgeCount(); e > d.maxEdges {
			d.maxEdges = e
		}
	}
}

// Validate re-checks the shape and weight invariants a correctly built
// FrozenDag must already satisfy: a single parent at level 0,
// level-to-level parent/child count agreement, and per-parent weight
// conservation (a parent's node weight equals the sum of its out-edges,
// within 1e-3). Edge endpoint ids are not re-checked.
func (d *FrozenDag) Validate() error {
	if len(d.levels) == 0 {
		return ErrEmptyDag
	}
	if d.levels[0].ParentCount() != 1 {
		return ErrShapeMismatch
	}
	for i, lvl := range d.levels {
		if i > 0 && d.levels[i-1].ChildCount() != lvl.ParentCount() {
			return ErrShapeMismatch
		}
		for p := 0; p < lvl.ParentCount(); p++ {
			var summed float32
			for j := 0; j < lvl.OutDegree(p); j++ {
				summed += lvl.Weight(lvl.OutEdgeAt(p, j))
			}
			if diff := summed - lvl.ParentWeight(p); diff > 1e-3 || diff < -1e-3 {
				return ErrShapeMismatch
			}
		}
	}
	return nil
}

// IsChildOf reports whether the child of level's edge parentEdge is the
// same node as the parent of the next level's edge childEdge.
func (d *FrozenDag) IsChildOf(level, parentEdge, childEdge int) bool {
	return d.levels[level].Child(parentEdge) == d.levels[level+1].Parent(childEdge)
}

// Level returns the i-th level, 0-indexed.
func (d *FrozenDag) Level(i int) *FrozenLevel { return d.levels[i] }

// LevelCount returns the number of levels in the dag.
func (d *FrozenDag) LevelCount() int { return len(d.levels) }

// Distance returns the cumulative -log10 distance through level i.
func (d *FrozenDag) Distance(i int) float64 { return d.distance[i] }

// NNodes returns the total node count across the whole dag, including the
// virtual root.
func (d *FrozenDag) NNodes() int { return d.nNodes }

// NEdges returns the total edge count across every level.
func (d *FrozenDag) NEdges() int { return d.nEdges }

// MaxNodes returns the largest single level's combined parent+child count.
func (d *FrozenDag) MaxNodes() int { return d.maxNodes }

// MaxEdges returns the largest single level's edge count.
func (d *FrozenDag) MaxEdges() int { return d.maxEdges }

// Axis returns the marker axis the dag was built against.
func (d *FrozenDag) Axis() *axis.MarkerAxis { return d.axis }
