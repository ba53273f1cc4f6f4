package frozen_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hapdag/hapdag/dlevel"
	"github.com/hapdag/hapdag/frozen"
	"github.com/hapdag/hapdag/seqsource"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// edgeSnapshot flattens a FrozenLevel's edges into a comparable value so
// go-cmp can diff BuildLevel's output against a RebuildLevel round-trip
// without reaching into unexported fields.
type edgeSnapshot struct {
	Parent int
	Child  int
	Symbol int
	Weight float32
	Cond   float32
}

func snapshot(fl *frozen.FrozenLevel) []edgeSnapshot {
	out := make([]edgeSnapshot, fl.EdgeCount())
	for e := range out {
		out[e] = edgeSnapshot{
			Parent: fl.Parent(e),
			Child:  fl.Child(e),
			Symbol: fl.Symbol(e),
			Weight: fl.Weight(e),
			Cond:   fl.CondEdgeProb(e),
		}
	}
	return out
}

func TestRebuildLevelMatchesOriginalByDeepDiff(t *testing.T) {
	root := dlevel.NewRoot(3)
	require.NoError(t, root.PopulateRoot(seqsource.LevelSymbols{0, 1, 2, 1, 0}, []float32{1, 2, 3, 4, 5}))

	fl, err := frozen.BuildLevel(root)
	require.NoError(t, err)
	rebuilt, err := frozen.RebuildLevel(fl)
	require.NoError(t, err)

	if diff := cmp.Diff(snapshot(fl), snapshot(rebuilt)); diff != "" {
		t.Errorf("RebuildLevel produced a different edge set (-original +rebuilt):\n%s", diff)
	}
}

func TestFrozenLevelPropertiesHoldAcrossRandomRoots(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	const arity = 4

	properties.Property("out-edges under a parent partition its weight exactly, and every child/parent id is dense", prop.ForAll(
		func(syms []int) bool {
			if len(syms) == 0 {
				return true
			}
			weights := make([]float32, len(syms))
			var total float32
			for i := range weights {
				weights[i] = float32(i%5) + 1
				total += weights[i]
			}

			root := dlevel.NewRoot(arity)
			if err := root.PopulateRoot(seqsource.LevelSymbols(syms), weights); err != nil {
				return false
			}
			fl, err := frozen.BuildLevel(root)
			if err != nil {
				return false
			}

			var summed float32
			for e := 0; e < fl.EdgeCount(); e++ {
				if fl.Parent(e) != 0 || fl.Symbol(e) < 0 || fl.Symbol(e) >= arity {
					return false
				}
				if fl.Child(e) < 0 || fl.Child(e) >= fl.ChildCount() {
					return false
				}
				summed += fl.Weight(e)
			}
			const epsilon = 1e-3
			diff := summed - total
			if diff < 0 {
				diff = -diff
			}
			return diff < epsilon && fl.ParentCount() == 1
		},
		gen.SliceOfN(40, gen.IntRange(0, arity-1)),
	))

	properties.TestingRun(t)
}
