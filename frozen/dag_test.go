package frozen_test

import (
	"testing"

	"github.com/hapdag/hapdag/axis"
	"github.com/hapdag/hapdag/dlevel"
	"github.com/hapdag/hapdag/frozen"
	"github.com/hapdag/hapdag/seqsource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTwoLevelDag(t *testing.T) (*frozen.FrozenLevel, *frozen.FrozenLevel) {
	t.Helper()
	root := dlevel.NewRoot(2)
	require.NoError(t, root.PopulateRoot(seqsource.LevelSymbols{0, 1}, []float32{1, 1}))

	lvl1 := dlevel.NewInterior(1, 2)
	root.Link(lvl1)
	require.NoError(t, lvl1.PopulateFromPrev(seqsource.LevelSymbols{0, 1}, []float32{1, 1}))

	rootFrozen, err := frozen.BuildLevel(root)
	require.NoError(t, err)
	lvl1Frozen, err := frozen.BuildLevel(lvl1)
	require.NoError(t, err)
	return rootFrozen, lvl1Frozen
}

func TestNewDagAssemblesAndAggregates(t *testing.T) {
	rootFrozen, lvl1Frozen := buildTwoLevelDag(t)

	ax, err := axis.Uniform(2, 2)
	require.NoError(t, err)

	dag, err := frozen.NewDag(ax, []*frozen.FrozenLevel{rootFrozen, lvl1Frozen})
	require.NoError(t, err)

	assert.Equal(t, 2, dag.LevelCount())
	assert.Equal(t, 1+2+2, dag.NNodes())
	assert.Equal(t, 2+2, dag.NEdges())
	assert.GreaterOrEqual(t, dag.Distance(0), 0.0)
	assert.GreaterOrEqual(t, dag.Distance(1), dag.Distance(0))
}

func TestValidateAcceptsWellFormedDag(t *testing.T) {
	rootFrozen, lvl1Frozen := buildTwoLevelDag(t)

	ax, err := axis.Uniform(2, 2)
	require.NoError(t, err)

	dag, err := frozen.NewDag(ax, []*frozen.FrozenLevel{rootFrozen, lvl1Frozen})
	require.NoError(t, err)
	assert.NoError(t, dag.Validate())
}

func TestNewDagRejectsEmpty(t *testing.T) {
	ax, err := axis.Uniform(1, 2)
	require.NoError(t, err)
	_, err = frozen.NewDag(ax, nil)
	assert.ErrorIs(t, err, frozen.ErrEmptyDag)
}

func TestNewDagRejectsShapeMismatch(t *testing.T) {
	rootFrozen, _ := buildTwoLevelDag(t)

	other := dlevel.NewRoot(1)
	require.NoError(t, other.PopulateRoot(seqsource.LevelSymbols{0}, []float32{1}))
	otherInterior := dlevel.NewInterior(1, 2)
	other.Link(otherInterior)
	require.NoError(t, otherInterior.PopulateFromPrev(seqsource.LevelSymbols{0}, []float32{1}))
	mismatched, err := frozen.BuildLevel(otherInterior)
	require.NoError(t, err)

	ax, err := axis.Uniform(2, 2)
	require.NoError(t, err)

	_, err = frozen.NewDag(ax, []*frozen.FrozenLevel{rootFrozen, mismatched})
	assert.ErrorIs(t, err, frozen.ErrShapeMismatch)
}

func TestNewDagRejectsChildParentCountMismatch(t *testing.T) {
	root := dlevel.NewRoot(2)
	require.NoError(t, root.PopulateRoot(seqsource.LevelSymbols{0, 1}, []float32{1, 1}))
	fl, err := frozen.BuildLevel(root)
	require.NoError(t, err)

	ax, err := axis.Uniform(1, 2)
	require.NoError(t, err)

	// fl's own child count (2, from symbols 0 and 1) cannot equal a
	// following level whose parent count is 1 (itself, a single root).
	_, err = frozen.NewDag(ax, []*frozen.FrozenLevel{fl, fl})
	assert.ErrorIs(t, err, frozen.ErrShapeMismatch)
}
