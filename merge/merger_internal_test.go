package merge

import (
	"testing"

	"github.com/hapdag/hapdag/dlevel"
	"github.com/hapdag/hapdag/scorepair"
	"github.com/hapdag/hapdag/seqsource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectRetainedRemovedSiblingFreeWins(t *testing.T) {
	root := dlevel.NewRoot(2)
	require.NoError(t, root.PopulateRoot(seqsource.LevelSymbols{0, 1}, []float32{1, 1}))

	hasSibling := map[int]bool{0: false, 1: true}
	pair, err := scorepair.New(0, 1, 0.1, true)
	require.NoError(t, err)

	retained, removed := selectRetainedRemoved(root, hasSibling, pair)
	assert.Equal(t, 1, retained)
	assert.Equal(t, 0, removed)
}

func TestSelectRetainedRemovedWeightTieBreak(t *testing.T) {
	root := dlevel.NewRoot(2)
	require.NoError(t, root.PopulateRoot(seqsource.LevelSymbols{0, 0, 1}, []float32{5, 5, 1}))
	lvl1 := dlevel.NewInterior(1, 2)
	root.Link(lvl1)
	require.NoError(t, lvl1.PopulateFromPrev(seqsource.LevelSymbols{0, 0, 0}, []float32{5, 5, 1}))
	// lvl1's parent node 0 carries weight 10, parent node 1 carries weight 1.

	hasSibling := map[int]bool{0: true, 1: true}
	pair, err := scorepair.New(0, 1, 0.1, true)
	require.NoError(t, err)

	retained, removed := selectRetainedRemoved(lvl1, hasSibling, pair)
	assert.Equal(t, 0, retained, "heavier node survives")
	assert.Equal(t, 1, removed)
}

func TestSelectRetainedRemovedWeightTieKeepsA(t *testing.T) {
	root := dlevel.NewRoot(2)
	require.NoError(t, root.PopulateRoot(seqsource.LevelSymbols{0, 1}, []float32{3, 3}))
	lvl1 := dlevel.NewInterior(1, 2)
	root.Link(lvl1)
	// lvl1's parent nodes 0 and 1 each carry weight 3: a tie.
	require.NoError(t, lvl1.PopulateFromPrev(seqsource.LevelSymbols{0, 0}, []float32{3, 3}))

	hasSibling := map[int]bool{0: true, 1: true}
	pair, err := scorepair.New(0, 1, 0.1, true)
	require.NoError(t, err)

	retained, removed := selectRetainedRemoved(lvl1, hasSibling, pair)
	assert.Equal(t, 0, retained)
	assert.Equal(t, 1, removed)
}
