package seqsource_test

import (
	"errors"
	"testing"

	"github.com/hapdag/hapdag/axis"
	"github.com/hapdag/hapdag/seqsource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInMemory(t *testing.T) {
	ax, err := axis.Uniform(3, 2)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		src, err := seqsource.NewInMemory(ax, [][]int{{0, 1, 0}, {1, 1, 0}}, []float32{1, 2})
		require.NoError(t, err)
		assert.Equal(t, 2, src.NumSequences())
		assert.Equal(t, float32(1), src.Weight(0))
		assert.Equal(t, float32(2), src.Weight(1))
	})

	t.Run("no sequences", func(t *testing.T) {
		_, err := seqsource.NewInMemory(ax, nil, nil)
		assert.True(t, errors.Is(err, seqsource.ErrNoSequences))
	})

	t.Run("bad weight", func(t *testing.T) {
		_, err := seqsource.NewInMemory(ax, [][]int{{0, 0, 0}}, []float32{0})
		assert.True(t, errors.Is(err, seqsource.ErrBadWeight))
	})

	t.Run("symbol out of range", func(t *testing.T) {
		_, err := seqsource.NewInMemory(ax, [][]int{{0, 2, 0}}, []float32{1})
		assert.True(t, errors.Is(err, seqsource.ErrSymbolOutOfRange))
	})

	t.Run("too few positions", func(t *testing.T) {
		_, err := seqsource.NewInMemory(ax, [][]int{{0, 1}}, []float32{1})
		assert.True(t, errors.Is(err, seqsource.ErrTooFewPositions))
	})
}

func TestInMemoryAdvance(t *testing.T) {
	ax, err := axis.Uniform(2, 2)
	require.NoError(t, err)
	src, err := seqsource.NewInMemory(ax, [][]int{{0, 1}, {1, 0}}, []float32{1, 1})
	require.NoError(t, err)

	sym0, err := src.Advance()
	require.NoError(t, err)
	assert.Equal(t, seqsource.LevelSymbols{0, 1}, sym0)

	sym1, err := src.Advance()
	require.NoError(t, err)
	assert.Equal(t, seqsource.LevelSymbols{1, 0}, sym1)

	_, err = src.Advance()
	assert.True(t, errors.Is(err, seqsource.ErrSourceExhausted))
}
