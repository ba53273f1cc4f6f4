package axis_test

import (
	"errors"
	"testing"

	"github.com/hapdag/hapdag/axis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("rejects empty", func(t *testing.T) {
		_, err := axis.New(nil)
		assert.True(t, errors.Is(err, axis.ErrEmptyAxis))
	})

	t.Run("rejects bad arity", func(t *testing.T) {
		_, err := axis.New([]int{2, 1, 3})
		assert.True(t, errors.Is(err, axis.ErrBadArity))
	})

	t.Run("accepts valid axis", func(t *testing.T) {
		a, err := axis.New([]int{2, 3, 4})
		require.NoError(t, err)
		assert.Equal(t, 3, a.Len())
		assert.Equal(t, 2, a.Arity(0))
		assert.Equal(t, 3, a.Arity(1))
		assert.Equal(t, 4, a.Arity(2))
	})
}

func TestUniform(t *testing.T) {
	a, err := axis.Uniform(5, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, a.Len())
	for l := 0; l < a.Len(); l++ {
		assert.Equal(t, 2, a.Arity(l))
	}

	_, err = axis.Uniform(0, 2)
	assert.True(t, errors.Is(err, axis.ErrEmptyAxis))

	_, err = axis.Uniform(3, 1)
	assert.True(t, errors.Is(err, axis.ErrBadArity))
}
