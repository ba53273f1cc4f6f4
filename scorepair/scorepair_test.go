package scorepair_test

import (
	"errors"
	"testing"

	"github.com/hapdag/hapdag/scorepair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid mergeable", func(t *testing.T) {
		sp, err := scorepair.New(1, 2, 0.1, true)
		require.NoError(t, err)
		assert.Equal(t, 1, sp.A)
		assert.Equal(t, 2, sp.B)
	})

	t.Run("negative value rejected", func(t *testing.T) {
		_, err := scorepair.New(1, 2, -0.1, false)
		assert.True(t, errors.Is(err, scorepair.ErrNegativeScore))
	})

	t.Run("zero must be mergeable", func(t *testing.T) {
		_, err := scorepair.New(1, 2, 0, false)
		assert.True(t, errors.Is(err, scorepair.ErrInconsistentMergeable))
	})

	t.Run("zero mergeable ok", func(t *testing.T) {
		_, err := scorepair.New(1, 2, 0, true)
		require.NoError(t, err)
	})
}

func TestLess(t *testing.T) {
	mergeable, _ := scorepair.New(1, 2, 0.5, true)
	nonMergeable, _ := scorepair.New(1, 2, 0.1, false)
	assert.True(t, scorepair.Less(mergeable, nonMergeable), "mergeable sorts before non-mergeable regardless of value")

	lowVal, _ := scorepair.New(3, 4, 0.1, true)
	highVal, _ := scorepair.New(1, 2, 0.5, true)
	assert.True(t, scorepair.Less(lowVal, highVal))

	sameValLowA, _ := scorepair.New(1, 9, 0.2, true)
	sameValHighA, _ := scorepair.New(2, 9, 0.2, true)
	assert.True(t, scorepair.Less(sameValLowA, sameValHighA))

	sameAB1, _ := scorepair.New(1, 2, 0.2, true)
	sameAB2, _ := scorepair.New(1, 3, 0.2, true)
	assert.True(t, scorepair.Less(sameAB1, sameAB2))
}

func TestCompareMatchesLess(t *testing.T) {
	x, _ := scorepair.New(1, 2, 0.2, true)
	y, _ := scorepair.New(1, 3, 0.2, true)
	assert.Equal(t, -1, scorepair.Compare(x, y))
	assert.Equal(t, 1, scorepair.Compare(y, x))
	assert.Equal(t, 0, scorepair.Compare(x, x))
}

func TestEqual(t *testing.T) {
	x, _ := scorepair.New(1, 2, 0.25, true)
	y, _ := scorepair.New(1, 2, 0.25, true)
	assert.True(t, scorepair.Equal(x, y))

	z, _ := scorepair.New(1, 2, 0.26, true)
	assert.False(t, scorepair.Equal(x, z))
}
