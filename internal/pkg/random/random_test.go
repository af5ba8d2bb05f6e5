//go:build unit

package random_test

import (
	"testing"

	"card-drop/internal/pkg/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededSource(t *testing.T) {
	t.Run("same seed yields same sequence", func(t *testing.T) {
		a := random.NewSeededSource(42)
		b := random.NewSeededSource(42)
		for range 20 {
			assert.Equal(t, a.IntN(100), b.IntN(100))
		}
	})

	t.Run("values stay in range", func(t *testing.T) {
		src, err := random.NewSource()
		require.NoError(t, err)
		for range 500 {
			v := src.IntN(7)
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, 7)
		}
	})
}

func TestSequence(t *testing.T) {
	seq := random.NewSequence(3, 0, 99)

	assert.Equal(t, 3, seq.IntN(10))
	assert.Equal(t, 0, seq.IntN(10))
	assert.Equal(t, 9, seq.IntN(10), "clamped to n-1")
	assert.Equal(t, 3, seq.IntN(10), "wraps around")
	assert.Equal(t, 0, random.NewSequence().IntN(5))
}
