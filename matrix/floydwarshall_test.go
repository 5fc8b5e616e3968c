// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegraph/matrix"
)

func TestFloydWarshall_ChainAndShortcut(t *testing.T) {
	t.Parallel()

	// 0 -(5)-> 1 -(3)-> 2 and a direct 0 -(10)-> 2.
	d, h := pair(t, 3)
	set := func(i, j int, w float64) {
		require.NoError(t, d.Set(i, j, w))
		require.NoError(t, h.Set(i, j, j))
	}
	set(0, 1, 5)
	set(1, 2, 3)
	set(0, 2, 10)

	require.NoError(t, matrix.FloydWarshall(d, h))
	require.NoError(t, matrix.Validate(d, h))

	w, err := d.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 8.0, w)
	via, err := h.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, via)

	// Directed: nothing flows back.
	assert.False(t, d.Has(2, 0))
	assert.False(t, h.Has(2, 0))
}

func TestFloydWarshall_DimensionMismatch(t *testing.T) {
	t.Parallel()

	d, _ := pair(t, 1)
	_, h := pair(t, 2)
	require.ErrorIs(t, matrix.FloydWarshall(d, h), matrix.ErrDimensionMismatch)
}
