// SPDX-License-Identifier: MIT
package design_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomtranjr/msds601-highdim-group9/design"
)

func TestLockedSource_RangeAndReproducible(t *testing.T) {
	t.Parallel()

	a := design.NewDefaultSource()
	b := design.NewDefaultSource()
	for i := 0; i < 100; i++ {
		s := a.NextSeed()
		require.GreaterOrEqual(t, s, int64(0))
		require.Less(t, s, design.SeedUpperBound)
		require.Equal(t, s, b.NextSeed(), "draw %d", i)
	}
}

func TestLockedSource_BadRange(t *testing.T) {
	t.Parallel()

	_, err := design.NewLockedSource(1, 0)
	require.ErrorIs(t, err, design.ErrBadRange)
}

func TestLockedSource_Concurrent(t *testing.T) {
	t.Parallel()

	src, err := design.NewLockedSource(3, 10)
	require.NoError(t, err)

	var wg sync.WaitGroup
	out := make(chan int64, 200)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				out <- src.NextSeed()
			}
		}()
	}
	wg.Wait()
	close(out)

	n := 0
	for s := range out {
		require.GreaterOrEqual(t, s, int64(0))
		require.Less(t, s, int64(10))
		n++
	}
	require.Equal(t, 200, n)
}

func TestDeriveSeed(t *testing.T) {
	t.Parallel()

	require.Equal(t, design.DeriveSeed(2024, 1), design.DeriveSeed(2024, 1))
	require.NotEqual(t, design.DeriveSeed(2024, 1), design.DeriveSeed(2024, 2))
	require.NotEqual(t, design.DeriveSeed(2024, 1), design.DeriveSeed(2025, 1))
}
