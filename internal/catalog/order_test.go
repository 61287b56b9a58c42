package catalog

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drstein77/techaurex/internal/models"
)

func TestSortByRecencyDesc(t *testing.T) {
	in := []models.Product{
		product(1, 10, "2024-01-01"),
		product(2, 10, "2024-03-01"),
		product(3, 10, "2024-02-01"),
		product(4, 10, "2024-03-01"),
	}
	before := slices.Clone(in)

	out := SortByRecencyDesc(in)

	require.Equal(t, []int{2, 4, 3, 1}, ids(out))
	require.Equal(t, before, in, "input must not be reordered")
	for i := 1; i < len(out); i++ {
		require.False(t, out[i].Date.After(out[i-1].Date.Time))
	}
	require.Equal(t, ids(out), ids(SortByRecencyDesc(out)))
}

func TestSortByRecencyDescDefaultCatalog(t *testing.T) {
	out := SortByRecencyDesc(Default().Products)

	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, ids(out))
}

func TestShuffleIsPermutation(t *testing.T) {
	in := Default().Products
	before := ids(in)

	out := NewShuffler(0).Shuffle(in)

	require.Len(t, out, len(in))
	require.ElementsMatch(t, before, ids(out))
	require.Equal(t, before, ids(in))
}

func TestShuffleSeeded(t *testing.T) {
	in := Default().Products

	a := NewShuffler(42).Shuffle(in)
	b := NewShuffler(42).Shuffle(in)

	require.Equal(t, ids(a), ids(b))
}

func TestShuffleEmpty(t *testing.T) {
	require.Empty(t, NewShuffler(1).Shuffle(nil))
	require.Equal(t, []int{7}, ids(NewShuffler(1).Shuffle([]models.Product{product(7, 1, "2024-01-01")})))
}

func TestShufflerIntN(t *testing.T) {
	s := NewShuffler(7)
	for range 100 {
		n := s.IntN(5)
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 5)
	}
}
