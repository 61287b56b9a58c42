package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/drstein77/techaurex/internal/catalog"
	"github.com/drstein77/techaurex/internal/models"
)

type stubLog struct {
	warns  []string
	errors []string
}

func (l *stubLog) Info(string, ...zap.Field) {}

func (l *stubLog) Warn(msg string, _ ...zap.Field) { l.warns = append(l.warns, msg) }

func (l *stubLog) Error(msg string, _ ...zap.Field) { l.errors = append(l.errors, msg) }

type stubKeeper struct {
	ds     catalog.Dataset
	err    error
	closed bool
}

func (k *stubKeeper) Load(context.Context) (catalog.Dataset, error) { return k.ds, k.err }

func (k *stubKeeper) Ping(context.Context) bool { return k.err == nil }

func (k *stubKeeper) Close() bool {
	k.closed = true
	return true
}

func newStorage(t *testing.T, keeper Keeper) (*MemoryStorage, *stubLog) {
	t.Helper()
	log := &stubLog{}
	return NewMemoryStorage(context.Background(), keeper, catalog.NewShuffler(1), log), log
}

func cardIDs(cards []models.ProductCard) []int {
	out := make([]int, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

func TestNewMemoryStorageDefaults(t *testing.T) {
	s, log := newStorage(t, nil)

	require.True(t, s.Ping(context.Background()))
	require.True(t, s.Close())
	require.Empty(t, log.errors)
	require.Empty(t, log.warns)

	all, err := s.Export(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 30)
}

func TestNewMemoryStorageKeeperFailureFallsBack(t *testing.T) {
	keeper := &stubKeeper{err: errors.New("connection refused")}
	s, log := newStorage(t, keeper)

	require.Len(t, log.errors, 1)
	require.False(t, s.Ping(context.Background()))

	all, err := s.Export(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 30)

	require.True(t, s.Close())
	require.True(t, keeper.closed)
}

func TestNewMemoryStorageInvalidDatasetFallsBack(t *testing.T) {
	ds := catalog.Default()
	ds.Products[0].Price = -5
	_, log := newStorage(t, &stubKeeper{ds: ds})

	require.Len(t, log.errors, 1)
}

func TestNewMemoryStorageWarnsOnOverlap(t *testing.T) {
	ds := catalog.Default()
	ds.CategoryProducts[0].ID = 1
	_, log := newStorage(t, &stubKeeper{ds: ds})

	require.Empty(t, log.errors)
	require.Len(t, log.warns, 1)
}

func TestHome(t *testing.T) {
	s, _ := newStorage(t, nil)

	page, err := s.Home(context.Background())
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, cardIDs(page.Latest))
	require.Equal(t, []int{1, 2, 3, 5, 8}, cardIDs(page.Flagship))
	require.Equal(t, []int{4, 6, 7}, cardIDs(page.Affordable))

	iphone := page.Latest[0]
	require.Equal(t, "https://example.com/affiliate/iphone15promax", iphone.AffiliateLink)
	require.Equal(t, models.Stars{Full: 4, Half: true, Empty: 0}, iphone.Stars)
	require.Contains(t, iphone.PriceLabel, "1,199.00")
	require.Contains(t, iphone.OriginalPriceLabel, "1,299.00")
	require.Contains(t, iphone.SavingsLabel, "100.00")

	canon := page.Flagship[3]
	require.Equal(t, "#", canon.AffiliateLink)
	require.Empty(t, canon.OriginalPriceLabel)
	require.Empty(t, canon.SavingsLabel)
}

func TestFilterProducts(t *testing.T) {
	s, _ := newStorage(t, nil)

	page, err := s.FilterProducts(context.Background(), models.Criteria{Category: "Audio"})
	require.NoError(t, err)
	require.Equal(t, 2, page.Count)
	require.ElementsMatch(t, []int{4, 7}, cardIDs(page.Products))
}

func TestLatest(t *testing.T) {
	s, _ := newStorage(t, nil)

	page, err := s.Latest(context.Background())
	require.NoError(t, err)
	require.Equal(t, 30, page.Count)
	require.Equal(t, 101, page.Products[0].ID)
	for i := 1; i < len(page.Products); i++ {
		require.False(t, page.Products[i].Date.After(page.Products[i-1].Date.Time))
	}
}

func TestCategory(t *testing.T) {
	s, _ := newStorage(t, nil)

	page, err := s.Category(context.Background(), "earphone", models.Criteria{MaxPrice: models.Bound(250)})
	require.NoError(t, err)

	require.Equal(t, models.CategoryEarphone, page.Name)
	require.Equal(t, "Earphone Reviews", page.Title)
	require.Equal(t, []string{"Apple", "Bose", "Jabra", "Nothing", "Sony"}, page.Companies)
	require.Equal(t, []int{302, 304, 305}, cardIDs(page.Latest))
	require.ElementsMatch(t, []int{302, 304, 305}, cardIDs(page.Others))
	require.Equal(t, catalog.CategoryRating, page.Latest[0].Rating)
}

func TestCategoryIgnoresCategoryCriterion(t *testing.T) {
	s, _ := newStorage(t, nil)

	page, err := s.Category(context.Background(), "laptop", models.Criteria{Category: "Smartphones"})
	require.NoError(t, err)
	require.Len(t, page.Latest, 5)
}

func TestCategoryNotFound(t *testing.T) {
	s, _ := newStorage(t, nil)

	_, err := s.Category(context.Background(), "drones", models.Criteria{})
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, err, catalog.ErrCategoryNotFound)
}

func TestSearchHeadings(t *testing.T) {
	s, _ := newStorage(t, nil)
	ctx := context.Background()

	page, err := s.Search(ctx, "iphone")
	require.NoError(t, err)
	require.Equal(t, models.SearchExact, page.Mode)
	require.Equal(t, `Search results for "iphone"`, page.Heading)
	require.Equal(t, len(page.Results), page.Count)

	page, err = s.Search(ctx, "cheap sony")
	require.NoError(t, err)
	require.Equal(t, models.SearchCompanyFallback, page.Mode)
	require.Equal(t, "Sony", page.DetectedCompany)
	require.Equal(t, "No exact matches. Showing products from Sony", page.Heading)
	require.Equal(t, []int{2, 301}, cardIDs(page.Results))

	page, err = s.Search(ctx, "toaster")
	require.NoError(t, err)
	require.Equal(t, models.SearchNone, page.Mode)
	require.Equal(t, `No products found for "toaster"`, page.Heading)
	require.NotNil(t, page.Results)
	require.Zero(t, page.Count)
}

func TestSearchHeadingKeepsQueryVerbatim(t *testing.T) {
	s, _ := newStorage(t, nil)

	page, err := s.Search(context.Background(), `say "hi"`)
	require.NoError(t, err)
	require.Equal(t, `No products found for "say "hi""`, page.Heading)

	page, err = s.Search(context.Background(), `Pro\Max`)
	require.NoError(t, err)
	require.Equal(t, `No products found for "Pro\Max"`, page.Heading)
}

func TestDetail(t *testing.T) {
	s, _ := newStorage(t, nil)

	page, err := s.Detail(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, 276, page.Product.TotalReviews)
	require.Contains(t, page.SavingsLabel, "50.00")

	page, err = s.Detail(context.Background(), 6)
	require.NoError(t, err)
	require.GreaterOrEqual(t, page.Product.TotalReviews, 80)
	require.Less(t, page.Product.TotalReviews, 380)
	require.Empty(t, page.SavingsLabel)

	_, err = s.Detail(context.Background(), 301)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCanceledContext(t *testing.T) {
	s, _ := newStorage(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Home(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
