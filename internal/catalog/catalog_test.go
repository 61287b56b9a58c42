package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drstein77/techaurex/internal/models"
)

type fixedRandom int

func (f fixedRandom) IntN(int) int { return int(f) }

func TestNewRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Dataset)
	}{
		{"duplicate id", func(ds *Dataset) { ds.Products[1].ID = ds.Products[0].ID }},
		{"negative price", func(ds *Dataset) { ds.Products[0].Price = -1 }},
		{"rating above five", func(ds *Dataset) { ds.Products[0].Rating = 5.5 }},
		{"unknown category", func(ds *Dataset) { ds.CategoryProducts[0].Category = "Tablet" }},
		{"duplicate category id", func(ds *Dataset) { ds.CategoryProducts[1].ID = ds.CategoryProducts[0].ID }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := Default()
			tt.edit(&ds)

			_, err := New(ds)
			require.Error(t, err)
		})
	}
}

func TestCatalogIsIsolatedFromInput(t *testing.T) {
	ds := Default()
	c, err := New(ds)
	require.NoError(t, err)

	ds.Products[0].Name = "changed"
	ds.Products[0].Features[0] = "changed"
	got := c.Products()
	got[0].Price = 1

	p, err := c.Product(1)
	require.NoError(t, err)
	require.Equal(t, "Apple iPhone 15 Pro Max", p.Name)
	require.Equal(t, "A17 Pro chip", p.Features[0])
	require.Equal(t, 1199.0, p.Price)
}

func TestCatalogSections(t *testing.T) {
	c := defaultCatalog(t)

	require.Equal(t, []int{1, 2, 3}, ids(c.Latest(3)))
	require.Len(t, c.Latest(100), 8)
	require.Equal(t, []int{1, 2, 3, 5, 8}, ids(c.Flagship()))
	require.Equal(t, []int{4, 6, 7}, ids(c.Affordable()))
	require.Equal(t, "Apple", c.Companies()[0])
	require.Equal(t, "Smartphones", c.Categories()[0])
}

func TestCategoryBySlug(t *testing.T) {
	tests := []struct {
		slug string
		want models.CategoryName
	}{
		{"mobile", models.CategoryMobile},
		{"laptop", models.CategoryLaptop},
		{"earphone", models.CategoryEarphone},
	}
	for _, tt := range tests {
		got, err := CategoryBySlug(tt.slug)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
		require.Equal(t, tt.slug, CategorySlug(got))
	}

	got, err := CategoryBySlug("Laptop")
	require.NoError(t, err)
	require.Equal(t, models.CategoryLaptop, got)

	_, err = CategoryBySlug("tablets")
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestProductsForCategory(t *testing.T) {
	c := defaultCatalog(t)

	earphones := c.ProductsForCategory(models.CategoryEarphone)
	require.Equal(t, []int{301, 302, 303, 304, 305}, ids(earphones))
	for _, p := range earphones {
		require.Equal(t, "Earphone", p.Category)
		require.Equal(t, CategoryRating, p.Rating)
		require.NotNil(t, p.Features)
	}

	require.Equal(t, []string{"Apple", "Asus", "Dell", "HP", "Lenovo"}, c.CompaniesForCategory(models.CategoryLaptop))
	require.Len(t, c.ProductsForCategory(models.CategoryMobile), 12)
}

func TestUnified(t *testing.T) {
	c := defaultCatalog(t)

	unified := c.Unified()

	require.Len(t, unified, 8+22)
	require.Equal(t, 1, unified[0].ID)
	require.Equal(t, 101, unified[8].ID)
	require.Empty(t, c.Overlap())
}

func TestUnifiedSharedIDPrefersCategoryRecord(t *testing.T) {
	ds := Default()
	ds.CategoryProducts[0].ID = 3
	c, err := New(ds)
	require.NoError(t, err)

	require.Equal(t, []int{3}, c.Overlap())

	unified := c.Unified()
	require.Len(t, unified, 8+21)
	require.Equal(t, 3, unified[2].ID)
	require.Equal(t, "iPhone 15 Pro", unified[2].Name)
}

func TestDetailCurated(t *testing.T) {
	d, err := defaultCatalog(t).Detail(1, fixedRandom(0))

	require.NoError(t, err)
	require.Equal(t, 150, d.TotalReviews)
	require.Equal(t, "https://example.com/affiliate/iphone15promax", d.AffiliateLink)
	require.Len(t, d.Images, 3)
}

func TestDetailSynthesized(t *testing.T) {
	d, err := defaultCatalog(t).Detail(4, fixedRandom(20))

	require.NoError(t, err)
	require.Equal(t, "Samsung Galaxy Buds Pro", d.Name)
	require.Equal(t, []string{"headphones", "hero"}, d.Images)
	require.Equal(t, 100, d.TotalReviews)
	require.Equal(t, AffiliatePlaceholder, d.AffiliateLink)
	require.Equal(t, "Premium wireless earbuds with active noise cancellation.", d.Description)
	require.Len(t, d.Features, 4)
}

func TestDetailNotFound(t *testing.T) {
	_, err := defaultCatalog(t).Detail(999, fixedRandom(0))

	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestAffiliateLink(t *testing.T) {
	c := defaultCatalog(t)

	require.Equal(t, "https://example.com/affiliate/sony-xm5", c.AffiliateLink(2))
	require.Equal(t, AffiliatePlaceholder, c.AffiliateLink(5))
	require.Equal(t, AffiliatePlaceholder, c.AffiliateLink(301))
}

func TestHomeFilter(t *testing.T) {
	c := defaultCatalog(t)

	all := c.HomeFilter(6, models.Criteria{})
	require.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, ids(all))

	apple := c.HomeFilter(6, models.Criteria{Company: "Apple", MaxPrice: models.Bound(1200)})
	require.Equal(t, []int{1, 6}, ids(apple))
}

func TestSavings(t *testing.T) {
	p := product(1, 1199, "2024-01-01")

	_, ok := Savings(p)
	require.False(t, ok)

	p.OriginalPrice = models.Bound(1299)
	saved, ok := Savings(p)
	require.True(t, ok)
	require.Equal(t, 100.0, saved)

	p.OriginalPrice = models.Bound(1000)
	_, ok = Savings(p)
	require.False(t, ok)
}
