// Package catalog holds the immutable product catalog and the pure
// filtering, ordering, search and merge operations over it.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/gosimple/slug"

	"github.com/drstein77/techaurex/internal/models"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
)

const (
	// AffiliatePlaceholder is the link used when a product has none.
	AffiliatePlaceholder = "#"

	// CategoryRating is the rating given to category-scoped records, which
	// carry none of their own.
	CategoryRating = 4.4

	minSynthesizedReviews = 80
	synthesizedReviewSpan = 300
	maxSynthesizedFeature = 6
)

// Dataset is the raw input a Catalog is built from.
type Dataset struct {
	Products         []models.Product
	CategoryProducts []models.CategoryProduct
	Detailed         []models.DetailedProduct
	Categories       []string
	Companies        []string
}

// Random supplies bounded random integers.
type Random interface {
	IntN(n int) int
}

// Catalog is a read-only snapshot of a Dataset. Every accessor returns
// fresh slices.
type Catalog struct {
	products         []models.Product
	categoryProducts []models.CategoryProduct
	detailed         map[int]models.DetailedProduct
	categories       []string
	companies        []string
}

// New validates ds and builds a Catalog from a private copy of it.
func New(ds Dataset) (*Catalog, error) {
	if err := validate(ds); err != nil {
		return nil, err
	}

	c := &Catalog{
		products:         cloneProducts(ds.Products),
		categoryProducts: slices.Clone(ds.CategoryProducts),
		detailed:         make(map[int]models.DetailedProduct, len(ds.Detailed)),
		categories:       slices.Clone(ds.Categories),
		companies:        slices.Clone(ds.Companies),
	}
	for _, d := range ds.Detailed {
		d.Images = slices.Clone(d.Images)
		d.Features = slices.Clone(d.Features)
		if d.AffiliateLink == "" {
			d.AffiliateLink = AffiliatePlaceholder
		}
		c.detailed[d.ID] = d
	}
	return c, nil
}

func validate(ds Dataset) error {
	seen := make(map[int]struct{}, len(ds.Products))
	for _, p := range ds.Products {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("duplicate product id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.Price < 0 {
			return fmt.Errorf("product %d: negative price", p.ID)
		}
		if p.Rating < 0 || p.Rating > 5 {
			return fmt.Errorf("product %d: rating %v out of range", p.ID, p.Rating)
		}
	}

	seen = make(map[int]struct{}, len(ds.CategoryProducts))
	for _, p := range ds.CategoryProducts {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("duplicate category product id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
		if !p.Category.Valid() {
			return fmt.Errorf("category product %d: unknown category %q", p.ID, p.Category)
		}
		if p.Price < 0 {
			return fmt.Errorf("category product %d: negative price", p.ID)
		}
	}
	return nil
}

func cloneProducts(ps []models.Product) []models.Product {
	out := make([]models.Product, len(ps))
	for i, p := range ps {
		p.Features = slices.Clone(p.Features)
		if p.OriginalPrice != nil {
			p.OriginalPrice = models.Bound(*p.OriginalPrice)
		}
		out[i] = p
	}
	return out
}

// Products returns the general-shape products in catalog order.
func (c *Catalog) Products() []models.Product {
	return cloneProducts(c.products)
}

// Latest returns the n most recent general-shape products.
func (c *Catalog) Latest(n int) []models.Product {
	sorted := SortByRecencyDesc(c.Products())
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

func (c *Catalog) Flagship() []models.Product {
	return c.where(func(p models.Product) bool { return p.IsFlagship })
}

func (c *Catalog) Affordable() []models.Product {
	return c.where(func(p models.Product) bool { return p.IsAffordable })
}

func (c *Catalog) where(keep func(models.Product) bool) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range c.Products() {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) Categories() []string {
	return slices.Clone(c.categories)
}

// Companies returns the known reference list of companies.
func (c *Catalog) Companies() []string {
	return slices.Clone(c.companies)
}

// CategoryBySlug resolves a URL slug such as "mobile" to its category.
func CategoryBySlug(s string) (models.CategoryName, error) {
	want := slug.Make(s)
	for _, n := range models.CategoryNames {
		if slug.Make(string(n)) == want {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrCategoryNotFound, s)
}

// CategorySlug is the inverse of CategoryBySlug.
func CategorySlug(n models.CategoryName) string {
	return slug.Make(string(n))
}

// ProductsForCategory returns the category-scoped records of name adapted
// to the canonical shape.
func (c *Catalog) ProductsForCategory(name models.CategoryName) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range c.categoryProducts {
		if p.Category == name {
			out = append(out, p.ToProduct(CategoryRating))
		}
	}
	return out
}

// CompaniesForCategory returns the distinct companies of name, sorted.
func (c *Catalog) CompaniesForCategory(name models.CategoryName) []string {
	out := make([]string, 0)
	for _, p := range c.categoryProducts {
		if p.Category == name && !slices.Contains(out, p.Company) {
			out = append(out, p.Company)
		}
	}
	slices.Sort(out)
	return out
}

// Unified merges the general products with the adapted category-scoped
// records; on a shared id the category-scoped record wins.
func (c *Catalog) Unified() []models.Product {
	adapted := make([]models.Product, 0, len(c.categoryProducts))
	for _, p := range c.categoryProducts {
		adapted = append(adapted, p.ToProduct(CategoryRating))
	}
	return Merge(c.Products(), adapted)
}

// Overlap returns the ids used by both record shapes.
func (c *Catalog) Overlap() []int {
	general := make(map[int]struct{}, len(c.products))
	for _, p := range c.products {
		general[p.ID] = struct{}{}
	}
	out := make([]int, 0)
	for _, p := range c.categoryProducts {
		if _, ok := general[p.ID]; ok {
			out = append(out, p.ID)
		}
	}
	return out
}

// Product returns the general-shape product with id.
func (c *Catalog) Product(id int) (models.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return cloneProducts([]models.Product{p})[0], nil
		}
	}
	return models.Product{}, fmt.Errorf("%w: %d", ErrProductNotFound, id)
}

// Detail returns the detailed record of a general-shape product. Products
// without a curated record get one synthesized from the listing, with a
// review count drawn from r.
func (c *Catalog) Detail(id int, r Random) (models.DetailedProduct, error) {
	base, err := c.Product(id)
	if err != nil {
		return models.DetailedProduct{}, err
	}

	if d, ok := c.detailed[id]; ok {
		d.Images = slices.Clone(d.Images)
		d.Features = slices.Clone(d.Features)
		return d, nil
	}

	features := base.Features
	if len(features) > maxSynthesizedFeature {
		features = features[:maxSynthesizedFeature]
	}
	return models.DetailedProduct{
		ID:            base.ID,
		Name:          base.Name,
		Images:        []string{imageKey(base.Category), "hero"},
		Category:      base.Category,
		Features:      slices.Clone(features),
		Price:         base.Price,
		Rating:        base.Rating,
		TotalReviews:  r.IntN(synthesizedReviewSpan) + minSynthesizedReviews,
		Description:   base.Summary,
		AffiliateLink: AffiliatePlaceholder,
	}, nil
}

func imageKey(category string) string {
	switch category {
	case "Laptops":
		return "laptop"
	case "Headphones", "Audio":
		return "headphones"
	default:
		return "phone"
	}
}

// AffiliateLink returns the curated affiliate link of id or the placeholder.
func (c *Catalog) AffiliateLink(id int) string {
	if d, ok := c.detailed[id]; ok {
		return d.AffiliateLink
	}
	return AffiliatePlaceholder
}

// Search resolves a query against the unified catalog.
func (c *Catalog) Search(query string) SearchResult {
	return Resolve(c.Unified(), c.companies, query)
}

// HomeFilter applies criteria to the union of the landing page sections.
func (c *Catalog) HomeFilter(latest int, criteria models.Criteria) []models.Product {
	union := Merge(c.Latest(latest), c.Flagship(), c.Affordable())
	return Filter(union, criteria)
}

// Savings is originalPrice minus price when the product is discounted.
func Savings(p models.Product) (float64, bool) {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price {
		return 0, false
	}
	return math.Round((*p.OriginalPrice-p.Price)*100) / 100, true
}
