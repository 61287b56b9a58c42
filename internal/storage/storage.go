package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/drstein77/techaurex/internal/catalog"
	"github.com/drstein77/techaurex/internal/format"
	"github.com/drstein77/techaurex/internal/models"
)

var ErrNotFound = errors.New("not found")

const (
	homeLatest   = 6
	homeFlagship = 6
)

type Log interface {
	Info(string, ...zap.Field)
	Warn(string, ...zap.Field)
	Error(string, ...zap.Field)
}

// Keeper is a catalog source.
type Keeper interface {
	Load(context.Context) (catalog.Dataset, error)
	Ping(context.Context) bool
	Close() bool
}

// MemoryStorage serves pages from a catalog snapshot taken at startup.
type MemoryStorage struct {
	catalog  *catalog.Catalog
	shuffler *catalog.Shuffler

	keeper Keeper
	log    Log
}

// NewMemoryStorage loads the catalog from keeper. Without a keeper, or when
// the keeper fails, the built-in dataset is used.
func NewMemoryStorage(ctx context.Context, keeper Keeper, shuffler *catalog.Shuffler, log Log) *MemoryStorage {
	var c *catalog.Catalog
	if keeper != nil {
		var err error
		c, err = load(ctx, keeper)
		if err != nil {
			log.Error("cannot load catalog, using built-in dataset", zap.Error(err))
		}
	}
	if c == nil {
		var err error
		c, err = catalog.New(catalog.Default())
		if err != nil {
			// the built-in dataset is validated by tests
			panic(err)
		}
	}

	if ids := c.Overlap(); len(ids) > 0 {
		log.Warn("product ids shared by general and category records", zap.Ints("ids", ids))
	}
	log.Info("catalog loaded",
		zap.Int("products", len(c.Products())),
		zap.Int("unified", len(c.Unified())),
	)

	return &MemoryStorage{
		catalog:  c,
		shuffler: shuffler,
		keeper:   keeper,
		log:      log,
	}
}

func load(ctx context.Context, keeper Keeper) (*catalog.Catalog, error) {
	ds, err := keeper.Load(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.New(ds)
}

// Ping reports whether the catalog source is reachable. The built-in
// dataset is always available.
func (s *MemoryStorage) Ping(ctx context.Context) bool {
	if s.keeper == nil {
		return true
	}
	return s.keeper.Ping(ctx)
}

func (s *MemoryStorage) Close() bool {
	if s.keeper == nil {
		return true
	}
	return s.keeper.Close()
}

func (s *MemoryStorage) Home(ctx context.Context) (*models.HomePage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	flagship := s.catalog.Flagship()
	if len(flagship) > homeFlagship {
		flagship = flagship[:homeFlagship]
	}
	return &models.HomePage{
		Latest:     s.cards(s.catalog.Latest(homeLatest)),
		Flagship:   s.cards(flagship),
		Affordable: s.cards(s.catalog.Affordable()),
	}, nil
}

// FilterProducts applies criteria to the landing page sections.
func (s *MemoryStorage) FilterProducts(ctx context.Context, criteria models.Criteria) (*models.ListPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.list(s.catalog.HomeFilter(homeLatest, criteria)), nil
}

// Latest lists the unified catalog, most recent first.
func (s *MemoryStorage) Latest(ctx context.Context) (*models.ListPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.list(catalog.SortByRecencyDesc(s.catalog.Unified())), nil
}

func (s *MemoryStorage) Category(ctx context.Context, slug string, criteria models.Criteria) (*models.CategoryPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name, err := catalog.CategoryBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	// the page is already scoped to one category
	criteria.Category = ""

	products := s.catalog.ProductsForCategory(name)
	latest := catalog.SortByRecencyDesc(products)
	others := s.shuffler.Shuffle(products)

	return &models.CategoryPage{
		Name:      name,
		Title:     string(name) + " Reviews",
		Companies: s.catalog.CompaniesForCategory(name),
		Latest:    s.cards(catalog.Filter(latest, criteria)),
		Others:    s.cards(catalog.Filter(others, criteria)),
	}, nil
}

func (s *MemoryStorage) Search(ctx context.Context, query string) (*models.SearchPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res := s.catalog.Search(query)
	return &models.SearchPage{
		Query:           query,
		Mode:            res.Mode,
		DetectedCompany: res.Company,
		Heading:         searchHeading(query, res),
		Count:           len(res.Results),
		Results:         s.cards(res.Results),
	}, nil
}

func searchHeading(query string, res catalog.SearchResult) string {
	switch res.Mode {
	case models.SearchExact:
		return `Search results for "` + query + `"`
	case models.SearchCompanyFallback:
		return "No exact matches. Showing products from " + res.Company
	default:
		return `No products found for "` + query + `"`
	}
}

func (s *MemoryStorage) Detail(ctx context.Context, id int) (*models.DetailPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d, err := s.catalog.Detail(id, s.shuffler)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	base, err := s.catalog.Product(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	page := &models.DetailPage{
		Product:    d,
		Stars:      format.Stars(d.Rating),
		PriceLabel: format.Price(d.Price),
	}
	if saved, ok := catalog.Savings(base); ok {
		page.OriginalPriceLabel = format.Price(*base.OriginalPrice)
		page.SavingsLabel = "Save " + format.Price(saved)
	}
	return page, nil
}

// Export returns the unified catalog in catalog order.
func (s *MemoryStorage) Export(ctx context.Context) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.catalog.Unified(), nil
}

func (s *MemoryStorage) list(products []models.Product) *models.ListPage {
	return &models.ListPage{Count: len(products), Products: s.cards(products)}
}

func (s *MemoryStorage) cards(products []models.Product) []models.ProductCard {
	out := make([]models.ProductCard, 0, len(products))
	for _, p := range products {
		card := models.ProductCard{
			Product:       p,
			PriceLabel:    format.Price(p.Price),
			Stars:         format.Stars(p.Rating),
			AffiliateLink: s.catalog.AffiliateLink(p.ID),
		}
		if saved, ok := catalog.Savings(p); ok {
			card.OriginalPriceLabel = format.Price(*p.OriginalPrice)
			card.SavingsLabel = "Save " + format.Price(saved)
		}
		out = append(out, card)
	}
	return out
}
