package dbkeeper

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/drstein77/techaurex/internal/catalog"
	"github.com/drstein77/techaurex/internal/models"
)

type Log interface {
	Info(string, ...zap.Field)
	Error(string, ...zap.Field)
}

// DBKeeper reads the catalog from PostgreSQL. It never writes to it.
type DBKeeper struct {
	pool *pgxpool.Pool
	log  Log
}

// NewDBKeeper migrates the database and opens a pool. It returns nil when
// the database is not configured or unreachable.
func NewDBKeeper(ctx context.Context, dsn func() string, log Log) *DBKeeper {
	addr := dsn()
	if addr == "" {
		log.Info("database dsn is empty")
		return nil
	}

	config, err := pgxpool.ParseConfig(addr)
	if err != nil {
		log.Error("Unable to parse database DSN: ", zap.Error(err))
		return nil
	}

	if err := migrateUp(addr, log); err != nil {
		log.Error("Unable to migrate database: ", zap.Error(err))
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		log.Error("Unable to connect to database: ", zap.Error(err))
		return nil
	}

	log.Info("Connected!")

	return &DBKeeper{
		pool: pool,
		log:  log,
	}
}

// Load reads the three catalog tables. Reference lists come from the
// built-in dataset.
func (kp *DBKeeper) Load(ctx context.Context) (catalog.Dataset, error) {
	if kp.pool == nil {
		return catalog.Dataset{}, fmt.Errorf("database connection pool is nil")
	}

	products, err := kp.loadProducts(ctx)
	if err != nil {
		return catalog.Dataset{}, err
	}
	categoryProducts, err := kp.loadCategoryProducts(ctx)
	if err != nil {
		return catalog.Dataset{}, err
	}
	detailed, err := kp.loadDetailed(ctx)
	if err != nil {
		return catalog.Dataset{}, err
	}

	def := catalog.Default()
	kp.log.Info("Successfully loaded catalog",
		zap.Int("products", len(products)),
		zap.Int("category_products", len(categoryProducts)),
		zap.Int("detailed_products", len(detailed)),
	)
	return catalog.Dataset{
		Products:         products,
		CategoryProducts: categoryProducts,
		Detailed:         detailed,
		Categories:       def.Categories,
		Companies:        def.Companies,
	}, nil
}

func (kp *DBKeeper) loadProducts(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT id, name, category, company, price, original_price, date_added,
		       rating, summary, features, is_new, is_flagship, is_affordable
		FROM products
		ORDER BY id
	`
	rows, err := kp.pool.Query(ctx, query)
	if err != nil {
		kp.log.Error("Failed to execute query", zap.Error(err))
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Product, error) {
		var (
			p     models.Product
			added time.Time
		)
		err := row.Scan(
			&p.ID, &p.Name, &p.Category, &p.Company, &p.Price, &p.OriginalPrice, &added,
			&p.Rating, &p.Summary, &p.Features, &p.IsNew, &p.IsFlagship, &p.IsAffordable,
		)
		p.Date = models.Date{Time: added}
		return p, err
	})
	if err != nil {
		kp.log.Error("Failed to scan row", zap.Error(err))
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}
	return products, nil
}

func (kp *DBKeeper) loadCategoryProducts(ctx context.Context) ([]models.CategoryProduct, error) {
	query := `
		SELECT id, name, category, company, price, published_date, description
		FROM category_products
		ORDER BY id
	`
	rows, err := kp.pool.Query(ctx, query)
	if err != nil {
		kp.log.Error("Failed to execute query", zap.Error(err))
		return nil, fmt.Errorf("failed to query category products: %w", err)
	}

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CategoryProduct, error) {
		var (
			p         models.CategoryProduct
			category  string
			published time.Time
		)
		err := row.Scan(&p.ID, &p.Name, &category, &p.Company, &p.Price, &published, &p.Description)
		p.Category = models.CategoryName(category)
		p.PublishedDate = models.Date{Time: published}
		return p, err
	})
	if err != nil {
		kp.log.Error("Failed to scan row", zap.Error(err))
		return nil, fmt.Errorf("failed to scan category products: %w", err)
	}
	return products, nil
}

func (kp *DBKeeper) loadDetailed(ctx context.Context) ([]models.DetailedProduct, error) {
	query := `
		SELECT id, name, images, category, features, price, rating,
		       total_reviews, description, affiliate_link
		FROM detailed_products
		ORDER BY id
	`
	rows, err := kp.pool.Query(ctx, query)
	if err != nil {
		kp.log.Error("Failed to execute query", zap.Error(err))
		return nil, fmt.Errorf("failed to query detailed products: %w", err)
	}

	detailed, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.DetailedProduct, error) {
		var d models.DetailedProduct
		err := row.Scan(
			&d.ID, &d.Name, &d.Images, &d.Category, &d.Features, &d.Price,
			&d.Rating, &d.TotalReviews, &d.Description, &d.AffiliateLink,
		)
		return d, err
	})
	if err != nil {
		kp.log.Error("Failed to scan row", zap.Error(err))
		return nil, fmt.Errorf("failed to scan detailed products: %w", err)
	}
	return detailed, nil
}

func (kp *DBKeeper) Ping(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := kp.pool.Ping(ctx); err != nil {
		kp.log.Error("Database ping failed", zap.Error(err))
		return false
	}

	return true
}

func (kp *DBKeeper) Close() bool {
	if kp.pool != nil {
		kp.pool.Close()
		kp.log.Info("Database connection pool closed")
		return true
	}
	kp.log.Info("Attempted to close a nil database connection pool")
	return false
}
