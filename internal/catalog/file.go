package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/drstein77/techaurex/internal/models"
)

type fileDataset struct {
	Products         []fileProduct         `yaml:"products"`
	CategoryProducts []fileCategoryProduct `yaml:"category_products"`
	Detailed         []fileDetailed        `yaml:"detailed_products"`
	Categories       []string              `yaml:"categories"`
	Companies        []string              `yaml:"companies"`
}

type fileProduct struct {
	ID            int      `yaml:"id"`
	Name          string   `yaml:"name"`
	Category      string   `yaml:"category"`
	Company       string   `yaml:"company"`
	Price         float64  `yaml:"price"`
	OriginalPrice *float64 `yaml:"original_price"`
	DateAdded     string   `yaml:"date_added"`
	Rating        float64  `yaml:"rating"`
	Summary       string   `yaml:"summary"`
	Features      []string `yaml:"features"`
	IsNew         bool     `yaml:"is_new"`
	IsFlagship    bool     `yaml:"is_flagship"`
	IsAffordable  bool     `yaml:"is_affordable"`
}

type fileCategoryProduct struct {
	ID            int     `yaml:"id"`
	Name          string  `yaml:"name"`
	Category      string  `yaml:"category"`
	Company       string  `yaml:"company"`
	Price         float64 `yaml:"price"`
	PublishedDate string  `yaml:"published_date"`
	Description   string  `yaml:"description"`
}

type fileDetailed struct {
	ID            int      `yaml:"id"`
	Name          string   `yaml:"name"`
	Images        []string `yaml:"images"`
	Category      string   `yaml:"category"`
	Features      []string `yaml:"features"`
	Price         float64  `yaml:"price"`
	Rating        float64  `yaml:"rating"`
	TotalReviews  int      `yaml:"total_reviews"`
	Description   string   `yaml:"description"`
	AffiliateLink string   `yaml:"affiliate_link"`
}

// FileSource loads a Dataset from a YAML file. Reference lists missing
// from the file are taken from the built-in dataset.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to read catalog file: %w", err)
	}
	ds, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Dataset{}, fmt.Errorf("catalog file %s: %w", s.Path, err)
	}
	return ds, nil
}

func (s FileSource) Ping(context.Context) bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

func (s FileSource) Close() bool {
	return true
}

// Decode parses a YAML catalog document. Unknown keys are rejected.
func Decode(r io.Reader) (Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f fileDataset
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Dataset{}, fmt.Errorf("failed to decode catalog: %w", err)
	}

	def := Default()
	ds := Dataset{
		Categories: f.Categories,
		Companies:  f.Companies,
	}
	if len(ds.Categories) == 0 {
		ds.Categories = def.Categories
	}
	if len(ds.Companies) == 0 {
		ds.Companies = def.Companies
	}

	for _, p := range f.Products {
		date, err := models.ParseDate(p.DateAdded)
		if err != nil {
			return Dataset{}, fmt.Errorf("product %d: %w", p.ID, err)
		}
		features := p.Features
		if features == nil {
			features = []string{}
		}
		ds.Products = append(ds.Products, models.Product{
			ID:            p.ID,
			Name:          p.Name,
			Category:      p.Category,
			Company:       p.Company,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			Date:          date,
			Rating:        p.Rating,
			Summary:       p.Summary,
			Features:      features,
			IsNew:         p.IsNew,
			IsFlagship:    p.IsFlagship,
			IsAffordable:  p.IsAffordable,
		})
	}

	for _, p := range f.CategoryProducts {
		date, err := models.ParseDate(p.PublishedDate)
		if err != nil {
			return Dataset{}, fmt.Errorf("category product %d: %w", p.ID, err)
		}
		ds.CategoryProducts = append(ds.CategoryProducts, models.CategoryProduct{
			ID:            p.ID,
			Name:          p.Name,
			Category:      models.CategoryName(p.Category),
			Company:       p.Company,
			Price:         p.Price,
			PublishedDate: date,
			Description:   p.Description,
		})
	}

	for _, d := range f.Detailed {
		ds.Detailed = append(ds.Detailed, models.DetailedProduct(d))
	}
	return ds, nil
}
