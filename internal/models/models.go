package models

import (
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the calendar-date layout used by every catalog source.
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day.
type Date struct {
	time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// MustDate is ParseDate for compile-time literals.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("invalid date %s: %w", b, err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Product is the canonical catalog record. Category-scoped records are
// adapted into this shape when a catalog is built.
type Product struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Company       string   `json:"company"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Date          Date     `json:"date"`
	Rating        float64  `json:"rating"`
	Summary       string   `json:"summary"`
	Features      []string `json:"features"`
	IsNew         bool     `json:"is_new"`
	IsFlagship    bool     `json:"is_flagship"`
	IsAffordable  bool     `json:"is_affordable"`
}

type CategoryName string

const (
	CategoryMobile   CategoryName = "Mobile"
	CategoryLaptop   CategoryName = "Laptop"
	CategoryEarphone CategoryName = "Earphone"
)

// CategoryNames lists the closed set of browsable categories in menu order.
var CategoryNames = []CategoryName{CategoryMobile, CategoryLaptop, CategoryEarphone}

func (c CategoryName) Valid() bool {
	for _, n := range CategoryNames {
		if c == n {
			return true
		}
	}
	return false
}

type CategoryProduct struct {
	ID            int
	Name          string
	Category      CategoryName
	Company       string
	Price         float64
	PublishedDate Date
	Description   string
}

// ToProduct adapts a category-scoped record to the canonical shape.
func (p CategoryProduct) ToProduct(rating float64) Product {
	return Product{
		ID:       p.ID,
		Name:     p.Name,
		Category: string(p.Category),
		Company:  p.Company,
		Price:    p.Price,
		Date:     p.PublishedDate,
		Rating:   rating,
		Summary:  p.Description,
		Features: []string{},
	}
}

type DetailedProduct struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Images        []string `json:"images"`
	Category      string   `json:"category"`
	Features      []string `json:"features"`
	Price         float64  `json:"price"`
	Rating        float64  `json:"rating"`
	TotalReviews  int      `json:"total_reviews"`
	Description   string   `json:"description"`
	AffiliateLink string   `json:"affiliate_link"`
}

// Criteria narrows a product list. Nil price bounds mean "no bound";
// a zero bound is a real bound.
type Criteria struct {
	Category string
	Company  string
	MinPrice *float64
	MaxPrice *float64
}

func (c Criteria) Empty() bool {
	return c.Category == "" && c.Company == "" && c.MinPrice == nil && c.MaxPrice == nil
}

// Bound returns a price bound for Criteria.
func Bound(v float64) *float64 {
	return &v
}

type SearchMode string

const (
	SearchExact           SearchMode = "EXACT"
	SearchCompanyFallback SearchMode = "COMPANY_FALLBACK"
	SearchNone            SearchMode = "NONE"
)

type Feedback struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}
