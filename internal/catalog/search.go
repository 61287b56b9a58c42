package catalog

import (
	"strings"

	"github.com/drstein77/techaurex/internal/models"
)

type SearchResult struct {
	Results []models.Product
	Mode    models.SearchMode
	Company string
}

// Resolve runs a free-text search over products.
//
// Name and summary substring matches win. When there are none, the first
// company whose name occurs inside the query selects that company's products.
// Companies are tried in known order first, then in the order they are first
// seen in products; duplicates differing only in case are tried once.
// Surrounding whitespace in company names is ignored.
func Resolve(products []models.Product, knownCompanies []string, rawQuery string) SearchResult {
	q := strings.ToLower(strings.TrimSpace(rawQuery))
	if q == "" {
		return none()
	}

	exact := make([]models.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Summary), q) {
			exact = append(exact, p)
		}
	}
	if len(exact) > 0 {
		return SearchResult{Results: exact, Mode: models.SearchExact}
	}

	company := detectCompany(q, companyUnion(knownCompanies, products))
	if company == "" {
		return none()
	}

	fallback := make([]models.Product, 0)
	for _, p := range products {
		if strings.EqualFold(strings.TrimSpace(p.Company), company) {
			fallback = append(fallback, p)
		}
	}
	return SearchResult{Results: fallback, Mode: models.SearchCompanyFallback, Company: company}
}

func none() SearchResult {
	return SearchResult{Results: []models.Product{}, Mode: models.SearchNone}
}

func companyUnion(known []string, products []models.Product) []string {
	seen := make(map[string]struct{}, len(known))
	out := make([]string, 0, len(known))
	add := func(name string) {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name)
		// an empty name is a substring of every query
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}

	for _, c := range known {
		add(c)
	}
	for _, p := range products {
		add(p.Company)
	}
	return out
}

func detectCompany(query string, companies []string) string {
	for _, c := range companies {
		if strings.Contains(query, strings.ToLower(c)) {
			return c
		}
	}
	return ""
}
