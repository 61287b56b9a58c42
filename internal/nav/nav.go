package nav

import (
	"net/url"
	"strings"

	"github.com/drstein77/techaurex/internal/models"
)

const (
	Brand      = "Techaurex"
	searchPath = "/search"
)

// Item is a navigation link.
type Item struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

// Menu is the view model of the navigation bar.
type Menu struct {
	Brand      string `json:"brand"`
	Home       Item   `json:"home"`
	Categories []Item `json:"categories"`
	Pages      []Item `json:"pages"`
}

// Pages are the static pages linked next to the category menu.
var Pages = []Item{
	{Label: "About Us", Href: "/about"},
	{Label: "Contact Us", Href: "/contact"},
}

// Build renders the menu with active state for currentPath. categorySlug
// maps a category to its URL segment.
func Build(currentPath string, categorySlug func(models.CategoryName) string) Menu {
	if currentPath == "" {
		currentPath = "/"
	}

	m := Menu{
		Brand: Brand,
		Home:  Item{Label: "Home", Href: "/", Active: isActive("/", currentPath)},
	}
	for _, c := range models.CategoryNames {
		href := "/category/" + categorySlug(c)
		m.Categories = append(m.Categories, Item{
			Label:  string(c),
			Href:   href,
			Active: isActive(href, currentPath),
		})
	}
	for _, p := range Pages {
		p.Active = isActive(p.Href, currentPath)
		m.Pages = append(m.Pages, p)
	}
	return m
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// SearchURL builds the search page link for a query typed in the search box.
// Blank queries produce no link.
func SearchURL(query string) (string, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", false
	}
	return searchPath + "?" + url.Values{"q": {q}}.Encode(), true
}
