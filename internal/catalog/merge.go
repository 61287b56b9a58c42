package catalog

import "github.com/drstein77/techaurex/internal/models"

// Merge concatenates collections and keeps one record per id. The last
// occurrence wins; it takes the position of the first occurrence.
func Merge(collections ...[]models.Product) []models.Product {
	index := make(map[int]int)
	out := make([]models.Product, 0)
	for _, c := range collections {
		for _, p := range c {
			if i, ok := index[p.ID]; ok {
				out[i] = p
				continue
			}
			index[p.ID] = len(out)
			out = append(out, p)
		}
	}
	return out
}
