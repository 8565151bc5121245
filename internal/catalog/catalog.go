// Package catalog provides pure, stateless transformations over fetched
// title listings: client-side search/genre filtering and rating sort.
package catalog

import (
	"sort"
	"strings"

	"github.com/desertthunder/mvx/internal/models"
)

// Filter returns the items matching both predicates: a case-insensitive
// substring match on the resolved title, AND genre membership when a genre
// id is given (zero means no genre filter). The predicates are conjoined,
// never OR-ed.
func Filter(items []models.CatalogItem, search string, genreID int) []models.CatalogItem {
	needle := strings.ToLower(search)

	var matched []models.CatalogItem
	for _, item := range items {
		matchesSearch := needle == "" || strings.Contains(strings.ToLower(item.ResolveTitle()), needle)
		matchesGenre := genreID == 0 || item.HasGenre(genreID)
		if matchesSearch && matchesGenre {
			matched = append(matched, item)
		}
	}
	return matched
}

// SortByRating returns a copy of items ordered by vote average. The sort is
// stable: items with equal ratings keep their original relative order.
func SortByRating(items []models.CatalogItem, descending bool) []models.CatalogItem {
	sorted := make([]models.CatalogItem, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return sorted[i].VoteAverage > sorted[j].VoteAverage
		}
		return sorted[i].VoteAverage < sorted[j].VoteAverage
	})

	return sorted
}
