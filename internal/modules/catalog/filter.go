package catalog

import (
	"strings"

	"pluggedin/internal/domain"
)

// Filter narrows a fetched business collection by category and free-text
// query. Pure and idempotent: same inputs give the same output, input
// order is preserved, the input slice is never mutated.
//
// Category 0 (All) passes everything; any other value requires an exact
// category id match. The query is trimmed and matched case-insensitively
// as a substring of the business name or tagline; a missing tagline is a
// non-match, not an error.
func Filter(items []domain.Business, category domain.Category, query string) []domain.Business {
	query = strings.TrimSpace(query)
	q := strings.ToLower(query)

	out := make([]domain.Business, 0, len(items))
	for _, b := range items {
		if category != domain.CategoryAll && b.Category() != category {
			continue
		}
		if q != "" && !matchesQuery(b, q) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchesQuery(b domain.Business, q string) bool {
	if strings.Contains(strings.ToLower(b.BusinessName), q) {
		return true
	}
	return b.Tagline != "" && strings.Contains(strings.ToLower(b.Tagline), q)
}

// EmptyHint picks the empty-state message: an active search suggests
// adjusting it, otherwise the category simply has no listings yet.
func EmptyHint(query string) string {
	if strings.TrimSpace(query) != "" {
		return "Try adjusting your search"
	}
	return "Be the first to list a business in this category!"
}
