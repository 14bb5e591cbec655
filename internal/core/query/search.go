// Package query holds the pure in-memory operations over a unified
// collection: free-text search, structured filtering, sorting and statistics.
// No function here mutates its input slice.
package query

import (
	"strings"

	"listing-service/internal/core/domain"
)

// Search keeps properties whose title, location, description or type name
// contains the query, case-insensitively. An empty (or all-whitespace) query
// matches everything. Search is a filter, not a ranker: input order is
// preserved.
func Search(properties []domain.Property, query string) []domain.Property {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return properties
	}

	matched := make([]domain.Property, 0, len(properties))
	for _, p := range properties {
		if containsFold(p.Title, q) ||
			containsFold(p.Location, q) ||
			containsFold(p.Description, q) ||
			containsFold(string(p.Type), q) {
			matched = append(matched, p)
		}
	}
	return matched
}

func containsFold(haystack, loweredNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), loweredNeedle)
}
