// Package recommend ranks a unified collection by relevance to one target
// listing.
package recommend

import (
	"sort"

	"listing-service/internal/core/domain"
)

// Scoring weights. Type match must strictly outrank location match, which
// must strictly outrank price proximity; 4 > 2+1 keeps the ordering strict
// even when location and price both hit.
const (
	typeWeight     = 4
	locationWeight = 2
	priceWeight    = 1

	// minRelevance requires at least a type or location match. Candidates
	// below the bar are never used to pad the result.
	minRelevance = locationWeight

	// priceTolerance is the ± band around the target price that counts as
	// "comparable".
	priceTolerance = 0.30
)

// Similar returns up to limit properties from pool ranked by relevance to
// target, the target itself excluded. Ties keep original pool order, so the
// result is deterministic. A limit <= 0 yields an empty result.
func Similar(target domain.Property, pool []domain.Property, limit int) []domain.Property {
	if limit <= 0 {
		return []domain.Property{}
	}

	type candidate struct {
		property domain.Property
		score    int
	}

	candidates := make([]candidate, 0, len(pool))
	for _, p := range pool {
		if p.ID == target.ID {
			continue
		}
		if s := score(target, p); s >= minRelevance {
			candidates = append(candidates, candidate{property: p, score: s})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := make([]domain.Property, len(candidates))
	for i, c := range candidates {
		result[i] = c.property
	}
	return result
}

func score(target, p domain.Property) int {
	s := 0
	if p.Type == target.Type {
		s += typeWeight
	}
	if target.Location != "" && p.Location == target.Location {
		s += locationWeight
	}
	if priceComparable(target.Price, p.Price) {
		s += priceWeight
	}
	return s
}

// priceComparable reports whether both prices exist and the candidate falls
// within the tolerance band around the target price.
func priceComparable(target, candidate *float64) bool {
	if target == nil || candidate == nil {
		return false
	}
	band := *target * priceTolerance
	return *candidate >= *target-band && *candidate <= *target+band
}
