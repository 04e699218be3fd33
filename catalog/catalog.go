// Package catalog holds the in-memory property collection and the
// listing filter: a pure function over the collection and a FilterState,
// cheap enough to recompute on every request.
package catalog

import (
	"strconv"
	"strings"

	"RealtySiteAPI/models"
)

// QuickFilterAll is the wildcard quick-filter tag; it matches every
// property, same as an absent quick filter.
const QuickFilterAll = "All"

// QuickFilters is the fixed quick-filter button group.
var QuickFilters = []string{QuickFilterAll, "Luxury", "Single Family", "Condo"}

// Filter returns the subsequence of properties satisfying every active
// axis of state, preserving source order. Axes combine with AND; within
// the free-text axis a match on title, address or neighborhood suffices.
// An empty result is valid, not an error.
func Filter(properties []models.Property, state models.FilterState) []models.Property {
	search := strings.ToLower(strings.TrimSpace(state.Search))
	minPrice, hasMinPrice := parseBound(state.Advanced.MinPrice)
	maxPrice, hasMaxPrice := parseBound(state.Advanced.MaxPrice)
	minSize, hasMinSize := parseBound(state.Advanced.MinSize)
	maxSize, hasMaxSize := parseBound(state.Advanced.MaxSize)

	var out []models.Property
	for _, p := range properties {
		if state.QuickFilter != "" && state.QuickFilter != QuickFilterAll && string(p.Type) != state.QuickFilter {
			continue
		}
		if !strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Address), search) &&
			!strings.Contains(strings.ToLower(p.Neighborhood), search) {
			continue
		}
		if hasMinPrice && p.Price < minPrice {
			continue
		}
		if hasMaxPrice && p.Price > maxPrice {
			continue
		}
		if hasMinSize && float64(p.Sqft) < minSize {
			continue
		}
		if hasMaxSize && float64(p.Sqft) > maxSize {
			continue
		}
		if len(state.Advanced.Types) > 0 && !contains(state.Advanced.Types, string(p.Type)) {
			continue
		}
		if len(state.Advanced.Neighborhoods) > 0 && !contains(state.Advanced.Neighborhoods, p.Neighborhood) {
			continue
		}
		if len(state.Advanced.Statuses) > 0 && !contains(state.Advanced.Statuses, string(p.Status)) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Neighborhoods returns the unique neighborhood names across the
// collection, in first-appearance order.
func Neighborhoods(properties []models.Property) []string {
	seen := make(map[string]bool, len(properties))
	var out []string
	for _, p := range properties {
		if !seen[p.Neighborhood] {
			seen[p.Neighborhood] = true
			out = append(out, p.Neighborhood)
		}
	}
	return out
}

// ActiveFilterCount counts the active advanced-filter entries, for the
// filter-badge counter.
func ActiveFilterCount(state models.FilterState) int {
	n := 0
	for _, bound := range []string{
		state.Advanced.MinPrice,
		state.Advanced.MaxPrice,
		state.Advanced.MinSize,
		state.Advanced.MaxSize,
	} {
		if strings.TrimSpace(bound) != "" {
			n++
		}
	}
	n += len(state.Advanced.Types)
	n += len(state.Advanced.Neighborhoods)
	n += len(state.Advanced.Statuses)
	return n
}

// parseBound parses a text bound permissively: empty or non-numeric
// input means the bound is unset, never a validation error.
func parseBound(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
