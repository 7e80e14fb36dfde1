package index

import (
	"strings"

	"github.com/propstack/estate-finder/pkg/types"
)

// Per-dimension predicates. All of them are pure, a record with a missing
// optional value fails a requested minimum instead of erroring.

func matchLocation(l *types.Listing, term string) bool {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return true
	}
	for _, field := range []string{l.City, l.State, l.PostalCode, l.Title, l.Street} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func matchTypes(l *types.Listing, selected []string) bool {
	recordType := strings.ToLower(string(l.Type))
	for _, sel := range selected {
		if strings.Contains(recordType, strings.ToLower(strings.TrimSpace(sel))) {
			return true
		}
	}
	return false
}

func matchMinBedrooms(l *types.Listing, minimum int) bool {
	return l.Bedrooms != nil && *l.Bedrooms >= minimum
}

func matchMinBathrooms(l *types.Listing, minimum int) bool {
	return l.Bathrooms != nil && *l.Bathrooms >= float64(minimum)
}

func matchPriceRange(l *types.Listing, minPrice, maxPrice int64) bool {
	return l.Price >= minPrice && l.Price <= maxPrice
}

// matchAmenities passes when any selected amenity is present, an any-match
// across the selection rather than all-match.
func matchAmenities(l *types.Listing, selected []string) bool {
	for _, sel := range selected {
		want := strings.ToLower(strings.TrimSpace(sel))
		for _, have := range l.Amenities {
			if strings.ToLower(strings.TrimSpace(have)) == want {
				return true
			}
		}
	}
	return false
}

func matchCategory(l *types.Listing, category types.Category) bool {
	return types.CategoryOf(l.Type) == category
}

// Matches tests one record against every active dimension, AND across
// dimensions, inactive dimensions are skipped entirely.
func Matches(l *types.Listing, c *types.SearchCriteria) bool {
	if c.HasLocation() && !matchLocation(l, c.Location) {
		return false
	}
	if c.HasTypes() && !matchTypes(l, c.Types) {
		return false
	}
	if c.MinBedrooms > 0 && !matchMinBedrooms(l, c.MinBedrooms) {
		return false
	}
	if c.MinBathrooms > 0 && !matchMinBathrooms(l, c.MinBathrooms) {
		return false
	}
	if c.HasPriceRange() && !matchPriceRange(l, c.PriceMin, c.PriceMax) {
		return false
	}
	if c.HasAmenities() && !matchAmenities(l, c.Amenities) {
		return false
	}
	if c.HasCategory() && !matchCategory(l, c.Category) {
		return false
	}
	return true
}
