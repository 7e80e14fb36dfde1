package types

import (
	"slices"
	"strings"
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
)

func (s SortKey) Valid() bool {
	switch s {
	case SortNewest, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

type Category string

const (
	CategoryNone  Category = ""
	CategoryHouse Category = "house"
	CategoryLand  Category = "land"
)

// landTypes is the fixed partition, everything not listed counts as
// house-like.
var landTypes = map[PropertyType]struct{}{
	TypeLand: {},
}

func CategoryOf(t PropertyType) Category {
	normalized := PropertyType(strings.ToLower(strings.TrimSpace(string(t))))
	if _, ok := landTypes[normalized]; ok {
		return CategoryLand
	}
	return CategoryHouse
}

const (
	DefaultPriceMin int64 = 0
	DefaultPriceMax int64 = 2_000_000
)

// SearchCriteria holds one search state. Empty sets and zero minimums mean
// the dimension is inactive, never "match nothing".
type SearchCriteria struct {
	Location     string   `json:"location,omitempty"`
	Types        []string `json:"types,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
	PriceMin     int64    `json:"priceMin"`
	PriceMax     int64    `json:"priceMax"`
	MinBedrooms  int      `json:"bedrooms,omitempty"`
	MinBathrooms int      `json:"bathrooms,omitempty"`
	Category     Category `json:"category,omitempty"`
}

func NewSearchCriteria() *SearchCriteria {
	return &SearchCriteria{
		Types:     []string{},
		Amenities: []string{},
		PriceMin:  DefaultPriceMin,
		PriceMax:  DefaultPriceMax,
	}
}

// Sanitize repairs invalid states in place instead of rejecting them, a
// reversed price range is swapped and negative values reset to defaults.
func (c *SearchCriteria) Sanitize() {
	if c.PriceMin < 0 {
		c.PriceMin = DefaultPriceMin
	}
	if c.PriceMax <= 0 {
		c.PriceMax = DefaultPriceMax
	}
	if c.PriceMin > c.PriceMax {
		c.PriceMin, c.PriceMax = c.PriceMax, c.PriceMin
	}
	if c.MinBedrooms < 0 {
		c.MinBedrooms = 0
	}
	if c.MinBathrooms < 0 {
		c.MinBathrooms = 0
	}
	if c.Category != CategoryNone && c.Category != CategoryHouse && c.Category != CategoryLand {
		c.Category = CategoryNone
	}
	c.Types = cleanSet(c.Types)
	c.Amenities = cleanSet(c.Amenities)
}

func cleanSet(values []string) []string {
	ret := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if !slices.Contains(ret, v) {
			ret = append(ret, v)
		}
	}
	return ret
}

func (c *SearchCriteria) HasLocation() bool {
	return strings.TrimSpace(c.Location) != ""
}

func (c *SearchCriteria) HasTypes() bool {
	return len(c.Types) > 0
}

func (c *SearchCriteria) HasAmenities() bool {
	return len(c.Amenities) > 0
}

func (c *SearchCriteria) HasPriceRange() bool {
	return c.PriceMin != DefaultPriceMin || c.PriceMax != DefaultPriceMax
}

func (c *SearchCriteria) HasCategory() bool {
	return c.Category != CategoryNone
}

// IsDefault reports whether no dimension is active.
func (c *SearchCriteria) IsDefault() bool {
	return !c.HasLocation() && !c.HasTypes() && !c.HasAmenities() &&
		!c.HasPriceRange() && c.MinBedrooms == 0 && c.MinBathrooms == 0 &&
		!c.HasCategory()
}

func (c *SearchCriteria) Equal(other *SearchCriteria) bool {
	if other == nil {
		return false
	}
	return c.Location == other.Location &&
		slices.Equal(c.Types, other.Types) &&
		slices.Equal(c.Amenities, other.Amenities) &&
		c.PriceMin == other.PriceMin &&
		c.PriceMax == other.PriceMax &&
		c.MinBedrooms == other.MinBedrooms &&
		c.MinBathrooms == other.MinBathrooms &&
		c.Category == other.Category
}
