package types

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names, these are part of shared/bookmarkable URLs and
// must stay stable.
const (
	paramLocation  = "location"
	paramTypes     = "types"
	paramAmenities = "amenities"
	paramPriceMin  = "price_min"
	paramPriceMax  = "price_max"
	paramBedrooms  = "bedrooms"
	paramBathrooms = "bathrooms"
	paramCategory  = "category"
)

// DecodeCriteria builds a SearchCriteria from query parameters. It never
// fails, a missing or malformed parameter keeps the default for that
// dimension so stale bookmarks still resolve to a usable search.
func DecodeCriteria(query url.Values) *SearchCriteria {
	c := NewSearchCriteria()
	if v := query.Get(paramLocation); v != "" {
		c.Location = strings.TrimSpace(v)
	}
	c.Types = decodeSet(query, paramTypes)
	c.Amenities = decodeSet(query, paramAmenities)
	if v, ok := decodeInt64(query.Get(paramPriceMin)); ok {
		c.PriceMin = v
	}
	if v, ok := decodeInt64(query.Get(paramPriceMax)); ok {
		c.PriceMax = v
	}
	if v, ok := decodeInt(query.Get(paramBedrooms)); ok {
		c.MinBedrooms = v
	}
	if v, ok := decodeInt(query.Get(paramBathrooms)); ok {
		c.MinBathrooms = v
	}
	if v := query.Get(paramCategory); v != "" {
		c.Category = Category(strings.ToLower(strings.TrimSpace(v)))
	}
	c.Sanitize()
	return c
}

// DecodeCriteriaString is DecodeCriteria over a raw query string. Unparsable
// input decodes as the default criteria.
func DecodeCriteriaString(rawQuery string) *SearchCriteria {
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return NewSearchCriteria()
	}
	return DecodeCriteria(query)
}

// EncodeCriteria is the inverse of DecodeCriteria. Dimensions at their
// default are left out so the URL only carries what the user changed.
func EncodeCriteria(c *SearchCriteria, query url.Values) {
	if c.HasLocation() {
		query.Set(paramLocation, strings.TrimSpace(c.Location))
	}
	if c.HasTypes() {
		query.Set(paramTypes, strings.Join(c.Types, ","))
	}
	if c.HasAmenities() {
		query.Set(paramAmenities, strings.Join(c.Amenities, ","))
	}
	if c.PriceMin != DefaultPriceMin {
		query.Set(paramPriceMin, strconv.FormatInt(c.PriceMin, 10))
	}
	if c.PriceMax != DefaultPriceMax {
		query.Set(paramPriceMax, strconv.FormatInt(c.PriceMax, 10))
	}
	if c.MinBedrooms > 0 {
		query.Set(paramBedrooms, strconv.Itoa(c.MinBedrooms))
	}
	if c.MinBathrooms > 0 {
		query.Set(paramBathrooms, strconv.Itoa(c.MinBathrooms))
	}
	if c.HasCategory() {
		query.Set(paramCategory, string(c.Category))
	}
}

// EncodeCriteriaString returns the canonical query string for a criteria,
// url.Values.Encode sorts keys so equal criteria always produce the same
// string.
func EncodeCriteriaString(c *SearchCriteria) string {
	query := url.Values{}
	EncodeCriteria(c, query)
	return query.Encode()
}

func decodeSet(query url.Values, name string) []string {
	raw := query.Get(name)
	if raw == "" {
		return []string{}
	}
	return cleanSet(strings.Split(raw, ","))
}

func decodeInt64(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func decodeInt(raw string) (int, bool) {
	v, ok := decodeInt64(raw)
	if !ok {
		return 0, false
	}
	return int(v), true
}
