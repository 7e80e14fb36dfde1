package index

import (
	"strings"

	"github.com/propstack/estate-finder/pkg/types"
)

// FacetSummary backs the filter sidebar: how many results each type and
// city would hold, and the price bounds of the current result set.
type FacetSummary struct {
	Total    int            `json:"total"`
	Types    map[string]int `json:"types"`
	Cities   map[string]int `json:"cities"`
	PriceMin int64          `json:"priceMin"`
	PriceMax int64          `json:"priceMax"`
}

func Summarize(listings []types.Listing) *FacetSummary {
	ret := &FacetSummary{
		Total:  len(listings),
		Types:  make(map[string]int),
		Cities: make(map[string]int),
	}
	for i := range listings {
		l := &listings[i]
		ret.Types[strings.ToLower(string(l.Type))]++
		if city := strings.TrimSpace(l.City); city != "" {
			ret.Cities[city]++
		}
		if i == 0 || l.Price < ret.PriceMin {
			ret.PriceMin = l.Price
		}
		if i == 0 || l.Price > ret.PriceMax {
			ret.PriceMax = l.Price
		}
	}
	return ret
}
