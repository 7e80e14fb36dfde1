package sorting

import (
	"cmp"
	"slices"

	"github.com/propstack/estate-finder/pkg/types"
)

// SortListings returns a new slice ordered by the given key. Sorting is
// stable, records that compare equal keep their snapshot order, and prices
// compare as int64 so repeated sorts can never disagree.
func SortListings(listings []types.Listing, key types.SortKey) []types.Listing {
	ret := make([]types.Listing, len(listings))
	copy(ret, listings)
	slices.SortStableFunc(ret, comparator(key))
	return ret
}

func comparator(key types.SortKey) func(a, b types.Listing) int {
	switch key {
	case types.SortPriceAsc:
		return func(a, b types.Listing) int {
			return cmp.Compare(a.Price, b.Price)
		}
	case types.SortPriceDesc:
		return func(a, b types.Listing) int {
			return cmp.Compare(b.Price, a.Price)
		}
	default:
		// newest first
		return func(a, b types.Listing) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		}
	}
}
