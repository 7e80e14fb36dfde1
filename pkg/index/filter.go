package index

import (
	"github.com/propstack/estate-finder/pkg/types"
)

// FilterListings runs the full criteria over a snapshot and returns the
// surviving records in their incoming order. The collection is small enough
// that a full rescan per criteria change beats maintaining any index, so
// this is a plain guarded linear scan.
func FilterListings(listings []types.Listing, c *types.SearchCriteria) []types.Listing {
	if c == nil || c.IsDefault() {
		ret := make([]types.Listing, len(listings))
		copy(ret, listings)
		return ret
	}
	ret := make([]types.Listing, 0, len(listings))
	for i := range listings {
		if Matches(&listings[i], c) {
			ret = append(ret, listings[i])
		}
	}
	return ret
}
