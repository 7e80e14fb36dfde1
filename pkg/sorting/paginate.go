package sorting

import (
	"github.com/propstack/estate-finder/pkg/types"
)

// Page is one bounded slice of a sorted result set plus the metadata the
// UI needs for its pager.
type Page struct {
	Items      []types.Listing `json:"items"`
	Index      int             `json:"page"`
	Size       int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
	TotalItems int             `json:"totalItems"`
}

// PageCount never reports less than one page, an empty result still renders
// as a single empty page.
func PageCount(totalItems, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	count := (totalItems + pageSize - 1) / pageSize
	if count < 1 {
		return 1
	}
	return count
}

// Paginate slices out one page. An out of range index clamps to the nearest
// valid page instead of erroring, there is no "page not found" state.
func Paginate(listings []types.Listing, pageIndex, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	total := len(listings)
	count := PageCount(total, pageSize)
	if pageIndex < 0 {
		pageIndex = 0
	}
	if pageIndex >= count {
		pageIndex = count - 1
	}
	start := pageIndex * pageSize
	end := min(start+pageSize, total)
	if start > total {
		start = total
	}
	items := make([]types.Listing, end-start)
	copy(items, listings[start:end])
	return Page{
		Items:      items,
		Index:      pageIndex,
		Size:       pageSize,
		TotalPages: count,
		TotalItems: total,
	}
}
