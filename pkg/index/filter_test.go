package index

import (
	"testing"

	"github.com/propstack/estate-finder/pkg/types"
)

func makeCollection(prices ...int64) []types.Listing {
	ret := make([]types.Listing, 0, len(prices))
	for i, p := range prices {
		ret = append(ret, makeListing(types.ListingId(i+1), func(l *types.Listing) {
			l.Price = p
		}))
	}
	return ret
}

func TestFilterPriceRangeKeepsOrder(t *testing.T) {
	// twelve listings between 18M and 40M, range [20M, 35M] inclusive
	prices := []int64{18, 20, 22, 24, 26, 28, 30, 32, 34, 35, 38, 40}
	for i := range prices {
		prices[i] *= 1_000_000
	}
	collection := makeCollection(prices...)
	c := criteria(func(c *types.SearchCriteria) {
		c.PriceMin = 20_000_000
		c.PriceMax = 35_000_000
	})
	got := FilterListings(collection, c)
	if len(got) != 9 {
		t.Fatalf("expected 9 survivors, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Id <= got[i-1].Id {
			t.Errorf("filtering must preserve incoming order")
		}
	}
	if got[0].Price != 20_000_000 || got[len(got)-1].Price != 35_000_000 {
		t.Errorf("both range bounds are inclusive, got %d..%d", got[0].Price, got[len(got)-1].Price)
	}
}

func TestFilterEmptyInput(t *testing.T) {
	got := FilterListings(nil, criteria(func(c *types.SearchCriteria) { c.Location = "Lagos" }))
	if len(got) != 0 {
		t.Errorf("empty input yields empty output")
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	collection := makeCollection(1000, 2000)
	got := FilterListings(collection, criteria(nil))
	if len(got) != 2 {
		t.Fatalf("default criteria keeps everything")
	}
	got[0].Price = 1
	if collection[0].Price != 1000 {
		t.Errorf("filter result must be a fresh slice")
	}
}

func TestFilterMonotonicity(t *testing.T) {
	collection := makeCollection(1_000_000, 5_000_000, 9_000_000, 14_000_000, 20_000_000)
	base := criteria(func(c *types.SearchCriteria) {
		c.PriceMin = 1
		c.PriceMax = 50_000_000
	})
	prev := len(FilterListings(collection, base))
	for _, minPrice := range []int64{2_000_000, 6_000_000, 10_000_000, 30_000_000} {
		c := criteria(func(c *types.SearchCriteria) {
			c.PriceMin = minPrice
			c.PriceMax = 50_000_000
		})
		got := len(FilterListings(collection, c))
		if got > prev {
			t.Errorf("raising the minimum price grew the result from %d to %d", prev, got)
		}
		prev = got
	}
}

func TestIndexSnapshotOrderAndIsolation(t *testing.T) {
	idx := NewListingIndex()
	idx.HandleListings(makeCollection(300, 100, 200))
	snap := idx.Snapshot()
	if len(snap) != 3 || snap[0].Price != 300 || snap[2].Price != 200 {
		t.Fatalf("snapshot must keep arrival order, got %+v", snap)
	}
	idx.DeleteListing(snap[1].Id)
	if len(snap) != 3 {
		t.Errorf("deletes must not reach an existing snapshot")
	}
	if idx.Len() != 2 {
		t.Errorf("expected 2 listings after delete, got %d", idx.Len())
	}
}

func TestIndexDropsWithdrawn(t *testing.T) {
	idx := NewListingIndex()
	l := makeListing(7, nil)
	idx.HandleListings([]types.Listing{l})
	l.Status = types.StatusWithdrawn
	idx.HandleListings([]types.Listing{l})
	if idx.Len() != 0 {
		t.Errorf("withdrawn listings leave the snapshot")
	}
}

func TestSummarize(t *testing.T) {
	collection := []types.Listing{
		makeListing(1, func(l *types.Listing) { l.Price = 100; l.Type = types.TypeHouse; l.City = "Abuja" }),
		makeListing(2, func(l *types.Listing) { l.Price = 900; l.Type = types.TypeHouse; l.City = "Abuja" }),
		makeListing(3, func(l *types.Listing) { l.Price = 500; l.Type = types.TypeLand; l.City = "" }),
	}
	s := Summarize(collection)
	if s.Total != 3 || s.Types["house"] != 2 || s.Types["land"] != 1 {
		t.Errorf("unexpected summary %+v", s)
	}
	if s.Cities["Abuja"] != 2 || len(s.Cities) != 1 {
		t.Errorf("blank cities are skipped, got %+v", s.Cities)
	}
	if s.PriceMin != 100 || s.PriceMax != 900 {
		t.Errorf("expected price bounds [100, 900], got [%d, %d]", s.PriceMin, s.PriceMax)
	}
}
