package index

import (
	"fmt"
	"slices"
	"sync"

	"github.com/propstack/estate-finder/pkg/types"
)

// ListingIndex holds the serving copy of the listing collection. Mutations
// only arrive through the upsert/delete feed, searches read an immutable
// snapshot so a pipeline run never observes a partial update.
type ListingIndex struct {
	mu    sync.RWMutex
	items map[types.ListingId]types.Listing
	order []types.ListingId
}

func NewListingIndex() *ListingIndex {
	return &ListingIndex{
		items: make(map[types.ListingId]types.Listing),
		order: make([]types.ListingId, 0),
	}
}

// HandleListings upserts a batch from the change feed. Withdrawn records
// are removed, new ids keep arrival order so the unsorted base order is
// stable between runs.
func (i *ListingIndex) HandleListings(listings []types.Listing) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, l := range listings {
		if l.IsDeleted() {
			i.remove(l.Id)
			continue
		}
		if _, ok := i.items[l.Id]; !ok {
			i.order = append(i.order, l.Id)
		}
		i.items[l.Id] = l
	}
}

func (i *ListingIndex) DeleteListing(id types.ListingId) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.remove(id)
}

func (i *ListingIndex) remove(id types.ListingId) {
	if _, ok := i.items[id]; !ok {
		return
	}
	delete(i.items, id)
	idx := slices.Index(i.order, id)
	if idx >= 0 {
		i.order = append(i.order[:idx], i.order[idx+1:]...)
	}
}

func (i *ListingIndex) GetListing(id types.ListingId) (types.Listing, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	l, ok := i.items[id]
	if !ok {
		return types.Listing{}, fmt.Errorf("listing %d not found", id)
	}
	return l, nil
}

func (i *ListingIndex) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.items)
}

// Snapshot returns a fresh copy of the collection in arrival order. The
// caller owns the slice, later upserts never touch it.
func (i *ListingIndex) Snapshot() []types.Listing {
	i.mu.RLock()
	defer i.mu.RUnlock()
	ret := make([]types.Listing, 0, len(i.order))
	for _, id := range i.order {
		if l, ok := i.items[id]; ok {
			ret = append(ret, l)
		}
	}
	return ret
}
