package types

import (
	"fmt"
	"time"
)

type ListingId = uint

type PropertyType string

const (
	TypeHouse      PropertyType = "house"
	TypeApartment  PropertyType = "apartment"
	TypeCondo      PropertyType = "condo"
	TypeTownhouse  PropertyType = "townhouse"
	TypeDuplex     PropertyType = "duplex"
	TypeBungalow   PropertyType = "bungalow"
	TypeLand       PropertyType = "land"
	TypeCommercial PropertyType = "commercial"
)

type ListingStatus string

const (
	StatusAvailable ListingStatus = "available"
	StatusPending   ListingStatus = "pending"
	StatusSold      ListingStatus = "sold"
	StatusRented    ListingStatus = "rented"
	StatusWithdrawn ListingStatus = "withdrawn"
)

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Listing is one property record as delivered by the upstream store.
// Price is in whole currency units, comparisons stay integer exact.
// Optional fields are pointers, nil means the store never provided a value.
type Listing struct {
	Id          ListingId     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Price       int64         `json:"price"`
	Currency    string        `json:"currency,omitempty"`
	Type        PropertyType  `json:"type"`
	Status      ListingStatus `json:"status"`
	Bedrooms    *int          `json:"bedrooms,omitempty"`
	Bathrooms   *float64      `json:"bathrooms,omitempty"`
	SquareFeet  *int          `json:"sqft,omitempty"`
	Street      string        `json:"street,omitempty"`
	City        string        `json:"city,omitempty"`
	State       string        `json:"state,omitempty"`
	PostalCode  string        `json:"postalCode,omitempty"`
	Country     string        `json:"country,omitempty"`
	Location    *GeoPoint     `json:"location,omitempty"`
	Images      []string      `json:"images,omitempty"`
	Amenities   []string      `json:"amenities,omitempty"`
	IsFeatured  bool          `json:"featured,omitempty"`
	CreatedAt   time.Time     `json:"created"`
}

func (l *Listing) GetId() ListingId {
	return l.Id
}

// IsDeleted reports whether the record should leave the serving snapshot.
func (l *Listing) IsDeleted() bool {
	return l.Status == StatusWithdrawn
}

// Validate guards the ingest path, the serving side never sees a record
// that breaks the price or count invariants.
func (l *Listing) Validate() error {
	if l.Id == 0 {
		return fmt.Errorf("listing id is required")
	}
	if l.Price < 0 {
		return fmt.Errorf("listing %d has negative price %d", l.Id, l.Price)
	}
	if l.Bedrooms != nil && *l.Bedrooms < 0 {
		return fmt.Errorf("listing %d has negative bedroom count", l.Id)
	}
	if l.Bathrooms != nil && *l.Bathrooms < 0 {
		return fmt.Errorf("listing %d has negative bathroom count", l.Id)
	}
	return nil
}

func Int(v int) *int {
	return &v
}

func Float(v float64) *float64 {
	return &v
}
