package types

import (
	"net/url"
	"testing"
)

func TestDecodeCriteriaDefaults(t *testing.T) {
	c := DecodeCriteriaString("")
	if !c.IsDefault() {
		t.Errorf("empty query should decode to default criteria, got %+v", c)
	}
	if c.PriceMin != DefaultPriceMin || c.PriceMax != DefaultPriceMax {
		t.Errorf("expected default price range, got [%d, %d]", c.PriceMin, c.PriceMax)
	}
}

func TestDecodeCriteriaMalformedNumeric(t *testing.T) {
	c := DecodeCriteriaString("price_min=abc&bedrooms=2")
	if c.PriceMin != DefaultPriceMin {
		t.Errorf("malformed price_min should keep default, got %d", c.PriceMin)
	}
	if c.MinBedrooms != 2 {
		t.Errorf("expected bedrooms 2, got %d", c.MinBedrooms)
	}
}

func TestDecodeCriteriaNeverFails(t *testing.T) {
	inputs := []string{
		"",
		"?;%zz",
		"unknown=value&other=thing",
		"price_min=-5&price_max=NaN",
		"bedrooms=1e9&bathrooms=two",
		"types=,,,&amenities=,",
		"price_min=%",
	}
	for _, input := range inputs {
		c := DecodeCriteriaString(input)
		if c == nil {
			t.Fatalf("decode returned nil for %q", input)
		}
		if c.PriceMin > c.PriceMax {
			t.Errorf("decode of %q produced reversed range [%d, %d]", input, c.PriceMin, c.PriceMax)
		}
	}
}

func TestDecodeCriteriaReversedRangeSwaps(t *testing.T) {
	c := DecodeCriteriaString("price_min=500000&price_max=100000")
	if c.PriceMin != 100000 || c.PriceMax != 500000 {
		t.Errorf("expected swapped range [100000, 500000], got [%d, %d]", c.PriceMin, c.PriceMax)
	}
}

func TestDecodeCriteriaSets(t *testing.T) {
	c := DecodeCriteriaString("types=house,apartment&amenities=pool")
	if len(c.Types) != 2 || c.Types[0] != "house" || c.Types[1] != "apartment" {
		t.Errorf("unexpected types %v", c.Types)
	}
	if len(c.Amenities) != 1 || c.Amenities[0] != "pool" {
		t.Errorf("unexpected amenities %v", c.Amenities)
	}
}

func TestEncodeCriteriaOmitsDefaults(t *testing.T) {
	c := NewSearchCriteria()
	if got := EncodeCriteriaString(c); got != "" {
		t.Errorf("default criteria should encode empty, got %q", got)
	}
	c.MinBedrooms = 3
	got := EncodeCriteriaString(c)
	if got != "bedrooms=3" {
		t.Errorf("expected only bedrooms encoded, got %q", got)
	}
}

func TestCriteriaRoundTrip(t *testing.T) {
	c := &SearchCriteria{
		Location:     "Lekki",
		Types:        []string{"house", "duplex"},
		Amenities:    []string{"pool", "gym"},
		PriceMin:     20_000_000,
		PriceMax:     35_000_000,
		MinBedrooms:  3,
		MinBathrooms: 2,
		Category:     CategoryHouse,
	}
	c.Sanitize()
	decoded := DecodeCriteriaString(EncodeCriteriaString(c))
	if !c.Equal(decoded) {
		t.Errorf("round trip mismatch:\nencoded %+v\ndecoded %+v", c, decoded)
	}
}

func TestCriteriaRoundTripEmptySetEqualsAbsent(t *testing.T) {
	withEmpty := &SearchCriteria{Types: []string{}, Amenities: []string{}, PriceMax: DefaultPriceMax}
	withEmpty.Sanitize()
	decoded := DecodeCriteriaString(EncodeCriteriaString(withEmpty))
	if !withEmpty.Equal(decoded) {
		t.Errorf("empty multi-select and absent parameter should be equivalent")
	}
}

func TestEncodeCriteriaCanonical(t *testing.T) {
	a := &SearchCriteria{Location: "Ikeja", MinBedrooms: 2, PriceMax: DefaultPriceMax}
	b := &SearchCriteria{MinBedrooms: 2, Location: "Ikeja", PriceMax: DefaultPriceMax}
	a.Sanitize()
	b.Sanitize()
	if EncodeCriteriaString(a) != EncodeCriteriaString(b) {
		t.Errorf("equal criteria must share one canonical encoding")
	}
}

func TestSearchRequestEncodeQuery(t *testing.T) {
	sr := makeBaseSearchRequest()
	sr.Criteria.Location = "Abuja"
	sr.Sort = string(SortPriceAsc)
	sr.Page = 2
	got, err := url.ParseQuery(sr.EncodeQuery())
	if err != nil {
		t.Fatalf("encoded query should parse: %v", err)
	}
	if got.Get("location") != "Abuja" || got.Get("sort") != "price_asc" || got.Get("page") != "2" {
		t.Errorf("unexpected encoded query %v", got)
	}
	if got.Has("size") {
		t.Errorf("default page size should not be encoded")
	}
}
