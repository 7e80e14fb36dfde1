package types

import "sync"

// Settings is the small amount of tunable serving state, persisted as json
// next to the listing snapshot and replaced wholesale on settings_change.
type Settings struct {
	sync.RWMutex `json:"-"`
	Currency     string `json:"currency"`
	PageSize     int    `json:"pageSize"`
}

var CurrentSettings = Settings{
	Currency: "NGN",
	PageSize: DefaultPageSize,
}

func (s *Settings) Normalize() {
	if s.Currency == "" {
		s.Currency = "NGN"
	}
	if s.PageSize < 1 || s.PageSize > MaxPageSize {
		s.PageSize = DefaultPageSize
	}
}
