package server

import (
	"github.com/propstack/estate-finder/pkg/sorting"
)

type SearchResponse struct {
	sorting.Page
	Sort      string `json:"sort"`
	TotalHits int    `json:"totalHits"`
	Query     string `json:"query,omitempty"`
	Duration  string `json:"duration,omitempty"`
}
