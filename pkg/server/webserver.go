package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/propstack/estate-finder/pkg/common"
	"github.com/propstack/estate-finder/pkg/index"
	"github.com/propstack/estate-finder/pkg/tracking"
)

type WebServer struct {
	Index   *index.ListingIndex
	Cache   *Cache
	Tracker tracking.Tracking
}

// CreateRouter wires the public search API. The writer side has its own
// router, this one is read only.
func (ws *WebServer) CreateRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/api/search", common.JsonHandler(ws.Tracker, ws.Search))
	mux.HandleFunc("GET /api/facets", common.JsonHandler(ws.Tracker, ws.GetFacets))
	mux.HandleFunc("GET /api/listing/{id}", common.JsonHandler(ws.Tracker, ws.GetListing))
	mux.HandleFunc("POST /api/track/click", common.JsonHandler(ws.Tracker, ws.TrackClick))

	return mux
}
