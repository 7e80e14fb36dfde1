package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/propstack/estate-finder/pkg/index"
	"github.com/propstack/estate-finder/pkg/sorting"
	"github.com/propstack/estate-finder/pkg/types"
)

const cacheTTL = time.Minute * 5

func (ws *WebServer) Search(w http.ResponseWriter, r *http.Request, sessionId int, enc *json.Encoder) error {
	s := time.Now()
	sr := types.GetQueryFromRequest(r)
	key := "search:" + sr.EncodeQuery()

	go noSearches.Inc()

	if ws.Cache != nil {
		cached := SearchResponse{}
		if err := ws.Cache.Get(key, &cached); err == nil {
			go cacheHits.Inc()
			writeSearchHeaders(w, s)
			return enc.Encode(cached)
		}
	}

	snapshot := ws.Index.Snapshot()
	filtered := index.FilterListings(snapshot, sr.Criteria)
	sorted := sorting.SortListings(filtered, types.SortKey(sr.Sort))
	page := sorting.Paginate(sorted, sr.Page, sr.PageSize)

	searchDuration.Observe(time.Since(s).Seconds())
	totalListings.Set(float64(len(snapshot)))

	data := SearchResponse{
		Page:      page,
		Sort:      sr.Sort,
		TotalHits: len(filtered),
		Query:     sr.EncodeQuery(),
		Duration:  time.Since(s).String(),
	}

	if ws.Cache != nil {
		if err := ws.Cache.Set(key, data, cacheTTL); err != nil {
			log.Printf("failed to cache search result: %v", err)
		}
	}
	if ws.Tracker != nil && !sr.SkipTracking {
		go ws.Tracker.TrackSearch(sessionId, sr.Criteria, len(filtered), sr.Page, r)
	}

	writeSearchHeaders(w, s)
	return enc.Encode(data)
}

func writeSearchHeaders(w http.ResponseWriter, start time.Time) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, stale-while-revalidate=120")
	w.Header().Set("x-duration", fmt.Sprintf("%v", time.Since(start)))
	w.WriteHeader(http.StatusOK)
}

// GetFacets reports the type/city counts and price bounds for the filtered
// set, the sidebar renders from this.
func (ws *WebServer) GetFacets(w http.ResponseWriter, r *http.Request, sessionId int, enc *json.Encoder) error {
	sr := types.GetQueryFromRequest(r)
	filtered := index.FilterListings(ws.Index.Snapshot(), sr.Criteria)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(index.Summarize(filtered))
}

func (ws *WebServer) GetListing(w http.ResponseWriter, r *http.Request, sessionId int, enc *json.Encoder) error {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 0 {
		http.Error(w, "invalid listing id", http.StatusBadRequest)
		return nil
	}
	listing, err := ws.Index.GetListing(types.ListingId(id))
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(listing)
}

type clickPayload struct {
	Listing  types.ListingId `json:"listing"`
	Position int             `json:"position"`
}

func (ws *WebServer) TrackClick(w http.ResponseWriter, r *http.Request, sessionId int, enc *json.Encoder) error {
	payload := clickPayload{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	if ws.Tracker != nil {
		go ws.Tracker.TrackListingClick(sessionId, payload.Listing, payload.Position)
	}
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte("ok"))
	return err
}
